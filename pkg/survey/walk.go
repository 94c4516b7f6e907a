package survey

// Document keys the walker depends on.
const (
	KeySections   = "sections"
	KeyQuestions  = "questions"
	KeyID         = "id"
	KeyQuestionID = "questionId"
)

// Change records one rewritten question identifier.
type Change struct {
	Old Value
	New Value
}

// Stats summarizes a renumbering pass.
type Stats struct {
	Sections          int // objects under "sections"
	Questions         int // objects under "sections[].questions"
	IDsChanged        int // question ids whose value changed
	References        int // numeric "questionId" members visited
	ReferencesChanged int // "questionId" members whose value changed
}

// Report is the outcome of [Renumber].
type Report struct {
	Stats
	Changes []Change // question id rewrites in document order
}

// Renumber rewrites every question identifier of doc in place, then every
// numeric "questionId" reference at any depth.
func Renumber(doc Value) Report {
	var r Report
	r.Changes = RenumberQuestions(doc, &r.Stats)
	RenumberReferences(doc, &r.Stats)
	return r
}

// RenumberQuestions rewrites the "id" member of every question object under
// doc.sections[].questions[] with [MapQuestionID] and returns the ids that
// changed. Entries of the wrong kind, and questions without an id, are
// skipped. stats may be nil.
func RenumberQuestions(doc Value, stats *Stats) []Change {
	if stats == nil {
		stats = &Stats{}
	}
	var changes []Change

	sections, _ := doc.Get(KeySections)
	for _, section := range sections.Array() {
		if section.Kind() != KindObject {
			continue
		}
		stats.Sections++

		questions, _ := section.Get(KeyQuestions)
		for _, question := range questions.Array() {
			q := question.Object()
			if q == nil {
				continue
			}
			stats.Questions++

			old, ok := q.Get(KeyID)
			if !ok {
				continue
			}
			next := MapQuestionID(old)
			q.Set(KeyID, next)
			if !Equal(old, next) {
				stats.IDsChanged++
				changes = append(changes, Change{Old: old, New: next})
			}
		}
	}
	return changes
}

// RenumberReferences rewrites every numeric "questionId" member found
// anywhere in v, descending through all object members and array elements.
// A "questionId" holding anything other than a number is descended into
// like any other member. stats may be nil.
func RenumberReferences(v Value, stats *Stats) {
	if stats == nil {
		stats = &Stats{}
	}
	switch v.Kind() {
	case KindObject:
		obj := v.Object()
		for i := range obj {
			m := &obj[i]
			if m.Key == KeyQuestionID && m.Value.Kind() == KindNumber {
				stats.References++
				next := MapID(m.Value)
				if !Equal(m.Value, next) {
					stats.ReferencesChanged++
				}
				m.Value = next
				continue
			}
			RenumberReferences(m.Value, stats)
		}
	case KindArray:
		for _, elem := range v.Array() {
			RenumberReferences(elem, stats)
		}
	}
}
