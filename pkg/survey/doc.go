// Package survey models survey-definition documents and renumbers the
// question identifiers inside them.
//
// # Document Model
//
// Survey documents are arbitrary JSON. The tool only depends on a small part
// of their shape:
//
//	{
//	  "sections": [
//	    {
//	      "questions": [
//	        {"id": 2, "text": "..."},
//	        {"id": 2.1, "showIf": {"questionId": 2, "value": "Yes"}}
//	      ]
//	    }
//	  ]
//	}
//
// Everything else is carried through untouched. [Value] is a tagged union
// over the JSON kinds. Objects keep their members in document order, and
// numbers keep their literal text so that values the tool does not rewrite
// are written back exactly as they were read.
//
// # Renumbering Rule
//
// [MapID] shifts every whole-number identifier up by one and keeps the
// sub-question fraction:
//
//	2   -> 3
//	2.3 -> 3.3
//	0   -> 0    (reserved, never shifts)
//	0.1 -> 1    (promoted to a top-level question)
//
// Values that are not JSON numbers are returned unchanged.
//
// # Walking
//
// [Renumber] applies [MapID] to the "id" of every question under
// sections[].questions[] and to every "questionId" member at any depth of
// the document. Using the same mapping for both keeps conditional-visibility
// references pointing at the question they pointed at before.
package survey
