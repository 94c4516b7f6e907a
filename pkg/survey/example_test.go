package survey_test

import (
	"fmt"
	"os"

	"github.com/matzehuels/renumber/pkg/survey"
)

func ExampleMapID() {
	for _, id := range []survey.Value{
		survey.Int(2),
		survey.Float(2.3),
		survey.Int(0),
		survey.Float(0.1),
		survey.String("intro"),
	} {
		fmt.Printf("%v -> %v\n", id, survey.MapID(id))
	}
	// Output:
	// 2 -> 3
	// 2.3 -> 3.3
	// 0 -> 0
	// 0.1 -> 1
	// "intro" -> "intro"
}

func ExampleRenumber() {
	doc, err := survey.Parse([]byte(`{
		"sections": [{
			"title": "Agencia",
			"questions": [
				{"id": 2, "text": "¿Tiene su agencia un PSAP?"},
				{"id": 2.1, "text": "¿Cuántos?", "showIf": {"questionId": 2, "value": "Sí"}}
			]
		}]
	}`))
	if err != nil {
		panic(err)
	}

	report := survey.Renumber(doc)
	fmt.Printf("%d ids, %d references changed\n", report.IDsChanged, report.ReferencesChanged)
	_ = doc.Encode(os.Stdout, 2)
	// Output:
	// 2 ids, 1 references changed
	// {
	//   "sections": [
	//     {
	//       "title": "Agencia",
	//       "questions": [
	//         {
	//           "id": 3,
	//           "text": "¿Tiene su agencia un PSAP?"
	//         },
	//         {
	//           "id": 3.1,
	//           "text": "¿Cuántos?",
	//           "showIf": {
	//             "questionId": 3,
	//             "value": "Sí"
	//           }
	//         }
	//       ]
	//     }
	//   ]
	// }
}
