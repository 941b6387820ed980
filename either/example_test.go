package either_test

import (
	"encoding/json"
	"fmt"

	"either-codec/either"
)

type authors struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type book struct {
	Authors either.StringOrStruct[authors] `json:"authors"`
}

func (b book) authorName() string {
	if s, ok := b.Authors.StringValue(); ok {
		return s
	}

	a, _ := b.Authors.StructValue()
	return fmt.Sprintf("%s %s", a.FirstName, a.LastName)
}

func ExampleStringOrStruct() {
	data := `[
		{
			"authors": {
				"first_name": "John",
				"last_name": "Smith"
			}
		},
		{
			"authors": "Michael J. Smith"
		}
	]`

	var books []book
	if err := json.Unmarshal([]byte(data), &books); err != nil {
		fmt.Println(err)
		return
	}

	for _, b := range books {
		fmt.Println(b.authorName())
	}

	// Output:
	// John Smith
	// Michael J. Smith
}
