package assistant

// ExampleGroup is a set of sample questions for one area of law.
type ExampleGroup struct {
	Category  string   `json:"category"`
	Questions []string `json:"questions"`
}

var examples = []ExampleGroup{
	{
		Category: "Property Law",
		Questions: []string{
			"How do I register property in India?",
			"What documents are needed for property sale?",
			"What is stamp duty and how is it calculated?",
		},
	},
	{
		Category: "Employment Law",
		Questions: []string{
			"What are my rights if wrongfully terminated?",
			"How much notice period is legally required?",
			"Can I sue for workplace harassment?",
		},
	},
	{
		Category: "Consumer Rights",
		Questions: []string{
			"How to file a consumer complaint?",
			"What to do about a defective product?",
			"Can I get a refund for online purchases?",
		},
	},
	{
		Category: "Family Law",
		Questions: []string{
			"What is the process for divorce in India?",
			"How is child custody decided?",
			"What are maintenance rights?",
		},
	},
	{
		Category: "Criminal Law",
		Questions: []string{
			"What to do if falsely accused?",
			"How to file an FIR?",
			"What are bail conditions?",
		},
	},
}

// Examples returns a copy of the sample questions.
func Examples() []ExampleGroup {
	out := make([]ExampleGroup, len(examples))
	for i, g := range examples {
		out[i] = ExampleGroup{Category: g.Category, Questions: append([]string(nil), g.Questions...)}
	}
	return out
}
