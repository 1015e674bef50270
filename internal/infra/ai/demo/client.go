// Package demo answers legal questions with canned texts. It is used when no
// AI provider is configured and as the fallback when the provider fails.
package demo

import (
	"context"
	"strings"

	domain "github.com/bryanwahyu/legal-triage/internal/domain/ai"
)

// ModeName is reported in Reply.Mode.
const ModeName = "Mock AI (Demo Mode)"

type canned struct {
	keywords []string
	text     string
	laws     []string
}

// Checked in order; the first topic with a matching keyword wins.
var topics = []canned{
	{
		keywords: []string{"property", "registration"},
		text: `**Property Registration in India**

Property registration is mandatory in India under the Registration Act, 1908. Here's what you need to know:

The registration process involves visiting the Sub-Registrar's office in your jurisdiction with the original sale deed, identity proofs of buyer and seller, two witnesses, and property documents. The stamp duty and registration fees vary by state, typically ranging from 5-7% of property value.

**Key Requirements:**
• Original sale deed drafted by a lawyer
• PAN cards and Aadhaar cards of all parties
• Property tax receipts and encumbrance certificate
• Two witnesses with valid ID proof
• Payment of stamp duty and registration fees

**Important Acts:**
- Registration Act, 1908
- Transfer of Property Act, 1882
- Indian Stamp Act, 1899

Registration must be completed within 4 months of the sale deed execution to avoid penalties.`,
		laws: []string{"Registration Act 1908", "Transfer of Property Act 1882", "Indian Stamp Act 1899"},
	},
	{
		keywords: []string{"employment", "termination", "job"},
		text: `**Wrongful Termination Rights in India**

If you believe you've been wrongfully terminated, you have several legal protections under Indian labor laws.

Under the Industrial Disputes Act, 1947, employees cannot be terminated without valid reason and proper procedure. Notice period requirements vary by employment terms, but typically range from 30-90 days. If terminated without notice, you're entitled to notice period pay.

**Your Rights:**
• Right to receive termination notice in writing
• Right to full and final settlement within 2 months
• Right to challenge termination in labor court
• Right to gratuity (if applicable under specific conditions)

**Relevant Laws:**
- Industrial Disputes Act, 1947
- Payment of Gratuity Act, 1972
- Shops and Establishments Act (State-specific)

Document everything, gather employment records, and consult with a labor law attorney to evaluate your case.`,
		laws: []string{"Industrial Disputes Act 1947", "Payment of Gratuity Act 1972", "Shops and Establishments Act"},
	},
	{
		keywords: []string{"consumer", "defective", "complaint"},
		text: `**Filing Consumer Complaints in India**

The Consumer Protection Act, 2019 provides a robust framework for addressing defective products and unfair trade practices.

You can file a complaint at three levels based on claim value: District Forum (up to ₹1 crore), State Commission (₹1-10 crore), or National Commission (above ₹10 crore). The complaint can be filed online through the e-Daakhil portal or offline at the consumer forum.

**Steps to File:**
• Gather all bills, receipts, and product documentation
• Draft a complaint with clear description of defect
• Include copies of communication with seller/manufacturer
• Submit to appropriate consumer forum with prescribed fee
• Attend hearings as scheduled

**Key Provisions:**
- Consumer Protection Act, 2019
- Legal Metrology Act, 2009
- Sale of Goods Act, 1930

Complaints must be filed within 2 years of the cause of action. Most cases are resolved within 6-12 months.`,
		laws: []string{"Consumer Protection Act 2019", "Legal Metrology Act 2009", "Sale of Goods Act 1930"},
	},
}

const generalHead = `**Legal Guidance - Indian Law Context**

Thank you for your legal query. Based on Indian law, here's general guidance on your question:

`

const documentReviewed = "I've reviewed the document you provided. "

const generalBody = `Your question relates to an area of Indian law that requires careful consideration of specific facts and circumstances.

**General Information:**
Indian law is comprehensive and covers various aspects through central and state legislation. Depending on your specific situation, different acts and regulations may apply. The legal framework ensures protection of rights while balancing various interests.

**Recommended Next Steps:**
• Gather all relevant documents related to your situation
• Note down detailed timeline of events
• Consult with a qualified lawyer specializing in this area
• Consider mediation or alternative dispute resolution if applicable
• Be aware of limitation periods for filing legal actions

**Important Note:**
This is general information based on common Indian legal principles. Your specific case may have unique factors that require professional legal assessment.`

var generalLaws = []string{"Indian Constitution", "Indian Penal Code", "Code of Civil Procedure"}

// Client implements ai.Client without any network access.
type Client struct{}

func NewClient() *Client { return &Client{} }

func (c *Client) Analyze(ctx context.Context, question, document string) (domain.Reply, error) {
	if err := ctx.Err(); err != nil {
		return domain.Reply{}, err
	}
	return Answer(question, document), nil
}

// Answer picks the canned reply for question.
func Answer(question, document string) domain.Reply {
	q := strings.ToLower(question)
	for _, t := range topics {
		for _, kw := range t.keywords {
			if strings.Contains(q, kw) {
				return reply(t.text, t.laws)
			}
		}
	}

	text := generalHead
	if document != "" {
		text += documentReviewed
	}
	return reply(text+generalBody, generalLaws)
}

func reply(text string, laws []string) domain.Reply {
	out := make([]string, len(laws))
	copy(out, laws)
	return domain.Reply{Text: text, Laws: out, Mode: ModeName, Demo: true}
}
