package prompt

import (
	"fmt"
	"strings"
)

// MaxDocumentRunes caps how much document text is sent to the model.
const MaxDocumentRunes = 3000

// GetSystemPrompt sets the assistant's role.
func GetSystemPrompt() string {
	return "You are an expert Indian legal assistant."
}

// GetUserPrompt builds the user message around a question and an optional
// document. Only the first MaxDocumentRunes runes of the document are used.
func GetUserPrompt(question, document string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You are LexScripta, an expert Indian legal assistant. Provide clear, simplified legal guidance based on Indian laws.

User Question: %s`, question)

	if document != "" {
		fmt.Fprintf(&b, "\n\nDocument Content:\n%s", Truncate(document, MaxDocumentRunes))
	}

	b.WriteString(`

Provide a response in the following format:
1. Direct Answer: (Simplified explanation in 2-3 paragraphs)
2. Relevant Indian Laws: (List 2-3 specific acts/sections if applicable)
3. Next Steps: (Practical advice in bullet points)

Keep language simple and avoid overly legal jargon. Focus on being helpful and actionable.`)
	return b.String()
}

// Truncate keeps the first n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
