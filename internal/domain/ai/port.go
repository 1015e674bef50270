package ai

import "context"

// Reply is one answer from a Client.
type Reply struct {
	Text string
	// Laws are statutes mentioned in Text, unique, at most MaxLaws.
	Laws []string
	// Mode names the backend, e.g. "OpenAI GPT" or "Mock AI (Demo Mode)".
	Mode string
	Demo bool
}

// MaxLaws caps Reply.Laws.
const MaxLaws = 5

// Client answers a legal question, optionally about a document's text.
type Client interface {
	Analyze(ctx context.Context, question, document string) (Reply, error)
}
