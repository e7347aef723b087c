package advisor

import (
	"context"

	"github.com/domuslabs/cashlens/internal/knowledge"
)

// noMatchAnswer is returned when the knowledge base has nothing relevant.
const noMatchAnswer = "Sorry, I don't have information about that yet. Try asking about your banks, groceries, school, utilities, work finances, or budgeting."

// KnowledgeProvider answers locally from the knowledge base; no network
// calls, no API key.
type KnowledgeProvider struct {
	base *knowledge.Base
}

// NewKnowledgeProvider creates a knowledge-base-backed provider.
func NewKnowledgeProvider(base *knowledge.Base) *KnowledgeProvider {
	return &KnowledgeProvider{base: base}
}

func (p *KnowledgeProvider) Name() string {
	return "knowledge"
}

func (p *KnowledgeProvider) Reply(ctx context.Context, message string, _ []Message) (string, error) {
	answer, err := p.base.Answer(ctx, message)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return noMatchAnswer, nil
	}
	return answer, nil
}
