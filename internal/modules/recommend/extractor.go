package recommend

import (
	"context"
	"strings"

	"github.com/aulanova/aulanova-backend/internal/domain"
	"github.com/aulanova/aulanova-backend/internal/pkg/logger"
	"github.com/aulanova/aulanova-backend/internal/platform/openai"
)

// Extractor asks the completion service which vocabulary categories a free
// text question relates to. Tokens come back verbatim: near-miss names are
// the caller's problem (they simply retrieve nothing).
type Extractor struct {
	ai  openai.Client
	log *logger.Logger
}

func NewExtractor(ai openai.Client, baseLog *logger.Logger) *Extractor {
	return &Extractor{ai: ai, log: baseLog.With("component", "Extractor")}
}

func (e *Extractor) Extract(ctx context.Context, question string, vocabulary []domain.Category) ([]string, error) {
	names := make([]string, 0, len(vocabulary))
	for _, c := range vocabulary {
		if c.Active && strings.TrimSpace(c.Name) != "" {
			names = append(names, c.Name)
		}
	}
	if len(names) == 0 || strings.TrimSpace(question) == "" {
		return []string{}, nil
	}

	system := strings.Join([]string{
		"You classify questions about local activities against a fixed category vocabulary.",
		"Pick the categories from the list below that relate to the question.",
		"Answer with the category names only, separated by commas, nothing else.",
		"",
		"CATEGORIES: " + strings.Join(names, ", "),
	}, "\n")

	answer, err := e.ai.GenerateText(ctx, system, question)
	if err != nil {
		return nil, err
	}

	tokens := []string{}
	for _, part := range strings.Split(answer, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens, nil
}
