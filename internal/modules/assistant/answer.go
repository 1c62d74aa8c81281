package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/aulanova/aulanova-backend/internal/domain"
	"github.com/aulanova/aulanova-backend/internal/pkg/logger"
	"github.com/aulanova/aulanova-backend/internal/platform/openai"
)

// Synthesizer produces one grounded natural-language answer from the rows
// retrieval already found. When nothing was retrieved it must still answer,
// but the instruction explicitly forbids inventing activities.
type Synthesizer struct {
	ai  openai.Client
	log *logger.Logger
}

func NewSynthesizer(ai openai.Client, baseLog *logger.Logger) *Synthesizer {
	return &Synthesizer{ai: ai, log: baseLog.With("component", "Synthesizer")}
}

func (s *Synthesizer) Answer(ctx context.Context, question string, items []domain.ContentItem) (string, error) {
	var activities string
	if len(items) == 0 {
		activities = "There are no matching activities. Do not invent activities; there are none. " +
			"Still answer the user's question as helpfully as you can."
	} else {
		summaries := make([]string, 0, len(items))
		for _, item := range items {
			summaries = append(summaries, summarize(item))
		}
		activities = "Here are the activities: " + strings.Join(summaries, "; ") +
			". Base your answer only on these activities."
	}

	system := strings.Join([]string{
		"You are an expert on local educational activities.",
		activities,
		"Answer the user's question.",
	}, "\n")

	return s.ai.GenerateText(ctx, system, question)
}

func summarize(item domain.ContentItem) string {
	var b strings.Builder
	b.WriteString(item.Title)
	if item.Location != "" {
		b.WriteString(" - " + item.Location)
	}
	if item.StartsAt != "" || item.StartsTime != "" {
		b.WriteString(" (" + strings.TrimSpace(item.StartsAt+" "+item.StartsTime) + ")")
	}
	if item.Description != "" {
		b.WriteString(": " + item.Description)
	}

	details := []string{"type " + item.ContentType, "modality " + item.Modality}
	if item.Level != "" {
		details = append(details, "level "+item.Level)
	}
	if item.Rating != nil {
		details = append(details, fmt.Sprintf("rating %.1f", *item.Rating))
	}
	if item.Price != nil {
		details = append(details, fmt.Sprintf("price %.2f", *item.Price))
	}
	details = append(details, "status "+item.Status)

	b.WriteString(" [" + strings.Join(details, ", ") + "]")
	return b.String()
}
