package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aulanova/aulanova-backend/internal/data/repos"
	"github.com/aulanova/aulanova-backend/internal/domain"
	"github.com/aulanova/aulanova-backend/internal/modules/assistant"
	"github.com/aulanova/aulanova-backend/internal/modules/recommend"
	"github.com/aulanova/aulanova-backend/internal/pkg/apperr"
	"github.com/aulanova/aulanova-backend/internal/pkg/logger"
	"github.com/aulanova/aulanova-backend/internal/platform/openai"
)

// AnswerResult carries the grounded answer plus the evidence it was built on.
type AnswerResult struct {
	Answer     string               `json:"answer"`
	Categories []string             `json:"categories"`
	Items      []domain.ContentItem `json:"items"`
}

type AssistantService interface {
	AnswerQuestion(ctx context.Context, question string) (*AnswerResult, error)
}

type assistantService struct {
	log         *logger.Logger
	categories  CategoryService
	extractor   *recommend.Extractor
	retriever   *recommend.Retriever
	synthesizer *assistant.Synthesizer
}

func NewAssistantService(
	baseLog *logger.Logger,
	categories CategoryService,
	content repos.ContentRepo,
	ai openai.Client,
) AssistantService {
	serviceLog := baseLog.With("service", "AssistantService")
	return &assistantService{
		log:         serviceLog,
		categories:  categories,
		extractor:   recommend.NewExtractor(ai, serviceLog),
		retriever:   recommend.NewRetriever(content, serviceLog),
		synthesizer: assistant.NewSynthesizer(ai, serviceLog),
	}
}

func (as *assistantService) AnswerQuestion(ctx context.Context, question string) (*AnswerResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is empty", apperr.ErrInvalidArgument)
	}

	vocabulary, err := as.categories.Vocabulary(ctx)
	if err != nil {
		// Without a vocabulary the extractor has nothing to match against;
		// degrade to an ungrounded-but-honest answer over zero items.
		as.log.Warn("Category vocabulary unavailable", "error", err)
		vocabulary = nil
	}

	names, err := as.extractor.Extract(ctx, question, vocabulary)
	if err != nil {
		as.log.Warn("Category extraction failed", "error", err)
		names = nil
	}

	var items []domain.ContentItem
	if len(names) > 0 {
		items, err = as.retriever.SearchByCategories(ctx, names)
		if err != nil {
			as.log.Warn("Category retrieval failed", "categories", names, "error", err)
			items = nil
		}
	}

	answer, err := as.synthesizer.Answer(ctx, question, items)
	if err != nil {
		return nil, fmt.Errorf("%w: synthesize answer: %w", apperr.ErrUpstreamUnavailable, err)
	}

	if names == nil {
		names = []string{}
	}
	if items == nil {
		items = []domain.ContentItem{}
	}
	return &AnswerResult{Answer: answer, Categories: names, Items: items}, nil
}
