package recommend

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/aulanova/aulanova-backend/internal/domain"
)

func category(name string, active bool) domain.Category {
	return domain.Category{ID: uuid.New(), Name: name, Kind: domain.CategoryKindArea, Active: active}
}

func TestExtractSplitsAndTrims(t *testing.T) {
	ai := &stubAI{responses: []string{" Cloud Computing , Data Science ,, "}}
	ex := NewExtractor(ai, testLogger(t))

	got, err := ex.Extract(context.Background(), "any cloud courses?", []domain.Category{
		category("Cloud Computing", true),
		category("Data Science", true),
	})
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	want := []string{"Cloud Computing", "Data Science"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestExtractPassesNearMissTokensVerbatim(t *testing.T) {
	ai := &stubAI{responses: []string{"Cloud Computng"}}
	ex := NewExtractor(ai, testLogger(t))

	got, err := ex.Extract(context.Background(), "cloud?", []domain.Category{category("Cloud Computing", true)})
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(got) != 1 || got[0] != "Cloud Computng" {
		t.Fatalf("tokens must come back verbatim, got %v", got)
	}
}

func TestExtractOnlyActiveCategoriesInPrompt(t *testing.T) {
	ai := &stubAI{responses: []string{"Sports"}}
	ex := NewExtractor(ai, testLogger(t))

	_, err := ex.Extract(context.Background(), "anything sporty?", []domain.Category{
		category("Sports", true),
		category("Retired Topic", false),
	})
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	system := ai.calls[0].System
	if !strings.Contains(system, "Sports") {
		t.Fatal("active category missing from vocabulary prompt")
	}
	if strings.Contains(system, "Retired Topic") {
		t.Fatal("inactive category leaked into vocabulary prompt")
	}
}

func TestExtractEmptyVocabularySkipsCompletion(t *testing.T) {
	ai := &stubAI{}
	ex := NewExtractor(ai, testLogger(t))

	got, err := ex.Extract(context.Background(), "question", nil)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no categories, got %v", got)
	}
	if len(ai.calls) != 0 {
		t.Fatal("no completion call expected without a vocabulary")
	}
}

func TestExtractEmptyQuestionSkipsCompletion(t *testing.T) {
	ai := &stubAI{}
	ex := NewExtractor(ai, testLogger(t))

	got, err := ex.Extract(context.Background(), "   ", []domain.Category{category("Sports", true)})
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(got) != 0 || len(ai.calls) != 0 {
		t.Fatalf("blank question should short-circuit, got %v (%d calls)", got, len(ai.calls))
	}
}
