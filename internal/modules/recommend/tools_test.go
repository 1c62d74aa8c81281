package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/aulanova/aulanova-backend/internal/data/repos"
	"github.com/aulanova/aulanova-backend/internal/data/repos/testutil"
	"github.com/aulanova/aulanova-backend/internal/domain"
)

func decodeItems(t *testing.T, payload string) []domain.ContentItem {
	t.Helper()
	var items []domain.ContentItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		t.Fatalf("payload is not an item array: %v\n%s", err, payload)
	}
	return items
}

func TestSearchToolUnionsCommaSeparatedTerms(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	ctx := context.Background()

	testutil.SeedContentItem(t, ctx, tx, "Advanced Cloud Computing Course", []string{"Cloud Computing"})
	testutil.SeedContentItem(t, ctx, tx, "Data Science Bootcamp", []string{"Data Science"})

	tool := NewSearchTool(NewRetriever(repos.NewContentRepo(tx, log), log), log)

	items := decodeItems(t, tool.Invoke(ctx, "Cloud Computing, Data Science"))
	if len(items) != 2 {
		t.Fatalf("each term must be searched separately, got %d items", len(items))
	}
	titles := map[string]bool{}
	for _, item := range items {
		titles[item.Title] = true
	}
	if !titles["Advanced Cloud Computing Course"] || !titles["Data Science Bootcamp"] {
		t.Fatalf("expected both interests to retrieve, got %v", titles)
	}
}

func TestSearchToolDeduplicatesAcrossTerms(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	ctx := context.Background()

	testutil.SeedContentItem(t, ctx, tx, "Cloud Data Engineering Course", []string{"Cloud Computing", "Data Science"})

	tool := NewSearchTool(NewRetriever(repos.NewContentRepo(tx, log), log), log)

	items := decodeItems(t, tool.Invoke(ctx, "cloud, data"))
	if len(items) != 1 {
		t.Fatalf("item matching several terms must appear once, got %d", len(items))
	}
}

func TestSearchToolRespectsLimitAcrossTerms(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	ctx := context.Background()

	for i := 0; i < RetrievalLimit; i++ {
		testutil.SeedContentItem(t, ctx, tx, fmt.Sprintf("Cloud Course %d", i), []string{"Cloud Computing"})
	}
	for i := 0; i < RetrievalLimit; i++ {
		testutil.SeedContentItem(t, ctx, tx, fmt.Sprintf("Data Course %d", i), []string{"Data Science"})
	}

	tool := NewSearchTool(NewRetriever(repos.NewContentRepo(tx, log), log), log)

	items := decodeItems(t, tool.Invoke(ctx, "cloud, data"))
	if len(items) != RetrievalLimit {
		t.Fatalf("union must stay capped at %d rows, got %d", RetrievalLimit, len(items))
	}
}

func TestSearchToolEmptyInput(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	ctx := context.Background()

	testutil.SeedContentItem(t, ctx, tx, "Anything", []string{"Sports"})

	tool := NewSearchTool(NewRetriever(repos.NewContentRepo(tx, log), log), log)

	items := decodeItems(t, tool.Invoke(ctx, "  ,  "))
	if len(items) != 0 {
		t.Fatalf("blank input must retrieve nothing, got %d", len(items))
	}
}
