package catalog_test

import (
	"context"
	"testing"

	"github.com/aulanova/aulanova-backend/internal/data/repos"
	"github.com/aulanova/aulanova-backend/internal/data/repos/testutil"
)

func TestSearchByCategoriesDelimitedMatch(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	ctx := context.Background()

	testutil.SeedContentItem(t, ctx, tx, "Popular Race", []string{"Sports"})
	testutil.SeedContentItem(t, ctx, tx, "eSports Broadcasting Workshop", []string{"eSports"})

	repo := repos.NewContentRepo(tx, log)

	items, err := repo.SearchByCategories(ctx, tx, []string{"Sports"}, 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected exactly the Sports item, got %d", len(items))
	}
	if items[0].Title != "Popular Race" {
		t.Fatalf("category name must not match supersets, got %q", items[0].Title)
	}

	items, err = repo.SearchByCategories(ctx, tx, []string{"eSports"}, 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(items) != 1 || items[0].Title != "eSports Broadcasting Workshop" {
		t.Fatalf("expected exactly the eSports item, got %d", len(items))
	}
}

func TestSearchByCategoriesEmptyNames(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	ctx := context.Background()

	testutil.SeedContentItem(t, ctx, tx, "Anything", []string{"Sports"})

	repo := repos.NewContentRepo(tx, log)
	items, err := repo.SearchByCategories(ctx, tx, nil, 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("no names should retrieve nothing, got %d", len(items))
	}
}

func TestSearchFuzzyCaseInsensitive(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	ctx := context.Background()

	testutil.SeedContentItem(t, ctx, tx, "Advanced Cloud Computing Course", []string{"Cloud Computing"})

	repo := repos.NewContentRepo(tx, log)
	items, err := repo.SearchFuzzy(ctx, tx, "CLOUD", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("case-insensitive match expected, got %d items", len(items))
	}
}

func TestSearchFuzzyRespectsLimit(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	ctx := context.Background()

	for _, title := range []string{"Cloud A", "Cloud B", "Cloud C"} {
		testutil.SeedContentItem(t, ctx, tx, title, []string{"Cloud Computing"})
	}

	repo := repos.NewContentRepo(tx, log)
	items, err := repo.SearchFuzzy(ctx, tx, "cloud", 2)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected the 2-row cap, got %d", len(items))
	}
}
