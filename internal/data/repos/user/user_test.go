package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/aulanova/aulanova-backend/internal/data/repos"
	"github.com/aulanova/aulanova-backend/internal/data/repos/testutil"
	"github.com/aulanova/aulanova-backend/internal/pkg/apperr"
)

func TestUserRepoGetByID(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	ctx := context.Background()

	seeded := testutil.SeedUser(t, ctx, tx, "lookup@example.com")

	repo := repos.NewUserRepo(tx, log)
	got, err := repo.GetByID(ctx, tx, seeded.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Email != "lookup@example.com" {
		t.Fatalf("unexpected user %q", got.Email)
	}

	if _, err := repo.GetByID(ctx, tx, uuid.New()); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepoEmailExists(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	ctx := context.Background()

	testutil.SeedUser(t, ctx, tx, "exists@example.com")

	repo := repos.NewUserRepo(tx, log)
	exists, err := repo.EmailExists(ctx, tx, "exists@example.com")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !exists {
		t.Fatal("expected email to exist")
	}

	exists, err = repo.EmailExists(ctx, tx, "missing@example.com")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if exists {
		t.Fatal("expected email to be absent")
	}
}

func TestProfileRepoGetByUserID(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "withprofile@example.com")
	testutil.SeedProfile(t, ctx, tx, u.ID, []string{"Cloud Computing"})

	repo := repos.NewProfileRepo(tx, log)
	p, err := repo.GetByUserID(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !p.HasInterests() {
		t.Fatal("expected seeded interests")
	}

	if _, err := repo.GetByUserID(ctx, tx, uuid.New()); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
