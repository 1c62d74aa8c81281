package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aulanova/aulanova-backend/internal/data/repos"
	"github.com/aulanova/aulanova-backend/internal/data/repos/testutil"
	"github.com/aulanova/aulanova-backend/internal/pkg/apperr"
)

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	return NewAuthService(tx, log, repos.NewUserRepo(tx, log), "test-secret", 30*time.Minute)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.RegisterUser(ctx, RegisterInput{
		Email:    "Ada@Example.com",
		Password: "correct horse",
		Name:     "Ada",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("email should be normalized, got %q", user.Email)
	}
	if user.Password == "correct horse" {
		t.Fatal("password must be stored hashed")
	}

	token, loggedIn, err := svc.LoginUser(ctx, "ada@example.com", "correct horse")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected an access token")
	}
	if loggedIn.ID != user.ID {
		t.Fatal("login returned a different user")
	}

	parsedID, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if parsedID != user.ID {
		t.Fatalf("token subject mismatch: %s != %s", parsedID, user.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.RegisterUser(ctx, RegisterInput{Email: "dup@example.com", Password: "pw"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.RegisterUser(ctx, RegisterInput{Email: "dup@example.com", Password: "pw"}); !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for duplicate email, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	for _, tc := range []struct {
		name  string
		input RegisterInput
	}{
		{"missing email", RegisterInput{Password: "pw"}},
		{"missing password", RegisterInput{Email: "x@example.com"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.RegisterUser(ctx, tc.input); !errors.Is(err, apperr.ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.RegisterUser(ctx, RegisterInput{Email: "bob@example.com", Password: "right"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.LoginUser(ctx, "bob@example.com", "wrong"); !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Fatalf("wrong password should be rejected, got %v", err)
	}
	if _, _, err := svc.LoginUser(ctx, "nobody@example.com", "right"); !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Fatalf("unknown email should be rejected, got %v", err)
	}
}

func TestParseTokenRejectsTampering(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.RegisterUser(ctx, RegisterInput{Email: "eve@example.com", Password: "pw"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	token, _, err := svc.LoginUser(ctx, "eve@example.com", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := svc.ParseToken(token + "x"); err == nil {
		t.Fatal("tampered token must be rejected")
	}
	if _, err := svc.ParseToken("not-a-token"); err == nil {
		t.Fatal("garbage token must be rejected")
	}
}
