package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dbelakovs/authcore/internal/common"
	"github.com/dbelakovs/authcore/internal/cryptox"
	"github.com/dbelakovs/authcore/internal/repositories/repomanager"
)

func TestSessionIssuer_StoresOnlyTheHashedSecret(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	cfg := testConfig()
	m := repomanager.NewInMemoryRepositoryManager()
	issuer := NewSessionIssuer(db, m, cfg)
	ctx := context.Background()

	secret, err := issuer.Issue(ctx, db, "u-1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// The raw secret must not work as a lookup key.
	if _, err := m.Sessions(nil).Find(ctx, secret); !errors.Is(err, common.ErrorNotFound) {
		t.Fatal("raw session secret found in the store")
	}

	session, err := m.Sessions(nil).Find(ctx, cryptox.Hash(secret, cfg.HashRounds))
	if err != nil {
		t.Fatalf("hashed lookup error: %v", err)
	}
	if session.UserID != "u-1" {
		t.Fatalf("session bound to %q, want u-1", session.UserID)
	}
}

func TestSessionIssuer_AuthenticateMiss(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	issuer := NewSessionIssuer(db, repomanager.NewInMemoryRepositoryManager(), testConfig())

	_, err := issuer.Authenticate(context.Background(), "unknown")
	if !errors.Is(err, common.ErrInvalidSession) {
		t.Fatalf("want ErrInvalidSession, got %v", err)
	}
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testConfig())
	ctx := context.Background()

	tok, err := issuer.Issue(ctx, nil, "u-7")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	subject, err := issuer.Authenticate(ctx, tok)
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if subject != "u-7" {
		t.Fatalf("subject = %q, want u-7", subject)
	}
}

func TestTokenIssuer_WrongKeyRejected(t *testing.T) {
	issuer := NewTokenIssuer(testConfig())

	other := testConfig()
	other.SecretKey = "different"
	verifier := NewTokenIssuer(other)

	tok, err := issuer.Issue(context.Background(), nil, "u-7")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := verifier.Authenticate(context.Background(), tok); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}
