package store

import (
	"context"
	"testing"
	"time"

	"github.com/zigap/skrinja/internal/db"
)

func TestLoginLinkRedeemOnce(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "ana", "ana@example.com", "hash")
	expires := time.Now().Add(LoginLinkExpiry)

	if err := CreateLoginLink(ctx, database, "tok-1", user.ID, expires); err != nil {
		t.Fatalf("CreateLoginLink: %v", err)
	}

	userID, err := RedeemLoginLink(ctx, database, "tok-1")
	if err != nil {
		t.Fatalf("RedeemLoginLink: %v", err)
	}
	if userID != user.ID {
		t.Errorf("redeemed user id = %d, want %d", userID, user.ID)
	}

	// Second redemption fails.
	userID, err = RedeemLoginLink(ctx, database, "tok-1")
	if err != nil {
		t.Fatalf("RedeemLoginLink twice: %v", err)
	}
	if userID != 0 {
		t.Errorf("expected 0 for reused link, got %d", userID)
	}
}

func TestLoginLinkExpired(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "ana", "ana@example.com", "hash")
	if err := CreateLoginLink(ctx, database, "tok-old", user.ID, time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("CreateLoginLink: %v", err)
	}

	userID, err := RedeemLoginLink(ctx, database, "tok-old")
	if err != nil {
		t.Fatalf("RedeemLoginLink: %v", err)
	}
	if userID != 0 {
		t.Errorf("expected 0 for expired link, got %d", userID)
	}
}

func TestLoginLinkUnknown(t *testing.T) {
	database := db.NewTestDB(t)

	userID, err := RedeemLoginLink(context.Background(), database, "no-such-token")
	if err != nil {
		t.Fatalf("RedeemLoginLink: %v", err)
	}
	if userID != 0 {
		t.Errorf("expected 0 for unknown token, got %d", userID)
	}
}
