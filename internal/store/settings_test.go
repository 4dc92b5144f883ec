package store

import (
	"context"
	"testing"

	"github.com/zigap/skrinja/internal/db"
)

func TestGetJWTSecretStable(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	first, err := GetJWTSecret(ctx, database)
	if err != nil {
		t.Fatalf("GetJWTSecret: %v", err)
	}
	if len(first) != 64 {
		t.Errorf("secret length = %d, want 64 hex chars", len(first))
	}

	// Repeated calls return the stored secret, not a fresh one.
	second, err := GetJWTSecret(ctx, database)
	if err != nil {
		t.Fatalf("GetJWTSecret second call: %v", err)
	}
	if first != second {
		t.Error("jwt secret changed between calls")
	}
}
