package store

import (
	"context"
	"testing"

	"github.com/zigap/skrinja/internal/db"
)

func TestShareLifecycle(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	owner, _ := CreateUser(ctx, database, "owner", "owner@example.com", "hash")
	grantee, _ := CreateUser(ctx, database, "grantee", "grantee@example.com", "hash")

	ok, err := HasShare(ctx, database, owner.ID, grantee.ID)
	if err != nil {
		t.Fatalf("HasShare: %v", err)
	}
	if ok {
		t.Error("expected no share before granting")
	}

	if err := CreateShare(ctx, database, owner.ID, grantee.ID); err != nil {
		t.Fatalf("CreateShare: %v", err)
	}
	// Granting again is a no-op, not an error.
	if err := CreateShare(ctx, database, owner.ID, grantee.ID); err != nil {
		t.Fatalf("CreateShare twice: %v", err)
	}

	ok, _ = HasShare(ctx, database, owner.ID, grantee.ID)
	if !ok {
		t.Error("expected share after granting")
	}
	// Shares are directional.
	ok, _ = HasShare(ctx, database, grantee.ID, owner.ID)
	if ok {
		t.Error("share should not apply in reverse")
	}

	granted, err := ListSharesByOwner(ctx, database, owner.ID)
	if err != nil {
		t.Fatalf("ListSharesByOwner: %v", err)
	}
	if len(granted) != 1 || granted[0].GranteeUsername != "grantee" {
		t.Errorf("granted shares = %+v", granted)
	}

	received, err := ListSharesForGrantee(ctx, database, grantee.ID)
	if err != nil {
		t.Fatalf("ListSharesForGrantee: %v", err)
	}
	if len(received) != 1 || received[0].OwnerUsername != "owner" {
		t.Errorf("received shares = %+v", received)
	}

	removed, err := DeleteShare(ctx, database, owner.ID, grantee.ID)
	if err != nil {
		t.Fatalf("DeleteShare: %v", err)
	}
	if !removed {
		t.Error("expected DeleteShare to report removal")
	}
	removed, _ = DeleteShare(ctx, database, owner.ID, grantee.ID)
	if removed {
		t.Error("second DeleteShare should report false")
	}
}

func TestShareWithSelfRejected(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	owner, _ := CreateUser(ctx, database, "owner", "owner@example.com", "hash")
	if err := CreateShare(ctx, database, owner.ID, owner.ID); err == nil {
		t.Error("expected error for self-share")
	}
}
