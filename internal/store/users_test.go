package store

import (
	"context"
	"testing"

	"github.com/zigap/skrinja/internal/db"
)

func TestCreateAndGetUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, database, "ana", "ana@example.com", "hash")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Username != "ana" || user.Email != "ana@example.com" {
		t.Errorf("user = %+v", user)
	}

	got, err := GetUserByUsername(ctx, database, "ana")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if got == nil || got.ID != user.ID {
		t.Errorf("GetUserByUsername = %v", got)
	}

	byEmail, err := GetUserByEmail(ctx, database, "ana@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if byEmail == nil || byEmail.ID != user.ID {
		t.Errorf("GetUserByEmail = %v", byEmail)
	}
}

func TestGetUserMissing(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	got, err := GetUser(ctx, database, 999)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing user, got %v", got)
	}
}

func TestDuplicateUsernameRejected(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateUser(ctx, database, "ana", "ana@example.com", "hash"); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := CreateUser(ctx, database, "ana", "other@example.com", "hash"); err == nil {
		t.Error("expected error for duplicate username")
	}
}

func TestSoftDeleteUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "ana", "ana@example.com", "hash")
	if err := DeleteUser(ctx, database, user.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	// Still fetchable by username for auth checks, but marked deleted.
	got, _ := GetUserByUsername(ctx, database, "ana")
	if got == nil || got.DeletedAt == nil {
		t.Errorf("soft-deleted user = %v", got)
	}

	// Email lookup only sees live users.
	byEmail, _ := GetUserByEmail(ctx, database, "ana@example.com")
	if byEmail != nil {
		t.Error("expected nil email lookup for deleted user")
	}

	// Username becomes reusable.
	if _, err := CreateUser(ctx, database, "ana", "ana2@example.com", "hash"); err != nil {
		t.Errorf("reusing deleted username: %v", err)
	}
}

func TestUpdateUserPassword(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "ana", "ana@example.com", "old")
	if err := UpdateUserPassword(ctx, database, user.ID, "new"); err != nil {
		t.Fatalf("UpdateUserPassword: %v", err)
	}

	got, _ := GetUser(ctx, database, user.ID)
	if got.PasswordHash != "new" {
		t.Errorf("password hash = %q, want %q", got.PasswordHash, "new")
	}
}
