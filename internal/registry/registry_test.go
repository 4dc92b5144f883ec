package registry

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/zigap/skrinja/internal/db"
	"github.com/zigap/skrinja/internal/store"
	"github.com/zigap/skrinja/internal/tree"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return New(t.TempDir(), db.NewTestDB(t))
}

func TestUpdatePersists(t *testing.T) {
	r := newTestRegistry(t)

	err := r.Update(1, func(tr *tree.Tracker) error {
		_, err := tr.CreateBox("Garage", "", "")
		return err
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if _, err := os.Stat(r.Path(1)); err != nil {
		t.Errorf("forest file not written: %v", err)
	}

	// A fresh registry over the same data dir sees the saved forest.
	r2 := New(r.dataDir, r.db)
	err = r2.View(1, func(tr *tree.Tracker) error {
		if s := tr.Stats(); s.TotalBoxes != 1 {
			t.Errorf("stats after reload = %+v", s)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("View: %v", err)
	}
}

func TestUpdateFailedOperationNotSaved(t *testing.T) {
	r := newTestRegistry(t)

	err := r.Update(1, func(tr *tree.Tracker) error {
		_, err := tr.CreateBox("", "", "")
		return err
	})
	var ve *tree.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	if _, statErr := os.Stat(r.Path(1)); !os.IsNotExist(statErr) {
		t.Error("forest file written despite failed operation")
	}
}

func TestTenantsAreIsolated(t *testing.T) {
	r := newTestRegistry(t)

	r.Update(1, func(tr *tree.Tracker) error {
		_, err := tr.CreateBox("Mine", "", "")
		return err
	})

	r.View(2, func(tr *tree.Tracker) error {
		if s := tr.Stats(); s.TotalBoxes != 0 {
			t.Errorf("tenant 2 sees tenant 1's boxes: %+v", s)
		}
		return nil
	})
}

func TestAuthorize(t *testing.T) {
	database := db.NewTestDB(t)
	r := New(t.TempDir(), database)
	ctx := context.Background()

	owner, _ := store.CreateUser(ctx, database, "owner", "o@example.com", "hash")
	grantee, _ := store.CreateUser(ctx, database, "grantee", "g@example.com", "hash")

	if err := r.Authorize(ctx, owner.ID, owner.ID); err != nil {
		t.Errorf("self access: %v", err)
	}
	if err := r.Authorize(ctx, grantee.ID, owner.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("unshared access: expected ErrForbidden, got %v", err)
	}

	store.CreateShare(ctx, database, owner.ID, grantee.ID)
	if err := r.Authorize(ctx, grantee.ID, owner.ID); err != nil {
		t.Errorf("shared access: %v", err)
	}
	// Directional: the owner gains nothing on the grantee's account.
	if err := r.Authorize(ctx, owner.ID, grantee.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("reverse access: expected ErrForbidden, got %v", err)
	}
}
