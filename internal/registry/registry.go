// Package registry maps user accounts to their forest Trackers. Trackers
// are loaded lazily from the data directory and each one is guarded by its
// own lock, so one request at a time mutates a given forest while different
// tenants proceed in parallel. The tree engine itself knows nothing about
// tenancy.
package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/zigap/skrinja/internal/forest"
	"github.com/zigap/skrinja/internal/store"
	"github.com/zigap/skrinja/internal/tree"
)

// ErrForbidden means the acting user has no access to the requested forest.
var ErrForbidden = errors.New("no access to this account")

type tenant struct {
	mu      sync.Mutex
	tracker *tree.Tracker
}

// Registry resolves user ids to loaded Trackers.
type Registry struct {
	dataDir string
	db      *sql.DB

	mu      sync.Mutex
	tenants map[int64]*tenant
}

// New creates a registry that stores forest files under dataDir and checks
// sharing permissions against db.
func New(dataDir string, db *sql.DB) *Registry {
	return &Registry{
		dataDir: dataDir,
		db:      db,
		tenants: make(map[int64]*tenant),
	}
}

// Path returns the forest file for a user.
func (r *Registry) Path(userID int64) string {
	return filepath.Join(r.dataDir, strconv.FormatInt(userID, 10)+".json")
}

// Authorize checks that acting may operate on owner's forest: either they
// are the same user or owner has shared the account with acting.
func (r *Registry) Authorize(ctx context.Context, acting, owner int64) error {
	if acting == owner {
		return nil
	}
	shared, err := store.HasShare(ctx, r.db, owner, acting)
	if err != nil {
		return fmt.Errorf("checking share: %w", err)
	}
	if !shared {
		return ErrForbidden
	}
	return nil
}

// Update runs fn against the owner's Tracker under the tenant lock and, if
// fn succeeds, persists the forest. A failing fn skips the save; the engine
// never partially applies an operation, so the in-memory forest stays valid.
func (r *Registry) Update(ownerID int64, fn func(*tree.Tracker) error) error {
	t, err := r.acquire(ownerID)
	if err != nil {
		return err
	}
	defer t.mu.Unlock()

	if err := fn(t.tracker); err != nil {
		return err
	}
	if err := forest.Save(r.Path(ownerID), t.tracker); err != nil {
		return fmt.Errorf("saving forest: %w", err)
	}
	return nil
}

// View runs fn against the owner's Tracker under the tenant lock without
// persisting afterwards. For read-only operations.
func (r *Registry) View(ownerID int64, fn func(*tree.Tracker) error) error {
	t, err := r.acquire(ownerID)
	if err != nil {
		return err
	}
	defer t.mu.Unlock()

	return fn(t.tracker)
}

// acquire returns the owner's tenant with its lock held, loading the forest
// from disk on first use.
func (r *Registry) acquire(ownerID int64) (*tenant, error) {
	r.mu.Lock()
	t, ok := r.tenants[ownerID]
	if !ok {
		t = &tenant{}
		r.tenants[ownerID] = t
	}
	r.mu.Unlock()

	t.mu.Lock()
	if t.tracker == nil {
		tracker, err := forest.Load(r.Path(ownerID))
		if err != nil {
			t.mu.Unlock()
			return nil, fmt.Errorf("loading forest: %w", err)
		}
		t.tracker = tracker
	}
	return t, nil
}
