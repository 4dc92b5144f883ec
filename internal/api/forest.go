package api

import (
	"net/http"
	"strconv"

	"github.com/zigap/skrinja/internal/registry"
	"github.com/zigap/skrinja/internal/tree"
)

// forestOwner resolves which user's forest a request operates on. By default
// that is the caller's own; an ?owner=<id> query selects a shared account,
// subject to the registry's authorization check.
func forestOwner(r *http.Request, reg *registry.Registry) (int64, error) {
	claims := GetClaims(r.Context())
	owner := claims.UserID

	if q := r.URL.Query().Get("owner"); q != "" {
		id, err := strconv.ParseInt(q, 10, 64)
		if err != nil {
			return 0, &tree.ValidationError{Field: "owner", Reason: "must be a user id"}
		}
		owner = id
	}

	if err := reg.Authorize(r.Context(), claims.UserID, owner); err != nil {
		return 0, err
	}
	return owner, nil
}

// ForestHandler handles whole-forest endpoints: search, stats, and export.
type ForestHandler struct {
	Registry *registry.Registry
}

type searchBoxResult struct {
	Box  tree.BoxSnapshot `json:"box"`
	Path []tree.PathEntry `json:"path"`
}

type searchItemResult struct {
	Item tree.ItemSnapshot `json:"item"`
	Path []tree.PathEntry  `json:"path"`
}

type searchResponse struct {
	Boxes []searchBoxResult  `json:"boxes"`
	Items []searchItemResult `json:"items"`
}

// Search handles GET /api/search?q=.
func (h *ForestHandler) Search(w http.ResponseWriter, r *http.Request) {
	owner, err := forestOwner(r, h.Registry)
	if err != nil {
		treeError(w, err)
		return
	}

	query := r.URL.Query().Get("q")
	resp := searchResponse{Boxes: []searchBoxResult{}, Items: []searchItemResult{}}

	err = h.Registry.View(owner, func(tr *tree.Tracker) error {
		res := tr.Search(query)
		for _, m := range res.Boxes {
			resp.Boxes = append(resp.Boxes, searchBoxResult{Box: tr.SnapshotBox(m.Box), Path: m.Path})
		}
		for _, m := range res.Items {
			resp.Items = append(resp.Items, searchItemResult{Item: tree.SnapshotItem(m.Item), Path: m.Path})
		}
		return nil
	})
	if err != nil {
		treeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, resp)
}

// Stats handles GET /api/stats.
func (h *ForestHandler) Stats(w http.ResponseWriter, r *http.Request) {
	owner, err := forestOwner(r, h.Registry)
	if err != nil {
		treeError(w, err)
		return
	}

	var stats tree.Stats
	err = h.Registry.View(owner, func(tr *tree.Tracker) error {
		stats = tr.Stats()
		return nil
	})
	if err != nil {
		treeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, stats)
}

// Export handles GET /api/forest, returning the full serialized forest in
// the same document format the persistence layer writes.
func (h *ForestHandler) Export(w http.ResponseWriter, r *http.Request) {
	owner, err := forestOwner(r, h.Registry)
	if err != nil {
		treeError(w, err)
		return
	}

	var snap *tree.Snapshot
	err = h.Registry.View(owner, func(tr *tree.Tracker) error {
		snap = tr.Snapshot()
		return nil
	})
	if err != nil {
		treeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, snap)
}
