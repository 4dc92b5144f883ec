package api

import (
	"net/http"

	"github.com/zigap/skrinja/internal/registry"
	"github.com/zigap/skrinja/internal/tree"
)

// BoxesHandler handles box CRUD and move endpoints.
type BoxesHandler struct {
	Registry *registry.Registry
}

type createBoxRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    string `json:"parentId"`
}

type updateBoxRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type moveBoxRequest struct {
	ParentID string `json:"parentId"` // empty moves the box to the forest roots
}

// Create handles POST /api/boxes.
func (h *BoxesHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, err := forestOwner(r, h.Registry)
	if err != nil {
		treeError(w, err)
		return
	}

	var req createBoxRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var created tree.BoxSnapshot
	err = h.Registry.Update(owner, func(tr *tree.Tracker) error {
		box, err := tr.CreateBox(req.Name, req.Description, req.ParentID)
		if err != nil {
			return err
		}
		created = tr.SnapshotBox(box)
		return nil
	})
	if err != nil {
		treeError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, created)
}

// Get handles GET /api/boxes/{id}.
func (h *BoxesHandler) Get(w http.ResponseWriter, r *http.Request) {
	owner, err := forestOwner(r, h.Registry)
	if err != nil {
		treeError(w, err)
		return
	}
	id := r.PathValue("id")

	var snap tree.BoxSnapshot
	err = h.Registry.View(owner, func(tr *tree.Tracker) error {
		box, ok := tr.FindBox(id)
		if !ok {
			return &tree.NotFoundError{Kind: "box", ID: id}
		}
		snap = tr.SnapshotBox(box)
		return nil
	})
	if err != nil {
		treeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, snap)
}

// Update handles PUT /api/boxes/{id}. Absent fields are left unchanged.
func (h *BoxesHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, err := forestOwner(r, h.Registry)
	if err != nil {
		treeError(w, err)
		return
	}
	id := r.PathValue("id")

	var req updateBoxRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var snap tree.BoxSnapshot
	err = h.Registry.Update(owner, func(tr *tree.Tracker) error {
		box, err := tr.UpdateBox(id, tree.BoxUpdate{Name: req.Name, Description: req.Description})
		if err != nil {
			return err
		}
		snap = tr.SnapshotBox(box)
		return nil
	})
	if err != nil {
		treeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, snap)
}

// Delete handles DELETE /api/boxes/{id}. Everything inside the box goes
// with it.
func (h *BoxesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, err := forestOwner(r, h.Registry)
	if err != nil {
		treeError(w, err)
		return
	}
	id := r.PathValue("id")

	err = h.Registry.Update(owner, func(tr *tree.Tracker) error {
		if !tr.DeleteBox(id) {
			return &tree.NotFoundError{Kind: "box", ID: id}
		}
		return nil
	})
	if err != nil {
		treeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "box deleted"})
}

// Move handles PUT /api/boxes/{id}/parent.
func (h *BoxesHandler) Move(w http.ResponseWriter, r *http.Request) {
	owner, err := forestOwner(r, h.Registry)
	if err != nil {
		treeError(w, err)
		return
	}
	id := r.PathValue("id")

	var req moveBoxRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var snap tree.BoxSnapshot
	err = h.Registry.Update(owner, func(tr *tree.Tracker) error {
		box, err := tr.MoveBox(id, req.ParentID)
		if err != nil {
			return err
		}
		snap = tr.SnapshotBox(box)
		return nil
	})
	if err != nil {
		treeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, snap)
}
