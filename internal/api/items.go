package api

import (
	"net/http"

	"github.com/zigap/skrinja/internal/registry"
	"github.com/zigap/skrinja/internal/tree"
)

// ItemsHandler handles item CRUD and move endpoints.
type ItemsHandler struct {
	Registry *registry.Registry
}

type createItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	BoxID       string `json:"boxId"`
}

// updateItemRequest is a partial update: absent fields keep their value.
// Note that soldPrice is the total revenue while boughtPrice is per unit.
type updateItemRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	BoughtAmount *float64 `json:"boughtAmount"`
	BoughtPrice  *float64 `json:"boughtPrice"`
	SoldAmount   *float64 `json:"soldAmount"`
	SoldPrice    *float64 `json:"soldPrice"`
}

type moveItemRequest struct {
	BoxID string `json:"boxId"`
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, err := forestOwner(r, h.Registry)
	if err != nil {
		treeError(w, err)
		return
	}

	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var created tree.ItemSnapshot
	err = h.Registry.Update(owner, func(tr *tree.Tracker) error {
		item, err := tr.CreateItem(req.Name, req.Description, req.BoxID)
		if err != nil {
			return err
		}
		created = tree.SnapshotItem(item)
		return nil
	})
	if err != nil {
		treeError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, created)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	owner, err := forestOwner(r, h.Registry)
	if err != nil {
		treeError(w, err)
		return
	}
	id := r.PathValue("id")

	var snap tree.ItemSnapshot
	err = h.Registry.View(owner, func(tr *tree.Tracker) error {
		item, ok := tr.FindItem(id)
		if !ok {
			return &tree.NotFoundError{Kind: "item", ID: id}
		}
		snap = tree.SnapshotItem(item)
		return nil
	})
	if err != nil {
		treeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, snap)
}

// Update handles PUT /api/items/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, err := forestOwner(r, h.Registry)
	if err != nil {
		treeError(w, err)
		return
	}
	id := r.PathValue("id")

	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var snap tree.ItemSnapshot
	err = h.Registry.Update(owner, func(tr *tree.Tracker) error {
		item, err := tr.UpdateItem(id, tree.ItemUpdate{
			Name:         req.Name,
			Description:  req.Description,
			BoughtAmount: req.BoughtAmount,
			BoughtPrice:  req.BoughtPrice,
			SoldAmount:   req.SoldAmount,
			SoldPrice:    req.SoldPrice,
		})
		if err != nil {
			return err
		}
		snap = tree.SnapshotItem(item)
		return nil
	})
	if err != nil {
		treeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, snap)
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, err := forestOwner(r, h.Registry)
	if err != nil {
		treeError(w, err)
		return
	}
	id := r.PathValue("id")

	err = h.Registry.Update(owner, func(tr *tree.Tracker) error {
		if !tr.DeleteItem(id) {
			return &tree.NotFoundError{Kind: "item", ID: id}
		}
		return nil
	})
	if err != nil {
		treeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// Move handles PUT /api/items/{id}/box.
func (h *ItemsHandler) Move(w http.ResponseWriter, r *http.Request) {
	owner, err := forestOwner(r, h.Registry)
	if err != nil {
		treeError(w, err)
		return
	}
	id := r.PathValue("id")

	var req moveItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var snap tree.ItemSnapshot
	err = h.Registry.Update(owner, func(tr *tree.Tracker) error {
		item, err := tr.MoveItem(id, req.BoxID)
		if err != nil {
			return err
		}
		snap = tree.SnapshotItem(item)
		return nil
	})
	if err != nil {
		treeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, snap)
}
