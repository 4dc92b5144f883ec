package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/zigap/skrinja/internal/model"
	"github.com/zigap/skrinja/internal/store"
)

// SharesHandler handles account-sharing endpoints.
type SharesHandler struct {
	DB *sql.DB
}

type createShareRequest struct {
	Username string `json:"username"`
}

type sharesResponse struct {
	Granted  []model.Share `json:"granted"`
	Received []model.Share `json:"received"`
}

// List handles GET /api/shares: shares the user granted plus shares granted
// to them.
func (h *SharesHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	granted, err := store.ListSharesByOwner(r.Context(), h.DB, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list shares")
		return
	}
	received, err := store.ListSharesForGrantee(r.Context(), h.DB, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list shares")
		return
	}

	if granted == nil {
		granted = []model.Share{}
	}
	if received == nil {
		received = []model.Share{}
	}
	jsonResponse(w, http.StatusOK, sharesResponse{Granted: granted, Received: received})
}

// Create handles POST /api/shares: grant the named user access to the
// caller's forest.
func (h *SharesHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req createShareRequest
	if err := decodeJSON(r, &req); err != nil || req.Username == "" {
		jsonError(w, http.StatusBadRequest, "username required")
		return
	}

	grantee, err := store.GetUserByUsername(r.Context(), h.DB, req.Username)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if grantee == nil || grantee.DeletedAt != nil {
		jsonError(w, http.StatusNotFound, "user not found")
		return
	}
	if grantee.ID == claims.UserID {
		jsonError(w, http.StatusBadRequest, "cannot share an account with yourself")
		return
	}

	if err := store.CreateShare(r.Context(), h.DB, claims.UserID, grantee.ID); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create share")
		return
	}

	slog.Info("share granted", "owner", claims.Username, "grantee", grantee.Username)
	jsonResponse(w, http.StatusCreated, map[string]string{"message": "share granted"})
}

// Delete handles DELETE /api/shares/{username}: revoke a previously granted
// share.
func (h *SharesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	grantee, err := store.GetUserByUsername(r.Context(), h.DB, r.PathValue("username"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if grantee == nil {
		jsonError(w, http.StatusNotFound, "user not found")
		return
	}

	removed, err := store.DeleteShare(r.Context(), h.DB, claims.UserID, grantee.ID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to revoke share")
		return
	}
	if !removed {
		jsonError(w, http.StatusNotFound, "no such share")
		return
	}

	slog.Info("share revoked", "owner", claims.Username, "grantee", grantee.Username)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "share revoked"})
}
