package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/zigap/skrinja/internal/registry"
	"github.com/zigap/skrinja/internal/tree"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("encoding response failed", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// treeError maps engine and registry errors to HTTP status codes.
func treeError(w http.ResponseWriter, err error) {
	var ve *tree.ValidationError
	var nf *tree.NotFoundError
	var ioe *tree.InvalidOperationError

	switch {
	case errors.As(err, &ve):
		jsonError(w, http.StatusBadRequest, ve.Error())
	case errors.As(err, &nf):
		jsonError(w, http.StatusNotFound, nf.Error())
	case errors.As(err, &ioe):
		jsonError(w, http.StatusConflict, ioe.Error())
	case errors.Is(err, registry.ErrForbidden):
		jsonError(w, http.StatusForbidden, err.Error())
	default:
		slog.Error("internal error", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}
