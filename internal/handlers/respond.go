package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/service"
)

func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// userError maps service errors for the /api/users endpoints, which report
// failures under a "message" key.
func userError(w http.ResponseWriter, err error) {
	var (
		ve *service.ValidationError
		ce *service.ConflictError
		ae *service.AuthError
		nf *service.NotFoundError
	)
	switch {
	case errors.As(err, &ve):
		if len(ve.Errors) > 0 {
			respond(w, http.StatusBadRequest, map[string]any{"message": ve.Message, "errors": ve.Errors})
			return
		}
		respond(w, http.StatusBadRequest, map[string]string{"message": ve.Message})
	case errors.As(err, &ce):
		respond(w, http.StatusBadRequest, map[string]string{"message": ce.Message})
	case errors.As(err, &ae):
		respond(w, http.StatusUnauthorized, map[string]string{"message": ae.Message})
	case errors.As(err, &nf):
		respond(w, http.StatusNotFound, map[string]string{"message": nf.Message})
	default:
		slog.Error("request failed", "err", err)
		respond(w, http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
}

// lookupError maps service errors for the movie and offer endpoints, which
// report failures under an "error" key.
func lookupError(w http.ResponseWriter, err error) {
	var nf *service.NotFoundError
	if errors.As(err, &nf) {
		respond(w, http.StatusNotFound, map[string]string{"error": nf.Message})
		return
	}
	slog.Error("request failed", "err", err)
	respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
