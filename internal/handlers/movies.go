package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/cache"
	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/models"
	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/service"
)

// Path segment -> the chain name stored on movie documents. Matching against
// the store is case-sensitive.
var parentChains = map[string]string{
	"empire": "Empire",
	"amc":    "AMC",
	"vox":    "Vox",
	"muvi":   "Muvi",
}

type MovieHandler struct {
	Movies    *service.Lookup
	ListCache *cache.TTLCache[string, []byte]
}

func NewMovieHandler(l *service.Lookup) *MovieHandler {
	return &MovieHandler{Movies: l, ListCache: cache.NewTTL[string, []byte](60 * time.Second)}
}

// Routes is mounted at the router root in main.
func (h *MovieHandler) Routes(r chi.Router) {
	r.Get("/movies", h.list)
	r.Get("/movies/parent/{parent}", h.listByParent)
	// The same path segment is a slug on reads and a document id on writes.
	r.Get("/movies/{key}", h.bySlug)
	r.Put("/movies/{key}", h.update)
	r.Get("/offers", h.offers)
	r.Get("/offers/{id}", h.offerByID)
}

func (h *MovieHandler) Mount() func(r chi.Router) {
	return func(r chi.Router) { h.Routes(r) }
}

// GET /movies
func (h *MovieHandler) list(w http.ResponseWriter, r *http.Request) {
	const key = "movies"
	if b, ok := h.ListCache.Get(key); ok {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(b)
		return
	}
	movies, err := h.Movies.ListMovies(r.Context())
	if err != nil {
		lookupError(w, err)
		return
	}
	b, _ := json.Marshal(movies)
	h.ListCache.Set(key, b)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}

// GET /movies/{slug}
func (h *MovieHandler) bySlug(w http.ResponseWriter, r *http.Request) {
	m, err := h.Movies.GetMovieBySlug(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		lookupError(w, err)
		return
	}
	respond(w, http.StatusOK, m)
}

// GET /movies/parent/{empire|amc|vox|muvi}
func (h *MovieHandler) listByParent(w http.ResponseWriter, r *http.Request) {
	chain, ok := parentChains[chi.URLParam(r, "parent")]
	if !ok {
		respond(w, http.StatusNotFound, map[string]string{"error": "Unknown cinema chain"})
		return
	}
	key := "parent:" + chain
	if b, ok := h.ListCache.Get(key); ok {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(b)
		return
	}
	movies, err := h.Movies.ListMoviesByParent(r.Context(), chain)
	if err != nil {
		lookupError(w, err)
		return
	}
	b, _ := json.Marshal(map[string]any{"count": len(movies), "movies": movies})
	h.ListCache.Set(key, b)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}

// PUT /movies/{id}
func (h *MovieHandler) update(w http.ResponseWriter, r *http.Request) {
	var upd models.MovieUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}
	m, err := h.Movies.UpdateMovie(r.Context(), chi.URLParam(r, "key"), upd)
	if err != nil {
		var nf *service.NotFoundError
		if errors.As(err, &nf) {
			respond(w, http.StatusNotFound, map[string]string{"message": nf.Message})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"message": err.Error()})
		return
	}
	// Listings are stale after a write.
	h.ListCache.Clear()
	respond(w, http.StatusOK, m)
}

// GET /offers
func (h *MovieHandler) offers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.Movies.ListOffers(r.Context())
	if err != nil {
		lookupError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{"count": len(offers), "offers": offers})
}

// GET /offers/{id}
func (h *MovieHandler) offerByID(w http.ResponseWriter, r *http.Request) {
	offer, err := h.Movies.GetOfferByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		lookupError(w, err)
		return
	}
	respond(w, http.StatusOK, offer)
}
