package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/models"
	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/store/memory"
)

func TestListMovies(t *testing.T) {
	st := memory.New()
	st.SeedMovie(models.Movie{Slug: "dune", Title: "Dune", Parent: "Empire"})
	st.SeedMovie(models.Movie{Slug: "barbie", Title: "Barbie", Parent: "AMC"})
	r := newTestRouter(st)

	rec := doJSON(t, r, http.MethodGet, "/movies", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var movies []models.Movie
	if err := json.Unmarshal(rec.Body.Bytes(), &movies); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(movies) != 2 {
		t.Errorf("got %d movies, want 2", len(movies))
	}
}

func TestGetMovieBySlugEndpoint(t *testing.T) {
	st := memory.New()
	st.SeedMovie(models.Movie{Slug: "dune", Title: "Dune"})
	r := newTestRouter(st)

	rec := doJSON(t, r, http.MethodGet, "/movies/dune", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodGet, "/movies/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
	if msg := decodeBody(t, rec)["error"]; msg != "Movie not found" {
		t.Errorf("error = %v", msg)
	}
}

func TestListMoviesByParentEndpoint(t *testing.T) {
	st := memory.New()
	st.SeedMovie(models.Movie{Slug: "dune", Title: "Dune", Parent: "AMC"})
	r := newTestRouter(st)

	rec := doJSON(t, r, http.MethodGet, "/movies/parent/amc", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["count"].(float64) != 1 {
		t.Errorf("count = %v", body["count"])
	}

	// Chains with no matches return an empty result, not an error.
	rec = doJSON(t, r, http.MethodGet, "/movies/parent/vox", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["count"].(float64) != 0 {
		t.Errorf("count = %v", body["count"])
	}

	rec = doJSON(t, r, http.MethodGet, "/movies/parent/odeon", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown chain status %d", rec.Code)
	}
}

func TestUpdateMovieInvalidatesListing(t *testing.T) {
	st := memory.New()
	seeded := st.SeedMovie(models.Movie{Slug: "dune", Title: "Dune"})
	r := newTestRouter(st)

	// Prime the listing cache.
	doJSON(t, r, http.MethodGet, "/movies", nil)

	rec := doJSON(t, r, http.MethodPut, "/movies/"+seeded.ID.Hex(), map[string]string{"Title": "Dune (4K)"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodGet, "/movies", nil)
	var movies []models.Movie
	if err := json.Unmarshal(rec.Body.Bytes(), &movies); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if movies[0].Title != "Dune (4K)" {
		t.Errorf("listing still serves the stale title %q", movies[0].Title)
	}

	rec = doJSON(t, r, http.MethodPut, "/movies/"+primitive.NewObjectID().Hex(), map[string]string{"Title": "X"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown movie update status %d", rec.Code)
	}
}

func TestOffersEndpoints(t *testing.T) {
	st := memory.New()
	r := newTestRouter(st)

	rec := doJSON(t, r, http.MethodGet, "/offers", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing collection status %d", rec.Code)
	}

	st.SeedOffer(models.Offer{"_id": "promo-1", "offer title": "2 for 1"})

	rec = doJSON(t, r, http.MethodGet, "/offers", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["count"].(float64) != 1 {
		t.Errorf("count = %v", body["count"])
	}

	rec = doJSON(t, r, http.MethodGet, "/offers/promo-1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodGet, "/offers/ghost", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
}
