package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/models"
	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/store"
)

// Lookup serves read-only movie and offer retrieval plus the movie update.
type Lookup struct {
	store store.Store
}

func NewLookup(s store.Store) *Lookup {
	return &Lookup{store: s}
}

func (l *Lookup) ListMovies(ctx context.Context) ([]models.Movie, error) {
	movies, err := l.store.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

func (l *Lookup) GetMovieBySlug(ctx context.Context, slug string) (*models.Movie, error) {
	m, err := l.store.GetMovieBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &NotFoundError{Message: "Movie not found"}
		}
		return nil, fmt.Errorf("get movie: %w", err)
	}
	return m, nil
}

// ListMoviesByParent filters on the cinema-chain name, case-sensitively.
// No matches is an empty list, not an error.
func (l *Lookup) ListMoviesByParent(ctx context.Context, parent string) ([]models.Movie, error) {
	movies, err := l.store.ListMoviesByParent(ctx, parent)
	if err != nil {
		return nil, fmt.Errorf("list movies by parent: %w", err)
	}
	return movies, nil
}

func (l *Lookup) UpdateMovie(ctx context.Context, id string, upd models.MovieUpdate) (*models.Movie, error) {
	m, err := l.store.UpdateMovie(ctx, id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &NotFoundError{Message: "Movie not found"}
		}
		return nil, fmt.Errorf("update movie: %w", err)
	}
	return m, nil
}

func (l *Lookup) ListOffers(ctx context.Context) ([]models.Offer, error) {
	offers, err := l.store.ListOffers(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNoCollection) {
			return nil, &NotFoundError{Message: "Offers collection not found in the database"}
		}
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return offers, nil
}

// GetOfferByID accepts both ObjectID-shaped and arbitrary string ids; the
// store tries the ObjectID form first and falls back to the literal string.
func (l *Lookup) GetOfferByID(ctx context.Context, id string) (models.Offer, error) {
	offer, err := l.store.GetOfferByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoCollection):
			return nil, &NotFoundError{Message: "Offers collection not found in the database"}
		case errors.Is(err, store.ErrNotFound):
			return nil, &NotFoundError{Message: fmt.Sprintf("Offer with ID %s not found", id)}
		}
		return nil, fmt.Errorf("get offer: %w", err)
	}
	return offer, nil
}
