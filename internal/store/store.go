// Package store defines the document-store boundary. Implementations live in
// the mongo and memory subpackages; services depend only on this interface.
package store

import (
	"context"
	"errors"

	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when an insert hits the unique email index.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrNoCollection is returned when the offers collection does not exist.
	ErrNoCollection = errors.New("collection not found")
)

// Store is the persistence surface the services use. Every operation is a
// single-document read or write; there are no cross-document transactions.
type Store interface {
	// Users
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	// SetUserHistory replaces the user's embedded watch history and the
	// derived total_movies counter in one write (last write wins).
	SetUserHistory(ctx context.Context, id string, history []models.WatchEntry, totalMovies int) error

	// Movies
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovieBySlug(ctx context.Context, slug string) (*models.Movie, error)
	ListMoviesByParent(ctx context.Context, parent string) ([]models.Movie, error)
	UpdateMovie(ctx context.Context, id string, upd models.MovieUpdate) (*models.Movie, error)

	// Offers
	ListOffers(ctx context.Context) ([]models.Offer, error)
	// GetOfferByID matches an ObjectID _id when the id is 24 hex characters,
	// falling back to a literal string _id either way.
	GetOfferByID(ctx context.Context, id string) (models.Offer, error)
}
