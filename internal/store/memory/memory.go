// Package memory is an in-process store implementation. It backs the service
// and handler tests and is handy for running the API without a database.
package memory

import (
	"context"
	"regexp"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/models"
	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/store"
)

var hexID = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

type Store struct {
	mu     sync.RWMutex
	users  map[string]*models.User // keyed by hex ObjectID
	movies map[string]*models.Movie
	offers []models.Offer // nil means the collection does not exist
}

func New() *Store {
	return &Store{
		users:  make(map[string]*models.User),
		movies: make(map[string]*models.Movie),
	}
}

var _ store.Store = (*Store)(nil)

// SeedMovie inserts a movie, assigning an id if absent.
func (s *Store) SeedMovie(m models.Movie) models.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	s.movies[m.ID.Hex()] = &m
	return m
}

// SeedOffer inserts an offer document, creating the offers collection if this
// is the first one.
func (s *Store) SeedOffer(o models.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.offers == nil {
		s.offers = []models.Offer{}
	}
	s.offers = append(s.offers, o)
}

func (s *Store) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return store.ErrDuplicateEmail
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	cp := *u
	s.users[u.ID.Hex()] = &cp
	return nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) GetUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *Store) SetUserHistory(_ context.Context, id string, history []models.WatchEntry, totalMovies int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return store.ErrNotFound
	}
	if history == nil {
		history = []models.WatchEntry{}
	}
	u.ViewHistory = append([]models.WatchEntry(nil), history...)
	u.TotalMovies = totalMovies
	return nil
}

func (s *Store) ListMovies(_ context.Context) ([]models.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Movie{}
	for _, m := range s.movies {
		out = append(out, *m)
	}
	return out, nil
}

func (s *Store) GetMovieBySlug(_ context.Context, slug string) (*models.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.movies {
		if m.Slug == slug {
			cp := *m
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) ListMoviesByParent(_ context.Context, parent string) ([]models.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Movie{}
	for _, m := range s.movies {
		if m.Parent == parent {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (s *Store) UpdateMovie(_ context.Context, id string, upd models.MovieUpdate) (*models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if upd.Title != nil {
		m.Title = *upd.Title
	}
	if upd.Slug != nil {
		m.Slug = *upd.Slug
	}
	if upd.Identifier != nil {
		m.Identifier = *upd.Identifier
	}
	if upd.Description != nil {
		m.Description = *upd.Description
	}
	if upd.ImageURL != nil {
		m.ImageURL = *upd.ImageURL
	}
	if upd.Classification != nil {
		m.Classification = *upd.Classification
	}
	if upd.Language != nil {
		m.Language = *upd.Language
	}
	if upd.Parent != nil {
		m.Parent = *upd.Parent
	}
	if upd.ShowtimesURL != nil {
		m.ShowtimesURL = *upd.ShowtimesURL
	}
	if upd.Timings != nil {
		m.Timings = *upd.Timings
	}
	cp := *m
	return &cp, nil
}

func (s *Store) ListOffers(_ context.Context) ([]models.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.offers == nil {
		return nil, store.ErrNoCollection
	}
	return append([]models.Offer{}, s.offers...), nil
}

func (s *Store) GetOfferByID(_ context.Context, id string) (models.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.offers == nil {
		return nil, store.ErrNoCollection
	}
	var oid primitive.ObjectID
	matchOID := false
	if hexID.MatchString(id) {
		if parsed, err := primitive.ObjectIDFromHex(id); err == nil {
			oid, matchOID = parsed, true
		}
	}
	for _, o := range s.offers {
		switch v := o["_id"].(type) {
		case string:
			if v == id {
				return o, nil
			}
		case primitive.ObjectID:
			if matchOID && v == oid {
				return o, nil
			}
		}
	}
	return nil, store.ErrNotFound
}
