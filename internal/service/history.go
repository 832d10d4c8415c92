package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/models"
	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/store"
)

// History manages a user's embedded watch-history list. Mutations are a
// read-modify-write of the user document; concurrent writers are last-write-
// wins, matching the store's single-document atomicity.
type History struct {
	store store.Store
}

func NewHistory(s store.Store) *History {
	return &History{store: s}
}

// AddEntry appends a movie to the user's history. Entries are unique by id;
// total_movies always tracks the history length.
func (h *History) AddEntry(ctx context.Context, userID string, entry models.WatchEntry) ([]models.WatchEntry, int, error) {
	if entry.ID == "" || entry.Title == "" {
		return nil, 0, &ValidationError{Message: "User ID and movie object with at least _id and Title are required"}
	}
	u, err := h.getUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	for _, existing := range u.ViewHistory {
		if existing.ID == entry.ID {
			return nil, 0, &ConflictError{Message: "Movie already in watch history"}
		}
	}
	history := append(u.ViewHistory, entry)
	if err := h.store.SetUserHistory(ctx, userID, history, len(history)); err != nil {
		return nil, 0, h.writeErr(err)
	}
	return history, len(history), nil
}

// ListEntries returns the ordered history unmodified.
func (h *History) ListEntries(ctx context.Context, userID string) ([]models.WatchEntry, error) {
	u, err := h.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.ViewHistory == nil {
		return []models.WatchEntry{}, nil
	}
	return u.ViewHistory, nil
}

// RemoveEntry drops every entry matching entryID and recomputes total_movies.
// Removing an id that is not present is a no-op, not an error.
func (h *History) RemoveEntry(ctx context.Context, userID, entryID string) ([]models.WatchEntry, error) {
	u, err := h.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	remaining := []models.WatchEntry{}
	for _, e := range u.ViewHistory {
		if e.ID != entryID {
			remaining = append(remaining, e)
		}
	}
	if err := h.store.SetUserHistory(ctx, userID, remaining, len(remaining)); err != nil {
		return nil, h.writeErr(err)
	}
	return remaining, nil
}

func (h *History) getUser(ctx context.Context, userID string) (*models.User, error) {
	u, err := h.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &NotFoundError{Message: "User not found"}
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (h *History) writeErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Message: "User not found"}
	}
	return fmt.Errorf("save history: %w", err)
}
