package service

import (
	"context"
	"errors"
	"testing"

	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/models"
	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/store/memory"
)

func newHistoryFixture(t *testing.T) (*History, *memory.Store, string) {
	t.Helper()
	st := memory.New()
	u := &models.User{Name: "Ana", Email: "ana@x.com", Password: "x", ViewHistory: []models.WatchEntry{}}
	if err := st.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return NewHistory(st), st, u.ID.Hex()
}

func entry(id, title string) models.WatchEntry {
	return models.WatchEntry{ID: id, Title: title, Language: "English", Parent: "Empire"}
}

func TestAddEntryMaintainsCount(t *testing.T) {
	h, st, uid := newHistoryFixture(t)
	ctx := context.Background()

	history, total, err := h.AddEntry(ctx, uid, entry("m1", "Dune"))
	if err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	if total != 1 || len(history) != 1 {
		t.Fatalf("total=%d len=%d, want 1/1", total, len(history))
	}

	history, total, err = h.AddEntry(ctx, uid, entry("m2", "Oppenheimer"))
	if err != nil {
		t.Fatalf("AddEntry second: %v", err)
	}
	if total != 2 || history[1].Title != "Oppenheimer" {
		t.Fatalf("append order broken: total=%d history=%v", total, history)
	}

	u, err := st.GetUserByID(ctx, uid)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if u.TotalMovies != len(u.ViewHistory) {
		t.Errorf("total_movies=%d, history length=%d", u.TotalMovies, len(u.ViewHistory))
	}
}

func TestAddEntryDuplicateID(t *testing.T) {
	h, _, uid := newHistoryFixture(t)
	ctx := context.Background()

	if _, _, err := h.AddEntry(ctx, uid, entry("m1", "Dune")); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	_, _, err := h.AddEntry(ctx, uid, entry("m1", "Dune Part Two"))
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("want ConflictError, got %v", err)
	}

	history, err := h.ListEntries(ctx, uid)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("history length changed after rejected duplicate: %d", len(history))
	}
}

func TestAddEntryValidation(t *testing.T) {
	h, _, uid := newHistoryFixture(t)
	ctx := context.Background()

	for _, e := range []models.WatchEntry{{Title: "No ID"}, {ID: "m1"}} {
		_, _, err := h.AddEntry(ctx, uid, e)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("AddEntry(%+v): want ValidationError, got %v", e, err)
		}
	}
}

func TestRemoveEntryRestoresPriorState(t *testing.T) {
	h, st, uid := newHistoryFixture(t)
	ctx := context.Background()

	if _, _, err := h.AddEntry(ctx, uid, entry("m1", "Dune")); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	if _, _, err := h.AddEntry(ctx, uid, entry("m2", "Oppenheimer")); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	history, err := h.RemoveEntry(ctx, uid, "m2")
	if err != nil {
		t.Fatalf("RemoveEntry: %v", err)
	}
	if len(history) != 1 || history[0].ID != "m1" {
		t.Fatalf("unexpected history after remove: %v", history)
	}

	u, err := st.GetUserByID(ctx, uid)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if u.TotalMovies != 1 {
		t.Errorf("total_movies=%d after remove, want 1", u.TotalMovies)
	}
}

func TestRemoveEntryAbsentIDIsNoOp(t *testing.T) {
	h, st, uid := newHistoryFixture(t)
	ctx := context.Background()

	if _, _, err := h.AddEntry(ctx, uid, entry("m1", "Dune")); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	history, err := h.RemoveEntry(ctx, uid, "missing")
	if err != nil {
		t.Fatalf("RemoveEntry of absent id: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("history changed by absent-id remove: %v", history)
	}
	u, _ := st.GetUserByID(ctx, uid)
	if u.TotalMovies != 1 {
		t.Errorf("total_movies=%d, want 1", u.TotalMovies)
	}
}

func TestHistoryUnknownUser(t *testing.T) {
	h, _, _ := newHistoryFixture(t)
	ctx := context.Background()

	var nf *NotFoundError
	if _, _, err := h.AddEntry(ctx, "649c2f9e8f1b2c3d4e5f6a7b", entry("m1", "Dune")); !errors.As(err, &nf) {
		t.Errorf("AddEntry unknown user: want NotFoundError, got %v", err)
	}
	if _, err := h.ListEntries(ctx, "not-an-object-id"); !errors.As(err, &nf) {
		t.Errorf("ListEntries bad id: want NotFoundError, got %v", err)
	}
	if _, err := h.RemoveEntry(ctx, "649c2f9e8f1b2c3d4e5f6a7b", "m1"); !errors.As(err, &nf) {
		t.Errorf("RemoveEntry unknown user: want NotFoundError, got %v", err)
	}
}
