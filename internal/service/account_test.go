package service

import (
	"context"
	"errors"
	"testing"

	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/store/memory"
)

func TestRegisterAndLogin(t *testing.T) {
	accounts := NewAccount(memory.New())
	ctx := context.Background()

	u, err := accounts.Register(ctx, "Ana", "ana@x.com", "Passw0rd!")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID.IsZero() {
		t.Error("registered user has no id")
	}
	if u.Password == "Passw0rd!" {
		t.Error("password stored in plaintext")
	}
	if u.TotalMovies != 0 || u.TotalDuration != 0 || u.IsAdmin {
		t.Errorf("unexpected defaults: total_movies=%d total_duration=%d isAdmin=%v",
			u.TotalMovies, u.TotalDuration, u.IsAdmin)
	}

	got, err := accounts.Login(ctx, "ana@x.com", "Passw0rd!")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.Email != "ana@x.com" {
		t.Errorf("Login returned email %q", got.Email)
	}
	if got.ViewHistory == nil || len(got.ViewHistory) != 0 {
		t.Errorf("want empty non-nil history, got %#v", got.ViewHistory)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	accounts := NewAccount(memory.New())
	ctx := context.Background()

	if _, err := accounts.Register(ctx, "Ana", "ana@x.com", "Passw0rd!"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := accounts.Register(ctx, "Impostor", "ana@x.com", "Xk9#mQ2p")
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("want ConflictError, got %v", err)
	}

	// First record must be untouched.
	u, err := accounts.GetByEmail(ctx, "ana@x.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if u.Name != "Ana" {
		t.Errorf("original record changed: name=%q", u.Name)
	}
}

func TestRegisterValidation(t *testing.T) {
	accounts := NewAccount(memory.New())
	ctx := context.Background()

	tests := []struct {
		name, email, pw string
		wantMsg         string
	}{
		{"", "ana@x.com", "Passw0rd!", "All fields are required"},
		{"Ana", "", "Passw0rd!", "All fields are required"},
		{"Ana", "ana@x.com", "", "All fields are required"},
		{"Ana", "not-an-email", "Passw0rd!", "Invalid email format. Please use a valid email address (e.g., example@domain.com)"},
		{"Ana", "ana@nodot", "Passw0rd!", "Invalid email format. Please use a valid email address (e.g., example@domain.com)"},
	}
	for _, tt := range tests {
		_, err := accounts.Register(ctx, tt.name, tt.email, tt.pw)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("Register(%q,%q): want ValidationError, got %v", tt.name, tt.email, err)
		}
		if ve.Message != tt.wantMsg {
			t.Errorf("Register(%q,%q): message %q, want %q", tt.name, tt.email, ve.Message, tt.wantMsg)
		}
	}
}

func TestRegisterSurfacesAllPolicyViolations(t *testing.T) {
	accounts := NewAccount(memory.New())

	// Short, no uppercase, no special character.
	_, err := accounts.Register(context.Background(), "Ana", "ana@x.com", "zq1wmrt")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if ve.Message != "Password validation failed" {
		t.Errorf("message = %q", ve.Message)
	}
	if len(ve.Errors) != 3 {
		t.Errorf("got %d policy violations (%v), want 3", len(ve.Errors), ve.Errors)
	}
}

func TestLoginUniformAuthError(t *testing.T) {
	accounts := NewAccount(memory.New())
	ctx := context.Background()

	if _, err := accounts.Register(ctx, "Ana", "ana@x.com", "Passw0rd!"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, wrongPwErr := accounts.Login(ctx, "ana@x.com", "WrongPw9!")
	_, unknownErr := accounts.Login(ctx, "ghost@x.com", "Passw0rd!")

	var ae1, ae2 *AuthError
	if !errors.As(wrongPwErr, &ae1) || !errors.As(unknownErr, &ae2) {
		t.Fatalf("want AuthError for both, got %v and %v", wrongPwErr, unknownErr)
	}
	if ae1.Message != ae2.Message {
		t.Errorf("messages differ: %q vs %q", ae1.Message, ae2.Message)
	}
}

func TestLoginRequiresFields(t *testing.T) {
	accounts := NewAccount(memory.New())
	_, err := accounts.Login(context.Background(), "", "")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}
