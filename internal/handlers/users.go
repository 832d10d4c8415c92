package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/models"
	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/service"
	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/validate"
)

type UserHandler struct {
	Accounts *service.Account
	History  *service.History
}

func NewUserHandler(a *service.Account, h *service.History) *UserHandler {
	return &UserHandler{Accounts: a, History: h}
}

// Routes is mounted under /api/users in main.
func (h *UserHandler) Routes(r chi.Router) {
	r.Post("/", h.register)
	r.Post("/login", h.login)
	r.Post("/watch-history", h.addToHistory)
	r.Get("/{userId}/watch-history", h.listHistory)
	r.Delete("/{userId}/watch-history/{movieId}", h.removeFromHistory)
	r.Get("/test/{email}", h.byEmail)
}

func (h *UserHandler) Mount() func(r chi.Router) {
	return func(r chi.Router) { h.Routes(r) }
}

// userView is the client-facing user shape; the password never appears.
// History is a pointer so the register response can omit it while the login
// response carries an empty array rather than null.
type userView struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	TotalMovies   int                  `json:"total_movies"`
	TotalDuration int                  `json:"total_duration"`
	IsAdmin       bool                 `json:"isAdmin"`
	ViewHistory   *[]models.WatchEntry `json:"userViewHistory,omitempty"`
}

func viewOf(u *models.User, withHistory bool) userView {
	v := userView{
		ID:            u.ID.Hex(),
		Name:          u.Name,
		Email:         u.Email,
		TotalMovies:   u.TotalMovies,
		TotalDuration: u.TotalDuration,
		IsAdmin:       u.IsAdmin,
	}
	if withHistory {
		history := u.ViewHistory
		if history == nil {
			history = []models.WatchEntry{}
		}
		v.ViewHistory = &history
	}
	return v
}

// POST /api/users
func (h *UserHandler) register(w http.ResponseWriter, r *http.Request) {
	type bodyT struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	var b bodyT
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}
	if errs := validate.Map(b); errs != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "All fields are required"})
		return
	}
	u, err := h.Accounts.Register(r.Context(), b.Name, b.Email, b.Password)
	if err != nil {
		userError(w, err)
		return
	}
	respond(w, http.StatusCreated, map[string]any{"user": viewOf(u, false)})
}

// POST /api/users/login
func (h *UserHandler) login(w http.ResponseWriter, r *http.Request) {
	type bodyT struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	var b bodyT
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}
	if errs := validate.Map(b); errs != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "Email and password are required"})
		return
	}
	u, err := h.Accounts.Login(r.Context(), b.Email, b.Password)
	if err != nil {
		userError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{"user": viewOf(u, true)})
}

// POST /api/users/watch-history
func (h *UserHandler) addToHistory(w http.ResponseWriter, r *http.Request) {
	type movieT struct {
		ID       string `json:"_id"`
		Title    string `json:"Title"`
		TitleAlt string `json:"title"`
		Language string `json:"Language"`
		Parent   string `json:"Parent"`
		ImageURL string `json:"image_url"`
		Date     string `json:"date"`
	}
	type bodyT struct {
		UserID string  `json:"userId" validate:"required"`
		Movie  *movieT `json:"movie" validate:"required"`
	}
	var b bodyT
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}
	if errs := validate.Map(b); errs != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "User ID and movie object with at least _id and Title are required"})
		return
	}
	title := b.Movie.Title
	if title == "" {
		title = b.Movie.TitleAlt
	}
	entry := models.WatchEntry{
		ID:       b.Movie.ID,
		Title:    title,
		Language: b.Movie.Language,
		Parent:   b.Movie.Parent,
		ImageURL: b.Movie.ImageURL,
		Date:     b.Movie.Date,
	}
	history, total, err := h.History.AddEntry(r.Context(), b.UserID, entry)
	if err != nil {
		userError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{
		"message":      "Movie added to watch history",
		"watchHistory": history,
		"total_movies": total,
	})
}

// GET /api/users/{userId}/watch-history
func (h *UserHandler) listHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.History.ListEntries(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		userError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{"watchHistory": history})
}

// DELETE /api/users/{userId}/watch-history/{movieId}
func (h *UserHandler) removeFromHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.History.RemoveEntry(r.Context(), chi.URLParam(r, "userId"), chi.URLParam(r, "movieId"))
	if err != nil {
		userError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{
		"message":      "Movie removed from watch history",
		"watchHistory": history,
	})
}

// GET /api/users/test/{email} — account summary used by the mobile client.
func (h *UserHandler) byEmail(w http.ResponseWriter, r *http.Request) {
	u, err := h.Accounts.GetByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		userError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{
		"id":             u.ID.Hex(),
		"name":           u.Name,
		"email":          u.Email,
		"total_movies":   u.TotalMovies,
		"total_duration": u.TotalDuration,
		"isAdmin":        u.IsAdmin,
		"created_at":     u.CreatedAt,
	})
}
