package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account. The password field holds a bcrypt hash and
// never leaves the server; history entries are embedded, not a separate
// collection.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Password      string             `bson:"password" json:"-"`
	TotalMovies   int                `bson:"total_movies" json:"total_movies"`
	TotalDuration int                `bson:"total_duration" json:"total_duration"`
	IsAdmin       bool               `bson:"isAdmin" json:"isAdmin"`
	ViewHistory   []WatchEntry       `bson:"userViewHistory" json:"userViewHistory"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// WatchEntry is one movie in a user's watch history. Field casing follows the
// documents the mobile client already consumes.
type WatchEntry struct {
	ID       string `bson:"_id" json:"_id"`
	Title    string `bson:"Title" json:"Title"`
	Language string `bson:"Language,omitempty" json:"Language,omitempty"`
	Parent   string `bson:"Parent,omitempty" json:"Parent,omitempty"`
	ImageURL string `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Date     string `bson:"date,omitempty" json:"date,omitempty"`
}

// Movie is a listed film with its showtimes. timings maps a date string to
// that day's showtimes grouped by venue and experience.
type Movie struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Slug           string             `bson:"slug" json:"slug"`
	Identifier     string             `bson:"identifier" json:"identifier"`
	Title          string             `bson:"Title" json:"Title"`
	Description    string             `bson:"description" json:"description"`
	ImageURL       string             `bson:"image_url" json:"image_url"`
	Classification string             `bson:"classification" json:"classification"`
	Language       string             `bson:"language" json:"language"`
	Parent         string             `bson:"Parent,omitempty" json:"Parent,omitempty"`
	ShowtimesURL   string             `bson:"showtimes_url,omitempty" json:"showtimes_url,omitempty"`
	Timings        map[string]Timing  `bson:"timings,omitempty" json:"timings,omitempty"`
}

type Timing struct {
	DayOfWeek string     `bson:"day_of_week" json:"day_of_week"`
	Showtimes []Showtime `bson:"showtimes" json:"showtimes"`
}

type Showtime struct {
	Place       string       `bson:"place" json:"place"`
	Experiences []Experience `bson:"experiences" json:"experiences"`
}

type Experience struct {
	Name  string   `bson:"name" json:"name"`
	Times []string `bson:"times" json:"times"`
}

// MovieUpdate carries a partial movie update; nil fields are left untouched.
type MovieUpdate struct {
	Title          *string            `json:"Title"`
	Slug           *string            `json:"slug"`
	Identifier     *string            `json:"identifier"`
	Description    *string            `json:"description"`
	ImageURL       *string            `json:"image_url"`
	Classification *string            `json:"classification"`
	Language       *string            `json:"language"`
	Parent         *string            `json:"Parent"`
	ShowtimesURL   *string            `json:"showtimes_url"`
	Timings        *map[string]Timing `json:"timings"`
}

// Offer documents are schema-less; they are stored and returned as-is.
type Offer map[string]any
