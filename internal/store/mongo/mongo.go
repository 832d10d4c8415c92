// Package mongo implements the store interface on top of MongoDB.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/models"
	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/store"
)

var hexID = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

type Store struct {
	users  *mongo.Collection
	movies *mongo.Collection
	offers *mongo.Collection
	db     *mongo.Database
}

// Connect dials MongoDB, pings it, and returns the store plus a disconnect
// function for shutdown.
func Connect(ctx context.Context, uri, dbName string) (*Store, func(context.Context) error, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}
	return New(client.Database(dbName)), client.Disconnect, nil
}

func New(db *mongo.Database) *Store {
	return &Store{
		users:  db.Collection("users"),
		movies: db.Collection("movies"),
		offers: db.Collection("offers"),
		db:     db,
	}
}

// EnsureIndexes creates the unique email index that backs duplicate-email
// detection. Call once at startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	res, err := s.users.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrNotFound
	}
	var u models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}

func (s *Store) SetUserHistory(ctx context.Context, id string, history []models.WatchEntry, totalMovies int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return store.ErrNotFound
	}
	if history == nil {
		history = []models.WatchEntry{}
	}
	res, err := s.users.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"userViewHistory": history,
		"total_movies":    totalMovies,
	}})
	if err != nil {
		return fmt.Errorf("update user history: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) ListMovies(ctx context.Context) ([]models.Movie, error) {
	cur, err := s.movies.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find movies: %w", err)
	}
	out := []models.Movie{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}
	return out, nil
}

func (s *Store) GetMovieBySlug(ctx context.Context, slug string) (*models.Movie, error) {
	var m models.Movie
	if err := s.movies.FindOne(ctx, bson.M{"slug": slug}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("find movie by slug: %w", err)
	}
	return &m, nil
}

func (s *Store) ListMoviesByParent(ctx context.Context, parent string) ([]models.Movie, error) {
	cur, err := s.movies.Find(ctx, bson.M{"Parent": parent})
	if err != nil {
		return nil, fmt.Errorf("find movies by parent: %w", err)
	}
	out := []models.Movie{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}
	return out, nil
}

func (s *Store) UpdateMovie(ctx context.Context, id string, upd models.MovieUpdate) (*models.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrNotFound
	}
	set := bson.M{}
	if upd.Title != nil {
		set["Title"] = *upd.Title
	}
	if upd.Slug != nil {
		set["slug"] = *upd.Slug
	}
	if upd.Identifier != nil {
		set["identifier"] = *upd.Identifier
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.ImageURL != nil {
		set["image_url"] = *upd.ImageURL
	}
	if upd.Classification != nil {
		set["classification"] = *upd.Classification
	}
	if upd.Language != nil {
		set["language"] = *upd.Language
	}
	if upd.Parent != nil {
		set["Parent"] = *upd.Parent
	}
	if upd.ShowtimesURL != nil {
		set["showtimes_url"] = *upd.ShowtimesURL
	}
	if upd.Timings != nil {
		set["timings"] = *upd.Timings
	}

	var m models.Movie
	if len(set) == 0 {
		// Nothing to change; behave like a lookup.
		if err := s.movies.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, store.ErrNotFound
			}
			return nil, fmt.Errorf("find movie: %w", err)
		}
		return &m, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := s.movies.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("update movie: %w", err)
	}
	return &m, nil
}

func (s *Store) offersCollectionExists(ctx context.Context) (bool, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.M{"name": "offers"})
	if err != nil {
		return false, fmt.Errorf("list collections: %w", err)
	}
	return len(names) > 0, nil
}

func (s *Store) ListOffers(ctx context.Context) ([]models.Offer, error) {
	ok, err := s.offersCollectionExists(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, store.ErrNoCollection
	}
	cur, err := s.offers.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find offers: %w", err)
	}
	out := []models.Offer{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode offers: %w", err)
	}
	return out, nil
}

func (s *Store) GetOfferByID(ctx context.Context, id string) (models.Offer, error) {
	ok, err := s.offersCollectionExists(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, store.ErrNoCollection
	}

	// Offer ids may be real ObjectIDs or plain strings; try both when the id
	// looks like hex.
	filter := bson.M{"_id": id}
	if hexID.MatchString(id) {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			filter = bson.M{"$or": bson.A{bson.M{"_id": oid}, bson.M{"_id": id}}}
		}
	}

	var offer models.Offer
	if err := s.offers.FindOne(ctx, filter).Decode(&offer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("find offer: %w", err)
	}
	return offer, nil
}
