package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/handlers"
	httpserver "github.com/AZHamidaddin/CPIT490-FinalProject/internal/http"
	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/service"
	storemongo "github.com/AZHamidaddin/CPIT490-FinalProject/internal/store/mongo"
)

type Config struct {
	Port         string `envconfig:"PORT" default:"5000"`
	MongoURI     string `envconfig:"MONGO_URI" required:"true"`
	MongoDB      string `envconfig:"MONGO_DB" default:"AflamDB"`
	ClientOrigin string `envconfig:"CLIENT_ORIGIN" default:"*"`
}

func mustLoadEnv() Config {
	_ = godotenv.Load()
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		log.Fatalf("env error: %v", err)
	}
	return c
}

func main() {
	cfg := mustLoadEnv()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	st, disconnect, err := storemongo.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("mongo error: %v", err)
	}
	defer func() { _ = disconnect(context.Background()) }()
	if err := st.EnsureIndexes(ctx); err != nil {
		log.Fatalf("mongo index error: %v", err)
	}
	slog.Info("connected to MongoDB", "db", cfg.MongoDB)

	accounts := service.NewAccount(st)
	history := service.NewHistory(st)
	lookup := service.NewLookup(st)

	movieHandler := handlers.NewMovieHandler(lookup)
	userHandler := handlers.NewUserHandler(accounts, history)

	mounter := func(r chi.Router) {
		movieHandler.Routes(r)
		r.Route("/api/users", userHandler.Routes)
	}

	srv := httpserver.NewServer(cfg.ClientOrigin, mounter)

	addr := ":" + cfg.Port
	slog.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, srv.Router); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
