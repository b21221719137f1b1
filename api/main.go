package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/julienschmidt/httprouter"

	signup "github.com/jimiolaniyan/gosignup"
)

func main() {
	configPath := flag.String("config", "", "path to a config file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := signup.LoadConfig(*configPath)
	if err != nil {
		logger.Error("loading config", "error", err)
		os.Exit(1)
	}

	users, err := newRepository(cfg.Storage)
	if err != nil {
		logger.Error("setting up storage", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}

	svc := signup.NewService(users, signup.NewSMTPNotifier(cfg.SMTP), logger)

	router := httprouter.New()
	router.Handler(http.MethodPost, "/api/1.0/users", signup.RegisterUserHandler(svc, signup.NewResolver()))

	logger.Info("server started", "addr", cfg.Server.Addr, "backend", cfg.Storage.Backend)
	if err := http.ListenAndServe(cfg.Server.Addr, router); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newRepository(cfg signup.StorageConfig) (signup.Repository, error) {
	switch cfg.Backend {
	case "mongo":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, err
		}
		if err := client.Ping(ctx, nil); err != nil {
			return nil, err
		}
		return signup.NewMongoUserRepository(client.Database(cfg.Database).Collection("users"))
	case "sqlite":
		return signup.NewSQLiteUserRepository(cfg.SQLitePath)
	default:
		return signup.NewUserRepository(), nil
	}
}
