package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/evn/budget_backendl/config"
	"github.com/evn/budget_backendl/db"
	"github.com/evn/budget_backendl/internal/kv"
	"github.com/evn/budget_backendl/internal/repositories"
	"github.com/evn/budget_backendl/internal/routes"
	"github.com/evn/budget_backendl/internal/services/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.NewBudgetConfig()

	entries := initEntries(cfg)

	if cfg.SeedEntries {
		if err := repositories.SeedEntries(context.Background(), entries); err != nil {
			log.Fatalf("Failed to seed entries: %v", err)
		}
	}

	var store kv.Store
	if cfg.KVBackend == "memory" {
		store = kv.NewMemoryStore()
	} else {
		redisClient := config.NewRedisClient()
		defer redisClient.Close()
		store = kv.NewRedisStore(redisClient)
	}
	sessions := session.NewStore(store)

	router := routes.SetupBudget(cfg, entries, sessions)

	serverAddress := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Budget service starting on %s", serverAddress)
	log.Fatal(http.ListenAndServe(serverAddress, router))
}

func initEntries(cfg *config.Config) repositories.EntryRepository {
	switch cfg.EntriesBackend {
	case "memory":
		return repositories.NewMemoryEntryRepository()
	case "postgres":
		database := db.InitDB(cfg.DatabaseDSN)
		return repositories.NewPostgresEntryRepository(database)
	default:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
		if err != nil {
			log.Fatalf("Ошибка при подключении к MongoDB: %v", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			log.Fatalf("MongoDB недоступна: %v", err)
		}

		repo := repositories.NewMongoEntryRepository(client.Database(cfg.MongoDB))
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Fatalf("Не удалось создать индексы MongoDB: %v", err)
		}
		return repo
	}
}
