package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/evn/budget_backendl/config"
	"github.com/evn/budget_backendl/db"
	"github.com/evn/budget_backendl/internal/kv"
	"github.com/evn/budget_backendl/internal/models"
	"github.com/evn/budget_backendl/internal/pkg/apperrors"
	"github.com/evn/budget_backendl/internal/repositories"
	"github.com/evn/budget_backendl/internal/routes"
	authService "github.com/evn/budget_backendl/internal/services/auth"
	"github.com/evn/budget_backendl/internal/services/cache"
	"github.com/evn/budget_backendl/internal/services/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.NewAuthConfig()

	var users repositories.UserRepository
	switch cfg.UsersBackend {
	case "memory":
		users = repositories.NewMemoryUserRepository()
	default:
		database := db.InitDB(cfg.DatabaseDSN)
		defer database.Close()
		users = repositories.NewPostgresUserRepository(database)
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
	userCache := cache.NewUserCache(store, cfg.UserCacheTTL)

	if err := bootstrapAdmin(context.Background(), users, cfg); err != nil {
		log.Fatalf("Failed to bootstrap admin user: %v", err)
	}

	router := routes.SetupAuth(cfg, users, sessions, userCache)

	serverAddress := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Auth service starting on %s", serverAddress)
	log.Fatal(http.ListenAndServe(serverAddress, router))
}

// bootstrapAdmin создаёт первичного админа, если его ещё нет.
func bootstrapAdmin(ctx context.Context, users repositories.UserRepository, cfg *config.Config) error {
	if _, err := users.GetByUsername(ctx, cfg.AdminUsername); err == nil {
		return nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	passwordHash, err := authService.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	_, err = users.Create(ctx, &models.User{
		Username:     cfg.AdminUsername,
		PasswordHash: passwordHash,
		IsAdmin:      true,
	})
	if errors.Is(err, apperrors.ErrConflict) {
		// параллельный инстанс успел первым
		return nil
	}
	if err == nil {
		log.Printf("Created bootstrap admin %q", cfg.AdminUsername)
	}
	return err
}
