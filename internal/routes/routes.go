package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"

	"github.com/evn/budget_backendl/config"
	adminHandlers "github.com/evn/budget_backendl/internal/handlers/admin"
	authHandlers "github.com/evn/budget_backendl/internal/handlers/auth"
	budgetHandlers "github.com/evn/budget_backendl/internal/handlers/budget"
	"github.com/evn/budget_backendl/internal/middleware"
	"github.com/evn/budget_backendl/internal/models"
	"github.com/evn/budget_backendl/internal/pkg/response"
	"github.com/evn/budget_backendl/internal/repositories"
	authService "github.com/evn/budget_backendl/internal/services/auth"
	"github.com/evn/budget_backendl/internal/services/cache"
	"github.com/evn/budget_backendl/internal/services/session"
)

// SetupAuth инициализирует маршрутизатор auth-сервиса.
func SetupAuth(cfg *config.Config, users repositories.UserRepository, sessions *session.Store, userCache *cache.UserCache) *chi.Mux {
	jwtAuth := jwtauth.New("HS256", []byte(cfg.JwtSecret), nil)
	jwtService := authService.NewJWTService(cfg.JwtSecret, cfg.TokenTTL)
	issuer := authService.NewIssuer(users, userCache, sessions, jwtService)

	authHandler := authHandlers.NewAuthHandler(issuer, users, userCache)
	usersHandler := adminHandlers.NewUsersHandler(users, userCache, sessions)

	router := chi.NewRouter()
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	// Публичные маршруты
	router.Post("/token", authHandler.TokenHandler)
	router.Get("/health", healthHandler)

	// Защищённые маршруты: подпись JWT + живая сессия в Redis
	router.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(sessions, jwtAuth))

		r.Get("/users/me", authHandler.MeHandler)

		// Только для админов
		r.Group(func(ar chi.Router) {
			ar.Use(middleware.AdminOnly)
			ar.Post("/users", usersHandler.CreateUserHandler)
			ar.Get("/users", usersHandler.ListUsersHandler)
			ar.Delete("/users/{username}", usersHandler.DeleteUserHandler)
		})
	})

	return router
}

// SetupBudget инициализирует маршрутизатор budget-сервиса. Токен здесь
// непрозрачен: авторизация — только по сессии в Redis.
func SetupBudget(cfg *config.Config, entries repositories.EntryRepository, sessions *session.Store) *chi.Mux {
	router := chi.NewRouter()
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Get("/health", healthHandler)

	router.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(sessions, nil))

		r.Post("/income", budgetHandlers.AddEntryHandler(entries, models.KindIncome))
		r.Get("/income", budgetHandlers.ListEntriesHandler(entries, models.KindIncome))
		r.Post("/expenses", budgetHandlers.AddEntryHandler(entries, models.KindExpense))
		r.Get("/expenses", budgetHandlers.ListEntriesHandler(entries, models.KindExpense))
		r.Get("/export", budgetHandlers.ExportHandler(entries))
	})

	return router
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
