// Package budget — ручки учёта доходов и расходов. Пользователь
// определяется исключительно по снимку сессии из Redis: budget-сервис не
// ходит в хранилище пользователей.
package budget

import (
	"encoding/json"
	"net/http"

	"github.com/evn/budget_backendl/internal/middleware"
	"github.com/evn/budget_backendl/internal/models"
	"github.com/evn/budget_backendl/internal/pkg/apperrors"
	"github.com/evn/budget_backendl/internal/pkg/response"
	"github.com/evn/budget_backendl/internal/repositories"
)

// AddEntryHandler добавляет запись указанного вида текущему пользователю.
func AddEntryHandler(repo repositories.EntryRepository, kind models.EntryKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.GetSessionUser(r.Context())
		if !ok {
			response.RespondWithAppError(w, apperrors.ErrUnauthenticated)
			return
		}

		var req models.CreateEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.RespondWithError(w, http.StatusBadRequest, "Invalid request data")
			return
		}
		if req.Amount <= 0 {
			response.RespondWithError(w, http.StatusBadRequest, "Amount must be a positive integer")
			return
		}
		if !req.Currency.Valid() {
			response.RespondWithError(w, http.StatusBadRequest, "Unsupported currency")
			return
		}

		entry, err := repo.Create(r.Context(), &models.Entry{
			Kind:     kind,
			UserID:   user.UserID,
			Amount:   req.Amount,
			Currency: req.Currency,
		})
		if err != nil {
			response.RespondWithAppError(w, err)
			return
		}
		response.RespondWithJSON(w, http.StatusOK, entry)
	}
}

// ListEntriesHandler возвращает записи вида kind текущего пользователя.
func ListEntriesHandler(repo repositories.EntryRepository, kind models.EntryKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.GetSessionUser(r.Context())
		if !ok {
			response.RespondWithAppError(w, apperrors.ErrUnauthenticated)
			return
		}

		entries, err := repo.ListByUser(r.Context(), kind, user.UserID)
		if err != nil {
			response.RespondWithAppError(w, err)
			return
		}
		if entries == nil {
			entries = []models.Entry{}
		}
		response.RespondWithJSON(w, http.StatusOK, entries)
	}
}
