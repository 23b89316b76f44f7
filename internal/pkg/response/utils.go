package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/evn/budget_backendl/internal/pkg/apperrors"
)

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, map[string]string{"error": message})
}

// RespondWithAppError переводит ошибку приложения в HTTP-статус.
func RespondWithAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrUnauthenticated):
		RespondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrMalformedCredentials),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrSelfDeletion),
		errors.Is(err, apperrors.ErrValidation):
		RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		RespondWithError(w, http.StatusInternalServerError, "internal error")
	}
}
