package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/jwtauth/v5"

	"github.com/evn/budget_backendl/internal/pkg/apperrors"
	"github.com/evn/budget_backendl/internal/pkg/response"
	"github.com/evn/budget_backendl/internal/services/session"
)

// SessionAuth проверяет bearer-токен по хранилищу сессий и кладёт снимок
// пользователя в контекст. Ничего не мутирует и не продлевает TTL сессии:
// окно жизни фиксируется при выдаче токена.
//
// Если передан ja, перед походом в хранилище проверяется подпись и срок
// самого JWT (auth-сервис). Budget-сервис передаёт nil и рассматривает
// токен как непрозрачную строку.
func SessionAuth(sessions *session.Store, ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				response.RespondWithAppError(w, apperrors.ErrUnauthenticated)
				return
			}

			// заголовок обязан иметь вид "<scheme> <token>"
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
				response.RespondWithAppError(w, apperrors.ErrMalformedCredentials)
				return
			}
			token := parts[1]

			if ja != nil {
				if _, err := jwtauth.VerifyToken(ja, token); err != nil {
					response.RespondWithAppError(w, apperrors.ErrUnauthenticated)
					return
				}
			}

			user, err := sessions.Get(r.Context(), token)
			if err != nil {
				response.RespondWithAppError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withSessionUser(r.Context(), *user)))
		})
	}
}

// AdminOnly пропускает только пользователей с админским флагом в сессии.
// Флаг — часть снимка на момент логина, повышение прав требует релогина.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetSessionUser(r.Context())
		if !ok {
			response.RespondWithAppError(w, apperrors.ErrUnauthenticated)
			return
		}
		if !user.IsAdmin {
			response.RespondWithAppError(w, apperrors.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
