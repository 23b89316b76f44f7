package models

// User — запись пользователя в системе учёта (system of record).
// PasswordHash сериализуется только для кэша, наружу не отдаётся.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	IsAdmin      bool   `json:"is_admin"`
}

// PublicUser — представление пользователя для ответов API.
type PublicUser struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

func (u *User) Public() PublicUser {
	return PublicUser{Username: u.Username, IsAdmin: u.IsAdmin}
}

// SessionUser — снимок пользователя на момент выдачи токена.
// Хранится в Redis по ключу сессии, не обновляется до повторного логина.
type SessionUser struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	UserID   int    `json:"user_id"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
