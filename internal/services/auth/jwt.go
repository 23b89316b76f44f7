package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWTService struct {
	secretKey []byte
	tokenTTL  time.Duration
}

func NewJWTService(secretKey string, tokenTTL time.Duration) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

// GenerateToken выдаёт подписанный токен с sub=username и фиксированным окном жизни.
func (s *JWTService) GenerateToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"exp": now.Add(s.tokenTTL).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %v", err)
	}
	return tokenString, nil
}

func (s *JWTService) TokenTTL() time.Duration {
	return s.tokenTTL
}
