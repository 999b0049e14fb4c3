package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
}

// New creates a new JWT instance
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a signed token carrying the username and user id as claims.
func (j *JWT) Generate(ctx context.Context, username string, userID int64) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"id":  userID,
		"exp": time.Now().Add(j.Exp).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// Parse validates the token string and returns the embedded username and user id.
func (j *JWT) Parse(ctx context.Context, tokenString string) (string, int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return "", 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", 0, errors.New("invalid token")
	}

	username, ok := claims["sub"].(string)
	if !ok {
		return "", 0, errors.New("sub claim not found in token")
	}

	// Numeric claims round-trip through JSON as float64.
	id, ok := claims["id"].(float64)
	if !ok {
		return "", 0, errors.New("id claim not found in token")
	}

	return username, int64(id), nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
