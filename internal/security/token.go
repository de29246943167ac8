package security

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"banksampah-backend/internal/domain"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Identity is the authenticated caller. Handlers pass its Subject as the
// explicit actor of every ledger-mutating call; the ledger core itself never
// reads ambient session state.
type Identity struct {
	Subject    string
	Email      string
	Role       domain.Role
	UnitNumber string
}

// Verifier turns a bearer token into an Identity. Implemented by the local JWT
// token manager and by the Firebase ID-token verifier.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// UserClaims defines the claims for locally issued tokens
type UserClaims struct {
	Email      string `json:"email,omitempty"`
	Name       string `json:"name,omitempty"`
	Role       string `json:"role"`
	UnitNumber string `json:"unit_number,omitempty"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	Verifier
	Generate(user *domain.User) (string, error)
}

type tokenManager struct {
	secret []byte
	expiry time.Duration
}

func NewTokenManager(secret string, expiryMinutes int) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
		expiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

func (m *tokenManager) Generate(user *domain.User) (string, error) {
	now := time.Now()
	claims := UserClaims{
		Email:      user.Email,
		Name:       user.Name,
		Role:       string(user.Role),
		UnitNumber: user.UnitNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) Verify(ctx context.Context, tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &Identity{
		Subject:    claims.Subject,
		Email:      claims.Email,
		Role:       domain.Role(claims.Role),
		UnitNumber: claims.UnitNumber,
	}, nil
}
