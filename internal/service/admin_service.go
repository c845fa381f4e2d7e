package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "readingtimer/internal/errors"
)

const adminSubject = "admin"

// AdminService is a coarse single-tenant gate: one shared password, one
// boolean outcome. A successful login issues a short-lived HS256 token; there
// is no user registry and no revocation list behind it.
type AdminService struct {
	passwordHash []byte
	jwtSecret    []byte
	tokenTTL     time.Duration
}

func NewAdminService(password, jwtSecret string, tokenTTL time.Duration) (*AdminService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &AdminService{
		passwordHash: hash,
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     tokenTTL,
	}, nil
}

func (s *AdminService) TokenTTL() time.Duration {
	return s.tokenTTL
}

// Login compares the supplied password against the shared secret and returns
// a signed admin token on success. Fails closed on any mismatch.
func (s *AdminService) Login(password string) (string, *apperrors.APIError) {
	if password == "" {
		return "", apperrors.BadRequest("invalid_password", "password is required")
	}
	if bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) != nil {
		return "", apperrors.Unauthorized("invalid password")
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", apperrors.Internal("failed to sign token")
	}
	return signed, nil
}

// ParseToken reports whether tokenString is a valid, unexpired admin token.
func (s *AdminService) ParseToken(tokenString string) *apperrors.APIError {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return apperrors.Unauthorized("invalid token")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != adminSubject {
		return apperrors.Unauthorized("invalid token subject")
	}
	return nil
}
