package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"phonestore/internal/domain"
)

// Audience is the claim value the identity provider stamps on every
// token it issues for this API.
const Audience = "authenticated"

// ErrNoSubject means the token verified cryptographically but carries
// no subject claim, so no user can be derived from it.
var ErrNoSubject = errors.New("could not validate credentials")

// Claims represents the verified token payload.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// VerifyToken parses and validates a bearer token against the shared
// secret. Only HS256 is accepted and the audience must match Audience.
func VerifyToken(secret, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithAudience(Audience))
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// UserFromClaims derives the request identity. The subject claim is
// mandatory even for an otherwise valid token; role falls back to "user".
func UserFromClaims(claims *Claims) (*domain.AuthUser, error) {
	if claims.Subject == "" {
		return nil, ErrNoSubject
	}
	role := claims.Role
	if role == "" {
		role = "user"
	}
	return &domain.AuthUser{ID: claims.Subject, Email: claims.Email, Role: role}, nil
}

// SignToken creates an HS256 token the way the external identity
// provider does. The service itself never issues tokens; this exists
// for tests and local tooling sharing the same secret.
func SignToken(secret, userID, email, role string) (string, error) {
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Audience:  jwt.ClaimStrings{Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}
