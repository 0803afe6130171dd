package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/myflix-service/internal/domain"
)

// ErrInvalidToken covers malformed, expired, unsigned or claim-incomplete tokens.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager handles issuing and validating JWT tokens. The secret is shared
// between issuance and verification and read-only after construction.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 168 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Claims describes the JWT payload: the identity key and the registered
// timestamps, nothing else.
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// GenerateToken builds and signs a JWT carrying only the identity key. The
// returned metadata describes what was issued; nothing is persisted.
func (tm *TokenManager) GenerateToken(identityKey string) (string, domain.Token, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		ID: identityKey,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identityKey,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", domain.Token{}, err
	}
	return tokenString, domain.Token{
		SubjectID: identityKey,
		ExpiresAt: expiresAt,
		IssuedAt:  now,
	}, nil
}

// ParseToken validates signature and expiry and returns the claims. A token
// whose identity claim is absent is rejected even when the signature is valid.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
