package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/activos-tic/itam-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// Claims is the payload embedded in every issued token: subject identity
// plus the role list used by the RBAC middleware.
type Claims struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenManager mints and validates HS256-signed bearer tokens. The signing
// secret is injected at construction and never read from ambient state.
// There is no revocation list: a token stays valid until its natural expiry.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the account's identity and roles, expiring
// ttl from now.
func (m *TokenManager) Issue(account *domain.Account) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Username: account.Username,
		Roles:    account.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature integrity, then expiry, then claim shape, and
// returns the decoded claims. Each failure mode maps to its own domain
// error so callers can distinguish a tampered token from a stale one.
func (m *TokenManager) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		default:
			return nil, domain.ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenMalformed
	}
	if claims.Subject == "" || claims.Username == "" || len(claims.Roles) == 0 {
		return nil, domain.ErrTokenMalformed
	}
	return claims, nil
}
