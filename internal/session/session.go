// Package session issues, resolves and revokes authenticated sessions.
package session

import (
	"context"
	"time"

	"kassa/internal/domain"

	"github.com/golang-jwt/jwt/v5" // JWT library
	"github.com/google/uuid"       // Session IDs
	"github.com/redis/go-redis/v9" // Redis client
)

// Redis key prefix for live sessions.
const keyPrefix = "session:"

// Claims carried inside a session token.
type Claims struct {
	UserID               uint `json:"user_id"` // Custom claim for user ID
	jwt.RegisteredClaims      // Standard JWT claims, ID holds the session ID
}

// Manager is the session authority. A session token is a signed JWT whose
// ID is registered in Redis for the token's lifetime; deleting the Redis
// entry revokes the session immediately, independent of the token expiry.
type Manager struct {
	rdb    *redis.Client
	secret string
	ttl    time.Duration
	newID  func() string // Injected for deterministic tests
}

// NewManager builds a session authority over the given Redis client.
func NewManager(rdb *redis.Client, secret string, ttl time.Duration) *Manager {
	return &Manager{rdb: rdb, secret: secret, ttl: ttl, newID: uuid.NewString}
}

// TTL reports the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue opens a session bound to userID and returns its opaque token.
func (m *Manager) Issue(ctx context.Context, userID uint) (string, error) {
	id := m.newID()
	claims := Claims{
		UserID: userID, // Custom claim for user ID
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,                                          // Session ID, keyed in Redis
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),   // Token expiry matches the registry TTL
			IssuedAt:  jwt.NewNumericDate(time.Now()),              // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	signed, err := token.SignedString([]byte(m.secret))        // Sign the token with the secret
	if err != nil {
		return "", err
	}
	// Register the session; the TTL keeps Redis from accumulating dead keys.
	if err := m.rdb.Set(ctx, keyPrefix+id, userID, m.ttl).Err(); err != nil {
		return "", err
	}
	return signed, nil
}

// Resolve returns the user bound to token. Every failure mode, including a
// revoked or expired session, is domain.ErrNotAuthenticated.
func (m *Manager) Resolve(ctx context.Context, token string) (uint, error) {
	claims, err := m.parse(token)
	if err != nil {
		return 0, domain.ErrNotAuthenticated
	}
	if err := m.rdb.Get(ctx, keyPrefix+claims.ID).Err(); err != nil {
		return 0, domain.ErrNotAuthenticated // Revoked, expired or Redis down
	}
	return claims.UserID, nil
}

// Revoke ends the session bound to token. Tokens that never parsed cannot
// name a live session, so they are ignored rather than reported.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	claims, err := m.parse(token)
	if err != nil {
		return nil
	}
	return m.rdb.Del(ctx, keyPrefix+claims.ID).Err()
}

// parse validates a token string and extracts its claims.
func (m *Manager) parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(m.secret), nil // Return the secret key for validation
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
