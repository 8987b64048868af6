package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"home-maintenance-server/config"
	"home-maintenance-server/types"
)

const tokenIssuer = "home-maintenance-server"

var errInvalidToken = errors.New("invalid token claims")

// SessionService issues signed session tokens whose payload lives in the
// session store
type SessionService struct {
	store  SessionStore
	secret []byte
	ttl    time.Duration
}

func NewSessionService(store SessionStore, cfg config.SessionConfig) *SessionService {
	return &SessionService{
		store:  store,
		secret: []byte(cfg.Secret),
		ttl:    time.Duration(cfg.TTLHours) * time.Hour,
	}
}

// TTL is how long a session lives
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Issue stores identity under a fresh session id and returns the signed token
func (s *SessionService) Issue(ctx context.Context, identity *types.Identity) (string, error) {
	sessionID := uuid.NewString()
	if err := s.store.Save(ctx, sessionID, identity); err != nil {
		return "", err
	}

	now := time.Now()
	claims := &types.SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   identity.UserID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", types.NewInternalError("failed to sign session token", err)
	}

	log.Debug().Str("user_id", identity.UserID).Str("role", identity.Role).Msg("Session issued")
	return tokenString, nil
}

// Resolve returns the identity behind a token. Bad, expired or revoked tokens
// are unauthenticated errors.
func (s *SessionService) Resolve(ctx context.Context, tokenString string) (*types.Identity, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, types.NewUnauthenticatedError("Invalid session")
	}
	return s.store.Load(ctx, claims.SessionID)
}

// Destroy revokes the session behind a token. Unparseable tokens have
// nothing to revoke.
func (s *SessionService) Destroy(ctx context.Context, tokenString string) error {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil
	}
	return s.store.Delete(ctx, claims.SessionID)
}

func (s *SessionService) parse(tokenString string) (*types.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &types.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*types.SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, errInvalidToken
	}
	return claims, nil
}
