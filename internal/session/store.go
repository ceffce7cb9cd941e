// Package session persists the bearer token that marks a logged-in user.
// The presence of a token is the only notion of "logged in" the client has;
// tokens are never validated locally.
package session

import (
	"context"
	"errors"
)

// TokenKey is the single key the token lives under in every store.
const TokenKey = "authToken"

var ErrNoToken = errors.New("no session token")

type Store interface {
	// Get returns ErrNoToken if nothing is stored.
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*RedisStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

// HasToken reports whether a non-empty token is stored. Store errors count as "no token".
func HasToken(ctx context.Context, s Store) bool {
	token, err := s.Get(ctx)
	return err == nil && token != ""
}
