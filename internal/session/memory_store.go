package session

import (
	"context"
	"errors"

	"github.com/coocood/freecache"
)

// freecache enforces a 512KB minimum anyway
const memoryStoreSize = 512 * 1024

// MemoryStore is a process-local store; the session ends with the process.
type MemoryStore struct {
	cache *freecache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: freecache.NewCache(memoryStoreSize),
	}
}

func (s *MemoryStore) Get(_ context.Context) (string, error) {
	val, err := s.cache.Get([]byte(TokenKey))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return "", ErrNoToken
		}
		return "", err
	}
	if len(val) == 0 {
		return "", ErrNoToken
	}
	return string(val), nil
}

func (s *MemoryStore) Set(_ context.Context, token string) error {
	return s.cache.Set([]byte(TokenKey), []byte(token), 0)
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.cache.Del([]byte(TokenKey))
	return nil
}
