// Package credstore persists PlayFab credentials between processes.
package credstore

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"fabforge/playfab"
)

// ErrNotFound is returned by Load when no credentials are stored under the key.
var ErrNotFound = errors.New("credstore: credentials not found")

// Store saves and restores AuthenticationContext snapshots by key.
type Store interface {
	Load(ctx context.Context, key string) (playfab.AuthenticationContext, error)
	Save(ctx context.Context, key string, ac playfab.AuthenticationContext) error
	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Restore loads key into holder. A missing key leaves holder untouched and is not an error.
func Restore(ctx context.Context, s Store, key string, holder *playfab.CredentialHolder) (bool, error) {
	ac, err := s.Load(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	holder.Store(ac)
	return true, nil
}

// Memory keeps credentials in process memory.
type Memory struct {
	mu    sync.RWMutex
	items map[string]playfab.AuthenticationContext
}

func NewMemory() *Memory {
	return &Memory{items: make(map[string]playfab.AuthenticationContext)}
}

func (m *Memory) Load(_ context.Context, key string) (playfab.AuthenticationContext, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ac, ok := m.items[key]
	if !ok {
		return playfab.AuthenticationContext{}, ErrNotFound
	}
	return ac, nil
}

func (m *Memory) Save(_ context.Context, key string, ac playfab.AuthenticationContext) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = ac
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}
