package storage

import (
	"context"
	"sync"

	"storefront-service/internal/core/domain"
	"storefront-service/internal/core/port"
)

// MemoryCartStore keeps carts in process memory. This is the default
// store: the source system held all cart state for the lifetime of the
// page session, and this mirrors that. Carts are deep-copied on the way
// in and out so callers cannot alias the stored lines.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]*domain.Cart)}
}

func (s *MemoryCartStore) Get(ctx context.Context, cartID string) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart, ok := s.carts[cartID]
	if !ok {
		return nil, port.ErrCartNotFound
	}
	return copyCart(cart), nil
}

func (s *MemoryCartStore) Save(ctx context.Context, cart *domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[cart.ID] = copyCart(cart)
	return nil
}

func (s *MemoryCartStore) Delete(ctx context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, cartID)
	return nil
}

func copyCart(cart *domain.Cart) *domain.Cart {
	out := *cart
	out.Lines = make([]domain.CartLine, len(cart.Lines))
	copy(out.Lines, cart.Lines)
	return &out
}

// MemoryPreferenceStore is the in-process key/value store used when no
// Redis address is configured.
type MemoryPreferenceStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryPreferenceStore() *MemoryPreferenceStore {
	return &MemoryPreferenceStore{values: make(map[string]string)}
}

func (s *MemoryPreferenceStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return "", port.ErrPreferenceNotFound
	}
	return value, nil
}

func (s *MemoryPreferenceStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
