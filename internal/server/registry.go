package server

import (
	"errors"
	"sync"

	"github.com/born-ml/mlp/internal/nn"
	"github.com/google/uuid"
)

// Sentinel errors.
var (
	ErrNotFound = errors.New("network not found")
	ErrTooLarge = errors.New("network exceeds server limits")
)

// entry pairs a network with the lock that serializes its passes.
type entry struct {
	mu  sync.Mutex
	net *nn.Network
}

// Registry holds networks by id. Networks themselves are single-threaded, so
// every access goes through With, which holds the network's lock.
type Registry struct {
	mu       sync.RWMutex
	networks map[uuid.UUID]*entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{networks: make(map[uuid.UUID]*entry)}
}

// Add stores net under a fresh random id.
func (r *Registry) Add(net *nn.Network) uuid.UUID {
	id := uuid.New()
	r.mu.Lock()
	r.networks[id] = &entry{net: net}
	r.mu.Unlock()
	return id
}

// With runs fn on the network stored under id while holding its lock.
func (r *Registry) With(id uuid.UUID, fn func(*nn.Network) error) error {
	r.mu.RLock()
	e, ok := r.networks[id]
	r.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.net)
}

// Remove deletes the network stored under id.
func (r *Registry) Remove(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.networks[id]; !ok {
		return ErrNotFound
	}
	delete(r.networks, id)
	return nil
}

// Len returns the number of stored networks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.networks)
}
