// Package memstore is an in-memory store.Store used by tests and keyless
// local development. Expiry is tracked per session and enforced lazily on
// read.
package memstore

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	data      []byte
	expiresAt time.Time
}

type Store struct {
	mu       sync.RWMutex
	sessions map[string]entry
	prompt   string
	seeded   bool
}

func New() *Store {
	return &Store{sessions: make(map[string]entry)}
}

func (s *Store) LoadSession(ctx context.Context, id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[id]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, nil
	}
	return e.data, nil
}

func (s *Store) SaveSession(ctx context.Context, id string, data []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = entry{data: data, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *Store) LoadPrompt(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prompt, nil
}

func (s *Store) SavePrompt(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompt = text
	s.seeded = true
	return nil
}

func (s *Store) SeedPrompt(ctx context.Context, text string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seeded {
		return false, nil
	}
	s.prompt = text
	s.seeded = true
	return true, nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = nil
	return nil
}
