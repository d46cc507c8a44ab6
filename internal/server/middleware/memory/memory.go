// Package memory is an in-process response cache.
package memory

import (
	"sync"
	"time"
)

type entry struct {
	content   []byte
	expiresAt time.Time
}

// Storage keeps entries in a map, expired ones are dropped on read.
type Storage struct {
	mu sync.RWMutex
	m  map[string]entry
}

// NewStorage creates new instance of Storage.
func NewStorage() *Storage {
	return &Storage{m: map[string]entry{}}
}

// Get returns the cached content or nil.
func (s *Storage) Get(key string) []byte {
	s.mu.RLock()
	e, ok := s.m[key]
	s.mu.RUnlock()

	if !ok {
		return nil
	}

	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.m, key)
		s.mu.Unlock()
		return nil
	}

	return e.content
}

// Set stores content for the duration.
func (s *Storage) Set(key string, content []byte, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m[key] = entry{
		content:   content,
		expiresAt: time.Now().Add(duration),
	}
}
