// SPDX-License-Identifier: MIT

package shuffle

import (
	"sync"

	"github.com/katalvlaran/thetasharp/alphabet"
)

// Store caches basis expansions keyed by word. Implementations must be safe
// for concurrent use; Load reports found=false for a miss.
type Store interface {
	Load(w alphabet.Word) (Element, bool, error)
	Save(w alphabet.Word, x Element) error
}

// MemoryStore is a process-local Store backed by a map.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[alphabet.Word]Element
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[alphabet.Word]Element)}
}

// Load implements Store.
func (s *MemoryStore) Load(w alphabet.Word) (Element, bool, error) {
	s.mu.RLock()
	x, ok := s.m[w]
	s.mu.RUnlock()

	return x, ok, nil
}

// Save implements Store. A concurrent writer of the same word stores an
// identical value, so last-write-wins is harmless.
func (s *MemoryStore) Save(w alphabet.Word, x Element) error {
	s.mu.Lock()
	s.m[w] = x
	s.mu.Unlock()

	return nil
}

// Len returns the number of cached words.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.m)
}
