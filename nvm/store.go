// Package nvm provides the injectable persistence hook for logic.MemoryNode
// instances flagged as non-volatile. The core itself never claims to
// survive a process restart; what it models is surviving a simulated FWC
// power flicker within one run, the way the real memory relay would hold
// its contacts through a brief bus dropout. Grounded on mode_s.Decoder's
// icao_cache field, which reaches for the same patrickmn/go-cache package
// for an unrelated concern (recently-seen ICAO address de-duplication).
package nvm

import (
	"fmt"

	"github.com/patrickmn/go-cache"
)

// Store is a keyed bool store surviving for the life of the process.
// Safe for concurrent use, since the underlying cache.Cache synchronizes
// internally.
type Store struct {
	cache *cache.Cache
}

// NewStore builds a Store with no expiration and no background cleanup,
// matching the "survives until the process exits" persistence contract.
func NewStore() *Store {
	return &Store{cache: cache.New(cache.NoExpiration, 0)}
}

// NewStoreFromCache wraps an existing *cache.Cache, letting a host share
// one cache instance across several NVM-backed memories. Save still stores
// every value with no expiration, whatever c's default expiration is.
// Returns an error if c is nil, since a nil underlying cache is a host
// wiring mistake rather than a lawful-input case.
func NewStoreFromCache(c *cache.Cache) (*Store, error) {
	if c == nil {
		return nil, fmt.Errorf("nvm: NewStoreFromCache: nil cache")
	}
	return &Store{cache: c}, nil
}

// Load returns the previously persisted value for key, and whether one was
// found. Sheets call this once, at construction, to seed an NVM memory's
// initial output.
func (s *Store) Load(key string) (bool, bool) {
	v, ok := s.cache.Get(key)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Save persists value under key with no expiration. Sheets call this on
// every Update after recomputing an NVM memory's output.
func (s *Store) Save(key string, value bool) {
	s.cache.Set(key, value, cache.NoExpiration)
}
