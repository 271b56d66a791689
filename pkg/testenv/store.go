// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Key/value stores the defaults are applied to.

package testenv

import (
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Store is a process wide key/value configuration store.
type Store interface {
	// Lookup returns the value of key and whether it is set at all.
	Lookup(key string) (string, bool)
	// Set stores value under key.
	Set(key, value string) error
}

// Environ returns the Store backed by the process environment.
func Environ() Store {
	return environ{}
}

type environ struct{}

func (environ) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (environ) Set(key, value string) error {
	return errors.Wrapf(os.Setenv(key, value), "set %s", key)
}

// MapStore is an in-memory Store, safe for concurrent use.
type MapStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMapStore returns a MapStore holding a copy of seed.
func NewMapStore(seed map[string]string) *MapStore {
	values := make(map[string]string, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &MapStore{values: values}
}

// ParseEnviron builds a MapStore from KEY=VALUE pairs as returned by
// os.Environ. Entries without "=" are ignored.
func ParseEnviron(pairs []string) *MapStore {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			continue
		}
		values[k] = v
	}
	return &MapStore{values: values}
}

// Lookup implements Store.
func (s *MapStore) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok
}

// Set implements Store.
func (s *MapStore) Set(key, value string) error {
	if key == "" {
		return errors.New("empty key")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Snapshot returns a copy of every key and value.
func (s *MapStore) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
