// Package store persists named configuration objects as flat key/value pairs.
//
// Keys are dotted paths such as "cron.limit". Set only stages a change; nothing
// is durable until Save, and Save either writes every staged key or none.
package store

import (
	"context"
	"sync"
)

// Store is the keyed configuration store the settings form writes into.
// A nil value means the key is absent.
type Store interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Save(ctx context.Context) error
}

// staged holds the committed snapshot plus the changes not yet saved.
// Backends embed it and only implement the durable write.
type staged struct {
	mu        sync.Mutex
	committed map[string]any
	pending   map[string]any
}

func (s *staged) load(committed map[string]any) {
	if committed == nil {
		committed = map[string]any{}
	}
	s.committed = committed
	s.pending = map[string]any{}
}

// Get returns the staged value if there is one, the committed value otherwise.
func (s *staged) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.pending[key]; ok {
		return v, v != nil
	}
	v, ok := s.committed[key]
	return v, ok && v != nil
}

func (s *staged) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[key] = value
}

// commit runs write with the merged snapshot and the staged changes.
// On success the merge becomes the committed state and the stage is cleared;
// on failure both are left untouched.
func (s *staged) commit(write func(merged, changes map[string]any) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	merged := make(map[string]any, len(s.committed)+len(s.pending))
	for k, v := range s.committed {
		merged[k] = v
	}
	for k, v := range s.pending {
		merged[k] = v
	}
	if err := write(merged, s.pending); err != nil {
		return err
	}
	s.committed = merged
	s.pending = map[string]any{}
	return nil
}

// Memory is a Store that keeps everything in process. Save never fails.
type Memory struct {
	staged
}

func NewMemory() *Memory {
	m := &Memory{}
	m.load(nil)
	return m
}

func (m *Memory) Save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.commit(func(_, _ map[string]any) error { return nil })
}
