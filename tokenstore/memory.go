// Copyright 2025 Contributors to the passport-verify project.
// SPDX-License-Identifier: MIT

package tokenstore

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process Store for single-instance deployments and tests.
type Memory struct {
	TTL time.Duration // per-entry lifetime; DefaultTTL when zero

	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	requestID string
	expires   time.Time
}

// NewMemory instantiates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
	}
}

func (m *Memory) Save(ctx context.Context, key, requestID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.entries == nil {
		m.entries = make(map[string]memoryEntry)
	}

	m.entries[key] = memoryEntry{
		requestID: requestID,
		expires:   time.Now().Add(m.ttl()),
	}

	return nil
}

func (m *Memory) Load(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return "", ErrNotFound
	}

	delete(m.entries, key)

	if time.Now().After(entry.expires) {
		return "", ErrNotFound
	}

	return entry.requestID, nil
}

func (m *Memory) ttl() time.Duration {
	if m.TTL > 0 {
		return m.TTL
	}
	return DefaultTTL
}
