// Copyright 2025 Contributors to the passport-verify project.
// SPDX-License-Identifier: MIT

/*
Package tokenstore holds the correlation token between the two halves of a
verification run: the request id issued with the authn request and the
response that eventually posts back. Entries are keyed by an opaque session
key and consumed on load, so a token can complete at most one run.
*/
package tokenstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Store persists request ids across the user's round-trip to the hub. Keys
// must be per-session; the Strategy's save/load callbacks are the usual
// consumers.
type Store interface {
	Save(ctx context.Context, key, requestID string) error

	// Load returns the request id held for key and removes it. ErrNotFound
	// is returned when nothing is held, including for a key already loaded
	// once or expired.
	Load(ctx context.Context, key string) (string, error)
}

// ErrNotFound is returned by Load when no request id is held for the key.
var ErrNotFound = errors.New("no request id stored for key")

// DefaultTTL bounds how long a user can take at the identity provider
// before the run is abandoned.
const DefaultTTL = 15 * time.Minute

// NewSessionKey returns a fresh opaque key suitable for binding a store
// entry to a browser session.
func NewSessionKey() string {
	return uuid.NewString()
}
