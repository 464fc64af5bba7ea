// Package cache keeps JSON-encoded query results for the read endpoints.
package cache

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("key not found in cache")

type Cache interface {
	// GetJSON decodes the cached value into dest or returns ErrNotFound.
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	// DeletePrefix drops every key starting with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}

// Noop is used when no Redis is configured: every lookup misses.
type Noop struct{}

func (Noop) GetJSON(context.Context, string, interface{}) error { return ErrNotFound }

func (Noop) SetJSON(context.Context, string, interface{}, time.Duration) error { return nil }

func (Noop) DeletePrefix(context.Context, string) error { return nil }
