// Package store persists string key-value pairs for player state.
package store

import (
	"context"
	"strings"
)

// KV is a string key-value store. Get returns an error wrapping
// models.ErrNotFound for missing keys.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// SetMany writes every entry or none of them
	SetMany(ctx context.Context, entries map[string]string) error
	Remove(ctx context.Context, keys ...string) error
	// Entries returns every key starting with prefix
	Entries(ctx context.Context, prefix string) (map[string]string, error)
	Ping(ctx context.Context) error
	Close() error
}

// Namespace scopes kv under prefix. Keys passed in and returned are
// relative to the prefix.
func Namespace(kv KV, prefix string) KV {
	return &namespaced{KV: kv, prefix: prefix}
}

type namespaced struct {
	KV
	prefix string
}

func (n *namespaced) Get(ctx context.Context, key string) (string, error) {
	return n.KV.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key, value string) error {
	return n.KV.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) SetMany(ctx context.Context, entries map[string]string) error {
	prefixed := make(map[string]string, len(entries))
	for k, v := range entries {
		prefixed[n.prefix+k] = v
	}
	return n.KV.SetMany(ctx, prefixed)
}

func (n *namespaced) Remove(ctx context.Context, keys ...string) error {
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = n.prefix + k
	}
	return n.KV.Remove(ctx, prefixed...)
}

func (n *namespaced) Entries(ctx context.Context, prefix string) (map[string]string, error) {
	entries, err := n.KV.Entries(ctx, n.prefix+prefix)
	if err != nil {
		return nil, err
	}
	result := make(map[string]string, len(entries))
	for k, v := range entries {
		result[strings.TrimPrefix(k, n.prefix)] = v
	}
	return result, nil
}

// Close is a no-op; the underlying store is owned by whoever created it
func (n *namespaced) Close() error {
	return nil
}
