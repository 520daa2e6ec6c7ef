// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session provides the in-process, TTL-bounded cache for short-lived
// secrets. Its main tenant is the unlocked master secret, kept just long
// enough that decrypt requests arriving within the session window do not
// force the user through authentication again.
package session

import (
	"sync"
	"time"
)

// MasterSecretKey is the cache key under which the unlocked master secret is
// stored after a successful vault unlock.
const MasterSecretKey = "master_secret"

// DefaultTTL is the session window applied when Set is called with a
// non-positive TTL.
const DefaultTTL = 5 * time.Minute

type entry struct {
	value    string
	expireAt time.Time
}

// Cache is a concurrency-safe key/value map whose entries expire. Expiry is
// checked lazily on read; there is no background sweeper. Values never leave
// the process.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewCache constructs an empty session cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]entry)}
}

// Set stores value under key for ttl. A non-positive ttl falls back to
// [DefaultTTL]. Setting an existing key restarts its window.
func (c *Cache) Set(key, value string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expireAt: time.Now().Add(ttl)}
}

// Get returns the value stored under key and true, or "" and false when the
// key is absent or its window has passed. An expired entry is deleted on
// read, so a second Get reports the same miss.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}
	if time.Now().After(e.expireAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", false
	}
	return e.value, true
}

// Delete removes key from the cache. Deleting an absent key is a no-op.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear drops every cached entry. Called on vault lock.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}
