package models

import "time"

// PlaintextCacheEntry is one short-lived decrypted password in the autofill
// plaintext cache. Entries self-expire: any read past ExpiryTime deletes the
// entry and reports a miss. There is no background sweep.
type PlaintextCacheEntry struct {
	Password   string    `json:"password"`
	StoredAt   time.Time `json:"storedAt"`
	ExpiryTime time.Time `json:"expiryTime"`
}

// Expired reports whether the entry has passed its expiry time at now.
func (e PlaintextCacheEntry) Expired(now time.Time) bool {
	return now.After(e.ExpiryTime)
}
