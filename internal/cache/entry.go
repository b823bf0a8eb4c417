// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import "time"

// Entry is a single cached item as it lives in a store mapping.
type Entry struct {
	// Data is the cached value. Anything encoding/json can round-trip is
	// fair game, not just strings.
	Data any `json:"data"`
	// Expires is the absolute expiry in unix seconds. nil means the entry
	// never expires.
	Expires *int64 `json:"expires"`
}

// Clock supplies the current time. Injectable so expiry tests don't sleep.
type Clock func() time.Time

// expired reports whether e is dead at now. An entry whose expiry has been
// reached is logically absent even while it is still physically present in
// the mapping.
func (e Entry) expired(now time.Time) bool {
	if e.Expires == nil {
		return false
	}
	return *e.Expires <= now.Unix()
}

// newEntry builds an Entry for value expiring ttl from now. ttl < 0 (see
// NoExpiry) produces a non-expiring entry.
func newEntry(value any, ttl time.Duration, now time.Time) Entry {
	if ttl < 0 {
		return Entry{Data: value}
	}
	expires := now.Add(ttl).Unix()
	return Entry{Data: value, Expires: &expires}
}
