// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cache implements the lightcache engine: a named key-value store
// with per-entry TTLs and three storage modes (memory, disk, hybrid). A
// Store is the client-facing facade; backends hold the actual mapping
// either in process memory or in one JSON file per store name.
package cache
