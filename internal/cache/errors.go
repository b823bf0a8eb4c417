// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"errors"
	"fmt"
)

// ErrConfiguration is returned by New when the requested options describe a
// store that could never hold anything, e.g. neither memory nor disk storage.
var ErrConfiguration = errors.New("cache store needs memory and/or disk storage")

// CacheIOError wraps a filesystem failure during a load or save. Save
// failures always surface to the caller; a silent failure would give false
// confidence that data persisted.
type CacheIOError struct {
	Op   string
	Path string
	Err  error
}

func (e *CacheIOError) Error() string {
	return fmt.Sprintf("cache %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *CacheIOError) Unwrap() error { return e.Err }

// CorruptCacheError reports a backing file that exists but could not be
// decoded. The Store treats a corrupt file as empty for the session rather
// than crashing, but the condition is surfaced through the log so it is
// still detectable.
type CorruptCacheError struct {
	Path string
	Err  error
}

func (e *CorruptCacheError) Error() string {
	return fmt.Sprintf("corrupt cache file %s: %v", e.Path, e.Err)
}

func (e *CorruptCacheError) Unwrap() error { return e.Err }
