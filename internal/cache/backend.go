// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/apex/log"
)

// backend holds the key->Entry mapping for one named store. Load and Save
// always move the whole mapping; callers are expected to hold the store
// lock across a load-mutate-save sequence.
type backend interface {
	Load() (map[string]Entry, error)
	Save(map[string]Entry) error
}

// memoryBackend keeps the mapping on the process heap. Load hands out the
// live map rather than a copy, which is fine because the Store serializes
// all access to it.
type memoryBackend struct {
	m map[string]Entry
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{m: map[string]Entry{}}
}

func (b *memoryBackend) Load() (map[string]Entry, error) { return b.m, nil }

func (b *memoryBackend) Save(m map[string]Entry) error {
	b.m = m
	return nil
}

// ensureDirectory creates the cache directory up front so an unwritable
// location fails at construction instead of on the first Put. "" and "."
// mean the working directory, which needs no creating.
func ensureDirectory(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil { //nolint:mnd
		return &CacheIOError{Op: "mkdir", Path: dir, Err: err}
	}
	return nil
}

// diskBackend serializes the mapping to a single JSON file. The file is
// created lazily on first save and read whole on every load. There is no
// cross-process locking; concurrent writers from separate processes are
// last-writer-wins, which is the documented contract for shared stores.
type diskBackend struct {
	path string
}

func newDiskBackend(path string) *diskBackend {
	return &diskBackend{path: path}
}

// Load reads and decodes the backing file. A missing file is an empty
// store, not an error. A file that is not a JSON object at all is reported
// as a *CorruptCacheError; individual entries that fail to decode are
// dropped, matching the treat-invalid-as-expired policy.
func (b *diskBackend) Load() (map[string]Entry, error) {
	raw, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]Entry{}, nil
	}
	if err != nil {
		return nil, &CacheIOError{Op: "load", Path: b.path, Err: err}
	}

	var rows map[string]json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, &CorruptCacheError{Path: b.path, Err: err}
	}

	m := make(map[string]Entry, len(rows))
	for key, row := range rows {
		var e Entry
		if err := json.Unmarshal(row, &e); err != nil {
			log.Debugf("dropping undecodable entry %q in %s: %v", key, b.path, err)
			continue
		}
		m[key] = e
	}

	return m, nil
}

// Save writes the whole mapping back to the backing file. The write goes to
// a temp file in the same directory and is renamed into place, so a crash
// mid-write leaves the previous contents intact. This is best-effort
// single-writer atomicity, not a multi-writer guarantee.
func (b *diskBackend) Save(m map[string]Entry) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode cache store: %w", err)
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o700); err != nil { //nolint:mnd
		return &CacheIOError{Op: "save", Path: b.path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".lcache-*")
	if err != nil {
		return &CacheIOError{Op: "save", Path: b.path, Err: err}
	}

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if werr == nil {
		werr = cerr
	}
	if werr == nil {
		werr = os.Chmod(tmp.Name(), 0o600) //nolint:mnd
	}
	if werr == nil {
		werr = os.Rename(tmp.Name(), b.path)
	}
	if werr != nil {
		_ = os.Remove(tmp.Name())
		return &CacheIOError{Op: "save", Path: b.path, Err: werr}
	}

	return nil
}
