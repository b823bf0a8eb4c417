// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/apex/log"
)

// Mode selects where a Store keeps its mapping. The mode is fixed at
// construction; there is no switching a live store between modes.
type Mode int

const (
	// Hybrid keeps an in-process map as the read path and writes every
	// mutation through to the backing file. The default.
	Hybrid Mode = iota
	// Memory keeps the mapping in process only. Contents die with the Store.
	Memory
	// Disk reloads the backing file on every call and saves it back after
	// each mutation. Recommended when many processes share one store.
	Disk
)

func (m Mode) String() string {
	switch m {
	case Hybrid:
		return "hybrid"
	case Memory:
		return "memory"
	case Disk:
		return "disk"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ModeFor derives a Mode from the two storage switches. Disabling both is a
// configuration error; a store with neither memory nor disk makes no sense.
func ModeFor(persist, keepInMemory bool) (Mode, error) {
	switch {
	case persist && keepInMemory:
		return Hybrid, nil
	case keepInMemory:
		return Memory, nil
	case persist:
		return Disk, nil
	default:
		return 0, ErrConfiguration
	}
}

const (
	// DefaultStore is the store name used when none is given or the given
	// name sanitizes away to nothing.
	DefaultStore = "default"
	// DefaultDirectory holds backing files unless the caller picks another
	// location.
	DefaultDirectory = ".cache"
	// DefaultTTL asks Put to use the store-wide default expiry.
	DefaultTTL time.Duration = 0
	// NoExpiry marks an entry that never expires.
	NoExpiry time.Duration = -1

	// defaultEntryTTL is the store-wide default when Options.TTL is unset.
	defaultEntryTTL = 5 * time.Minute
)

// Options configure a Store. The zero value is a hybrid store named
// "default" under ".cache/" with a five minute default TTL.
type Options struct {
	Mode Mode
	// Store names the namespace; each name gets its own mapping and backing
	// file, so unrelated stores can share a cache directory.
	Store string
	// Directory is where backing files live. Empty means DefaultDirectory,
	// "." means the working directory itself.
	Directory string
	// TTL is the expiry applied when Put is called with DefaultTTL.
	// NoExpiry makes unqualified Puts non-expiring.
	TTL time.Duration
	// Clock overrides time.Now, for tests.
	Clock Clock
}

// Store is the facade clients use. All operations are synchronous and
// serialized by a single per-instance mutex, so each call is an atomic
// read-modify-write of the whole mapping within this process. Nothing
// coordinates separate processes sharing a backing file.
type Store struct {
	mode Mode
	name string
	dir  string
	ttl  time.Duration
	now  Clock

	mu      sync.Mutex
	primary backend
	mirror  backend // disk write-through in hybrid mode, else nil
}

// New constructs a Store per opts. Configuration problems (an unknown mode)
// surface as ErrConfiguration; an unusable cache directory in a persisting
// mode surfaces as a *CacheIOError. Disk-backed stores shed their expired
// entries eagerly at construction.
func New(opts Options) (*Store, error) {
	if opts.Mode < Hybrid || opts.Mode > Disk {
		return nil, fmt.Errorf("%w: unknown mode %d", ErrConfiguration, int(opts.Mode))
	}

	name := DefaultStore
	if opts.Store != "" {
		name = sanitizeStore(opts.Store)
	}

	dir := DefaultDirectory
	if opts.Directory != "" {
		dir = sanitizeDirectory(opts.Directory)
	}

	ttl := opts.TTL
	if ttl == 0 {
		ttl = defaultEntryTTL
	}

	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	s := &Store{
		mode: opts.Mode,
		name: name,
		dir:  dir,
		ttl:  ttl,
		now:  now,
	}

	switch opts.Mode {
	case Memory:
		s.primary = newMemoryBackend()
		return s, nil
	case Disk:
		s.primary = newDiskBackend(storePath(dir, name))
	case Hybrid:
		mem := newMemoryBackend()
		disk := newDiskBackend(storePath(dir, name))
		mem.m = hydrate(disk)
		s.primary = mem
		s.mirror = disk
	}

	if err := ensureDirectory(dir); err != nil {
		return nil, err
	}

	// Best-effort eager purge so long-lived backing files don't accumulate
	// dead entries across sessions.
	if err := s.RemoveExpired(); err != nil {
		log.WithError(err).Warnf("failed to purge expired entries from store %s", name)
	}

	return s, nil
}

// Name returns the sanitized store name.
func (s *Store) Name() string { return s.name }

// Mode returns the storage mode fixed at construction.
func (s *Store) Mode() Mode { return s.mode }

// Path returns the backing file location for persisting modes, or "" for a
// memory-only store.
func (s *Store) Path() string {
	if s.mode == Memory {
		return ""
	}
	return storePath(s.dir, s.name)
}

// Put stores value under key, overwriting any previous entry. ttl is the
// time until the entry is treated as absent: DefaultTTL applies the
// store-wide default (five minutes unless configured), NoExpiry keeps the
// entry forever. Save failures in persisting modes surface to the caller.
func (s *Store) Put(key string, value any, ttl time.Duration) error {
	if ttl == DefaultTTL {
		ttl = s.ttl
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return err
	}

	m[key] = newEntry(value, ttl, s.now())
	return s.save(m)
}

// Get returns the live value for key, or nil when the key is absent or
// expired.
func (s *Store) Get(key string) any {
	return s.GetDefault(key, nil)
}

// GetDefault returns the live value for key, or def when the key is absent
// or expired. Absence is never an error. An expired entry is dropped from
// the mapping on the way out.
func (s *Store) GetDefault(key string, def any) any {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		log.WithError(err).Warnf("failed to load store %s, treating as miss", s.name)
		return def
	}

	e, ok := m[key]
	if !ok {
		return def
	}

	if e.expired(s.now()) {
		delete(m, key)
		if err := s.save(m); err != nil {
			log.WithError(err).Warnf("failed to drop expired key %q from store %s", key, s.name)
		}
		return def
	}

	log.Debugf("cache hit for key %q in store %s", key, s.name)
	return e.Data
}

// Has reports whether key is present and not expired.
func (s *Store) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		log.WithError(err).Warnf("failed to load store %s, treating as miss", s.name)
		return false
	}

	e, ok := m[key]
	return ok && !e.expired(s.now())
}

// Forget removes key from the store and reports whether it was present.
// Forgetting an absent key is a no-op, not an error.
func (s *Store) Forget(key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return false, err
	}

	if _, ok := m[key]; !ok {
		return false, nil
	}

	delete(m, key)
	if err := s.save(m); err != nil {
		return false, err
	}
	return true, nil
}

// Pull returns the live value for key and removes it, or returns def when
// the key is absent or expired.
func (s *Store) Pull(key string, def any) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return def, err
	}

	e, ok := m[key]
	if !ok {
		return def, nil
	}

	expired := e.expired(s.now())
	delete(m, key)
	if err := s.save(m); err != nil {
		return def, err
	}

	if expired {
		return def, nil
	}
	return e.Data, nil
}

// Keys returns the keys of all live entries, in no particular order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		log.WithError(err).Warnf("failed to load store %s", s.name)
		return nil
	}

	now := s.now()
	keys := make([]string, 0, len(m))
	for k, e := range m {
		if !e.expired(now) {
			keys = append(keys, k)
		}
	}
	return keys
}

// RemoveExpired drops every expired entry from the mapping. The mapping is
// only written back when something was actually removed, so a fresh store
// does not grow a backing file until its first Put.
func (s *Store) RemoveExpired() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return err
	}

	now := s.now()
	removed := 0
	for k, e := range m {
		if e.expired(now) {
			delete(m, k)
			removed++
		}
	}

	if removed == 0 {
		return nil
	}

	log.Debugf("removed %d expired entries from store %s", removed, s.name)
	return s.save(m)
}

// load fetches the current mapping from the primary backend. A corrupt
// backing file is downgraded to an empty mapping with a warning; losing a
// cache beats crashing over one, but the corruption stays visible in the
// log. I/O failures are returned as-is.
func (s *Store) load() (map[string]Entry, error) {
	m, err := s.primary.Load()
	if err != nil {
		var corrupt *CorruptCacheError
		if errors.As(err, &corrupt) {
			log.WithError(err).Warnf("store %s is corrupt, starting empty", s.name)
			return map[string]Entry{}, nil
		}
		return nil, err
	}
	return m, nil
}

// save writes the mapping to the primary backend and, in hybrid mode,
// through to disk before returning.
func (s *Store) save(m map[string]Entry) error {
	if err := s.primary.Save(m); err != nil {
		return err
	}
	if s.mirror != nil {
		return s.mirror.Save(m)
	}
	return nil
}

// hydrate seeds a hybrid store's memory map from its backing file. Any
// failure here means starting the session empty; write errors will still
// surface on the first mutation.
func hydrate(disk *diskBackend) map[string]Entry {
	m, err := disk.Load()
	if err != nil {
		log.WithError(err).Warnf("failed to hydrate store from %s, starting empty", disk.path)
		return map[string]Entry{}
	}
	return m
}
