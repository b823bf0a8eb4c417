// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
)

// sanitizeStore normalizes a store name into a safe filename component.
// Path components are stripped, the name is lowercased, and anything that
// is not alphanumeric, underscore or hyphen is removed. An empty result
// falls back to DefaultStore.
func sanitizeStore(name string) string {
	name = strings.ToLower(name)

	// Drop any directory traversal attempt.
	base := filepath.Base(name)

	var b strings.Builder
	for _, r := range base {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}

	sanitized := b.String()
	if sanitized == "" {
		log.Warnf("store name %q is empty after sanitization, using %q", name, DefaultStore)
		return DefaultStore
	}

	return sanitized
}

// sanitizeDirectory resolves a cache directory path and confines it to the
// current working directory. Escapes via .. or absolute paths outside the
// CWD fall back to DefaultDirectory. "" and "." mean the CWD itself, i.e.
// backing files live next to the caller with no subdirectory.
func sanitizeDirectory(dir string) string {
	if dir == "" || dir == "." {
		return "."
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		log.Warnf("failed to resolve cache directory %q, using %q", dir, DefaultDirectory)
		return DefaultDirectory
	}
	abs = filepath.Clean(abs)

	cwd, err := os.Getwd()
	if err != nil {
		log.Warnf("failed to resolve working directory, using %q", DefaultDirectory)
		return DefaultDirectory
	}
	cwd = filepath.Clean(cwd)

	if abs != cwd && !strings.HasPrefix(abs, cwd+string(filepath.Separator)) {
		log.Warnf("cache directory %q escapes the working directory, using %q", dir, DefaultDirectory)
		return DefaultDirectory
	}

	rel, err := filepath.Rel(cwd, abs)
	if err != nil {
		log.Warnf("failed to relativize cache directory %q, using %q", dir, DefaultDirectory)
		return DefaultDirectory
	}
	if rel == "." {
		return DefaultDirectory
	}

	return rel
}

// storePath is the backing file location for a store name under dir, where
// dir has already been through sanitizeDirectory.
func storePath(dir, name string) string {
	if dir == "" || dir == "." {
		return name + ".json"
	}
	return filepath.Join(dir, name+".json")
}
