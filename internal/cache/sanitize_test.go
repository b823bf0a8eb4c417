// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStore(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "test", want: "test"},
		{name: "hyphen", in: "test-file", want: "test-file"},
		{name: "underscore", in: "test_file", want: "test_file"},
		{name: "lowercased", in: "Movies", want: "movies"},
		{name: "parent traversal stripped", in: "../test", want: "test"},
		{name: "absolute path stripped", in: "/etc/passwd", want: "passwd"},
		{name: "nested path stripped", in: "folder/subfolder/file", want: "file"},
		{name: "special chars removed", in: "test!@#$%^&*()", want: "test"},
		{name: "spaces removed", in: "hello world", want: "helloworld"},
		{name: "dots removed", in: "file.txt", want: "filetxt"},
		{name: "mixed", in: "$pecial.file.name", want: "pecialfilename"},
		{name: "empty falls back", in: "", want: DefaultStore},
		{name: "only dots falls back", in: "...", want: DefaultStore},
		{name: "only spaces falls back", in: "   ", want: DefaultStore},
		{name: "only symbols falls back", in: "#@!", want: DefaultStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeStore(tt.in))
		})
	}
}

func TestSanitizeDirectory(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "relative", in: "test_dir", want: "test_dir"},
		{name: "dot prefixed", in: "./test_dir", want: "test_dir"},
		{name: "nested", in: filepath.Join("test_dir", "subdir"), want: filepath.Join("test_dir", "subdir")},
		{name: "dot is cwd", in: ".", want: "."},
		{name: "empty is cwd", in: "", want: "."},
		{name: "parent escape falls back", in: "../outside", want: DefaultDirectory},
		{name: "deep parent escape falls back", in: "../../outside", want: DefaultDirectory},
		{name: "mid-path escape falls back", in: "test_dir/../../outside", want: DefaultDirectory},
		{name: "absolute outside cwd falls back", in: "/etc", want: DefaultDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeDirectory(tt.in))
		})
	}

	t.Run("absolute inside cwd becomes relative", func(t *testing.T) {
		cwd, err := os.Getwd()
		assert.NoError(t, err)
		assert.Equal(t, "test_dir", sanitizeDirectory(filepath.Join(cwd, "test_dir")))
	})
}

func TestStorePath(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		want string
	}{
		{name: "with directory", dir: "cache_dir", want: filepath.Join("cache_dir", "test_cache.json")},
		{name: "nested directory", dir: filepath.Join("path", "to", "cache"), want: filepath.Join("path", "to", "cache", "test_cache.json")},
		{name: "dot directory", dir: ".", want: "test_cache.json"},
		{name: "empty directory", dir: "", want: "test_cache.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, storePath(tt.dir, "test_cache"))
		})
	}
}
