// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpit(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		format  string
		want    string
		wantErr bool
	}{
		{name: "raw string stays bare", value: "hello", format: "raw", want: "hello\n"},
		{name: "empty format means raw", value: "hello", format: "", want: "hello\n"},
		{name: "raw non-string is compact json", value: map[string]any{"a": 1}, format: "raw", want: "{\"a\":1}\n"},
		{name: "json", value: map[string]any{"a": 1}, format: "json", want: "{\n  \"a\": 1\n}\n"},
		{name: "yaml", value: map[string]any{"a": 1}, format: "yaml", want: "a: 1\n"},
		{name: "unknown format", value: "x", format: "toml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Spit(&buf, tt.value, tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestExtract(t *testing.T) {
	value := map[string]any{
		"title": "Alien",
		"crew":  map[string]any{"director": "Ridley Scott"},
		"cast":  []any{"Weaver", "Holm"},
	}

	tests := []struct {
		name  string
		path  string
		want  any
		found bool
	}{
		{name: "top level", path: "title", want: "Alien", found: true},
		{name: "nested", path: "crew.director", want: "Ridley Scott", found: true},
		{name: "array index", path: "cast.1", want: "Holm", found: true},
		{name: "missing", path: "crew.producer", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Extract(value, tt.path)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
