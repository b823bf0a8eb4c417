// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/staranto/lightcachego/internal/cache"
)

func TestOutputValidator(t *testing.T) {
	assert.NoError(t, OutputValidator("raw"))
	assert.NoError(t, OutputValidator("json"))
	assert.NoError(t, OutputValidator("yaml"))
	assert.Error(t, OutputValidator("toml"))
	assert.Error(t, OutputValidator(""))
}

func TestGetMeta_Missing(t *testing.T) {
	m := GetMeta(nil)
	assert.Empty(t, m.Args)

	m = GetMeta(&cli.Command{})
	assert.Empty(t, m.Args)
}

// probeStore parses args through a minimal command carrying the global
// flags and runs OpenStore inside the action, the same way the real
// subcommands do.
func probeStore(t *testing.T, args ...string) (*cache.Store, error) {
	t.Helper()

	var store *cache.Store
	var openErr error

	cmd := &cli.Command{
		Name:  "probe",
		Flags: NewGlobalFlags("probe"),
		Action: func(_ context.Context, c *cli.Command) error {
			store, openErr = OpenStore(c)
			return nil
		},
	}

	require.NoError(t, cmd.Run(context.Background(), append([]string{"probe"}, args...)))
	return store, openErr
}

func TestOpenStore_ModeMapping(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    cache.Mode
		wantErr bool
	}{
		{name: "defaults are hybrid", want: cache.Hybrid},
		{name: "no-persist is memory", args: []string{"--no-persist"}, want: cache.Memory},
		{name: "no-memory is disk", args: []string{"--no-memory"}, want: cache.Disk},
		{name: "neither is an error", args: []string{"--no-persist", "--no-memory"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())

			store, err := probeStore(t, tt.args...)
			if tt.wantErr {
				assert.ErrorIs(t, err, cache.ErrConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, store.Mode())
		})
	}
}

func TestOpenStore_HonorsStoreAndDir(t *testing.T) {
	t.Chdir(t.TempDir())

	store, err := probeStore(t, "--store", "Movies", "--dir", "cachedir")
	require.NoError(t, err)

	assert.Equal(t, "movies", store.Name())
	assert.Equal(t, filepath.Join("cachedir", "movies.json"), store.Path())
}
