// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/staranto/lightcachego/internal/cache"
	"github.com/staranto/lightcachego/internal/meta"
)

// missExitCode is returned by lookups that find nothing, so scripts can
// branch on it without parsing output.
const missExitCode = 3

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// OpenStore builds a cache.Store from the common flags. The persist/memory
// switches map straight onto the engine's storage modes; disabling both is
// rejected by the engine itself.
func OpenStore(cmd *cli.Command) (*cache.Store, error) {
	mode, err := cache.ModeFor(cmd.Bool("persist"), cmd.Bool("memory"))
	if err != nil {
		return nil, err
	}

	return cache.New(cache.Options{
		Mode:      mode,
		Store:     cmd.String("store"),
		Directory: cmd.String("dir"),
	})
}

// RequireKey pulls the positional KEY argument or fails with usage help.
func RequireKey(cmd *cli.Command) (string, error) {
	key := cmd.Args().First()
	if key == "" {
		return "", fmt.Errorf("%s requires a KEY argument", cmd.Name)
	}
	return key, nil
}

// OutputValidator rejects unknown --output values.
func OutputValidator(value string) error {
	switch value {
	case "raw", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unknown output format %q (want raw, json or yaml)", value)
}

// StoreCommandBuilder is a helper that constructs a cli.Command for the
// store subcommands using a consistent pattern. It accepts the command
// name, usage text, optional UsageText, custom flags, the action handler,
// and meta. The builder automatically wires metadata and applies the
// global flags.
type StoreCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (scb *StoreCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      scb.Name,
		Usage:     scb.Usage,
		UsageText: scb.UsageText,
		Metadata: map[string]any{
			"meta": scb.Meta,
		},
		Flags:  append(scb.Flags, NewGlobalFlags(scb.Name)...),
		Action: scb.Action,
	}
}
