// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/lightcachego/internal/meta"
	"github.com/staranto/lightcachego/internal/output"
)

// GetCommandAction is the action handler for the "get" subcommand. It
// prints the live value for KEY, or the --default when the key is missing
// or expired. Without a default a miss exits 3 so scripts can branch.
func GetCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	key, err := RequireKey(cmd)
	if err != nil {
		return err
	}

	store, err := OpenStore(cmd)
	if err != nil {
		return err
	}

	value := store.Get(key)
	if value == nil {
		if def := cmd.String("default"); def != "" {
			return output.Spit(os.Stdout, def, cmd.String("output"))
		}
		return cli.Exit("", missExitCode)
	}

	if path := cmd.String("path"); path != "" {
		sub, ok := output.Extract(value, path)
		if !ok {
			log.Debugf("path %q matched nothing in key %q", path, key)
			return cli.Exit("", missExitCode)
		}
		value = sub
	}

	return output.Spit(os.Stdout, value, cmd.String("output"))
}

func GetCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&StoreCommandBuilder{
		Name:      "get",
		Usage:     "print a cached value",
		UsageText: `lcache get KEY [options]`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "default",
				Usage: "value to print when the key is missing or expired",
			},
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Usage:   "extract a sub-value by gjson path, e.g. crew.director",
			},
		},
		Action: GetCommandAction,
		Meta:   meta,
	}).Build()
}
