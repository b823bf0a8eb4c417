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

// PullCommandAction is the action handler for the "pull" subcommand: print
// the value and remove it in one step.
func PullCommandAction(ctx context.Context, cmd *cli.Command) error {
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

	value, err := store.Pull(key, nil)
	if err != nil {
		return err
	}
	if value == nil {
		if def := cmd.String("default"); def != "" {
			return output.Spit(os.Stdout, def, cmd.String("output"))
		}
		return cli.Exit("", missExitCode)
	}

	return output.Spit(os.Stdout, value, cmd.String("output"))
}

func PullCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&StoreCommandBuilder{
		Name:      "pull",
		Usage:     "print a cached value and remove it",
		UsageText: `lcache pull KEY [options]`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "default",
				Usage: "value to print when the key is missing or expired",
			},
		},
		Action: PullCommandAction,
		Meta:   meta,
	}).Build()
}
