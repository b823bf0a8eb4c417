// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/lightcachego/internal/meta"
)

// HasCommandAction is the action handler for the "has" subcommand. It
// prints true/false and exits 3 on a miss so scripts can branch on the
// exit code alone.
func HasCommandAction(ctx context.Context, cmd *cli.Command) error {
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

	if !store.Has(key) {
		fmt.Println("false")
		return cli.Exit("", missExitCode)
	}

	fmt.Println("true")
	return nil
}

func HasCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&StoreCommandBuilder{
		Name:      "has",
		Usage:     "check whether a key is present and live",
		UsageText: `lcache has KEY [options]`,
		Action:    HasCommandAction,
		Meta:      meta,
	}).Build()
}
