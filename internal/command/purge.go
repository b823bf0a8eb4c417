// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/lightcachego/internal/meta"
)

// PurgeCommandAction is the action handler for the "purge" subcommand. It
// rewrites the backing file without its expired entries. Opening a store
// already purges eagerly, so this is mostly an explicit maintenance hook
// for cron and scripts.
func PurgeCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	store, err := OpenStore(cmd)
	if err != nil {
		return err
	}

	return store.RemoveExpired()
}

func PurgeCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&StoreCommandBuilder{
		Name:      "purge",
		Usage:     "drop expired entries from the store",
		UsageText: `lcache purge [options]`,
		Action:    PurgeCommandAction,
		Meta:      meta,
	}).Build()
}
