// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/lightcachego/internal/meta"
)

// ForgetCommandAction is the action handler for the "forget" subcommand.
// Forgetting an absent key succeeds quietly; forget is idempotent.
func ForgetCommandAction(ctx context.Context, cmd *cli.Command) error {
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

	found, err := store.Forget(key)
	if err != nil {
		return err
	}
	if !found {
		log.Debugf("key %q was not present", key)
	}

	return nil
}

func ForgetCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&StoreCommandBuilder{
		Name:      "forget",
		Usage:     "remove a key from the store",
		UsageText: `lcache forget KEY [options]`,
		Action:    ForgetCommandAction,
		Meta:      meta,
	}).Build()
}
