// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/apex/log"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/lightcachego/internal/cache"
	"github.com/staranto/lightcachego/internal/meta"
)

// PutCommandAction is the action handler for the "put" subcommand. The
// value comes from the second positional argument, or stdin when absent.
// Values that parse as JSON are stored structured; anything else is stored
// as a plain string.
func PutCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	key, err := RequireKey(cmd)
	if err != nil {
		return err
	}

	raw := cmd.Args().Get(1)
	if raw == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read value from stdin: %w", err)
		}
		raw = string(data)
	}
	if raw == "" {
		return fmt.Errorf("put requires a VALUE argument or stdin input")
	}

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		value = raw
	}

	ttl := cache.DefaultTTL
	switch {
	case cmd.Bool("forever"):
		ttl = cache.NoExpiry
	case cmd.Duration("ttl") > 0:
		ttl = cmd.Duration("ttl")
	}

	store, err := OpenStore(cmd)
	if err != nil {
		return err
	}

	return store.Put(key, value, ttl)
}

func PutCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&StoreCommandBuilder{
		Name:      "put",
		Usage:     "cache a value under a key",
		UsageText: `lcache put KEY [VALUE] [options]`,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "ttl",
				Usage: "time until the entry expires",
				Sources: cli.NewValueSourceChain(
					cli.EnvVar("LCACHE_TTL"),
					yaml.YAML("put.ttl", altsrc.StringSourcer(cfg.Source)),
					yaml.YAML("ttl", altsrc.StringSourcer(cfg.Source)),
				),
				Value: 5 * time.Minute,
			},
			&cli.BoolFlag{
				Name:        "forever",
				Usage:       "never expire the entry",
				HideDefault: true,
			},
		},
		Action: PutCommandAction,
		Meta:   meta,
	}).Build()
}
