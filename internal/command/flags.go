// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/lightcachego/internal/cache"
	"github.com/staranto/lightcachego/internal/config"
)

func init() {
	cfg, _ = config.Load("")
}

var cfg config.Type

// NewGlobalFlags returns the flags shared by every subcommand. params[0] is
// the command name, used to namespace config file lookups so e.g. put.store
// overrides the top-level store.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "store",
			Aliases: []string{"s"},
			Usage:   "store name to operate on",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("LCACHE_STORE"),
				yaml.YAML(params[0]+"."+"store", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("store", altsrc.StringSourcer(cfg.Source)),
			),
			Value: cache.DefaultStore,
		},
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "directory holding the backing files",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("LCACHE_DIR"),
				yaml.YAML(params[0]+"."+"directory", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("directory", altsrc.StringSourcer(cfg.Source)),
			),
			Value: cache.DefaultDirectory,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"output", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("output", altsrc.StringSourcer(cfg.Source)),
			),
			Value: "raw",
			Validator: func(value string) error {
				return OutputValidator(value)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:  "persist",
			Usage: "keep the store on disk",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"persist", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("persist", altsrc.StringSourcer(cfg.Source)),
			),
			Value: true,
		},
		&cli.BoolWithInverseFlag{
			Name:  "memory",
			Usage: "keep the store in process memory",
			Value: true,
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"color", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("color", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
	}

	return
}
