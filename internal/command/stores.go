// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/lightcachego/internal/meta"
	"github.com/staranto/lightcachego/internal/output"
)

// StoresCommandAction is the action handler for the "stores" subcommand.
// It lists every backing file under the cache directory, one store per
// row. An empty or missing directory is not an error; there is just
// nothing to list.
func StoresCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	dir := cmd.String("dir")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var rows [][]string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			log.WithError(err).Warnf("failed to stat %s", e.Name())
			continue
		}
		rows = append(rows, []string{
			strings.TrimSuffix(e.Name(), ".json"),
			humanize.Bytes(uint64(info.Size())), //nolint:gosec
			humanize.Time(info.ModTime()),
		})
	}

	if len(rows) == 0 {
		log.Debugf("no stores under %s", filepath.Clean(dir))
		return nil
	}

	output.TableWriter(os.Stdout, []string{"STORE", "SIZE", "MODIFIED"}, rows, cmd.Bool("color"))
	return nil
}

func StoresCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&StoreCommandBuilder{
		Name:      "stores",
		Usage:     "list the stores under the cache directory",
		UsageText: `lcache stores [options]`,
		Action:    StoresCommandAction,
		Meta:      meta,
	}).Build()
}
