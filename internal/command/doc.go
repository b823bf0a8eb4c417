// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command wires the lcache subcommands. Each command is a thin
// shell over the cache engine; no cache semantics live here.
package command
