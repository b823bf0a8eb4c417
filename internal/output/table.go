// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
)

// TableWriter renders rows in a borderless tabular form, optionally
// colored. Used by the stores listing.
func TableWriter(w io.Writer, headers []string, rows [][]string, color bool) {
	headerStyle := lipgloss.NewStyle().Align(lipgloss.Left)
	cellStyle := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Left)

	if color {
		headerStyle = headerStyle.Foreground(lipgloss.Color("45"))
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Rows(rows...)

	if len(headers) > 0 {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}

	fmt.Fprintln(w, t)
}
