// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/flightnet/core"
)

// Palette for the boxed table. Colors degrade to plain text when the output
// is not a terminal.
var (
	colorBorder = lipgloss.Color("#16858E")
	colorHeader = lipgloss.Color("#2CD7C7")
	colorMuted  = lipgloss.Color("#2C4A54")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeader).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	emptyStyle  = cellStyle.Foreground(colorMuted)
)

// RenderTable returns the adjacency matrix of g as a bordered lipgloss table.
// The first row and column carry the vertex labels. An empty graph renders as "".
//
// Implementation:
//   - Stage 1: Resolve options; the first invalid option is returned.
//   - Stage 2: Snapshot g and build string rows.
//   - Stage 3: Style header, label column and empty cells via StyleFunc.
//
// Complexity: O(V²).
func RenderTable(g *core.Graph, opts ...Option) (string, error) {
	if g == nil {
		return "", ErrGraphNil
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return "", err
	}

	snap := g.Snapshot()
	n := snap.Len()
	if n == 0 {
		return "", nil
	}

	headers := make([]string, 0, n+1)
	headers = append(headers, "")
	headers = append(headers, snap.Labels()...)

	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, 0, n+1)
		row = append(row, snap.Label(i))
		for j := 0; j < n; j++ {
			switch {
			case snap.Adjacent(i, j):
				row = append(row, strconv.FormatInt(snap.Weight(i, j), 10))
			case o.hideZero:
				row = append(row, "")
			default:
				row = append(row, "0")
			}
		}
		rows[i] = row
	}

	t := table.New().
		Border(o.border).
		BorderStyle(lipgloss.NewStyle().Foreground(o.borderColor)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return labelStyle
			case !snap.Adjacent(row, col-1):
				return emptyStyle
			default:
				return cellStyle
			}
		})

	return t.String(), nil
}
