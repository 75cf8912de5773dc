// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the boxed table renderer.
//
// Invalid values never panic. The first bad option is recorded and returned
// by RenderTable, the same way bfs and pathcost surface ErrOptionViolation.
package matrix

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultBorder is the border used when WithBorder is not supplied.
const DefaultBorder = "rounded"

// borders maps configuration names to lipgloss border sets.
var borders = map[string]lipgloss.Border{
	"ascii":   lipgloss.ASCIIBorder(),
	"double":  lipgloss.DoubleBorder(),
	"normal":  lipgloss.NormalBorder(),
	"rounded": lipgloss.RoundedBorder(),
	"thick":   lipgloss.ThickBorder(),
}

// Option mutates table options.
type Option func(*Options)

// Options stores the effective table configuration.
type Options struct {
	border      lipgloss.Border
	borderColor lipgloss.TerminalColor
	hideZero    bool

	err error
}

// defaultOptions returns the rounded, teal-bordered layout.
func defaultOptions() Options {
	return Options{
		border:      borders[DefaultBorder],
		borderColor: colorBorder,
	}
}

// gatherOptions applies opts over the defaults and returns the first error.
func gatherOptions(opts ...Option) (Options, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o, o.err
}

// WithBorder selects a border by name (see BorderNames). Names are
// case-insensitive. Unknown names yield ErrUnknownBorder from RenderTable.
func WithBorder(name string) Option {
	return func(o *Options) {
		b, ok := borders[strings.ToLower(name)]
		if !ok {
			if o.err == nil {
				o.err = fmt.Errorf("%w: %q", ErrUnknownBorder, name)
			}
			return
		}
		o.border = b
	}
}

// WithBorderColor overrides the border foreground, e.g. lipgloss.Color("63").
func WithBorderColor(c lipgloss.TerminalColor) Option {
	return func(o *Options) {
		o.borderColor = c
	}
}

// WithHideZero renders "no edge" cells as blanks instead of 0.
func WithHideZero() Option {
	return func(o *Options) {
		o.hideZero = true
	}
}

// BorderNames lists the accepted WithBorder names in sorted order.
func BorderNames() []string {
	names := make([]string, 0, len(borders))
	for name := range borders {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ValidBorder reports whether name is accepted by WithBorder.
func ValidBorder(name string) bool {
	_, ok := borders[strings.ToLower(name)]

	return ok
}
