// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so failures are easy to grep.
// Callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into a renderer.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNilWriter indicates that a nil io.Writer was supplied.
	ErrNilWriter = errors.New("matrix: writer is nil")

	// ErrUnknownBorder indicates that WithBorder received a name that does not
	// map to a lipgloss border.
	ErrUnknownBorder = errors.New("matrix: unknown table border")
)
