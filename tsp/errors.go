// SPDX-License-Identifier: MIT

package tsp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flightnet/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Solve.
	ErrGraphNil = errors.New("tsp: graph is nil")

	// ErrTooFewVertices indicates fewer than two airports; no round trip exists.
	ErrTooFewVertices = errors.New("tsp: need at least 2 airports")

	// ErrVertexNotFound indicates the start airport is missing.
	ErrVertexNotFound = fmt.Errorf("tsp: %w", core.ErrVertexNotFound)

	// ErrNegativeWeight is returned when any fare is negative.
	ErrNegativeWeight = errors.New("tsp: negative fare")

	// ErrIncompleteGraph indicates some airport cannot reach another, so no
	// round trip covers the whole network.
	ErrIncompleteGraph = errors.New("tsp: network is disconnected")

	// ErrFareOverflow indicates that the fares needed to connect the airports,
	// or to close the round trip, sum past MaxInt64.
	ErrFareOverflow = errors.New("tsp: fare sum overflows int64")

	// ErrTooManyAirports is returned when ExactHeldKarp is asked to solve more
	// than MaxExactAirports airports.
	ErrTooManyAirports = errors.New("tsp: too many airports for exact solver")

	// ErrUnsupportedAlgorithm is recorded by WithAlgorithm for unknown values.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrOptionViolation is recorded for invalid numeric options.
	ErrOptionViolation = errors.New("tsp: option violation")
)
