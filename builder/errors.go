// SPDX-License-Identifier: MIT
// Package: flightnet/builder
//
// errors.go - sentinel errors. Callers branch with errors.Is.

package builder

import "errors"

// ErrTooFewVertices is returned when a size parameter is below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability is returned when a probability lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource is returned when a stochastic constructor runs without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed is returned for a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation is returned when an option received an invalid value.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrGraphNil is returned by Apply for a nil graph.
var ErrGraphNil = errors.New("builder: graph is nil")
