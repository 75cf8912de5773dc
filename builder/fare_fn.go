// SPDX-License-Identifier: MIT
// Package: flightnet/builder
//
// fare_fn.go - fare generators. Generators never return 0, which the
// graph reserves for "no route".

package builder

import "math/rand"

// DefaultFare is the fare emitted by DefaultFareFn.
const DefaultFare int64 = 1

// FareFn draws the fare for one route. rng may be nil.
type FareFn func(rng *rand.Rand) int64

// DefaultFareFn returns DefaultFare.
func DefaultFareFn(_ *rand.Rand) int64 {
	return DefaultFare
}

// ConstantFare returns a FareFn that always yields value (0 becomes DefaultFare).
func ConstantFare(value int64) FareFn {
	if value == 0 {
		value = DefaultFare
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformFare returns a FareFn drawing uniformly from [min, max].
// min is raised to 1 and max to min when out of order. Without an RNG the
// generator yields min.
func UniformFare(min, max int64) FareFn {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
