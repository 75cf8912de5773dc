// SPDX-License-Identifier: MIT
// Package: flightnet/builder
//
// id_fn.go - vertex ID schemes. Every scheme is injective over idx ≥ 0.

package builder

import "strconv"

// IDFn maps a zero-based vertex index to its ID.
type IDFn func(idx int) string

// DefaultIDFn renders idx in decimal: "0", "1", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// airportCodeWidth is the minimum length of AirportCodeIDFn IDs.
const airportCodeWidth = 3

// AirportCodeIDFn renders idx as an upper-case base-26 code of at least three
// letters: 0 → "AAA", 1 → "AAB", 26 → "ABA", 17575 → "ZZZ", 17576 → "BAAA".
func AirportCodeIDFn(idx int) string {
	var buf []byte
	for n := idx; n > 0 || len(buf) < airportCodeWidth; n /= 26 {
		buf = append(buf, byte('A'+n%26))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// PrefixIDFn returns an IDFn producing prefix followed by the decimal index.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
