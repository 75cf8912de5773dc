// Package tsp plans round trips over a flight network: a closed tour that
// leaves the home airport, visits every other airport once and returns.
//
// Flight networks are rarely complete, so Solve first builds the metric
// closure of the fare matrix (Floyd–Warshall). Two airports without a direct
// flight are treated as joined by their cheapest connection, and the
// returned Tour.Itinerary lists the actual flights flown.
//
// Solvers
//
//   - ExactHeldKarp: optimal, O(n²·2ⁿ). Limited to MaxExactAirports.
//   - NearestNeighbor: greedy O(n²) construction, refined by first-improvement
//     2-opt unless WithLocalSearch(false).
//   - Auto (default): exact up to AutoExactLimit airports, greedy above.
//
// # Determinism
//
// Every tie is broken by the lower vertex index and tours are oriented so
// that the stop after home has the lower index of home's two tour neighbors.
// The same graph therefore always yields the same tour.
//
// Errors
//
//   - ErrGraphNil, ErrTooFewVertices (fewer than 2 airports).
//   - ErrVertexNotFound for an unknown start (matches core.ErrVertexNotFound).
//   - ErrNegativeWeight, ErrIncompleteGraph (disconnected network).
//   - ErrTooManyAirports, ErrUnsupportedAlgorithm, ErrOptionViolation.
package tsp
