// Package finder computes optimal routes through a FlightGraph under four
// criteria: cheapest, fastest, fewest stopovers, and slowest.
//
// The first three criteria share one Dijkstra core parameterized by an
// edge-weight function:
//
//   - Cheapest:        weight = flight price
//   - Fastest:         weight = flight duration + route.StopoverTime
//   - FewestStopovers: weight = 1 per flight
//
// The fastest criterion charges the connection time on every flight,
// including the first leg; the constant offset cancels out when comparing
// candidate paths. Dijkstra uses a lazy decrease-key min-heap whose entries
// carry the flight path discovered so far, returning as soon as the
// destination is popped. Ties between equal-cost paths resolve by heap pop
// order; no secondary ordering is imposed.
//
// The slowest criterion is a depth-bounded exhaustive DFS over simple paths
// of at most MaxStopovers+1 flights, keeping the path with the greatest total
// duration (per the route aggregate formula).
//
// Complexity:
//
//   - Dijkstra: O((V + E) log V) time, O(V + E) heap entries, plus O(path)
//     copying per relaxation for the carried paths.
//   - Slowest:  O(b^(MaxStopovers+1)) where b is the maximum out-degree;
//     termination is structural (depth bound + no-revisit), not time-based.
//
// Errors (sentinel, ordinary no-result outcomes per the error contract):
//
//   - ErrAirportNotFound: unresolved origin or destination code.
//   - ErrBadCriterion: unrecognized criterion value.
//   - ErrNoRoute: no path within the criterion's constraints.
//
// Failures are logged at warn level and returned; the finder never panics on
// valid graph data.
package finder
