// Package voyra is a flight route planning toolkit: a directed weighted
// graph of scheduled flights between airports, a four-criterion route finder,
// comparator-driven sorting with an explicit stability contract, and linear
// flight search, fed by flat CSV datasets.
//
// Packages:
//
//   - core:      Airport, Flight, and the adjacency-list FlightGraph.
//   - route:     the Route value, its aggregates, and the comparator set.
//   - finder:    cheapest / fastest / fewest-stopovers (shared Dijkstra core)
//     and slowest (depth-bounded DFS) route queries.
//   - routesort: in-place stable merge sort and unstable quicksort.
//   - search:    linear scans over the loaded flight list.
//   - dataset:   CSV ingestion, graph wiring, and route persistence.
//
// Commands:
//
//   - cmd/voyra:  interactive console planner.
//   - cmd/voyrad: JSON HTTP facade over the same engine.
//
// The graph is built once during ingestion and is read-only afterwards; all
// queries are synchronous and single-threaded.
package voyra
