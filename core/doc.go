// Package core defines the central Airport, Flight, and FlightGraph types.
//
// Airports are nodes and flights are directed, weighted edges between them.
// The graph is an adjacency list keyed by IATA code, with a secondary
// code→airport lookup. Parallel flights between the same airport pair are
// permitted; every flight stored in a bucket departs from that bucket's
// airport.
//
// The graph is built once during ingestion and treated as read-only
// afterwards; concurrent readers are safe only while no writer is active.
//
// Errors (sentinel):
//
//   - ErrNilOrigin: a flight is added with a nil origin airport.
package core
