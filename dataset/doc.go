// Package dataset loads airports, flights, and persisted routes from flat
// CSV files, wires the flight graph during ingestion, and writes routes back
// out.
//
// Every reader skips the header row and handles malformed records
// individually: the row is dropped with a warning and loading continues.
// The algorithmic packages downstream therefore only ever see well-typed
// values. Flights referencing an unknown origin or destination airport are
// dropped the same way.
//
// Route files come in two shapes. The full record
// (id,flightIds,totalDuration,totalPrice,stopovers) carries precomputed
// aggregates that are trusted verbatim on read. The legacy two-column shape
// (id,flightIds) has its aggregates recomputed from the resolved flights.
// SaveRoutes always writes the full record. Flight IDs within a record are
// hyphen-joined, e.g. "1-47-18".
package dataset
