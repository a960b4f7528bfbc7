package core

import "fmt"

// FlightGraph is a directed adjacency-list graph of scheduled flights.
//
// Buckets are keyed by the origin airport's IATA code. An airport gains a
// bucket when it is added explicitly or when a flight departs from it; an
// airport that only ever appears as a destination has a lookup entry at most,
// never a bucket. AirportCount and FlightsFrom observe that asymmetry.
type FlightGraph struct {
	// flightsByOrigin maps an origin IATA code to its outgoing flights.
	flightsByOrigin map[string][]*Flight

	// airportsByIATA maps an IATA code to the airport record.
	airportsByIATA map[string]*Airport
}

// NewFlightGraph constructs an empty FlightGraph.
func NewFlightGraph() *FlightGraph {
	return &FlightGraph{
		flightsByOrigin: make(map[string][]*Flight),
		airportsByIATA:  make(map[string]*Airport),
	}
}

// AddAirport inserts an airport as a graph node.
//
// The adjacency bucket is created only if absent, so re-adding an airport
// never discards flights. The code→airport lookup entry is overwritten
// unconditionally: last write wins.
func (g *FlightGraph) AddAirport(a *Airport) {
	if _, ok := g.flightsByOrigin[a.IATA]; !ok {
		g.flightsByOrigin[a.IATA] = nil
	}
	g.airportsByIATA[a.IATA] = a
}

// AddFlight appends a directed flight departing from origin.
//
// The origin airport is added to the graph if missing. The destination is
// deliberately NOT auto-added: it becomes a node only when added explicitly
// or when a flight departs from it.
func (g *FlightGraph) AddFlight(f *Flight, origin *Airport) error {
	if origin == nil {
		return fmt.Errorf("%w: flight %d", ErrNilOrigin, f.ID)
	}
	g.AddAirport(origin)
	g.flightsByOrigin[origin.IATA] = append(g.flightsByOrigin[origin.IATA], f)

	return nil
}

// FlightsFrom returns all outgoing flights for an IATA code.
// Unknown codes yield an empty slice, never an error.
func (g *FlightGraph) FlightsFrom(iata string) []*Flight {
	return g.flightsByOrigin[iata]
}

// FlightsFromAirport returns all outgoing flights for an airport node.
func (g *FlightGraph) FlightsFromAirport(a *Airport) []*Flight {
	if a == nil {
		return nil
	}

	return g.flightsByOrigin[a.IATA]
}

// Airport resolves an IATA code to its airport, or nil when unknown.
func (g *FlightGraph) Airport(iata string) *Airport {
	return g.airportsByIATA[iata]
}

// AllFlights returns every flight across all adjacency buckets.
// Parallel flights appear once per occurrence.
func (g *FlightGraph) AllFlights() []*Flight {
	all := make([]*Flight, 0, g.FlightCount())
	for _, bucket := range g.flightsByOrigin {
		all = append(all, bucket...)
	}

	return all
}

// AirportCount reports the number of airports holding an adjacency bucket.
// Destination-only airports are not counted.
func (g *FlightGraph) AirportCount() int {
	return len(g.flightsByOrigin)
}

// FlightCount reports the total number of flights in the graph.
func (g *FlightGraph) FlightCount() int {
	var n int
	for _, bucket := range g.flightsByOrigin {
		n += len(bucket)
	}

	return n
}

// String summarizes the graph for logs and console output.
func (g *FlightGraph) String() string {
	return fmt.Sprintf("FlightGraph: %d airports, %d flights", g.AirportCount(), g.FlightCount())
}
