package search

import (
	"fmt"
	"strings"

	"github.com/voyra/voyra/core"
)

// Result is the outcome of one linear search.
type Result struct {
	// Airport is the resolved airport for code-based queries, nil otherwise
	// (airline and flight-number queries, or an unknown code).
	Airport *core.Airport

	// Flights are the matches in original list order.
	Flights []*core.Flight

	// Criteria describes the query for display, e.g. "Origin: VIE".
	Criteria string
}

// Count reports the number of matching flights.
func (r *Result) Count() int { return len(r.Flights) }

// String renders the result block for console output.
func (r *Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Search Criteria: %s\n", r.Criteria)
	if r.Airport != nil {
		fmt.Fprintf(&b, "Airport: %s\n", r.Airport)
	}
	fmt.Fprintf(&b, "Found %d flight(s)\n", r.Count())
	for i, f := range r.Flights {
		fmt.Fprintf(&b, "%d. %s\n", i+1, f)
	}

	return b.String()
}

// Index scans a fixed flight list built during ingestion.
type Index struct {
	flights  []*core.Flight
	airports map[string]*core.Airport
}

// NewIndex constructs an Index over the loaded flights and airport lookup.
func NewIndex(flights []*core.Flight, airports map[string]*core.Airport) *Index {
	return &Index{flights: flights, airports: airports}
}

// ByOrigin finds all flights departing from the given IATA code.
func (ix *Index) ByOrigin(iata string) *Result {
	return &Result{
		Airport:  ix.airports[core.NormalizeIATA(iata)],
		Flights:  ix.scan(func(f *core.Flight) bool { return strings.EqualFold(f.Origin, iata) }),
		Criteria: "Origin: " + iata,
	}
}

// ByDestination finds all flights arriving at the given IATA code.
func (ix *Index) ByDestination(iata string) *Result {
	return &Result{
		Airport:  ix.airports[core.NormalizeIATA(iata)],
		Flights:  ix.scan(func(f *core.Flight) bool { return strings.EqualFold(f.Destination, iata) }),
		Criteria: "Destination: " + iata,
	}
}

// ByAirline finds all flights whose airline name contains the given fragment,
// case-insensitively.
func (ix *Index) ByAirline(airline string) *Result {
	needle := strings.ToLower(airline)

	return &Result{
		Flights: ix.scan(func(f *core.Flight) bool {
			return strings.Contains(strings.ToLower(f.Airline), needle)
		}),
		Criteria: "Airline: " + airline,
	}
}

// ByNumber finds all flights with the given designator.
func (ix *Index) ByNumber(number string) *Result {
	return &Result{
		Flights:  ix.scan(func(f *core.Flight) bool { return strings.EqualFold(f.Number, number) }),
		Criteria: "Flight Number: " + number,
	}
}

// scan walks the full flight list collecting matches.
func (ix *Index) scan(match func(*core.Flight) bool) []*core.Flight {
	var out []*core.Flight
	for _, f := range ix.flights {
		if match(f) {
			out = append(out, f)
		}
	}

	return out
}
