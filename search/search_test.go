package search_test

import (
	"testing"

	"github.com/voyra/voyra/core"
	"github.com/voyra/voyra/search"
)

func fixtureIndex() *search.Index {
	flights := []*core.Flight{
		{ID: 1, Origin: "VIE", Destination: "JFK", Airline: "Austrian Airlines", Number: "OS87"},
		{ID: 2, Origin: "VIE", Destination: "LHR", Airline: "British Airways", Number: "BA701"},
		{ID: 3, Origin: "LHR", Destination: "JFK", Airline: "American Airlines", Number: "AA100"},
	}
	airports := map[string]*core.Airport{
		"VIE": {ID: 1, IATA: "VIE", City: "Vienna"},
		"JFK": {ID: 2, IATA: "JFK", City: "New York"},
		"LHR": {ID: 3, IATA: "LHR", City: "London"},
	}

	return search.NewIndex(flights, airports)
}

// TestByOrigin verifies the case-insensitive origin scan and airport carry.
func TestByOrigin(t *testing.T) {
	res := fixtureIndex().ByOrigin("vie")

	if res.Count() != 2 {
		t.Fatalf("ByOrigin(vie) count = %d; want 2", res.Count())
	}
	if res.Airport == nil || res.Airport.IATA != "VIE" {
		t.Errorf("ByOrigin(vie) airport = %+v; want VIE", res.Airport)
	}
}

// TestByDestination verifies the destination scan, including an unknown code
// yielding an empty, airport-less result rather than an error.
func TestByDestination(t *testing.T) {
	ix := fixtureIndex()

	if got := ix.ByDestination("JFK").Count(); got != 2 {
		t.Errorf("ByDestination(JFK) count = %d; want 2", got)
	}

	res := ix.ByDestination("XXX")
	if res.Count() != 0 || res.Airport != nil {
		t.Errorf("ByDestination(XXX) = %d matches, airport %+v; want 0 and nil",
			res.Count(), res.Airport)
	}
}

// TestByAirline verifies case-insensitive substring matching.
func TestByAirline(t *testing.T) {
	res := fixtureIndex().ByAirline("airlines")

	if res.Count() != 2 {
		t.Fatalf("ByAirline(airlines) count = %d; want 2", res.Count())
	}
	for _, f := range res.Flights {
		if f.ID != 1 && f.ID != 3 {
			t.Errorf("unexpected match %+v", f)
		}
	}
}

// TestByNumber verifies case-insensitive exact designator matching.
func TestByNumber(t *testing.T) {
	ix := fixtureIndex()

	if got := ix.ByNumber("aa100").Count(); got != 1 {
		t.Errorf("ByNumber(aa100) count = %d; want 1", got)
	}
	if got := ix.ByNumber("AA10").Count(); got != 0 {
		t.Errorf("ByNumber(AA10) count = %d; want 0 (no partial match)", got)
	}
}
