package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilOrigin indicates a flight was added with a nil origin airport.
	ErrNilOrigin = errors.New("core: origin airport is nil")
)

// Airport represents a node in the flight graph.
//
// IATA uniquely identifies the airport within a graph. The remaining fields
// are display payload and never participate in routing decisions.
// An Airport is immutable once created.
type Airport struct {
	// ID is the numeric identifier carried by the source dataset.
	ID int

	// IATA is the three-letter airport code, e.g. "VIE" or "JFK".
	IATA string

	// City and Country locate the airport for presentation.
	City    string
	Country string

	// Latitude and Longitude are geographic coordinates in degrees.
	Latitude  float64
	Longitude float64
}

// String renders the airport for console output.
func (a *Airport) String() string {
	return fmt.Sprintf("%s - %s, %s [ID: %d, Coords: %.2f, %.2f]",
		a.IATA, a.City, a.Country, a.ID, a.Latitude, a.Longitude)
}

// Flight represents a directed edge between two airports.
//
// ID uniquely identifies the flight. Duration is in minutes and Price is the
// fare for the leg; both are non-negative. Departure is a display-only
// time-of-day string and never enters weight calculations.
// A Flight is immutable once created.
type Flight struct {
	// ID is the unique numeric identifier for this flight.
	ID int

	// Origin and Destination are IATA codes of the endpoints.
	Origin      string
	Destination string

	// Airline is the operating carrier name.
	Airline string

	// Number is the flight designator, e.g. "AA100".
	Number string

	// Duration is the flight time in minutes.
	Duration int

	// Price is the fare for this leg.
	Price float64

	// Departure is the scheduled time of day, e.g. "06:45". Display only.
	Departure string
}

// String renders the flight for console output.
func (f *Flight) String() string {
	return fmt.Sprintf("Flight %s [ID: %d] - %s -> %s | %s | Duration: %d min | Price: $%.2f | Departs: %s",
		f.Number, f.ID, f.Origin, f.Destination, f.Airline, f.Duration, f.Price, f.Departure)
}

// NormalizeIATA upper-cases and trims an airport code. Graph lookups use the
// stored code verbatim; callers normalize user input at the boundary.
func NormalizeIATA(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
