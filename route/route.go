package route

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/voyra/voyra/core"
)

// StopoverTime is the mandatory minimum connection time, in minutes, charged
// once per stopover when aggregating a route's total duration.
const StopoverTime = 20

// Route is an ordered sequence of flights from first leg to last, with
// aggregates fixed at construction. ID zero marks a freshly computed route
// that has not been persisted yet.
type Route struct {
	// ID is the stored identifier, or 0 for an ephemeral computed route.
	ID int

	// FlightIDs lists the legs in travel order.
	FlightIDs []int

	// TotalDuration is flight minutes plus StopoverTime per connection.
	TotalDuration int

	// TotalPrice is the sum of the leg fares.
	TotalPrice float64

	// Stopovers is the number of connections: max(0, legs-1).
	Stopovers int
}

// New builds a Route from an ordered flight sequence and derives all
// aggregates. An empty sequence yields the trivial route with zero totals.
func New(id int, flights []*core.Flight) *Route {
	ids := make([]int, len(flights))
	for i, f := range flights {
		ids[i] = f.ID
	}

	var price float64
	for _, f := range flights {
		price += f.Price
	}

	return &Route{
		ID:            id,
		FlightIDs:     ids,
		TotalDuration: PathDuration(flights),
		TotalPrice:    price,
		Stopovers:     stopovers(len(flights)),
	}
}

// NewStored rebuilds a Route from a persisted record. The stored aggregates
// are trusted as-is; they are never validated against the referenced flights.
func NewStored(id int, flightIDs []int, totalDuration int, totalPrice float64, stopoverCount int) *Route {
	return &Route{
		ID:            id,
		FlightIDs:     flightIDs,
		TotalDuration: totalDuration,
		TotalPrice:    totalPrice,
		Stopovers:     stopoverCount,
	}
}

// PathDuration aggregates the total duration of an ordered flight sequence:
// the sum of leg durations plus StopoverTime per connection. An empty
// sequence has duration zero.
func PathDuration(flights []*core.Flight) int {
	if len(flights) == 0 {
		return 0
	}

	var minutes int
	for _, f := range flights {
		minutes += f.Duration
	}

	return minutes + stopovers(len(flights))*StopoverTime
}

// stopovers maps a leg count to its connection count.
func stopovers(legs int) int {
	if legs <= 1 {
		return 0
	}

	return legs - 1
}

// FormattedDuration renders the total duration as "5h 30m".
func (r *Route) FormattedDuration() string {
	return fmt.Sprintf("%dh %dm", r.TotalDuration/60, r.TotalDuration%60)
}

// String renders a one-line route summary.
func (r *Route) String() string {
	ids := make([]string, len(r.FlightIDs))
	for i, id := range r.FlightIDs {
		ids[i] = strconv.Itoa(id)
	}

	return fmt.Sprintf("Route %d: Flights [%s] | Duration: %s | Price: $%.2f | Stopovers: %d",
		r.ID, strings.Join(ids, " "), r.FormattedDuration(), r.TotalPrice, r.Stopovers)
}
