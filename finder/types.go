package finder

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Criterion selects the optimization objective for a route query.
// The numeric values match the menu and persisted query encoding (1-4).
type Criterion int

const (
	// Cheapest minimizes total price.
	Cheapest Criterion = iota + 1

	// Fastest minimizes total duration including connection time.
	Fastest

	// FewestStopovers minimizes the number of flights.
	FewestStopovers

	// Slowest maximizes total duration over simple paths of at most
	// MaxStopovers+1 flights.
	Slowest
)

// MaxStopovers bounds the slowest-route search: at most MaxStopovers
// connections, hence MaxStopovers+1 flights.
const MaxStopovers = 3

// String names the criterion for menus and logs.
func (c Criterion) String() string {
	switch c {
	case Cheapest:
		return "Cheapest"
	case Fastest:
		return "Fastest"
	case FewestStopovers:
		return "Fewest Stopovers"
	case Slowest:
		return "Slowest"
	default:
		return "Unknown"
	}
}

// Sentinel errors. All three are anticipated no-result outcomes, never fatal
// conditions; callers distinguish them with errors.Is.
var (
	// ErrAirportNotFound indicates an unresolved origin or destination code.
	ErrAirportNotFound = errors.New("finder: origin or destination airport not found")

	// ErrBadCriterion indicates an unrecognized criterion value.
	ErrBadCriterion = errors.New("finder: unknown route criterion")

	// ErrNoRoute indicates no path exists within the criterion's constraints.
	ErrNoRoute = errors.New("finder: no route found")
)

// Option configures a Finder.
type Option func(*Finder)

// WithLogger replaces the default (standard logrus) logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(f *Finder) { f.log = log }
}
