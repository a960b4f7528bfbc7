package finder

import (
	"container/heap"

	"github.com/sirupsen/logrus"

	"github.com/voyra/voyra/core"
	"github.com/voyra/voyra/route"
)

// Finder answers route queries against a read-only FlightGraph.
type Finder struct {
	graph *core.FlightGraph
	log   logrus.FieldLogger
}

// New constructs a Finder over g.
func New(g *core.FlightGraph, opts ...Option) *Finder {
	f := &Finder{
		graph: g,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// weightFunc maps a flight to its edge weight for one criterion.
type weightFunc func(*core.Flight) float64

// FindRoute computes the optimal route from origin to destination under the
// given criterion. The returned route carries ID 0 (computed, not persisted)
// and aggregates derived from its flight sequence.
//
// Unresolved codes, unknown criteria, and unreachable destinations are
// ordinary outcomes: logged at warn level and reported via the package
// sentinels, never raised.
func (f *Finder) FindRoute(originIATA, destinationIATA string, criterion Criterion) (*route.Route, error) {
	// 1. Resolve both endpoints; either missing fails the query as a whole.
	origin := f.graph.Airport(originIATA)
	destination := f.graph.Airport(destinationIATA)
	if origin == nil || destination == nil {
		f.log.WithFields(logrus.Fields{"origin": originIATA, "destination": destinationIATA}).
			Warn("route query with unresolved airport code")
		return nil, ErrAirportNotFound
	}

	// 2. Dispatch on criterion; the first three share the Dijkstra core with
	//    a criterion-specific weight function.
	switch criterion {
	case Cheapest:
		return f.dijkstra(origin.IATA, destination.IATA, func(fl *core.Flight) float64 {
			return fl.Price
		})
	case Fastest:
		// Connection time is charged per flight, first leg included; the
		// constant offset cancels out between candidate paths.
		return f.dijkstra(origin.IATA, destination.IATA, func(fl *core.Flight) float64 {
			return float64(fl.Duration + route.StopoverTime)
		})
	case FewestStopovers:
		return f.dijkstra(origin.IATA, destination.IATA, func(*core.Flight) float64 {
			return 1
		})
	case Slowest:
		return f.slowest(origin.IATA, destination.IATA)
	default:
		f.log.WithField("criterion", int(criterion)).Warn("route query with unknown criterion")
		return nil, ErrBadCriterion
	}
}

// dijkstra runs the shared shortest-path core with a pluggable edge weight.
//
// The heap holds (cumulative weight, airport, flight path so far) frontier
// entries under the lazy decrease-key strategy: improvements push duplicates,
// and stale entries are skipped when popped. The search returns as soon as
// the destination is popped, so a same-origin query yields the trivial
// zero-flight route on the very first pop.
func (f *Finder) dijkstra(origin, destination string, weight weightFunc) (*route.Route, error) {
	best := map[string]float64{origin: 0}

	pq := make(frontier, 0, 16)
	heap.Init(&pq)
	heap.Push(&pq, &frontierEntry{airport: origin})

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*frontierEntry)

		// Destination popped: its path is optimal under this weight.
		if cur.airport == destination {
			return route.New(0, cur.path), nil
		}

		// Skip stale entries superseded by a later improvement.
		if w, ok := best[cur.airport]; ok && cur.weight > w {
			continue
		}

		// Relax every outgoing flight.
		for _, fl := range f.graph.FlightsFrom(cur.airport) {
			next := fl.Destination
			nextWeight := cur.weight + weight(fl)

			if w, ok := best[next]; ok && nextWeight >= w {
				continue
			}
			best[next] = nextWeight

			path := make([]*core.Flight, len(cur.path), len(cur.path)+1)
			copy(path, cur.path)
			path = append(path, fl)

			heap.Push(&pq, &frontierEntry{weight: nextWeight, airport: next, path: path})
		}
	}

	f.log.WithFields(logrus.Fields{"origin": origin, "destination": destination}).
		Warn("no route between airports")

	return nil, ErrNoRoute
}

// frontierEntry is one candidate in the Dijkstra priority queue.
type frontierEntry struct {
	weight  float64        // cumulative weight from the origin
	airport string         // IATA code of the frontier airport
	path    []*core.Flight // flights taken to reach it, in order
}

// frontier is a min-heap of frontier entries ordered by cumulative weight.
// Equal weights have no defined order; ties resolve by heap behavior.
type frontier []*frontierEntry

func (pq frontier) Len() int            { return len(pq) }
func (pq frontier) Less(i, j int) bool  { return pq[i].weight < pq[j].weight }
func (pq frontier) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierEntry)) }

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	entry := old[n-1]
	*pq = old[:n-1]

	return entry
}
