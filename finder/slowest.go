package finder

import (
	"github.com/sirupsen/logrus"

	"github.com/voyra/voyra/core"
	"github.com/voyra/voyra/route"
)

// slowest finds the maximum-duration simple path of at most MaxStopovers+1
// flights via exhaustive depth-bounded DFS. Unlike the Dijkstra criteria it
// never stops at the first hit: every path inside the bound is examined.
func (f *Finder) slowest(origin, destination string) (*route.Route, error) {
	// A query to itself is the trivial empty route, matching the shortest-path
	// criteria. The DFS cannot produce it: the origin is marked visited for
	// the whole exploration, so no non-empty path may close back on it.
	if origin == destination {
		return route.New(0, nil), nil
	}

	w := &slowestWalker{
		graph:       f.graph,
		destination: destination,
		visited:     make(map[string]bool),
	}
	w.walk(origin, 0)

	if len(w.best) == 0 {
		f.log.WithFields(logrus.Fields{"origin": origin, "destination": destination}).
			Warn("no slowest route within the stopover bound")
		return nil, ErrNoRoute
	}

	return route.New(0, w.best), nil
}

// slowestWalker holds the mutable DFS state: the in-place path buffer and
// visited set are extended before each recursion and restored on return.
type slowestWalker struct {
	graph       *core.FlightGraph
	destination string
	visited     map[string]bool // airports on the current path
	path        []*core.Flight  // current path buffer, mutated in place
	best        []*core.Flight  // longest-duration path found so far
}

// walk explores from iata at the given depth (flights taken so far).
func (w *slowestWalker) walk(iata string, depth int) {
	// Depth bound: a path of MaxStopovers+1 flights is allowed; one that
	// would need a further flight is rejected before any work at that depth.
	if depth > MaxStopovers+1 {
		return
	}

	// Destination reached on a non-empty path: keep it if strictly longer.
	if iata == w.destination && len(w.path) > 0 {
		if route.PathDuration(w.path) > route.PathDuration(w.best) {
			w.best = append(w.best[:0], w.path...)
		}
		return
	}

	w.visited[iata] = true

	for _, fl := range w.graph.FlightsFrom(iata) {
		if w.visited[fl.Destination] {
			continue // simple paths only
		}
		w.path = append(w.path, fl)
		w.walk(fl.Destination, depth+1)
		w.path = w.path[:len(w.path)-1]
	}

	delete(w.visited, iata)
}
