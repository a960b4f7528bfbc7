package finder_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/voyra/voyra/core"
	"github.com/voyra/voyra/finder"
	"github.com/voyra/voyra/route"
)

// FinderSuite exercises the four criteria on a small fixed network:
//
//	VIE→JFK direct        price 800, duration 540
//	VIE→LHR→JFK two-leg   price 150+400=550, duration 120+480 (+20 stopover)
//	VIE→FRA→LHR three-leg feeder for longer paths
//
// The metrics disagree by construction, so each criterion picks a different
// winner.
type FinderSuite struct {
	suite.Suite
	graph  *core.FlightGraph
	finder *finder.Finder
}

func (s *FinderSuite) SetupTest() {
	s.graph = core.NewFlightGraph()

	airports := map[string]*core.Airport{}
	for i, iata := range []string{"VIE", "LHR", "JFK", "FRA"} {
		a := &core.Airport{ID: i + 1, IATA: iata}
		airports[iata] = a
		s.graph.AddAirport(a)
	}

	flights := []*core.Flight{
		{ID: 1, Origin: "VIE", Destination: "JFK", Duration: 540, Price: 800},
		{ID: 2, Origin: "VIE", Destination: "LHR", Duration: 120, Price: 150},
		{ID: 3, Origin: "LHR", Destination: "JFK", Duration: 480, Price: 400},
		{ID: 4, Origin: "VIE", Destination: "FRA", Duration: 90, Price: 100},
		{ID: 5, Origin: "FRA", Destination: "LHR", Duration: 100, Price: 120},
	}
	for _, f := range flights {
		s.Require().NoError(s.graph.AddFlight(f, airports[f.Origin]))
	}

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	s.finder = finder.New(s.graph, finder.WithLogger(quiet))
}

// TestCheapest picks the two-leg route: 550 < 800.
func (s *FinderSuite) TestCheapest() {
	r, err := s.finder.FindRoute("VIE", "JFK", finder.Cheapest)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{2, 3}, r.FlightIDs)
	require.Equal(s.T(), 550.0, r.TotalPrice)
	require.Equal(s.T(), 620, r.TotalDuration, "120+480 plus one stopover")
	require.Equal(s.T(), 1, r.Stopovers)
	require.Zero(s.T(), r.ID, "computed routes carry ID 0")
}

// TestFastest picks the direct flight: 540 < 620.
func (s *FinderSuite) TestFastest() {
	r, err := s.finder.FindRoute("VIE", "JFK", finder.Fastest)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{1}, r.FlightIDs)
	require.Equal(s.T(), 540, r.TotalDuration)
}

// TestFewestStopovers picks the direct flight: 1 hop < 2 hops.
func (s *FinderSuite) TestFewestStopovers() {
	r, err := s.finder.FindRoute("VIE", "JFK", finder.FewestStopovers)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{1}, r.FlightIDs)
	require.Equal(s.T(), 0, r.Stopovers)
}

// TestSlowest picks the longest simple path within the stopover bound:
// VIE→FRA→LHR→JFK = 90+100+480 plus two stopovers.
func (s *FinderSuite) TestSlowest() {
	r, err := s.finder.FindRoute("VIE", "JFK", finder.Slowest)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{4, 5, 3}, r.FlightIDs)
	require.Equal(s.T(), 710, r.TotalDuration)
}

// TestSameOriginDestination: the trivial zero-flight route, any criterion.
func (s *FinderSuite) TestSameOriginDestination() {
	for _, c := range []finder.Criterion{finder.Cheapest, finder.Fastest, finder.FewestStopovers, finder.Slowest} {
		r, err := s.finder.FindRoute("VIE", "VIE", c)
		require.NoError(s.T(), err, "criterion %s", c)
		require.Empty(s.T(), r.FlightIDs, "criterion %s", c)
		require.Zero(s.T(), r.TotalPrice, "criterion %s", c)
		require.Zero(s.T(), r.TotalDuration, "criterion %s", c)
		require.Zero(s.T(), r.Stopovers, "criterion %s", c)
	}
}

// TestUnknownAirports: unresolved codes are an ordinary no-result outcome.
func (s *FinderSuite) TestUnknownAirports() {
	_, err := s.finder.FindRoute("XXX", "JFK", finder.Cheapest)
	require.ErrorIs(s.T(), err, finder.ErrAirportNotFound)

	_, err = s.finder.FindRoute("VIE", "XXX", finder.Cheapest)
	require.ErrorIs(s.T(), err, finder.ErrAirportNotFound)
}

// TestBadCriterion: out-of-range criteria are likewise ordinary outcomes.
func (s *FinderSuite) TestBadCriterion() {
	for _, c := range []finder.Criterion{0, 5, -1, 42} {
		_, err := s.finder.FindRoute("VIE", "JFK", c)
		require.ErrorIs(s.T(), err, finder.ErrBadCriterion, "criterion %d", int(c))
	}
}

// TestUnreachable: a destination with no incoming path yields ErrNoRoute.
func (s *FinderSuite) TestUnreachable() {
	// JFK has no outgoing flights, so nothing reaches VIE from it.
	_, err := s.finder.FindRoute("JFK", "VIE", finder.Cheapest)
	require.ErrorIs(s.T(), err, finder.ErrNoRoute)

	_, err = s.finder.FindRoute("JFK", "VIE", finder.Slowest)
	require.ErrorIs(s.T(), err, finder.ErrNoRoute)
}

func TestFinderSuite(t *testing.T) {
	suite.Run(t, new(FinderSuite))
}

//----------------------------------------------------------------------------//
// Brute-force cross-check
//----------------------------------------------------------------------------//

// TestCheapest_MatchesBruteForce enumerates every simple path on a small
// dense graph and checks that Dijkstra's price is the global minimum.
func TestCheapest_MatchesBruteForce(t *testing.T) {
	g := core.NewFlightGraph()
	airports := map[string]*core.Airport{}
	for i, iata := range []string{"AAA", "BBB", "CCC", "DDD", "EEE"} {
		a := &core.Airport{ID: i + 1, IATA: iata}
		airports[iata] = a
		g.AddAirport(a)
	}

	flights := []*core.Flight{
		{ID: 1, Origin: "AAA", Destination: "BBB", Price: 120, Duration: 60},
		{ID: 2, Origin: "AAA", Destination: "CCC", Price: 80, Duration: 45},
		{ID: 3, Origin: "BBB", Destination: "DDD", Price: 55, Duration: 30},
		{ID: 4, Origin: "CCC", Destination: "BBB", Price: 20, Duration: 25},
		{ID: 5, Origin: "CCC", Destination: "DDD", Price: 95, Duration: 70},
		{ID: 6, Origin: "DDD", Destination: "EEE", Price: 40, Duration: 50},
		{ID: 7, Origin: "BBB", Destination: "EEE", Price: 200, Duration: 90},
		{ID: 8, Origin: "AAA", Destination: "EEE", Price: 400, Duration: 20},
	}
	for _, f := range flights {
		if err := g.AddFlight(f, airports[f.Origin]); err != nil {
			t.Fatalf("AddFlight(%d): %v", f.ID, err)
		}
	}

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	f := finder.New(g, finder.WithLogger(quiet))

	r, err := f.FindRoute("AAA", "EEE", finder.Cheapest)
	if err != nil {
		t.Fatalf("FindRoute: %v", err)
	}

	best := bruteForceCheapest(g, "AAA", "EEE")
	if r.TotalPrice != best {
		t.Errorf("cheapest price = %.2f; brute force says %.2f", r.TotalPrice, best)
	}
	// AAA→CCC→BBB→DDD→EEE = 80+20+55+40 = 195.
	if r.TotalPrice != 195 {
		t.Errorf("cheapest price = %.2f; want 195", r.TotalPrice)
	}
}

// bruteForceCheapest enumerates all simple paths by DFS and returns the
// minimum total price to the destination.
func bruteForceCheapest(g *core.FlightGraph, origin, destination string) float64 {
	best := -1.0
	visited := map[string]bool{}

	var walk func(iata string, cost float64)
	walk = func(iata string, cost float64) {
		if iata == destination {
			if best < 0 || cost < best {
				best = cost
			}
			return
		}
		visited[iata] = true
		for _, f := range g.FlightsFrom(iata) {
			if !visited[f.Destination] {
				walk(f.Destination, cost+f.Price)
			}
		}
		delete(visited, iata)
	}
	walk(origin, 0)

	return best
}

//----------------------------------------------------------------------------//
// Fastest weight parity
//----------------------------------------------------------------------------//

// TestFastest_UniformStopoverCharge pins the per-flight connection charge:
// a 100-minute direct flight must lose to two 35-minute legs, because the
// comparison includes one stopover unit on every flight (100+20 = 120 versus
// 35+20+35+20 = 110), while the reported aggregate still follows the route
// formula (70 flight minutes + one 20-minute stopover).
func TestFastest_UniformStopoverCharge(t *testing.T) {
	g := core.NewFlightGraph()
	airports := map[string]*core.Airport{}
	for i, iata := range []string{"AAA", "BBB", "CCC"} {
		a := &core.Airport{ID: i + 1, IATA: iata}
		airports[iata] = a
		g.AddAirport(a)
	}
	flights := []*core.Flight{
		{ID: 1, Origin: "AAA", Destination: "CCC", Duration: 100, Price: 1},
		{ID: 2, Origin: "AAA", Destination: "BBB", Duration: 35, Price: 1},
		{ID: 3, Origin: "BBB", Destination: "CCC", Duration: 35, Price: 1},
	}
	for _, f := range flights {
		if err := g.AddFlight(f, airports[f.Origin]); err != nil {
			t.Fatalf("AddFlight(%d): %v", f.ID, err)
		}
	}

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	r, err := finder.New(g, finder.WithLogger(quiet)).FindRoute("AAA", "CCC", finder.Fastest)
	if err != nil {
		t.Fatalf("FindRoute: %v", err)
	}
	if len(r.FlightIDs) != 2 {
		t.Fatalf("fastest path = %v; want the two-leg route", r.FlightIDs)
	}
	if got, want := r.TotalDuration, 35+35+route.StopoverTime; got != want {
		t.Errorf("TotalDuration = %d; want %d", got, want)
	}
}
