package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/voyra/voyra/dataset"
	"github.com/voyra/voyra/finder"
	"github.com/voyra/voyra/route"
	"github.com/voyra/voyra/routesort"
	"github.com/voyra/voyra/search"
)

// App is the interactive console planner: a menu loop over the loader,
// finder, sorter, and search components.
type App struct {
	cfg    *Config
	in     *bufio.Reader
	loader *dataset.Loader
	finder *finder.Finder
	index  *search.Index
	routes []*route.Route
}

// NewApp wires an App over fresh components.
func NewApp(cfg *Config) *App {
	return &App{
		cfg:    cfg,
		in:     bufio.NewReader(os.Stdin),
		loader: dataset.NewLoader(),
	}
}

// Run drives the menu loop until the user exits.
func (a *App) Run() {
	fmt.Println("==============================================")
	fmt.Println("  VOYRA - Flight Route Planner")
	fmt.Println("  Graph-based route optimization and search")
	fmt.Println("==============================================")

	for {
		a.printMenu()
		switch a.readInt("Enter your choice: ") {
		case 1:
			a.handleLoadData()
		case 2:
			a.handleFindRoute()
		case 3:
			a.handleLoadRoutes()
		case 4:
			a.handleSortRoutes()
		case 5:
			a.handleSearch()
		case 6:
			a.handleSaveRoutes()
		case 7:
			fmt.Println("\nGoodbye!")
			return
		default:
			fmt.Println("Invalid choice. Please enter a number between 1 and 7.")
		}
	}
}

func (a *App) printMenu() {
	fmt.Println("\n============ MAIN MENU ============")
	fmt.Println("1. Load airports and flights")
	fmt.Println("2. Find a route")
	fmt.Println("3. Load saved routes")
	fmt.Println("4. Sort loaded routes")
	fmt.Println("5. Search flights")
	fmt.Println("6. Save routes")
	fmt.Println("7. Exit")
	fmt.Println("===================================")
}

func (a *App) handleLoadData() {
	airports, err := a.loader.ReadAirports(a.cfg.AirportsFile)
	if err != nil {
		fmt.Println("Error loading airports:", err)
		return
	}
	flights, err := a.loader.ReadFlights(a.cfg.FlightsFile)
	if err != nil {
		fmt.Println("Error loading flights:", err)
		return
	}

	a.finder = finder.New(a.loader.Graph())
	a.index = search.NewIndex(a.loader.Flights(), a.loader.Airports())
	fmt.Printf("Loaded %d airports and %d flights.\n", airports, flights)
}

func (a *App) handleFindRoute() {
	if a.finder == nil {
		fmt.Println("Please load airports and flights first (option 1).")
		return
	}

	origin := strings.ToUpper(a.readLine("Enter origin IATA code (e.g. VIE): "))
	destination := strings.ToUpper(a.readLine("Enter destination IATA code (e.g. JFK): "))

	fmt.Println("\nSelect criterion:")
	fmt.Println("1. Cheapest")
	fmt.Println("2. Fastest")
	fmt.Println("3. Fewest Stopovers")
	fmt.Println("4. Slowest")
	criterion := finder.Criterion(a.readInt("Enter criterion (1-4): "))

	r, err := a.finder.FindRoute(origin, destination, criterion)
	switch {
	case errors.Is(err, finder.ErrAirportNotFound):
		fmt.Println("Unknown origin or destination airport.")
	case errors.Is(err, finder.ErrBadCriterion):
		fmt.Println("Unknown criterion; please pick 1-4.")
	case errors.Is(err, finder.ErrNoRoute):
		fmt.Printf("No route found between %s and %s.\n", origin, destination)
	case err != nil:
		fmt.Println("Error:", err)
	default:
		a.printRoute(r)
		a.routes = append(a.routes, r)
	}
}

func (a *App) handleLoadRoutes() {
	routes, err := a.loader.ReadRoutes(a.cfg.RoutesFile)
	if err != nil {
		fmt.Println("Error loading routes:", err)
		return
	}
	a.routes = routes
	fmt.Printf("Loaded %d routes.\n", len(routes))
}

func (a *App) handleSortRoutes() {
	if len(a.routes) == 0 {
		fmt.Println("No routes loaded yet (options 2 and 3 produce them).")
		return
	}

	fmt.Println("\nSort by:")
	for sel := route.SelectPrice; sel <= route.SelectCombined; sel++ {
		fmt.Printf("%d. %s\n", sel, route.ComparatorName(sel))
	}
	cmp := route.ComparatorFor(a.readInt("Enter comparator (1-4): "))
	if cmp == nil {
		fmt.Println("Unknown comparator; please pick 1-4.")
		return
	}

	stable := strings.EqualFold(a.readLine("Stable sort? (y/n): "), "y")
	if stable {
		routesort.Stable(a.routes, routesort.Compare[*route.Route](cmp))
	} else {
		routesort.Unstable(a.routes, routesort.Compare[*route.Route](cmp))
	}

	fmt.Println("\nSorted routes:")
	for _, r := range a.routes {
		fmt.Println(" ", r)
	}
}

func (a *App) handleSearch() {
	if a.index == nil {
		fmt.Println("Please load airports and flights first (option 1).")
		return
	}

	fmt.Println("\nSearch by:")
	fmt.Println("1. Origin airport")
	fmt.Println("2. Destination airport")
	fmt.Println("3. Airline")
	fmt.Println("4. Flight number")

	var res *search.Result
	switch a.readInt("Enter search type (1-4): ") {
	case 1:
		res = a.index.ByOrigin(a.readLine("Origin IATA code: "))
	case 2:
		res = a.index.ByDestination(a.readLine("Destination IATA code: "))
	case 3:
		res = a.index.ByAirline(a.readLine("Airline name (or part): "))
	case 4:
		res = a.index.ByNumber(a.readLine("Flight number: "))
	default:
		fmt.Println("Unknown search type; please pick 1-4.")
		return
	}

	fmt.Println()
	fmt.Print(res)
}

func (a *App) handleSaveRoutes() {
	if len(a.routes) == 0 {
		fmt.Println("No routes to save.")
		return
	}

	// Computed routes carry ID 0; assign sequential IDs before persisting.
	next := 1
	for _, r := range a.routes {
		if r.ID >= next {
			next = r.ID + 1
		}
	}
	for _, r := range a.routes {
		if r.ID == 0 {
			r.ID = next
			next++
		}
	}

	if err := a.loader.SaveRoutes(a.cfg.RoutesFile, a.routes); err != nil {
		fmt.Println("Error saving routes:", err)
		return
	}
	fmt.Printf("Saved %d routes to %s.\n", len(a.routes), a.cfg.RoutesFile)
}

// printRoute renders a route with per-leg details resolved from the loader.
func (a *App) printRoute(r *route.Route) {
	fmt.Println("\n=== Route found ===")
	fmt.Printf("Total Duration: %s | Total Price: $%.2f | Stopovers: %d\n",
		r.FormattedDuration(), r.TotalPrice, r.Stopovers)
	for i, id := range r.FlightIDs {
		f := a.loader.Flight(id)
		if f == nil {
			log.WithField("flight", id).Warn("route references unknown flight")
			continue
		}
		fmt.Printf("Leg %d: %s\n", i+1, f)
		if i < len(r.FlightIDs)-1 {
			fmt.Printf("  Stopover: %d minutes\n", route.StopoverTime)
		}
	}
	if len(r.FlightIDs) == 0 {
		fmt.Println("(trivial route: origin equals destination)")
	}
}

// readLine prompts and returns one trimmed input line.
func (a *App) readLine(prompt string) string {
	fmt.Print(prompt)
	line, _ := a.in.ReadString('\n')

	return strings.TrimSpace(line)
}

// readInt prompts until it gets something; non-numeric input returns -1,
// which every menu treats as an invalid choice.
func (a *App) readInt(prompt string) int {
	n, err := strconv.Atoi(a.readLine(prompt))
	if err != nil {
		return -1
	}

	return n
}
