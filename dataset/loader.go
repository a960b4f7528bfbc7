package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/voyra/voyra/core"
	"github.com/voyra/voyra/route"
)

// Loader ingests CSV data and owns the resulting indexes and flight graph.
// Ingestion happens strictly before any query; afterwards the graph and
// indexes are read-only.
type Loader struct {
	airports   map[string]*core.Airport
	flights    map[int]*core.Flight
	flightList []*core.Flight
	graph      *core.FlightGraph
	log        logrus.FieldLogger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger replaces the default (standard logrus) logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(l *Loader) { l.log = log }
}

// NewLoader constructs an empty Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		airports: make(map[string]*core.Airport),
		flights:  make(map[int]*core.Flight),
		graph:    core.NewFlightGraph(),
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Graph returns the flight graph built so far.
func (l *Loader) Graph() *core.FlightGraph { return l.graph }

// Airports returns the IATA→airport lookup built so far.
func (l *Loader) Airports() map[string]*core.Airport { return l.airports }

// Flights returns the loaded flights in file order.
func (l *Loader) Flights() []*core.Flight { return l.flightList }

// Flight resolves a flight ID, or nil when unknown.
func (l *Loader) Flight(id int) *core.Flight { return l.flights[id] }

// ReadAirports loads airports from a CSV file with the columns
// id,iata,city,country,latitude,longitude. Returns the number of airports
// loaded. Malformed rows are skipped with a warning.
func (l *Loader) ReadAirports(path string) (int, error) {
	var count int
	err := l.readCSV(path, 6, func(rec []string) {
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			l.warnRow(path, rec, "bad airport id")
			return
		}
		lat, latErr := strconv.ParseFloat(rec[4], 64)
		lon, lonErr := strconv.ParseFloat(rec[5], 64)
		if latErr != nil || lonErr != nil {
			l.warnRow(path, rec, "bad coordinates")
			return
		}

		a := &core.Airport{
			ID:        id,
			IATA:      core.NormalizeIATA(rec[1]),
			City:      rec[2],
			Country:   rec[3],
			Latitude:  lat,
			Longitude: lon,
		}
		l.airports[a.IATA] = a
		l.graph.AddAirport(a)
		count++
	})
	if err != nil {
		return 0, err
	}

	l.log.WithFields(logrus.Fields{"file": path, "airports": count}).Info("airports loaded")

	return count, nil
}

// ReadFlights loads flights from a CSV file with the columns
// id,origin,destination,airline,number,duration,price,departure and wires
// them into the graph. Flights with unknown endpoints, negative numbers, or
// an unparsable departure time are skipped with a warning. Returns the number
// of flights loaded.
func (l *Loader) ReadFlights(path string) (int, error) {
	var count int
	err := l.readCSV(path, 8, func(rec []string) {
		id, idErr := strconv.Atoi(rec[0])
		duration, durErr := strconv.Atoi(rec[5])
		price, priceErr := strconv.ParseFloat(rec[6], 64)
		if idErr != nil || durErr != nil || priceErr != nil || duration < 0 || price < 0 {
			l.warnRow(path, rec, "bad flight numbers")
			return
		}
		departure := strings.TrimSpace(rec[7])
		if _, err := time.Parse("15:04", departure); err != nil {
			l.warnRow(path, rec, "bad departure time")
			return
		}

		origin := core.NormalizeIATA(rec[1])
		destination := core.NormalizeIATA(rec[2])
		originAirport, ok := l.airports[origin]
		if !ok {
			l.warnRow(path, rec, "unknown origin airport")
			return
		}
		if _, ok = l.airports[destination]; !ok {
			l.warnRow(path, rec, "unknown destination airport")
			return
		}

		f := &core.Flight{
			ID:          id,
			Origin:      origin,
			Destination: destination,
			Airline:     rec[3],
			Number:      rec[4],
			Duration:    duration,
			Price:       price,
			Departure:   departure,
		}
		if err := l.graph.AddFlight(f, originAirport); err != nil {
			l.warnRow(path, rec, err.Error())
			return
		}
		l.flights[f.ID] = f
		l.flightList = append(l.flightList, f)
		count++
	})
	if err != nil {
		return 0, err
	}

	l.log.WithFields(logrus.Fields{"file": path, "flights": count}).Info("flights loaded")

	return count, nil
}

// ReadRoutes loads persisted routes. Full records
// (id,flightIds,totalDuration,totalPrice,stopovers) keep their stored
// aggregates verbatim; legacy two-column records (id,flightIds) are
// recomputed from the resolved flights. Rows whose flight IDs cannot all be
// resolved in legacy form, or that are otherwise malformed, are skipped with
// a warning.
func (l *Loader) ReadRoutes(path string) ([]*route.Route, error) {
	var routes []*route.Route
	err := l.readCSV(path, 2, func(rec []string) {
		// Only the two record shapes are accepted: legacy two-column and
		// full five-column.
		if len(rec) > 2 && len(rec) < 5 {
			l.warnRow(path, rec, "unrecognized route record shape")
			return
		}
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			l.warnRow(path, rec, "bad route id")
			return
		}
		flightIDs, err := parseFlightIDs(rec[1])
		if err != nil {
			l.warnRow(path, rec, err.Error())
			return
		}

		// Full record: trust the stored aggregates, no recomputation.
		if len(rec) >= 5 {
			duration, durErr := strconv.Atoi(rec[2])
			price, priceErr := strconv.ParseFloat(rec[3], 64)
			stops, stopErr := strconv.Atoi(rec[4])
			if durErr != nil || priceErr != nil || stopErr != nil {
				l.warnRow(path, rec, "bad route aggregates")
				return
			}
			routes = append(routes, route.NewStored(id, flightIDs, duration, price, stops))
			return
		}

		// Legacy record: rebuild aggregates from the referenced flights.
		flights := make([]*core.Flight, 0, len(flightIDs))
		for _, fid := range flightIDs {
			f, ok := l.flights[fid]
			if !ok {
				l.warnRow(path, rec, fmt.Sprintf("unknown flight %d", fid))
				return
			}
			flights = append(flights, f)
		}
		routes = append(routes, route.New(id, flights))
	})
	if err != nil {
		return nil, err
	}

	l.log.WithFields(logrus.Fields{"file": path, "routes": len(routes)}).Info("routes loaded")

	return routes, nil
}

// SaveRoutes writes routes as full records:
// id,flightIds,totalDuration,totalPrice,stopovers.
func (l *Loader) SaveRoutes(path string, routes []*route.Route) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write([]string{"id", "flightIds", "totalDuration", "totalPrice", "stopovers"}); err != nil {
		return fmt.Errorf("dataset: write header: %w", err)
	}
	for _, r := range routes {
		rec := []string{
			strconv.Itoa(r.ID),
			joinFlightIDs(r.FlightIDs),
			strconv.Itoa(r.TotalDuration),
			strconv.FormatFloat(r.TotalPrice, 'f', 2, 64),
			strconv.Itoa(r.Stopovers),
		}
		if err = w.Write(rec); err != nil {
			return fmt.Errorf("dataset: write route %d: %w", r.ID, err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("dataset: flush %s: %w", path, err)
	}

	l.log.WithFields(logrus.Fields{"file": path, "routes": len(routes)}).Info("routes saved")

	return nil
}

// readCSV streams records from path, skipping the header row and any row
// shorter than minFields, and hands each remaining record to handle.
func (l *Loader) readCSV(path string, minFields int, handle func(rec []string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // row widths vary; validated per record
	r.TrimLeadingSpace = true

	header := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			l.log.WithFields(logrus.Fields{"file": path, "error": err}).Warn("skipping unreadable row")
			continue
		}
		if header {
			header = false
			continue
		}
		if len(rec) < minFields {
			l.warnRow(path, rec, "too few columns")
			continue
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		handle(rec)
	}
}

// warnRow reports a skipped record without aborting the load.
func (l *Loader) warnRow(path string, rec []string, reason string) {
	l.log.WithFields(logrus.Fields{
		"file":   path,
		"row":    strings.Join(rec, ","),
		"reason": reason,
	}).Warn("skipping invalid row")
}

// parseFlightIDs splits a hyphen-joined ID list such as "1-47-18".
func parseFlightIDs(s string) ([]int, error) {
	parts := strings.Split(s, "-")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad flight id %q", p)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// joinFlightIDs renders IDs in the persisted hyphen-joined form.
func joinFlightIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, "-")
}
