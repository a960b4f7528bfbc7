package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/voyra/voyra/core"
	"github.com/voyra/voyra/dataset"
	"github.com/voyra/voyra/finder"
	"github.com/voyra/voyra/route"
	"github.com/voyra/voyra/routesort"
	"github.com/voyra/voyra/search"
)

// Handler serves the JSON API over the routing engine.
type Handler struct {
	finder   *finder.Finder
	index    *search.Index
	airports map[string]*core.Airport
	loader   *dataset.Loader
}

// NewHandler wires a Handler over the engine components.
func NewHandler(f *finder.Finder, ix *search.Index, airports map[string]*core.Airport, l *dataset.Loader) *Handler {
	return &Handler{finder: f, index: ix, airports: airports, loader: l}
}

// RegisterRoutes attaches all API endpoints to the router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/route", h.FindRoute).Methods("GET")
	router.HandleFunc("/api/airports", h.ListAirports).Methods("GET")
	router.HandleFunc("/api/flights/search", h.SearchFlights).Methods("GET")
	router.HandleFunc("/api/routes/sort", h.SortRoutes).Methods("POST")
	router.HandleFunc("/api/health", h.Health).Methods("GET")
}

// routeDTO is the wire shape of a route.
type routeDTO struct {
	ID            int       `json:"id"`
	FlightIDs     []int     `json:"flightIds"`
	TotalDuration int       `json:"totalDuration"`
	TotalPrice    float64   `json:"totalPrice"`
	Stopovers     int       `json:"stopovers"`
	Flights       []*flight `json:"flights,omitempty"`
}

// airport is the wire shape of an airport.
type airport struct {
	ID        int     `json:"id"`
	IATA      string  `json:"iata"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// flight is the wire shape of a single leg.
type flight struct {
	ID          int     `json:"id"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Airline     string  `json:"airline"`
	Number      string  `json:"number"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
	Departure   string  `json:"departure"`
}

func toFlightDTO(f *core.Flight) *flight {
	return &flight{
		ID:          f.ID,
		Origin:      f.Origin,
		Destination: f.Destination,
		Airline:     f.Airline,
		Number:      f.Number,
		Duration:    f.Duration,
		Price:       f.Price,
		Departure:   f.Departure,
	}
}

func (h *Handler) toRouteDTO(r *route.Route) *routeDTO {
	dto := &routeDTO{
		ID:            r.ID,
		FlightIDs:     r.FlightIDs,
		TotalDuration: r.TotalDuration,
		TotalPrice:    r.TotalPrice,
		Stopovers:     r.Stopovers,
	}
	if h.loader == nil {
		return dto
	}
	// Resolve legs for display; routes from persisted records may reference
	// flights outside the loaded dataset, which simply stay unresolved.
	for _, id := range r.FlightIDs {
		if f := h.loader.Flight(id); f != nil {
			dto.Flights = append(dto.Flights, toFlightDTO(f))
		}
	}

	return dto
}

// FindRoute answers GET /api/route?from=VIE&to=JFK&criterion=1.
func (h *Handler) FindRoute(w http.ResponseWriter, r *http.Request) {
	from := core.NormalizeIATA(r.URL.Query().Get("from"))
	to := core.NormalizeIATA(r.URL.Query().Get("to"))
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from and to query parameters are required")
		return
	}
	criterion, err := strconv.Atoi(r.URL.Query().Get("criterion"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "criterion must be an integer 1-4")
		return
	}

	found, err := h.finder.FindRoute(from, to, finder.Criterion(criterion))
	switch {
	case errors.Is(err, finder.ErrAirportNotFound):
		writeError(w, http.StatusNotFound, "unknown origin or destination airport")
	case errors.Is(err, finder.ErrBadCriterion):
		writeError(w, http.StatusBadRequest, "criterion must be an integer 1-4")
	case errors.Is(err, finder.ErrNoRoute):
		writeError(w, http.StatusNotFound, "no route found")
	case err != nil:
		log.WithError(err).Error("route query failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	default:
		writeJSON(w, http.StatusOK, map[string]interface{}{"route": h.toRouteDTO(found)})
	}
}

// ListAirports answers GET /api/airports with the loaded airports in IATA
// order.
func (h *Handler) ListAirports(w http.ResponseWriter, r *http.Request) {
	codes := make([]string, 0, len(h.airports))
	for iata := range h.airports {
		codes = append(codes, iata)
	}
	sort.Strings(codes)

	out := make([]*airport, 0, len(codes))
	for _, iata := range codes {
		a := h.airports[iata]
		out = append(out, &airport{
			ID:        a.ID,
			IATA:      a.IATA,
			City:      a.City,
			Country:   a.Country,
			Latitude:  a.Latitude,
			Longitude: a.Longitude,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(out),
		"airports": out,
	})
}

// SearchFlights answers GET /api/flights/search with exactly one of the
// origin, destination, airline, or number query parameters.
func (h *Handler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var res *search.Result
	switch {
	case q.Get("origin") != "":
		res = h.index.ByOrigin(q.Get("origin"))
	case q.Get("destination") != "":
		res = h.index.ByDestination(q.Get("destination"))
	case q.Get("airline") != "":
		res = h.index.ByAirline(q.Get("airline"))
	case q.Get("number") != "":
		res = h.index.ByNumber(q.Get("number"))
	default:
		writeError(w, http.StatusBadRequest, "one of origin, destination, airline, number is required")
		return
	}

	flights := make([]*flight, 0, res.Count())
	for _, f := range res.Flights {
		flights = append(flights, toFlightDTO(f))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"criteria": res.Criteria,
		"count":    res.Count(),
		"flights":  flights,
	})
}

// sortRequest is the wire shape of POST /api/routes/sort.
type sortRequest struct {
	Routes     []*routeDTO `json:"routes"`
	Comparator int         `json:"comparator"`
	Stable     bool        `json:"stable"`
}

// SortRoutes sorts a caller-provided route list by one of the four
// comparators, stably or not, and returns the sorted list.
func (h *Handler) SortRoutes(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cmp := route.ComparatorFor(req.Comparator)
	if cmp == nil {
		writeError(w, http.StatusBadRequest, "comparator must be an integer 1-4")
		return
	}

	routes := make([]*route.Route, len(req.Routes))
	for i, dto := range req.Routes {
		// A JSON null element decodes into a nil *routeDTO.
		if dto == nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		routes[i] = route.NewStored(dto.ID, dto.FlightIDs, dto.TotalDuration, dto.TotalPrice, dto.Stopovers)
	}

	if req.Stable {
		routesort.Stable(routes, routesort.Compare[*route.Route](cmp))
	} else {
		routesort.Unstable(routes, routesort.Compare[*route.Route](cmp))
	}

	out := make([]*routeDTO, len(routes))
	for i, sorted := range routes {
		out[i] = h.toRouteDTO(sorted)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"comparator": route.ComparatorName(req.Comparator),
		"stable":     req.Stable,
		"routes":     out,
	})
}

// Health answers GET /api/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
