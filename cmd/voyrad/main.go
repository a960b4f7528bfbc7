package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/voyra/voyra/dataset"
	"github.com/voyra/voyra/finder"
	"github.com/voyra/voyra/search"
)

// main is the composition root for the HTTP facade: it loads the dataset,
// wires the finder and search index, and serves the JSON API.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found (using environment variables)")
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	airportsFile := getEnv("VOYRA_AIRPORTS_FILE", "data/airports.csv")
	flightsFile := getEnv("VOYRA_FLIGHTS_FILE", "data/flights.csv")
	port := getEnv("PORT", "8080")

	loader := dataset.NewLoader()
	if _, err := loader.ReadAirports(airportsFile); err != nil {
		log.Fatal(err)
	}
	if _, err := loader.ReadFlights(flightsFile); err != nil {
		log.Fatal(err)
	}

	h := NewHandler(
		finder.New(loader.Graph()),
		search.NewIndex(loader.Flights(), loader.Airports()),
		loader.Airports(),
		loader,
	)

	router := mux.NewRouter()
	h.RegisterRoutes(router)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.WithField("addr", srv.Addr).Info("voyra HTTP facade listening")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}

// getEnv returns the environment value for key, or fallback when unset.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
