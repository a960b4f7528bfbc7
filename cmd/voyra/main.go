package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file (optional)")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	SetupLogger(cfg)

	log.WithFields(log.Fields{
		"airports": cfg.AirportsFile,
		"flights":  cfg.FlightsFile,
		"routes":   cfg.RoutesFile,
	}).Info("voyra console planner starting")

	NewApp(cfg).Run()
}
