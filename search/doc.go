// Package search provides linear (no-skip) scans over the loaded flight
// list: by origin, destination, airline, and flight number.
//
// Every query walks the full flight slice; no indexes or skipping. Matching
// is case-insensitive, exact for IATA codes and flight numbers, substring for
// airline names.
package search
