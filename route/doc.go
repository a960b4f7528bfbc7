// Package route defines the Route value produced by the route finder, its
// derived aggregates, and the total orders used to sort route collections.
//
// A Route is an ordered sequence of flight IDs plus three aggregates fixed at
// construction: total price, total duration (flight minutes plus a mandatory
// StopoverTime per connection), and the stopover count. Routes built from
// live flights compute their aggregates once; routes rebuilt from persisted
// records trust the stored aggregates verbatim and never recompute.
//
// Comparators are pure three-way functions over aggregates. They impose no
// order among routes that tie on every compared field.
package route
