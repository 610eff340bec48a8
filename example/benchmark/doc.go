// Package benchmark measures how long a Runner takes for a fixed number of FeedAll calls.
//
// It brackets the calls with a Clock, so tests can substitute a deterministic one, and
// collects results into a Report that encodes to JSON.
package benchmark
