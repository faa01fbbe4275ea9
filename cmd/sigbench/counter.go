package main

import "time"

var counter uint64

// add is kept out of line so the benchmarks measure a real call.
//
//go:noinline
func add(n uint64) {
	counter += n
}

//go:noinline
func addResult(n uint64) uint64 {
	counter += n
	return counter
}

func perRound(elapsed time.Duration, rounds uint64) float64 {
	if rounds == 0 {
		return 0
	}

	return float64(elapsed.Nanoseconds()) / float64(rounds)
}
