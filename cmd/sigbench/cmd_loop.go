package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jessevdk/go-flags"
)

func init() {
	parser.AddCommand("loop", "Benchmark plain calls", "Measure the time of one direct callback call, for comparison with emit", &LoopCmd{})
}

var _ flags.Commander = (*LoopCmd)(nil)

// LoopCmd defines the "loop" command.
type LoopCmd struct {
	Iterations uint64 `short:"n" long:"iterations" description:"Number of calls" default:"999999"`
}

// Execute runs the loop command.
func (c *LoopCmd) Execute(args []string) error {
	fn := add

	start := counter
	began := time.Now()
	for range c.Iterations {
		fn(1)
	}
	elapsed := time.Since(began)

	if moved := counter - start; moved != c.Iterations {
		return fmt.Errorf("counter moved by %d, want %d", moved, c.Iterations)
	}

	slog.Info("benchmark done", "iterations", c.Iterations, "elapsed", elapsed)
	fmt.Printf("callback loop: %fns per round\n", perRound(elapsed, c.Iterations))

	return nil
}
