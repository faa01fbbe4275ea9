package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/AnatoleLucet/sigslot"
)

func init() {
	parser.AddCommand("emit", "Benchmark emissions", "Measure the time of one emission through a signal", &EmitCmd{})
}

var _ flags.Commander = (*EmitCmd)(nil)

// EmitCmd defines the "emit" command.
type EmitCmd struct {
	Iterations uint64 `short:"n" long:"iterations" description:"Number of emissions" default:"999999"`
	Slots      int    `short:"s" long:"slots" description:"Number of connected slots" default:"1"`
	Collector  string `short:"c" long:"collector" description:"Result collector" choice:"void" choice:"last" choice:"vector" choice:"sum" default:"void"`
}

// Execute runs the emit command.
func (c *EmitCmd) Execute(args []string) error {
	if c.Slots < 1 {
		return fmt.Errorf("at least one slot is required, got %d", c.Slots)
	}

	emit, err := c.emitter()
	if err != nil {
		return err
	}

	start := counter
	began := time.Now()
	for range c.Iterations {
		emit()
	}
	elapsed := time.Since(began)

	if moved, want := counter-start, c.Iterations*uint64(c.Slots); moved != want {
		return fmt.Errorf("counter moved by %d, want %d", moved, want)
	}

	slog.Info("benchmark done",
		"collector", c.Collector,
		"slots", c.Slots,
		"iterations", c.Iterations,
		"elapsed", elapsed,
	)
	fmt.Printf("sigslot: %fns per emission (%d slots, %s collector)\n", perRound(elapsed, c.Iterations), c.Slots, c.Collector)

	return nil
}

// emitter builds a signal with the configured collector and returns a
// function emitting it once.
func (c *EmitCmd) emitter() (func(), error) {
	logger := slog.Default()

	switch c.Collector {
	case "void":
		sig := sigslot.NewVoid[uint64](sigslot.WithName("bench"), sigslot.WithLogger(logger))
		for range c.Slots {
			sig.Connect(add)
		}
		return func() { sig.Emit(1) }, nil

	case "last":
		sig := sigslot.New[uint64, uint64](sigslot.WithName("bench"), sigslot.WithLogger(logger))
		for range c.Slots {
			sig.Connect(addResult)
		}
		return func() { sig.Emit(1) }, nil

	case "vector":
		sig := sigslot.NewCollected[uint64](sigslot.Vector[uint64](), sigslot.WithName("bench"), sigslot.WithLogger(logger))
		for range c.Slots {
			sig.Connect(addResult)
		}
		return func() { sig.Emit(1) }, nil

	case "sum":
		sig := sigslot.NewCollected[uint64](sigslot.Reduce(sigslot.Sum[uint64]), sigslot.WithName("bench"), sigslot.WithLogger(logger))
		for range c.Slots {
			sig.Connect(addResult)
		}
		return func() { sig.Emit(1) }, nil
	}

	return nil, fmt.Errorf("unknown collector %q", c.Collector)
}
