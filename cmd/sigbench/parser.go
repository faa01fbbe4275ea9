package main

import (
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/AnatoleLucet/sigslot/internal/flagutil"
)

var opts struct {
	LogLevel flagutil.LogLevel `short:"v" long:"verbosity" description:"Verbosity level, debug also logs every connection made by the benchmarks" default:"info"`
}

// parser holds the emit and loop commands, registered by their init functions.
var parser = flags.NewParser(&opts, flags.Default)

func init() {
	parser.ShortDescription = "signal emission benchmarks"
	parser.CommandHandler = handleCommand
}

// handleCommand logs as JSON on stderr so results on stdout stay readable,
// then runs cmd with a logger naming it.
func handleCommand(cmd flags.Commander, args []string) error {
	logger := slog.New(
		slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: opts.LogLevel.Level,
		}),
	)

	if active := parser.Active; active != nil {
		logger = logger.With("command", active.Name)
	}
	slog.SetDefault(logger)

	slog.Debug("running benchmark", "args", args)

	return cmd.Execute(args)
}
