// Command gridroute exposes the negotiated-congestion router as a CLI
// with three subcommands: route (run one routing job), gen (emit a
// synthetic grid/plan pair), and serve (expose the HTTP control
// surface). Replaces the teacher's one-off examples/ playground mains —
// this is a single purpose-built entry point, not a scenario gallery.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "route":
		err = runRoute(os.Args[2:], logger)
	case "gen":
		err = runGen(os.Args[2:], logger)
	case "serve":
		err = runServe(os.Args[2:], logger)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		logger.Error().Err(err).Msg("gridroute failed")
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: gridroute <route|gen|serve> [flags]")
}
