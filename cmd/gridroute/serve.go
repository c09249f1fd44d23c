// File: serve.go
// Role: the `serve` subcommand — run the httpapi HTTP control surface.
package main

import (
	"flag"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/wiregraph/gridroute/httpapi"
)

func runServe(args []string, logger zerolog.Logger) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":8080", "address to listen on")
	if err := fs.Parse(args); err != nil {
		return err
	}

	srv := httpapi.NewServer(logger)
	logger.Info().Str("addr", *addr).Msg("serving gridroute HTTP control surface")

	if err := http.ListenAndServe(*addr, srv.Handler()); err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	return nil
}
