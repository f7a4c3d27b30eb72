// Command envcheck validates the application environment and prints every
// variable visible on the chosen side. With -remote it prints the public
// environment a running server exposes instead.
//
// It exits with status 1 when validation fails.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/forknroll/go-boilerplate-base/internal/adapter"
	"github.com/forknroll/go-boilerplate-base/internal/config"
	"github.com/forknroll/go-boilerplate-base/internal/env"
	"github.com/forknroll/go-boilerplate-base/internal/logger"
	"github.com/forknroll/go-boilerplate-base/internal/report"
)

func main() {
	side := flag.String("side", env.ServerSide.String(), "environment side to check: server or client")
	envFiles := flag.String("env-files", strings.Join(config.DefaultEnvFiles, ","), "comma-separated dotenv files, earlier files win")
	remote := flag.String("remote", "", "address of a running server to read the public environment from")
	timeout := flag.Duration("timeout", adapter.DefaultTimeout, "request timeout for -remote")
	flag.Parse()

	log := logger.NewLogger("envcheck", logger.WithOutput(os.Stderr), logger.WithDevelopment(true))

	if *remote != "" {
		if err := checkRemote(*remote, *timeout, log); err != nil {
			log.Fatal().Err(err).Msg("error reading remote environment")
		}
		return
	}

	s, err := parseSide(*side)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	e, err := config.NewEnv(s, env.DotEnvSource{Files: splitList(*envFiles)})
	if err == nil {
		var rows []report.Row
		if rows, err = report.Collect(e); err == nil {
			if err = report.Render(os.Stdout, s.String()+" environment", rows); err != nil {
				log.Fatal().Err(err).Msg("error writing report")
			}
			return
		}
	}

	var validationErr *env.SchemaValidationError
	if errors.As(err, &validationErr) {
		_ = report.RenderValidationError(os.Stdout, validationErr)
		os.Exit(1)
	}
	log.Fatal().Err(err).Msg("error checking environment")
}

func checkRemote(address string, timeout time.Duration, log *logger.Logger) error {
	client, err := adapter.NewHTTPServerAdapter(address, timeout, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.PublicEnv(ctx)
	if err != nil {
		return err
	}

	return report.Render(os.Stdout, "public environment of "+address, report.FromRemote(resp))
}

func parseSide(s string) (env.Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case env.ServerSide.String():
		return env.ServerSide, nil
	case env.ClientSide.String():
		return env.ClientSide, nil
	default:
		return 0, fmt.Errorf("unknown side %q, expected server or client", s)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
