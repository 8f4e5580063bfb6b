package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/nexttrain/pkg/config"
	"github.com/travigo/nexttrain/pkg/controller"
	"github.com/travigo/nexttrain/pkg/selftest"
	"github.com/travigo/nexttrain/pkg/util"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	env := util.GetEnvironmentVariables()

	if env["NEXTTRAIN_LOG_FORMAT"] != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	if util.IsEnabled(env, "NEXTTRAIN_DEBUG") {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := &cli.App{
		Name:        "nexttrain",
		Usage:       "find the next MBTA subway or trolley departure from a stop",
		Description: "Pick a route, a stop and a direction to see when the next train leaves",

		Flags:  config.Flags(),
		Action: startupAction,

		Commands: []*cli.Command{
			controller.RegisterCLI(),
			selftest.RegisterCLI(),
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}
