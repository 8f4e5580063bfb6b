package controller

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/travigo/nexttrain/pkg/config"
	"github.com/travigo/nexttrain/pkg/dataaggregator"
	mbtasource "github.com/travigo/nexttrain/pkg/dataaggregator/source/mbta"
	"github.com/travigo/nexttrain/pkg/mbta"
	"github.com/travigo/nexttrain/pkg/selection"
	"github.com/travigo/nexttrain/pkg/summary"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "choose a trip and print the next departure",
		Action: func(c *cli.Context) error {
			return RunCLI(c, selection.NewPrompter(os.Stdin, os.Stdout))
		},
	}
}

// RunCLI runs the trip flow with an existing prompter, so input already
// buffered by an earlier prompt is not lost.
func RunCLI(c *cli.Context, prompter *selection.Prompter) error {
	cfg, err := config.FromCLI(c)
	if err != nil {
		return err
	}

	client, err := mbta.NewClient(cfg.ClientConfig())
	if err != nil {
		return err
	}

	log.Debug().Str("url", cfg.API.BaseURL).Str("timezone", cfg.Timezone).Msg("Configured MBTA client")

	location := cfg.Location()
	flow := Controller{
		Aggregator: dataaggregator.New(mbtasource.Source{Client: client}),
		Prompter:   prompter,
		Reporter:   summary.Reporter{Out: os.Stdout, Location: location},
		Location:   location,
	}

	return flow.Run(c.Context)
}
