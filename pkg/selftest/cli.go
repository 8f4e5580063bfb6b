package selftest

import (
	"github.com/travigo/nexttrain/pkg/config"
	"github.com/travigo/nexttrain/pkg/mbta"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:   "selftest",
		Usage:  "run the built-in checks against the API",
		Action: RunCLI,
	}
}

func RunCLI(c *cli.Context) error {
	cfg, err := config.FromCLI(c)
	if err != nil {
		return err
	}

	client, err := mbta.NewClient(cfg.ClientConfig())
	if err != nil {
		return err
	}

	_, err = Run(c.Context, Checks(client))
	return err
}
