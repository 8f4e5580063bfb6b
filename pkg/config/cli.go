package config

import (
	"github.com/urfave/cli/v2"
)

// Flags are registered on the app so every command can read them.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "path to a YAML config file",
			EnvVars: []string{"NEXTTRAIN_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "api-url",
			Usage:   "base URL of the MBTA v3 API",
			EnvVars: []string{"NEXTTRAIN_API_URL"},
		},
		&cli.StringFlag{
			Name:    "api-key",
			Usage:   "MBTA API key, sent as x-api-key",
			EnvVars: []string{"NEXTTRAIN_API_KEY"},
		},
		&cli.StringFlag{
			Name:    "timezone",
			Usage:   "timezone used to decide which departures are in the future",
			EnvVars: []string{"NEXTTRAIN_TIMEZONE"},
		},
	}
}

func FromCLI(c *cli.Context) (Config, error) {
	return Load(c.String("config"), Overrides{
		BaseURL:  c.String("api-url"),
		APIKey:   c.String("api-key"),
		Timezone: c.String("timezone"),
	})
}
