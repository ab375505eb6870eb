// Command podbot runs the pod distribution bot against Discord.
//
// The bot token is read from --token or DISCORD_TOKEN; a .env file in the
// working directory is loaded first when present.
//
//	podbot --config podbot.yaml
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "podbot",
		Usage:   "split voice channels into balanced pods with a Pod Lead each",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "token",
				Usage:    "Discord bot token",
				EnvVars:  []string{"DISCORD_TOKEN"},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
				EnvVars: []string{"PODBOT_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "prefix",
				Usage:   "command prefix",
				EnvVars: []string{"PODBOT_PREFIX"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				EnvVars: []string{"PODBOT_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "metrics-addr",
				Usage:   "listen address of the Prometheus endpoint",
				EnvVars: []string{"PODBOT_METRICS_ADDR"},
			},
			&cli.StringFlag{
				Name:    "nats-url",
				Usage:   "NATS server receiving distribution events",
				EnvVars: []string{"NATS_URL"},
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c.String("config"), overrides{
				prefix:      c.String("prefix"),
				logLevel:    c.String("log-level"),
				metricsAddr: c.String("metrics-addr"),
				natsURL:     c.String("nats-url"),
			})
			if err != nil {
				return err
			}

			return run(c.Context, c.String("token"), cfg)
		},
	}
}
