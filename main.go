package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

const (
	flagLogLevel     = "log-level"
	flagPretty       = "pretty"
	flagAPIURL       = "api-url"
	flagNetwork      = "network"
	flagListen       = "listen"
	flagDataDir      = "datadir"
	flagPackagesFile = "packages-file"
	flagExecution    = "execution"
	flagConsensus    = "consensus"
	flagMevBoost     = "mevboost"
	flagWeb3Signer   = "web3signer"
	flagFeeRecipient = "fee-recipient"
	flagLaunchpad    = "launchpad"

	// deselect is the client flag value that clears a role.
	deselect = "none"

	defaultListen = "127.0.0.1:7000"
	defaultAPIURL = "http://" + defaultListen
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	networkFlag := &cli.StringFlag{
		Name:  flagNetwork,
		Usage: "network of the staker configuration (mainnet, gnosis, prater)",
		Value: "mainnet",
	}
	apiURLFlag := &cli.StringFlag{
		Name:  flagAPIURL,
		Usage: "address of the staker api",
		Value: defaultAPIURL,
	}

	return &cli.App{
		Name:      "staker-manager",
		Usage:     "select and apply the staker clients of a node",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagLogLevel, Usage: "log level", Value: "info"},
			&cli.BoolFlag{Name: flagPretty, Usage: "human readable logs"},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the staker api",
				Action: serveAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagListen, Usage: "host:port to listen on", Value: defaultListen},
					&cli.StringFlag{Name: flagDataDir, Usage: "directory of the settings database", Required: true},
					&cli.StringFlag{Name: flagPackagesFile, Usage: "yaml inventory of installed packages"},
				},
			},
			{
				Name:   "get",
				Usage:  "print the staker configuration of a network",
				Action: getAction,
				Flags:  []cli.Flag{networkFlag, apiURLFlag},
			},
			{
				Name:   "set",
				Usage:  "change and apply the staker configuration of a network",
				Action: setAction,
				Flags: []cli.Flag{
					networkFlag,
					apiURLFlag,
					&cli.StringFlag{Name: flagExecution, Usage: "execution client package, or \"" + deselect + "\""},
					&cli.StringFlag{Name: flagConsensus, Usage: "consensus client package, or \"" + deselect + "\""},
					&cli.BoolFlag{Name: flagMevBoost, Usage: "enable mev-boost"},
					&cli.BoolFlag{Name: flagWeb3Signer, Usage: "enable the web3signer"},
					&cli.StringFlag{Name: flagFeeRecipient, Usage: "default fee recipient address"},
					&cli.BoolFlag{Name: flagLaunchpad, Usage: "guided setup: skip confirmations and enable the web3signer"},
				},
			},
		},
	}
}

// newLogger builds the root logger from the global flags.
func newLogger(c *cli.Context) zerolog.Logger {
	var out io.Writer = c.App.ErrWriter
	if c.Bool(flagPretty) {
		out = zerolog.ConsoleWriter{Out: out}
	}
	logger := zerolog.New(out).With().Timestamp().Str("service", c.App.Name).Logger()

	level, err := zerolog.ParseLevel(c.String(flagLogLevel))
	if err != nil {
		logger.Warn().Msgf("%s is not a valid log-level, falling back to 'info'", c.String(flagLogLevel))
		level = zerolog.InfoLevel
	}
	return logger.Level(level)
}
