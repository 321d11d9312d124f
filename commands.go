package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/thep2p/go-staker-manager/internal"
	"github.com/thep2p/go-staker-manager/internal/api"
	"github.com/thep2p/go-staker-manager/internal/catalog"
	"github.com/thep2p/go-staker-manager/internal/confirm"
	"github.com/thep2p/go-staker-manager/internal/metrics"
	"github.com/thep2p/go-staker-manager/internal/model"
	"github.com/thep2p/go-staker-manager/internal/packages"
	"github.com/thep2p/go-staker-manager/internal/settings"
	"github.com/thep2p/go-staker-manager/internal/staker"
	"github.com/urfave/cli/v2"
)

var validate = validator.New()

// globalEnvsFile holds the staker selections other packages read, relative
// to the data directory.
const globalEnvsFile = "global.env"

// serveConfig is the configuration of the serve command.
type serveConfig struct {
	Listen       string `validate:"required,hostname_port"`
	DataDir      string `validate:"required"`
	PackagesFile string
}

// clientConfig is the configuration shared by the get and set commands.
type clientConfig struct {
	APIURL  string `validate:"required,url"`
	Network string `validate:"required,oneof=mainnet gnosis prater"`
}

func serveAction(c *cli.Context) error {
	cfg := serveConfig{
		Listen:       c.String(flagListen),
		DataDir:      c.String(flagDataDir),
		PackagesFile: c.String(flagPackagesFile),
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid serve config: %w", err)
	}
	if cfg.PackagesFile == "" {
		cfg.PackagesFile = filepath.Join(cfg.DataDir, "packages.yaml")
	}

	host, rawPort, err := net.SplitHostPort(cfg.Listen)
	if err != nil {
		return fmt.Errorf("invalid listen address: %w", err)
	}
	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid listen port: %w", err)
	}

	logger := newLogger(c)

	store, err := settings.OpenLevelDBStore(filepath.Join(cfg.DataDir, "settings"))
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close settings store")
		}
	}()

	cache, err := settings.NewMetadataCache(logger, store)
	if err != nil {
		return err
	}
	m := metrics.NewMetrics()
	service := api.NewService(
		logger,
		catalog.DefaultRegistry,
		settings.NewStaker(logger, store, settings.WithGlobalEnvs(settings.NewEnvFile(filepath.Join(cfg.DataDir, globalEnvsFile)))),
		cache,
		packages.NewFileInspector(cfg.PackagesFile),
		m,
	)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := api.NewServer(logger, api.NewRouter(logger, service, m), host, internal.FixedPort(port))
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("start api server: %w", err)
	}
	<-srv.Done()
	logger.Info().Msg("staker api stopped")
	return nil
}

func readClientConfig(c *cli.Context) (clientConfig, model.Network, error) {
	cfg := clientConfig{
		APIURL:  c.String(flagAPIURL),
		Network: c.String(flagNetwork),
	}
	if err := validate.Struct(cfg); err != nil {
		return cfg, "", fmt.Errorf("invalid config: %w", err)
	}
	network, err := model.ParseNetwork(cfg.Network)
	return cfg, network, err
}

func getAction(c *cli.Context) error {
	cfg, network, err := readClientConfig(c)
	if err != nil {
		return err
	}
	client, err := api.NewClient(newLogger(c), api.DefaultClientConfig(cfg.APIURL))
	if err != nil {
		return err
	}

	get, err := client.StakerConfigGet(c.Context, network)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Current   model.StakerConfig    `json:"current"`
		Available model.StakerConfigGet `json:"available"`
	}{
		Current:   staker.CurrentFromGet(get),
		Available: get,
	})
}

// confirmerFactory builds the confirmer of the set command; tests swap it.
var confirmerFactory = func(logger zerolog.Logger, c *cli.Context) staker.Confirmer {
	return confirm.NewTerminal(logger, c.App.Writer)
}

func setAction(c *cli.Context) error {
	cfg, network, err := readClientConfig(c)
	if err != nil {
		return err
	}
	logger := newLogger(c)

	client, err := api.NewClient(logger, api.DefaultClientConfig(cfg.APIURL))
	if err != nil {
		return err
	}
	orchestrator := staker.NewOrchestrator(logger, network, client, confirmerFactory(logger, c), nil)
	session := staker.NewSession(orchestrator)
	if err := session.Load(c.Context); err != nil {
		return err
	}

	if err := propose(c, session); err != nil {
		return err
	}

	launchpad := c.Bool(flagLaunchpad)
	if launchpad {
		if !session.LaunchpadAvailable() {
			return errors.New("launchpad is unavailable: some packages could not be inspected")
		}
		session.EnableWeb3signer(true)
	}

	verdict := session.Verdict()
	if !verdict.IsAllowed {
		return fmt.Errorf("cannot apply changes (%s): %s", verdict.Severity, verdict.Reason)
	}

	status := session.Apply(c.Context, launchpad)
	if errors.Is(status.Err, staker.ErrConfirmationDismissed) {
		fmt.Fprintln(c.App.Writer, "staker configuration unchanged")
		return nil
	}
	if status.Err != nil {
		return status.Err
	}
	fmt.Fprintln(c.App.Writer, "staker configuration applied")
	return nil
}

// propose applies the client flags that were given to the session.
func propose(c *cli.Context, session *staker.Session) error {
	for flag, role := range map[string]model.Role{flagExecution: model.Execution, flagConsensus: model.Consensus} {
		if !c.IsSet(flag) {
			continue
		}
		dnpName := c.String(flag)
		if dnpName == deselect {
			dnpName = ""
		}
		if err := session.SelectClient(role, dnpName); err != nil {
			return err
		}
	}

	if c.IsSet(flagMevBoost) {
		var dnpName string
		if c.Bool(flagMevBoost) {
			view, err := session.View()
			if err != nil {
				return err
			}
			if view.MevBoost == nil {
				return fmt.Errorf("mev-boost is not available on %s", view.Network)
			}
			dnpName = view.MevBoost.DnpName
		}
		if err := session.SelectClient(model.MevBoost, dnpName); err != nil {
			return err
		}
	}
	if c.IsSet(flagWeb3Signer) {
		session.EnableWeb3signer(c.Bool(flagWeb3Signer))
	}
	if c.IsSet(flagFeeRecipient) {
		session.SetFeeRecipient(c.String(flagFeeRecipient))
	}
	return nil
}
