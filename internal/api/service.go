// Package api serves staker configurations over HTTP and consumes them
// from the command line.
package api

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/thep2p/go-staker-manager/internal/catalog"
	"github.com/thep2p/go-staker-manager/internal/chains"
	"github.com/thep2p/go-staker-manager/internal/metrics"
	"github.com/thep2p/go-staker-manager/internal/model"
	"github.com/thep2p/go-staker-manager/internal/packages"
	"github.com/thep2p/go-staker-manager/internal/settings"
	"github.com/thep2p/go-staker-manager/internal/staker"
)

var (
	// ErrInvalidConfig is returned when a submitted configuration is rejected.
	ErrInvalidConfig = errors.New("invalid staker config")
	// ErrUnknownChain is returned when no chain driver matches a package.
	ErrUnknownChain = errors.New("unknown chain")
)

// Service is the backend side of the staker configuration round-trip.
type Service struct {
	logger    zerolog.Logger
	catalog   *catalog.Registry
	settings  *settings.Staker
	cache     *settings.MetadataCache
	inspector packages.Inspector
	metrics   *metrics.Metrics
	validate  *validator.Validate

	// mu keeps a read from interleaving with a half applied write.
	mu sync.RWMutex
}

var _ staker.Backend = (*Service)(nil)

// NewService creates a Service. cache and m may be nil.
func NewService(
	logger zerolog.Logger,
	reg *catalog.Registry,
	st *settings.Staker,
	cache *settings.MetadataCache,
	inspector packages.Inspector,
	m *metrics.Metrics,
) *Service {
	return &Service{
		logger:    logger.With().Str("component", "staker-service").Logger(),
		catalog:   reg,
		settings:  st,
		cache:     cache,
		inspector: inspector,
		metrics:   m,
		validate:  validator.New(),
	}
}

// StakerConfigGet reports every candidate package of network with its
// installation status and whether it is the persisted selection.
func (s *Service) StakerConfigGet(ctx context.Context, network model.Network) (model.StakerConfigGet, error) {
	if _, err := model.ParseNetwork(string(network)); err != nil {
		return model.StakerConfigGet{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	persisted, err := s.settings.Load(network)
	if err != nil {
		return model.StakerConfigGet{}, fmt.Errorf("load settings: %w", err)
	}

	out := model.StakerConfigGet{
		Network:      network,
		FeeRecipient: persisted.FeeRecipient,
	}
	for _, dnp := range s.catalog.Get(network, model.Execution) {
		out.ExecutionClients = append(out.ExecutionClients,
			s.item(ctx, network, model.Execution, dnp, dnp == persisted.ExecutionClient))
	}
	for _, dnp := range s.catalog.Get(network, model.Consensus) {
		out.ConsensusClients = append(out.ConsensusClients,
			s.item(ctx, network, model.Consensus, dnp, dnp == persisted.ConsensusClient))
	}
	if dnps := s.catalog.Get(network, model.MevBoost); len(dnps) > 0 {
		out.MevBoost = s.item(ctx, network, model.MevBoost, dnps[0], persisted.MevBoost)
	}
	if dnps := s.catalog.Get(network, model.Signer); len(dnps) > 0 {
		out.Web3Signer = s.item(ctx, network, model.Signer, dnps[0], persisted.Web3Signer)
	}

	s.metrics.Inc(metrics.StakerConfigReads, string(network))
	return out, nil
}

// item inspects one candidate and fills its status variant.
func (s *Service) item(ctx context.Context, network model.Network, role model.Role, dnp string, selected bool) *model.StakerItem {
	it := &model.StakerItem{
		Network:    network,
		Role:       role,
		DnpName:    dnp,
		IsSelected: selected,
	}

	pkg, err := s.inspector.Inspect(ctx, dnp)
	switch {
	case errors.Is(err, packages.ErrNotInstalled):
		it.Status = model.StatusOk
		it.Data = s.metadata(dnp, nil)
	case err != nil:
		s.logger.Warn().Err(err).Str("dnp", dnp).Msg("could not inspect package")
		it.Status = model.StatusError
		it.Error = err.Error()
	default:
		it.Status = model.StatusOk
		it.IsInstalled = true
		it.IsRunning = pkg.Running
		it.IsUpdated = pkg.IsUpdated
		it.AvatarURL = pkg.AvatarURL
		it.Data = s.metadata(dnp, &pkg)
	}
	return it
}

// metadata returns the cached data of dnp, refreshing the cache from an
// installed package.
func (s *Service) metadata(dnp string, pkg *packages.InstalledPackage) *model.StakerItemData {
	if s.cache == nil {
		return nil
	}
	if pkg == nil {
		data, _ := s.cache.Get(dnp)
		return data
	}

	data := model.StakerItemData{
		Name:        pkg.DnpName,
		Version:     pkg.Version,
		Description: pkg.Description,
	}
	if cached, ok := s.cache.Get(dnp); ok && *cached == data {
		return cached
	}
	if err := s.cache.Set(dnp, data); err != nil {
		s.logger.Warn().Err(err).Str("dnp", dnp).Msg("could not cache package metadata")
	}
	return &data
}

// StakerConfigSet validates cfg and persists it as the selection of its network.
// Enabling the web3signer requires its package to be installed.
func (s *Service) StakerConfigSet(ctx context.Context, cfg model.StakerConfig) error {
	err := s.check(cfg)
	if err == nil && cfg.EnableWeb3signer {
		err = s.checkSigner(ctx, cfg.Network)
		if err != nil && !errors.Is(err, errSignerUnavailable) {
			return err
		}
	}
	if err != nil {
		s.metrics.Inc(metrics.StakerConfigRejects, string(cfg.Network))
		s.logger.Warn().Err(err).Str("network", string(cfg.Network)).Msg("rejected staker config")
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	st := model.StakerSettings{
		MevBoost:     cfg.MevBoost != nil,
		FeeRecipient: cfg.FeeRecipient,
		Web3Signer:   cfg.EnableWeb3signer,
	}
	if cfg.ExecutionClient != nil {
		st.ExecutionClient = cfg.ExecutionClient.DnpName
	}
	if cfg.ConsensusClient != nil {
		st.ConsensusClient = cfg.ConsensusClient.DnpName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.settings.Save(cfg.Network, st); err != nil {
		return fmt.Errorf("persist staker config: %w", err)
	}
	s.metrics.Inc(metrics.StakerConfigWrites, string(cfg.Network))
	return nil
}

// check validates struct tags, the fee recipient checksum and catalog membership.
func (s *Service) check(cfg model.StakerConfig) error {
	if err := s.validate.Struct(cfg); err != nil {
		return err
	}
	if reason := staker.ValidateFeeRecipient(cfg.FeeRecipient); reason != "" {
		return fmt.Errorf("fee recipient: %s", reason)
	}
	for _, role := range []model.Role{model.Execution, model.Consensus, model.MevBoost} {
		item := cfg.Item(role)
		if item == nil {
			continue
		}
		if !s.catalog.Contains(cfg.Network, role, item.DnpName) {
			return fmt.Errorf("%s is not a %s candidate on %s", item.DnpName, role, cfg.Network)
		}
	}
	return nil
}

var errSignerUnavailable = errors.New("web3signer is not installed")

// checkSigner fails with errSignerUnavailable when network has no installed
// web3signer package. Other inspection failures are returned as is.
func (s *Service) checkSigner(ctx context.Context, network model.Network) error {
	dnps := s.catalog.Get(network, model.Signer)
	if len(dnps) == 0 {
		return fmt.Errorf("%w on %s", errSignerUnavailable, network)
	}
	_, err := s.inspector.Inspect(ctx, dnps[0])
	if errors.Is(err, packages.ErrNotInstalled) {
		return fmt.Errorf("%w: %s", errSignerUnavailable, dnps[0])
	}
	if err != nil {
		return fmt.Errorf("inspect %s: %w", dnps[0], err)
	}
	return nil
}

// Chain returns the chain driver of an installed package.
func (s *Service) Chain(ctx context.Context, dnpName string) (chains.Driver, error) {
	pkg, err := s.inspector.Inspect(ctx, dnpName)
	if err != nil {
		return "", err
	}
	d, ok := chains.DriverName(pkg)
	if !ok {
		return "", fmt.Errorf("%s: %w", dnpName, ErrUnknownChain)
	}
	return d, nil
}
