package settings

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/thep2p/go-staker-manager/internal/model"
)

// Staker is a typed view over a Store for staker selections.
type Staker struct {
	logger zerolog.Logger
	store  Store
	envs   GlobalEnvs
}

// StakerOption configures a Staker.
type StakerOption func(*Staker)

// WithGlobalEnvs publishes every saved selection to envs.
func WithGlobalEnvs(envs GlobalEnvs) StakerOption {
	return func(s *Staker) { s.envs = envs }
}

// NewStaker wraps store.
func NewStaker(logger zerolog.Logger, store Store, opts ...StakerOption) *Staker {
	s := &Staker{
		logger: logger.With().Str("component", "staker-settings").Logger(),
		store:  store,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted settings of network. Missing keys read as
// "not selected".
func (s *Staker) Load(network model.Network) (model.StakerSettings, error) {
	var out model.StakerSettings

	values := make(map[Key]string, len(Keys))
	for _, k := range Keys {
		v, _, err := s.store.Get(network, k)
		if err != nil {
			return out, fmt.Errorf("load %s: %w", StorageKey(network, k), err)
		}
		values[k] = v
	}

	out.ExecutionClient = values[ExecutionClient]
	out.ConsensusClient = values[ConsensusClient]
	out.FeeRecipient = values[FeeRecipient]
	out.MevBoost = s.parseFlag(network, MevBoost, values[MevBoost])
	out.Web3Signer = s.parseFlag(network, Web3Signer, values[Web3Signer])
	return out, nil
}

func (s *Staker) parseFlag(network model.Network, key Key, raw string) bool {
	if raw == "" {
		return false
	}
	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		s.logger.Warn().Str("network", string(network)).Str("key", string(key)).Str("value", raw).Msg("ignoring malformed flag setting")
		return false
	}
	return enabled
}

// Save persists every setting of network in one atomic write, then
// publishes the global ones when a GlobalEnvs is configured.
func (s *Staker) Save(network model.Network, st model.StakerSettings) error {
	values := map[Key]string{
		ExecutionClient: st.ExecutionClient,
		ConsensusClient: st.ConsensusClient,
		MevBoost:        strconv.FormatBool(st.MevBoost),
		FeeRecipient:    st.FeeRecipient,
		Web3Signer:      strconv.FormatBool(st.Web3Signer),
	}
	if err := s.store.SetMany(network, values); err != nil {
		return fmt.Errorf("save %s staker settings: %w", network, err)
	}

	if s.envs != nil {
		envs := make(map[string]string, len(GlobalKeys))
		for _, k := range GlobalKeys {
			envs[GlobalEnvName(network, k)] = values[k]
		}
		if err := s.envs.Publish(envs); err != nil {
			return fmt.Errorf("publish %s staker settings: %w", network, err)
		}
	}

	s.logger.Info().
		Str("network", string(network)).
		Str("execution_client", st.ExecutionClient).
		Str("consensus_client", st.ConsensusClient).
		Bool("mevboost", st.MevBoost).
		Str("fee_recipient", st.FeeRecipient).
		Bool("web3signer", st.Web3Signer).
		Msg("staker settings saved")
	return nil
}

// metadataPrefix namespaces cached package metadata inside a store.
const metadataPrefix = "staker-item-metadata/"

// blobStore is implemented by stores able to hold non-setting records.
type blobStore interface {
	getRaw(key string) ([]byte, bool, error)
	putRaw(key string, value []byte) error
}

// MetadataCache caches StakerItemData per DNP name.
type MetadataCache struct {
	logger zerolog.Logger
	store  blobStore
}

// NewMetadataCache creates a cache on top of store.
// Returns an error if store cannot hold metadata records.
func NewMetadataCache(logger zerolog.Logger, store Store) (*MetadataCache, error) {
	bs, ok := store.(blobStore)
	if !ok {
		return nil, fmt.Errorf("store %T cannot hold metadata", store)
	}
	return &MetadataCache{
		logger: logger.With().Str("component", "metadata-cache").Logger(),
		store:  bs,
	}, nil
}

// Get returns the cached metadata of dnpName. Unreadable entries count as misses.
func (c *MetadataCache) Get(dnpName string) (*model.StakerItemData, bool) {
	buf, ok, err := c.store.getRaw(metadataPrefix + dnpName)
	if err != nil || !ok {
		if err != nil {
			c.logger.Warn().Err(err).Str("dnp", dnpName).Msg("could not read metadata")
		}
		return nil, false
	}

	var data model.StakerItemData
	if err := json.Unmarshal(buf, &data); err != nil {
		c.logger.Warn().Err(err).Str("dnp", dnpName).Msg("dropping malformed metadata entry")
		return nil, false
	}
	return &data, true
}

// Set caches metadata for dnpName.
func (c *MetadataCache) Set(dnpName string, data model.StakerItemData) error {
	buf, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	if err := c.store.putRaw(metadataPrefix+dnpName, buf); err != nil {
		return fmt.Errorf("cache metadata for %s: %w", dnpName, err)
	}
	return nil
}
