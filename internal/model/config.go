package model

import "fmt"

// Network identifies the chain a staker configuration applies to.
type Network string

const (
	Mainnet Network = "mainnet"
	Gnosis  Network = "gnosis"
	Prater  Network = "prater"
)

// Networks lists every network with a staker configuration, in display order.
var Networks = []Network{Mainnet, Gnosis, Prater}

// ParseNetwork converts a raw network name into a Network.
// Returns an error if the name is not a supported network.
func ParseNetwork(s string) (Network, error) {
	for _, n := range Networks {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("unknown network %q", s)
}

// SupportsMevBoost reports whether a mev-boost package exists for the network.
func (n Network) SupportsMevBoost() bool {
	return n == Mainnet || n == Prater
}

// StakerConfig is a snapshot of the staker selections for one network.
//
// Two snapshots usually coexist: the persisted one reported by the backend
// and a proposed one edited in memory. The proposed snapshot is only
// persisted once an apply round-trip succeeds.
type StakerConfig struct {
	// Network is the chain this configuration applies to.
	Network Network `json:"network" validate:"required,oneof=mainnet gnosis prater"`

	// ExecutionClient is the selected execution layer package, if any.
	ExecutionClient *StakerItem `json:"executionClient,omitempty"`

	// ConsensusClient is the selected consensus layer package, if any.
	ConsensusClient *StakerItem `json:"consensusClient,omitempty"`

	// MevBoost is the selected mev-boost package. Nil disables mev-boost.
	MevBoost *StakerItem `json:"mevBoost,omitempty"`

	// EnableWeb3signer installs and runs the remote signer holding validator keys.
	EnableWeb3signer bool `json:"enableWeb3signer"`

	// FeeRecipient is the default address receiving priority fees.
	// Empty means no default fee recipient.
	FeeRecipient string `json:"feeRecipient,omitempty" validate:"omitempty,eth_addr"`
}

// Item returns the item selected for the given role, or nil.
// The signer role has no item in a StakerConfig and always returns nil.
func (c StakerConfig) Item(role Role) *StakerItem {
	switch role {
	case Execution:
		return c.ExecutionClient
	case Consensus:
		return c.ConsensusClient
	case MevBoost:
		return c.MevBoost
	default:
		return nil
	}
}

// WithoutMetadata returns a copy of the configuration whose items carry
// only their identity and status, without package metadata.
func (c StakerConfig) WithoutMetadata() StakerConfig {
	c.ExecutionClient = c.ExecutionClient.withoutData()
	c.ConsensusClient = c.ConsensusClient.withoutData()
	c.MevBoost = c.MevBoost.withoutData()
	return c
}

// StakerConfigGet is the backend's view of the staker page for one network.
type StakerConfigGet struct {
	Network          Network       `json:"network"`
	ExecutionClients []*StakerItem `json:"executionClients"`
	ConsensusClients []*StakerItem `json:"consensusClients"`
	// MevBoost is nil on networks without a mev-boost package.
	MevBoost     *StakerItem `json:"mevBoost,omitempty"`
	Web3Signer   *StakerItem `json:"web3Signer"`
	FeeRecipient string      `json:"feeRecipient,omitempty"`
}

// StakerSettings are the raw values persisted for one network.
// Empty strings mean "not selected".
type StakerSettings struct {
	ExecutionClient string
	ConsensusClient string
	MevBoost        bool
	FeeRecipient    string
	Web3Signer      bool
}
