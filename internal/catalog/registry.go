// Package catalog lists the packages a node operator can pick for each
// staker role on each network.
package catalog

import (
	"fmt"
	"sync"

	"github.com/thep2p/go-staker-manager/internal/model"
)

type slot struct {
	network model.Network
	role    model.Role
}

// Registry manages the candidate DNP names per network and role.
//
// The registry provides a central location for registering the packages
// the staker page offers, so the backend never hardcodes client names.
type Registry struct {
	mu       sync.RWMutex
	packages map[slot][]string
}

// NewRegistry creates a new, empty registry.
func NewRegistry() *Registry {
	return &Registry{
		packages: make(map[slot][]string),
	}
}

// Register adds a candidate package for the given network and role.
//
// Returns an error if the package is already registered for that slot.
// Registration order is kept and becomes the display order.
func (r *Registry) Register(network model.Network, role model.Role, dnpName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := slot{network, role}
	for _, existing := range r.packages[key] {
		if existing == dnpName {
			return fmt.Errorf("package %s already registered for %s %s", dnpName, network, role)
		}
	}

	r.packages[key] = append(r.packages[key], dnpName)
	return nil
}

// Get returns the candidates registered for network and role.
//
// The returned slice is a copy; it is empty when nothing is registered.
func (r *Registry) Get(network model.Network, role model.Role) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := r.packages[slot{network, role}]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Contains reports whether dnpName is a candidate for network and role.
func (r *Registry) Contains(network model.Network, role model.Role, dnpName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.packages[slot{network, role}] {
		if name == dnpName {
			return true
		}
	}
	return false
}

// DefaultRegistry is the catalog of packages published for DAppNode.
var DefaultRegistry = NewRegistry()

var defaults = map[model.Network]map[model.Role][]string{
	model.Mainnet: {
		model.Execution: {
			"geth.dnp.dappnode.eth",
			"nethermind.public.dappnode.eth",
			"erigon.dnp.dappnode.eth",
			"besu.public.dappnode.eth",
		},
		model.Consensus: {
			"prysm.dnp.dappnode.eth",
			"lighthouse.dnp.dappnode.eth",
			"teku.dnp.dappnode.eth",
			"nimbus.dnp.dappnode.eth",
		},
		model.MevBoost: {"mev-boost.dnp.dappnode.eth"},
		model.Signer:   {"web3signer.dnp.dappnode.eth"},
	},
	model.Gnosis: {
		model.Execution: {"nethermind-xdai.dnp.dappnode.eth"},
		model.Consensus: {
			"gnosis-beacon-chain-prysm.dnp.dappnode.eth",
			"lighthouse-gnosis.dnp.dappnode.eth",
			"teku-gnosis.dnp.dappnode.eth",
			"nimbus-gnosis.dnp.dappnode.eth",
		},
		model.Signer: {"web3signer-gnosis.dnp.dappnode.eth"},
	},
	model.Prater: {
		model.Execution: {
			"goerli-geth.dnp.dappnode.eth",
			"goerli-nethermind.dnp.dappnode.eth",
			"goerli-erigon.dnp.dappnode.eth",
			"goerli-besu.dnp.dappnode.eth",
		},
		model.Consensus: {
			"prysm-prater.dnp.dappnode.eth",
			"lighthouse-prater.dnp.dappnode.eth",
			"teku-prater.dnp.dappnode.eth",
			"nimbus-prater.dnp.dappnode.eth",
		},
		model.MevBoost: {"mev-boost-goerli.dnp.dappnode.eth"},
		model.Signer:   {"web3signer-prater.dnp.dappnode.eth"},
	},
}

func init() {
	for _, network := range model.Networks {
		for _, role := range model.Roles {
			for _, name := range defaults[network][role] {
				if err := DefaultRegistry.Register(network, role, name); err != nil {
					panic(fmt.Sprintf("failed to register %s: %v", name, err))
				}
			}
		}
	}
}
