package unittest

import (
	"testing"

	"github.com/thep2p/go-staker-manager/internal/model"
)

// ItemOption customises a StakerItem fixture.
type ItemOption func(*model.StakerItem)

// WithStatus overrides the status of the fixture.
func WithStatus(status model.ItemStatus) ItemOption {
	return func(i *model.StakerItem) {
		i.Status = status
	}
}

// NotSelected marks the fixture as an installed, running candidate that is not selected.
func NotSelected() ItemOption {
	return func(i *model.StakerItem) {
		i.IsSelected = false
	}
}

// Stopped marks the fixture as installed but not running.
func Stopped() ItemOption {
	return func(i *model.StakerItem) {
		i.IsRunning = false
	}
}

// WithData attaches package metadata to the fixture.
func WithData(data model.StakerItemData) ItemOption {
	return func(i *model.StakerItem) {
		i.Data = &data
	}
}

// StakerItemFixture returns an item that is ok, selected, installed and running.
func StakerItemFixture(network model.Network, role model.Role, dnpName string, opts ...ItemOption) *model.StakerItem {
	item := &model.StakerItem{
		Network:     network,
		Role:        role,
		DnpName:     dnpName,
		Status:      model.StatusOk,
		IsInstalled: true,
		IsRunning:   true,
		IsSelected:  true,
		IsUpdated:   true,
	}
	for _, opt := range opts {
		opt(item)
	}
	return item
}

// StakerConfigGetFixture returns a mainnet view where geth and prysm are
// the active clients, besu and teku are idle candidates and neither
// mev-boost nor the web3signer is selected.
func StakerConfigGetFixture(t *testing.T) model.StakerConfigGet {
	t.Helper()

	return model.StakerConfigGet{
		Network: model.Mainnet,
		ExecutionClients: []*model.StakerItem{
			StakerItemFixture(model.Mainnet, model.Execution, "geth.dnp.dappnode.eth",
				WithData(model.StakerItemData{Name: "geth.dnp.dappnode.eth", Version: "0.1.40"})),
			StakerItemFixture(model.Mainnet, model.Execution, "besu.public.dappnode.eth", NotSelected()),
		},
		ConsensusClients: []*model.StakerItem{
			StakerItemFixture(model.Mainnet, model.Consensus, "prysm.dnp.dappnode.eth"),
			StakerItemFixture(model.Mainnet, model.Consensus, "teku.dnp.dappnode.eth", NotSelected()),
		},
		MevBoost:   StakerItemFixture(model.Mainnet, model.MevBoost, "mev-boost.dnp.dappnode.eth", NotSelected()),
		Web3Signer: StakerItemFixture(model.Mainnet, model.Signer, "web3signer.dnp.dappnode.eth", NotSelected()),
	}
}
