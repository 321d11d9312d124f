// Package staker decides whether a proposed staker configuration may be
// applied and sequences the apply round-trip against the backend.
package staker

import "github.com/thep2p/go-staker-manager/internal/model"

// IsOkSelectedInstalledAndRunning reports whether item is the active
// choice for its role: status ok and selected, installed and running.
// A nil item yields false.
func IsOkSelectedInstalledAndRunning(item *model.StakerItem) bool {
	if item == nil || item.Status != model.StatusOk {
		return false
	}
	return item.IsSelected && item.IsInstalled && item.IsRunning
}

// AllItemsOk reports whether the backend could inspect every candidate of
// get. The guided launchpad setup is only offered in that case.
func AllItemsOk(get model.StakerConfigGet) bool {
	items := make([]*model.StakerItem, 0, len(get.ExecutionClients)+len(get.ConsensusClients)+2)
	items = append(items, get.ExecutionClients...)
	items = append(items, get.ConsensusClients...)
	items = append(items, get.Web3Signer)
	if get.Network.SupportsMevBoost() {
		items = append(items, get.MevBoost)
	}

	for _, item := range items {
		if item == nil || item.Status != model.StatusOk {
			return false
		}
	}
	return true
}

// CurrentFromGet derives the applied configuration from the backend view:
// the first active candidate per client role, mev-boost only when active,
// and the web3signer flag from the signer item.
func CurrentFromGet(get model.StakerConfigGet) model.StakerConfig {
	return model.StakerConfig{
		Network:          get.Network,
		ExecutionClient:  firstActive(get.ExecutionClients),
		ConsensusClient:  firstActive(get.ConsensusClients),
		MevBoost:         firstActive([]*model.StakerItem{get.MevBoost}),
		EnableWeb3signer: IsOkSelectedInstalledAndRunning(get.Web3Signer),
		FeeRecipient:     get.FeeRecipient,
	}
}

func firstActive(items []*model.StakerItem) *model.StakerItem {
	for _, item := range items {
		if IsOkSelectedInstalledAndRunning(item) {
			return item
		}
	}
	return nil
}
