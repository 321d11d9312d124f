package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thep2p/go-staker-manager/internal/model"
)

func TestParseNetwork(t *testing.T) {
	for _, n := range model.Networks {
		got, err := model.ParseNetwork(string(n))
		require.NoError(t, err)
		require.Equal(t, n, got)
	}

	_, err := model.ParseNetwork("Mainnet")
	require.Error(t, err, "network names are case sensitive")
	_, err = model.ParseNetwork("")
	require.Error(t, err)
}

func TestSupportsMevBoost(t *testing.T) {
	require.True(t, model.Mainnet.SupportsMevBoost())
	require.True(t, model.Prater.SupportsMevBoost())
	require.False(t, model.Gnosis.SupportsMevBoost())
}

func TestSameDnp(t *testing.T) {
	geth := &model.StakerItem{DnpName: "geth.dnp.dappnode.eth", Status: model.StatusOk}
	gethStopped := &model.StakerItem{DnpName: "geth.dnp.dappnode.eth", Status: model.StatusNotRunning}
	besu := &model.StakerItem{DnpName: "besu.public.dappnode.eth"}

	require.True(t, model.SameDnp(nil, nil))
	require.True(t, model.SameDnp(geth, gethStopped))
	require.False(t, model.SameDnp(geth, besu))
	require.False(t, model.SameDnp(geth, nil))
	require.False(t, model.SameDnp(nil, besu))
}

func TestWithoutMetadata(t *testing.T) {
	data := &model.StakerItemData{Name: "geth.dnp.dappnode.eth", Version: "0.1.40"}
	cfg := model.StakerConfig{
		Network:         model.Mainnet,
		ExecutionClient: &model.StakerItem{DnpName: "geth.dnp.dappnode.eth", Status: model.StatusOk, IsRunning: true, Data: data},
		ConsensusClient: &model.StakerItem{DnpName: "prysm.dnp.dappnode.eth", Data: data},
		FeeRecipient:    "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	}

	stripped := cfg.WithoutMetadata()
	require.Nil(t, stripped.ExecutionClient.Data)
	require.Nil(t, stripped.ConsensusClient.Data)
	require.Nil(t, stripped.MevBoost)
	require.True(t, stripped.ExecutionClient.IsRunning, "status survives")
	require.Equal(t, cfg.FeeRecipient, stripped.FeeRecipient)

	require.NotNil(t, cfg.ExecutionClient.Data, "original is untouched")
	require.NotNil(t, cfg.ConsensusClient.Data, "original is untouched")

	buf, err := json.Marshal(stripped)
	require.NoError(t, err)
	require.NotContains(t, string(buf), `"data"`)
}

func TestItem(t *testing.T) {
	exec := &model.StakerItem{DnpName: "geth.dnp.dappnode.eth"}
	mev := &model.StakerItem{DnpName: "mev-boost.dnp.dappnode.eth"}
	cfg := model.StakerConfig{ExecutionClient: exec, MevBoost: mev, EnableWeb3signer: true}

	require.Same(t, exec, cfg.Item(model.Execution))
	require.Nil(t, cfg.Item(model.Consensus))
	require.Same(t, mev, cfg.Item(model.MevBoost))
	require.Nil(t, cfg.Item(model.Signer))
}

func TestVerdictConstructors(t *testing.T) {
	require.Equal(t, model.ChangeVerdict{IsAllowed: true}, model.Allowed())

	v := model.Blocked(model.ReasonNoChanges, model.SeveritySecondary)
	require.False(t, v.IsAllowed)
	require.Equal(t, model.ReasonNoChanges, v.Reason)
	require.Equal(t, model.SeveritySecondary, v.Severity)
}
