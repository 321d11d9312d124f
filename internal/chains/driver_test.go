package chains_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thep2p/go-staker-manager/internal/chains"
	"github.com/thep2p/go-staker-manager/internal/packages"
)

func TestDriverName(t *testing.T) {
	tests := []struct {
		name   string
		pkg    packages.InstalledPackage
		want   chains.Driver
		wantOk bool
	}{
		{
			name:   "declared chain wins",
			pkg:    packages.InstalledPackage{DnpName: "prysm.dnp.dappnode.eth", Chain: "ethereum-beacon-chain"},
			want:   chains.Driver("ethereum-beacon-chain"),
			wantOk: true,
		},
		{
			name:   "known legacy package",
			pkg:    packages.InstalledPackage{DnpName: "lighthouse-prater.dnp.dappnode.eth"},
			want:   chains.Ethereum2,
			wantOk: true,
		},
		{
			name:   "bitcoin",
			pkg:    packages.InstalledPackage{DnpName: "bitcoin.dnp.dappnode.eth"},
			want:   chains.Bitcoin,
			wantOk: true,
		},
		{
			name:   "unknown package",
			pkg:    packages.InstalledPackage{DnpName: "wireguard.dnp.dappnode.eth"},
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := chains.DriverName(tt.pkg)
			require.Equal(t, tt.wantOk, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
