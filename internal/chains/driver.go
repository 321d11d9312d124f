// Package chains resolves which chain driver reports sync status for an
// installed package.
package chains

import "github.com/thep2p/go-staker-manager/internal/packages"

// Driver names a chain status implementation.
type Driver string

const (
	Ethereum  Driver = "ethereum"
	Ethereum2 Driver = "ethereum2"
	Bitcoin   Driver = "bitcoin"
	Monero    Driver = "monero"
)

// knownChains covers packages whose manifests predate the chain field.
var knownChains = map[string]Driver{
	"openethereum.dnp.dappnode.eth":      Ethereum,
	"ropsten.dnp.dappnode.eth":           Ethereum,
	"rinkeby.dnp.dappnode.eth":           Ethereum,
	"kovan.dnp.dappnode.eth":             Ethereum,
	"bitcoin.dnp.dappnode.eth":           Bitcoin,
	"monero.dnp.dappnode.eth":            Monero,
	"prysm.dnp.dappnode.eth":             Ethereum2,
	"prysm-prater.dnp.dappnode.eth":      Ethereum2,
	"teku.dnp.dappnode.eth":              Ethereum2,
	"teku-prater.dnp.dappnode.eth":       Ethereum2,
	"lighthouse.dnp.dappnode.eth":        Ethereum2,
	"lighthouse-prater.dnp.dappnode.eth": Ethereum2,
}

// DriverName returns the chain driver of pkg. The chain declared by the
// package wins over the hardcoded table. The boolean is false when the
// package has no known chain.
func DriverName(pkg packages.InstalledPackage) (Driver, bool) {
	if pkg.Chain != "" {
		return Driver(pkg.Chain), true
	}
	d, ok := knownChains[pkg.DnpName]
	return d, ok
}
