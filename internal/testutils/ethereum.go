package testutils

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
	"testing"
)

// FeeRecipientFixture returns the checksummed address of a freshly generated key.
func FeeRecipientFixture(t *testing.T) common.Address {
	priv, err := crypto.GenerateKey()
	require.NoError(t, err, "failed to generate private key")
	return crypto.PubkeyToAddress(priv.PublicKey)
}
