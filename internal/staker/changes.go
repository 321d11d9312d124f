package staker

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/thep2p/go-staker-manager/internal/model"
)

var validate = validator.New()

// ValidateFeeRecipient returns a validation message for addr, or "" when
// addr is acceptable. An empty address is acceptable: it clears the
// default fee recipient.
func ValidateFeeRecipient(addr string) string {
	if addr == "" {
		return ""
	}
	if err := validate.Var(addr, "eth_addr"); err != nil {
		return model.FeeRecipientInvalid
	}

	// all-lowercase and all-uppercase addresses carry no checksum
	hexPart := addr[2:]
	if hexPart != strings.ToLower(hexPart) && hexPart != strings.ToUpper(hexPart) {
		if common.HexToAddress(addr).Hex() != addr {
			return model.FeeRecipientBadChecksum
		}
	}
	return ""
}

// GetChanges decides whether proposed may replace current.
//
// Rules are evaluated in order and the first match wins: a fee recipient
// validation error, then an unchanged configuration, then a missing
// execution or consensus client. Items are compared by DNP name only.
func GetChanges(current, proposed model.StakerConfig, feeRecipientErr string) model.ChangeVerdict {
	if feeRecipientErr != "" {
		return model.Blocked(feeRecipientErr, model.SeverityDanger)
	}

	if isSameConfig(current, proposed) {
		return model.Blocked(model.ReasonNoChanges, model.SeveritySecondary)
	}

	if proposed.ExecutionClient == nil {
		return model.Blocked(model.ReasonExecutionMissing, model.SeverityWarning)
	}
	if proposed.ConsensusClient == nil {
		return model.Blocked(model.ReasonConsensusMissing, model.SeverityWarning)
	}

	return model.Allowed()
}

func isSameConfig(current, proposed model.StakerConfig) bool {
	return model.SameDnp(current.ExecutionClient, proposed.ExecutionClient) &&
		model.SameDnp(current.ConsensusClient, proposed.ConsensusClient) &&
		model.SameDnp(current.MevBoost, proposed.MevBoost) &&
		current.EnableWeb3signer == proposed.EnableWeb3signer &&
		strings.EqualFold(current.FeeRecipient, proposed.FeeRecipient)
}
