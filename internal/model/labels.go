package model

const (
	// PromptStakerConfigTitle is the title of the first apply confirmation.
	PromptStakerConfigTitle = "Staker configuration"

	// PromptStakerConfigText asks the operator to confirm the new selection.
	PromptStakerConfigText = "Are you sure you want to implement this staker configuration?"

	// PromptDisclaimerTitle is the title of the second apply confirmation.
	PromptDisclaimerTitle = "Disclaimer"

	// PromptDisclaimerText is shown before any staker configuration is applied.
	PromptDisclaimerText = "This software is experimental, presented \"as is\" and inherently carries risks. " +
		"By installing it you acknowledge that you are solely responsible for the keys of your validators, " +
		"for keeping your execution and consensus clients in sync, and for any loss of funds caused by " +
		"misconfiguration, slashing or downtime."

	// PromptContinueLabel is the only actionable button of every apply confirmation.
	PromptContinueLabel = "Continue"

	// ReasonNoChanges is reported when a proposed configuration equals the current one.
	ReasonNoChanges = "no changes"

	// ReasonExecutionMissing is reported when no execution client is selected.
	ReasonExecutionMissing = "execution client must be selected"

	// ReasonConsensusMissing is reported when no consensus client is selected.
	ReasonConsensusMissing = "consensus client must be selected"

	// FeeRecipientInvalid is the validation message for a malformed fee recipient.
	FeeRecipientInvalid = "invalid ethereum address"

	// FeeRecipientBadChecksum is the validation message for a mixed-case address with a wrong checksum.
	FeeRecipientBadChecksum = "invalid address checksum"
)
