package types

import (
	"errors"

	errorsmod "cosmossdk.io/errors"
)

// ratesync module sentinel errors
var (
	// Validation errors
	ErrInvalidDenom               = errorsmod.Register(ModuleName, 2, "invalid denom")
	ErrInvalidChannelID           = errorsmod.Register(ModuleName, 3, "invalid channel ID")
	ErrInvalidPortID              = errorsmod.Register(ModuleName, 4, "invalid port ID")
	ErrInvalidRedemptionRateDenom = errorsmod.Register(ModuleName, 5, "the denom for the redemption rate metric must not be an IBC denom")
	ErrInvalidRedemptionRate      = errorsmod.Register(ModuleName, 6, "invalid redemption rate")
	ErrInvalidAnomalyConfig       = errorsmod.Register(ModuleName, 7, "invalid anomaly config")
	ErrInvalidAnomalyPolicy       = errorsmod.Register(ModuleName, 8, "invalid anomaly policy")
	ErrMissingTransferChannelID   = errorsmod.Register(ModuleName, 9, "channel ID is missing")

	// Rate errors
	ErrInvalidCValueDeviation = errorsmod.Register(ModuleName, 10, "invalid c_value deviation")
	ErrRateNotFound           = errorsmod.Register(ModuleName, 11, "redemption rate not found")
	ErrInvalidQueryRequest    = errorsmod.Register(ModuleName, 12, "invalid query request")

	// Lifecycle errors
	ErrNotInstantiated     = errorsmod.Register(ModuleName, 20, "ratesync config not instantiated")
	ErrAlreadyInstantiated = errorsmod.Register(ModuleName, 21, "ratesync config already instantiated")
	ErrNoPendingOwner      = errorsmod.Register(ModuleName, 22, "no ownership transfer pending")
	ErrInvalidGenesis      = errorsmod.Register(ModuleName, 23, "invalid genesis state")
)

// RecoverySuggestions provides actionable recovery steps for each error type
var RecoverySuggestions = map[error]string{
	ErrInvalidDenom:               "Denoms must be 3-128 characters, start with a letter and use only letters, digits and / : . _ -.",
	ErrInvalidChannelID:           "Channel IDs have the form channel-N, e.g. channel-0.",
	ErrInvalidPortID:              "Use the transfer port the stkToken was sent over, usually 'transfer'.",
	ErrInvalidRedemptionRateDenom: "Submit the base stkToken denom (e.g. stkuatom); the ibc/ hash is derived from the configured port and channel.",
	ErrInvalidCValueDeviation:     "The rate deviates from the moving average by more than the threshold. Check the controller chain value or raise the threshold with set-anomaly-config.",
	ErrRateNotFound:               "No rate has been submitted for this denom. Query by the ibc/ hash (see denom-hash).",
	ErrInvalidQueryRequest:        "Leave the params field empty; it is reserved.",
	ErrNotInstantiated:            "Run init (or MsgInstantiate) before submitting rates.",
	ErrAlreadyInstantiated:        "The registry is configured already. Use update-config to change the channel or port.",
	ErrNoPendingOwner:             "Propose a new owner with update-config --owner first.",
}

// GetRecoverySuggestion returns the recovery suggestion for an error
func GetRecoverySuggestion(err error) string {
	for target, suggestion := range RecoverySuggestions {
		if errors.Is(err, target) {
			return suggestion
		}
	}
	return ""
}
