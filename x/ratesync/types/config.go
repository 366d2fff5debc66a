package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// DefaultTransferPortID is the ICS-20 port used when none is configured.
const DefaultTransferPortID = "transfer"

// Config is the registry-wide configuration singleton.
type Config struct {
	// Owner may submit rates and change configuration
	Owner string `json:"owner"`
	// PendingOwner is set while an ownership transfer awaits acceptance
	PendingOwner string `json:"pending_owner,omitempty"`
	// TransferChannelID is the channel stkTokens arrive over, used for hashing
	TransferChannelID string `json:"transfer_channel_id"`
	// TransferPortID is the port stkTokens arrive over, used for hashing
	TransferPortID string `json:"transfer_port_id"`
	// DefaultAnomalyConfig is materialized for denoms seen for the first time
	DefaultAnomalyConfig AnomalyConfig `json:"default_anomaly_config"`
	// AnomalyPolicy decides whether anomalous rates are flagged or rejected
	AnomalyPolicy AnomalyPolicy `json:"anomaly_policy"`
}

// Validate checks the config is well-formed.
func (c Config) Validate() error {
	if _, err := sdk.AccAddressFromBech32(c.Owner); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid owner address: %s", err)
	}
	if c.PendingOwner != "" {
		if _, err := sdk.AccAddressFromBech32(c.PendingOwner); err != nil {
			return sdkerrors.ErrInvalidAddress.Wrapf("invalid pending owner address: %s", err)
		}
	}
	if c.TransferChannelID == "" {
		return ErrMissingTransferChannelID
	}
	if err := ValidateChannelID(c.TransferChannelID); err != nil {
		return err
	}
	if err := ValidatePortID(c.TransferPortID); err != nil {
		return err
	}
	if err := c.DefaultAnomalyConfig.Validate(); err != nil {
		return err
	}
	return c.AnomalyPolicy.Validate()
}

// HashDenom derives the storage key of an stkToken under the configured path.
func (c Config) HashDenom(stkDenom string) (string, error) {
	return DenomTraceToHash(stkDenom, c.TransferPortID, c.TransferChannelID)
}
