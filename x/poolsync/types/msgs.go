package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgInstantiate creates the module Config. Owner defaults to Sender.
type MsgInstantiate struct {
	Sender string `json:"sender"`
	Owner  string `json:"owner,omitempty"`
}

type MsgInstantiateResponse struct{}

// ToConfig builds the Config the message describes.
func (msg *MsgInstantiate) ToConfig() Config {
	owner := msg.Owner
	if owner == "" {
		owner = msg.Sender
	}
	return Config{Owner: owner}
}

// ValidateBasic performs stateless checks
func (msg *MsgInstantiate) ValidateBasic() error {
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	return msg.ToConfig().Validate()
}

// MsgUpdateConfig replaces the owner.
type MsgUpdateConfig struct {
	Sender string `json:"sender"`
	Owner  string `json:"owner"`
}

type MsgUpdateConfigResponse struct{}

// ValidateBasic performs stateless checks
func (msg *MsgUpdateConfig) ValidateBasic() error {
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	return Config{Owner: msg.Owner}.Validate()
}

// MsgAddPool registers a stableswap pool for scaling factor updates.
type MsgAddPool struct {
	Sender            string        `json:"sender"`
	PoolID            uint64        `json:"pool_id"`
	StkTokenDenom     string        `json:"stk_token_denom"`
	TransferPortID    string        `json:"transfer_port_id"`
	TransferChannelID string        `json:"transfer_channel_id"`
	AssetOrdering     AssetOrdering `json:"asset_ordering"`
}

type MsgAddPoolResponse struct {
	IBCHashStkDenom string `json:"ibc_hash_stk_denom"`
}

// ValidateBasic performs stateless checks
func (msg *MsgAddPool) ValidateBasic() error {
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	_, err := NewPool(msg.PoolID, msg.StkTokenDenom, msg.TransferPortID, msg.TransferChannelID, msg.AssetOrdering)
	return err
}

// MsgRemovePool deregisters a pool.
type MsgRemovePool struct {
	Sender string `json:"sender"`
	PoolID uint64 `json:"pool_id"`
}

type MsgRemovePoolResponse struct{}

// ValidateBasic performs stateless checks
func (msg *MsgRemovePool) ValidateBasic() error {
	return validateSender(msg.Sender)
}

// MsgUpdateScalingFactor resyncs a pool's scaling factors with the latest
// redemption rate. Anyone may send it.
type MsgUpdateScalingFactor struct {
	Sender string `json:"sender"`
	PoolID uint64 `json:"pool_id"`
}

type MsgUpdateScalingFactorResponse struct {
	ScalingFactors []uint64 `json:"scaling_factors"`
}

// ValidateBasic performs stateless checks
func (msg *MsgUpdateScalingFactor) ValidateBasic() error {
	return validateSender(msg.Sender)
}

// MsgSudoAdjustScalingFactors sets a pool's scaling factors directly.
type MsgSudoAdjustScalingFactors struct {
	Sender         string   `json:"sender"`
	PoolID         uint64   `json:"pool_id"`
	ScalingFactors []uint64 `json:"scaling_factors"`
}

type MsgSudoAdjustScalingFactorsResponse struct{}

// ValidateBasic performs stateless checks
func (msg *MsgSudoAdjustScalingFactors) ValidateBasic() error {
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	return ValidateScalingFactors(msg.ScalingFactors)
}

func validateSender(sender string) error {
	if _, err := sdk.AccAddressFromBech32(sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}
	return nil
}
