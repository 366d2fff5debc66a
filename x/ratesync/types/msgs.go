package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Message type names
const (
	TypeMsgInstantiate          = "instantiate"
	TypeMsgSubmitRedemptionRate = "submit_redemption_rate"
	TypeMsgUpdateConfig         = "update_config"
	TypeMsgSetAnomalyConfig     = "set_anomaly_config"
	TypeMsgAcceptOwnership      = "accept_ownership"
	TypeMsgCancelOwnership      = "cancel_ownership"
)

// MsgInstantiate creates the registry Config. Owner defaults to Sender and the
// anomaly defaults to DefaultAnomalyConfig.
type MsgInstantiate struct {
	Sender              string          `json:"sender"`
	Owner               string          `json:"owner,omitempty"`
	TransferChannelID   string          `json:"transfer_channel_id"`
	TransferPortID      string          `json:"transfer_port_id"`
	DeviationCountLimit *uint64         `json:"deviation_count_limit,omitempty"`
	DeviationThreshold  *math.LegacyDec `json:"deviation_threshold,omitempty"`
	AnomalyPolicy       string          `json:"anomaly_policy,omitempty"`
}

type MsgInstantiateResponse struct{}

// ToConfig builds the Config the message describes.
func (msg *MsgInstantiate) ToConfig() (Config, error) {
	owner := msg.Owner
	if owner == "" {
		owner = msg.Sender
	}

	anomaly := DefaultAnomalyConfig()
	if msg.DeviationCountLimit != nil {
		anomaly.CountLimit = *msg.DeviationCountLimit
	}
	if msg.DeviationThreshold != nil {
		anomaly.Threshold = *msg.DeviationThreshold
	}

	policy, err := ParseAnomalyPolicy(msg.AnomalyPolicy)
	if err != nil {
		return Config{}, err
	}

	portID := msg.TransferPortID
	if portID == "" {
		portID = DefaultTransferPortID
	}

	cfg := Config{
		Owner:                owner,
		TransferChannelID:    msg.TransferChannelID,
		TransferPortID:       portID,
		DefaultAnomalyConfig: anomaly,
		AnomalyPolicy:        policy,
	}
	return cfg, cfg.Validate()
}

// ValidateBasic performs stateless checks
func (msg *MsgInstantiate) ValidateBasic() error {
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	_, err := msg.ToConfig()
	return err
}

// MsgSubmitRedemptionRate records the c-value of an stkToken at a
// controller chain time.
type MsgSubmitRedemptionRate struct {
	Sender              string         `json:"sender"`
	DefaultBondDenom    string         `json:"default_bond_denom"`
	StkDenom            string         `json:"stk_denom"`
	CValue              math.LegacyDec `json:"c_value"`
	ControllerChainTime uint64         `json:"controller_chain_time"`
}

type MsgSubmitRedemptionRateResponse struct {
	Denom           string `json:"denom"`
	AnomalyDetected bool   `json:"anomaly_detected"`
}

// NewMsgSubmitRedemptionRate creates a new MsgSubmitRedemptionRate instance
func NewMsgSubmitRedemptionRate(sender, bondDenom, stkDenom string, cValue math.LegacyDec, controllerChainTime uint64) *MsgSubmitRedemptionRate {
	return &MsgSubmitRedemptionRate{
		Sender:              sender,
		DefaultBondDenom:    bondDenom,
		StkDenom:            stkDenom,
		CValue:              cValue,
		ControllerChainTime: controllerChainTime,
	}
}

// ValidateBasic performs stateless checks
func (msg *MsgSubmitRedemptionRate) ValidateBasic() error {
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	if err := ValidateNativeDenom(msg.DefaultBondDenom); err != nil {
		return err
	}
	if err := ValidateNativeDenom(msg.StkDenom); err != nil {
		return err
	}
	if msg.CValue.IsNil() || msg.CValue.IsNegative() {
		return ErrInvalidRedemptionRate.Wrap("c_value must be non-negative")
	}
	return nil
}

// MsgUpdateConfig changes the transfer path and proposes a new owner. Empty
// fields are left unchanged.
type MsgUpdateConfig struct {
	Sender            string `json:"sender"`
	TransferChannelID string `json:"transfer_channel_id,omitempty"`
	TransferPortID    string `json:"transfer_port_id,omitempty"`
	Owner             string `json:"owner,omitempty"`
}

type MsgUpdateConfigResponse struct{}

// ValidateBasic performs stateless checks
func (msg *MsgUpdateConfig) ValidateBasic() error {
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	if msg.TransferChannelID != "" {
		if err := ValidateChannelID(msg.TransferChannelID); err != nil {
			return err
		}
	}
	if msg.TransferPortID != "" {
		if err := ValidatePortID(msg.TransferPortID); err != nil {
			return err
		}
	}
	if msg.Owner != "" {
		if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
			return sdkerrors.ErrInvalidAddress.Wrapf("invalid owner address: %s", err)
		}
	}
	return nil
}

// MsgSetAnomalyConfig overrides anomaly detection for an stkToken.
type MsgSetAnomalyConfig struct {
	Sender              string         `json:"sender"`
	StkDenom            string         `json:"stk_denom"`
	DeviationCountLimit uint64         `json:"deviation_count_limit"`
	DeviationThreshold  math.LegacyDec `json:"deviation_threshold"`
}

type MsgSetAnomalyConfigResponse struct {
	Denom string `json:"denom"`
}

// AnomalyConfig returns the config carried by the message.
func (msg *MsgSetAnomalyConfig) AnomalyConfig() AnomalyConfig {
	return AnomalyConfig{
		CountLimit: msg.DeviationCountLimit,
		Threshold:  msg.DeviationThreshold,
	}
}

// ValidateBasic performs stateless checks
func (msg *MsgSetAnomalyConfig) ValidateBasic() error {
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	if err := ValidateNativeDenom(msg.StkDenom); err != nil {
		return err
	}
	return msg.AnomalyConfig().Validate()
}

// MsgAcceptOwnership completes a pending ownership transfer.
type MsgAcceptOwnership struct {
	Sender string `json:"sender"`
}

type MsgAcceptOwnershipResponse struct{}

// ValidateBasic performs stateless checks
func (msg *MsgAcceptOwnership) ValidateBasic() error {
	return validateSender(msg.Sender)
}

// MsgCancelOwnership drops a pending ownership transfer.
type MsgCancelOwnership struct {
	Sender string `json:"sender"`
}

type MsgCancelOwnershipResponse struct{}

// ValidateBasic performs stateless checks
func (msg *MsgCancelOwnership) ValidateBasic() error {
	return validateSender(msg.Sender)
}

func validateSender(sender string) error {
	if _, err := sdk.AccAddressFromBech32(sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}
	return nil
}
