package types

// Event types for the ratesync module
const (
	EventTypeInstantiate        = "ratesync_instantiate"
	EventTypeRedemptionRate     = "ratesync_redemption_rate"
	EventTypeAnomalyDetected    = "ratesync_anomaly_detected"
	EventTypeUpdateConfig       = "ratesync_update_config"
	EventTypeSetAnomalyConfig   = "ratesync_set_anomaly_config"
	EventTypeOwnershipProposed  = "ratesync_ownership_proposed"
	EventTypeOwnershipAccepted  = "ratesync_ownership_accepted"
	EventTypeOwnershipCancelled = "ratesync_ownership_cancelled"
)

// Event attribute keys for the ratesync module
const (
	AttributeKeyAction              = "action"
	AttributeKeyOwner               = "owner"
	AttributeKeyPendingOwner        = "pending_owner"
	AttributeKeyDefaultBondDenom    = "default_bond_denom"
	AttributeKeyStkDenom            = "stk_denom"
	AttributeKeyDenom               = "denom"
	AttributeKeyCValue              = "c_value"
	AttributeKeyControllerChainTime = "controller_chain_time"
	AttributeKeyAnomalyDetected     = "anomaly_detected"
	AttributeKeyMovingAverage       = "moving_average"
	AttributeKeyDeviation           = "deviation"
	AttributeKeyTransferChannelID   = "transfer_channel_id"
	AttributeKeyTransferPortID      = "transfer_port_id"
	AttributeKeyCountLimit          = "deviation_count_limit"
	AttributeKeyThreshold           = "deviation_threshold"
)

// Values of AttributeKeyAction
const (
	ActionInstantiate       = "instantiate"
	ActionSetRedemptionRate = "set_redemption_rate"
	ActionUpdateConfig      = "update_config"
	ActionSetAnomalyConfig  = "set_anomaly_config"
	ActionAcceptOwnership   = "accept_owner"
	ActionCancelOwnership   = "cancel_owner"
)
