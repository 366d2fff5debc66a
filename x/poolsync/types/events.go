package types

// Event types for the poolsync module
const (
	EventTypeInstantiate         = "poolsync_instantiate"
	EventTypeUpdateConfig        = "poolsync_update_config"
	EventTypeAddPool             = "poolsync_add_pool"
	EventTypeRemovePool          = "poolsync_remove_pool"
	EventTypeUpdateScalingFactor = "poolsync_update_scaling_factor"
	EventTypeSudoAdjustScaling   = "poolsync_sudo_adjust_scaling_factors"
)

// Event attribute keys
const (
	AttributeKeyAction          = "action"
	AttributeKeyOwner           = "owner"
	AttributeKeyPoolID          = "pool_id"
	AttributeKeyStkTokenDenom   = "pool_stk_token_denom"
	AttributeKeyIBCHash         = "ibc_hash_stk_denom"
	AttributeKeyAssetOrdering   = "pool_asset_ordering"
	AttributeKeyRedemptionRate  = "redemption_rate"
	AttributeKeyScalingFactors  = "scaling_factors"
	AttributeKeyAnomalyDetected = "anomaly_detected"
)
