package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Sentinel errors for the poolsync module
var (
	ErrPoolNotFound                   = errorsmod.Register(ModuleName, 2, "pool is not registered")
	ErrPoolAlreadyExists              = errorsmod.Register(ModuleName, 3, "pool is already registered")
	ErrPoolNotFoundOnAMM              = errorsmod.Register(ModuleName, 4, "pool not found on the AMM")
	ErrInvalidPoolAssetOrdering       = errorsmod.Register(ModuleName, 5, "the specified asset ordering does not match the underlying pool")
	ErrInvalidNumberOfPoolAssets      = errorsmod.Register(ModuleName, 6, "the underlying pool must have exactly 2 assets")
	ErrInvalidScalingFactorController = errorsmod.Register(ModuleName, 7, "invalid scaling factor controller")
	ErrUnableToQueryRedemptionRate    = errorsmod.Register(ModuleName, 8, "unable to query redemption rate")
	ErrInvalidAssetOrdering           = errorsmod.Register(ModuleName, 9, "invalid asset ordering")
	ErrInvalidScalingFactors          = errorsmod.Register(ModuleName, 10, "invalid scaling factors")

	ErrNotInstantiated     = errorsmod.Register(ModuleName, 20, "poolsync config not instantiated")
	ErrAlreadyInstantiated = errorsmod.Register(ModuleName, 21, "poolsync config already instantiated")
	ErrInvalidGenesis      = errorsmod.Register(ModuleName, 22, "invalid genesis state")
)
