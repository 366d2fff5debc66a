package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ratesync-network/ratesync/x/poolsync/types"
)

// Keeper of the poolsync store
type Keeper struct {
	storeKey      storetypes.StoreKey
	rateKeeper    types.RateOracleKeeper
	ammKeeper     types.StableswapKeeper
	moduleAddress sdk.AccAddress
	metrics       *PoolsyncMetrics
}

// NewKeeper creates a new poolsync Keeper instance
func NewKeeper(
	key storetypes.StoreKey,
	rateKeeper types.RateOracleKeeper,
	ammKeeper types.StableswapKeeper,
) *Keeper {
	return &Keeper{
		storeKey:      key,
		rateKeeper:    rateKeeper,
		ammKeeper:     ammKeeper,
		moduleAddress: types.ModuleAddress(),
		metrics:       NewPoolsyncMetrics(),
	}
}

// getStore returns the KVStore for the poolsync module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// ModuleAddress returns the account the module signs AMM updates with.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return k.moduleAddress
}
