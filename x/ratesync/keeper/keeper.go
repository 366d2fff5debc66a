package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ratesync-network/ratesync/x/ratesync/types"
)

// Keeper of the ratesync store
type Keeper struct {
	storeKey storetypes.StoreKey
	metrics  *RatesyncMetrics
}

// NewKeeper creates a new ratesync Keeper instance
func NewKeeper(key storetypes.StoreKey) *Keeper {
	return &Keeper{
		storeKey: key,
		metrics:  NewRatesyncMetrics(),
	}
}

// getStore returns the KVStore for the ratesync module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}
