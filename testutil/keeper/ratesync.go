package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/ratesync-network/ratesync/x/ratesync/keeper"
	"github.com/ratesync-network/ratesync/x/ratesync/types"
)

// GenesisTime is the block time of every test context.
var GenesisTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// TestAddr returns a deterministic 20-byte account address for name.
func TestAddr(name string) sdk.AccAddress {
	bz := make([]byte, 20)
	copy(bz, name)
	return sdk.AccAddress(bz)
}

// NewTestContext mounts the given store keys on an in-memory multistore.
func NewTestContext(t testing.TB, keys ...storetypes.StoreKey) (sdk.Context, storetypes.CommitMultiStore) {
	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	for _, key := range keys {
		stateStore.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	}
	require.NoError(t, stateStore.LoadLatestVersion())

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: GenesisTime}, false, log.NewNopLogger())
	return ctx, stateStore
}

// RatesyncKeeper creates an uninstantiated ratesync keeper over a fresh store.
func RatesyncKeeper(t testing.TB) (*keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	ctx, _ := NewTestContext(t, storeKey)

	k := keeper.NewKeeper(storeKey)
	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, ctx
}

// InstantiatedRatesyncKeeper creates a ratesync keeper owned by owner,
// tracking stkTokens over transfer/channel-0.
func InstantiatedRatesyncKeeper(t testing.TB, owner sdk.AccAddress) (*keeper.Keeper, sdk.Context) {
	k, ctx := RatesyncKeeper(t)

	cfg := types.Config{
		Owner:                owner.String(),
		TransferChannelID:    "channel-0",
		TransferPortID:       types.DefaultTransferPortID,
		DefaultAnomalyConfig: types.DefaultAnomalyConfig(),
		AnomalyPolicy:        types.AnomalyPolicyFlag,
	}
	require.NoError(t, k.Instantiate(ctx, cfg))

	return k, ctx
}
