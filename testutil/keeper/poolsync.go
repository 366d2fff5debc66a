package keeper

import (
	"testing"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	poolsynckeeper "github.com/ratesync-network/ratesync/x/poolsync/keeper"
	poolsynctypes "github.com/ratesync-network/ratesync/x/poolsync/types"
	ratesynckeeper "github.com/ratesync-network/ratesync/x/ratesync/keeper"
	ratesynctypes "github.com/ratesync-network/ratesync/x/ratesync/types"
)

// PoolsyncFixture wires a poolsync keeper to a live ratesync keeper and a
// mock AMM over one multistore.
type PoolsyncFixture struct {
	Ctx      sdk.Context
	Keeper   *poolsynckeeper.Keeper
	Ratesync *ratesynckeeper.Keeper
	AMM      *MockStableswapKeeper
}

// PoolsyncKeeper creates an instantiated poolsync keeper and an instantiated
// ratesync registry, both owned by owner.
func PoolsyncKeeper(t testing.TB, owner sdk.AccAddress) PoolsyncFixture {
	rateKey := storetypes.NewKVStoreKey(ratesynctypes.StoreKey)
	poolKey := storetypes.NewKVStoreKey(poolsynctypes.StoreKey)
	ctx, _ := NewTestContext(t, rateKey, poolKey)

	rk := ratesynckeeper.NewKeeper(rateKey)
	require.NoError(t, rk.Instantiate(ctx, ratesynctypes.Config{
		Owner:                owner.String(),
		TransferChannelID:    "channel-0",
		TransferPortID:       ratesynctypes.DefaultTransferPortID,
		DefaultAnomalyConfig: ratesynctypes.DefaultAnomalyConfig(),
		AnomalyPolicy:        ratesynctypes.AnomalyPolicyFlag,
	}))

	amm := NewMockStableswapKeeper()
	pk := poolsynckeeper.NewKeeper(poolKey, rk, amm)
	require.NoError(t, pk.InitGenesis(ctx, *poolsynctypes.DefaultGenesis()))
	require.NoError(t, pk.Instantiate(ctx, poolsynctypes.Config{Owner: owner.String()}))

	return PoolsyncFixture{
		Ctx:      ctx,
		Keeper:   pk,
		Ratesync: rk,
		AMM:      amm,
	}
}
