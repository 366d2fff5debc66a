package ratesync_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/ratesync-network/ratesync/testutil/keeper"
	"github.com/ratesync-network/ratesync/x/ratesync"
	"github.com/ratesync-network/ratesync/x/ratesync/types"
)

func TestModuleGenesis(t *testing.T) {
	owner := keepertest.TestAddr("owner")
	k, ctx := keepertest.InstantiatedRatesyncKeeper(t, owner)
	am := ratesync.NewAppModule(k)

	require.Equal(t, types.ModuleName, am.Name())
	require.NoError(t, am.ValidateGenesis(nil, nil, am.DefaultGenesis(nil)))

	_, err := am.MsgServer().SubmitRedemptionRate(ctx, types.NewMsgSubmitRedemptionRate(owner.String(), "uatom", "uatom", math.LegacyOneDec(), 1))
	require.NoError(t, err)

	exported := am.ExportGenesis(ctx, nil)
	require.NoError(t, am.ValidateGenesis(nil, nil, exported))

	k2, ctx2 := keepertest.RatesyncKeeper(t)
	am2 := ratesync.NewAppModule(k2)
	am2.InitGenesis(ctx2, nil, exported)

	resp, err := am2.QueryServer().Config(ctx2, &types.QueryConfigRequest{})
	require.NoError(t, err)
	require.Equal(t, owner.String(), resp.Owner)

	require.Error(t, am.ValidateGenesis(nil, nil, []byte(`{"rates":[{"denom":""}]}`)))
	require.Panics(t, func() { am2.InitGenesis(ctx2, nil, []byte(`not json`)) })
}
