package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/ratesync-network/ratesync/testutil/keeper"
	"github.com/ratesync-network/ratesync/x/ratesync/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	k, ctx := keepertest.InstantiatedRatesyncKeeper(t, owner)

	for i, v := range []string{"1.01", "1.02", "1.5"} {
		_, err := k.SubmitRedemptionRate(ctx, owner.String(), "uatom", "uatom", math.LegacyMustNewDecFromStr(v), uint64(i+1))
		require.NoError(t, err)
	}
	_, err := k.SubmitRedemptionRate(ctx, owner.String(), "uosmo", "stkuosmo", math.LegacyOneDec(), 7)
	require.NoError(t, err)

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.NotNil(t, exported.Config)
	require.Len(t, exported.Rates, 2)
	require.Len(t, exported.AnomalyConfigs, 2)

	k2, ctx2 := keepertest.RatesyncKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))

	cfg, err := k2.GetConfig(ctx2)
	require.NoError(t, err)
	require.Equal(t, owner.String(), cfg.Owner)

	latest, err := k2.GetLatestRedemptionRate(ctx2, uatomHash)
	require.NoError(t, err)
	require.True(t, latest.Value.Equal(math.LegacyMustNewDecFromStr("1.5")))
	require.True(t, latest.AnomalyDetected)

	reexported, err := k2.ExportGenesis(ctx2)
	require.NoError(t, err)
	require.Equal(t, len(exported.Rates), len(reexported.Rates))
	for i := range exported.Rates {
		require.Equal(t, exported.Rates[i].Denom, reexported.Rates[i].Denom)
		require.Equal(t, exported.Rates[i].History.Len(), reexported.Rates[i].History.Len())
	}
}

func TestInitGenesisRejectsInvalid(t *testing.T) {
	k, ctx := keepertest.RatesyncKeeper(t)

	gs := types.DefaultGenesis()
	gs.AnomalyConfigs = []types.DenomAnomalyConfig{{Denom: uatomHash}}
	require.Error(t, k.InitGenesis(ctx, *gs))
}
