package keeper

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func TestVersionConstants(t *testing.T) {
	require.Equal(t, "v1.0.0", RateOracleKeeperVersion)
	require.Equal(t, "v1.0.0", StableswapKeeperVersion)
}

func TestRedemptionRateInfoStruct(t *testing.T) {
	info := RedemptionRateInfo{
		Denom:      "ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2",
		Value:      sdkmath.LegacyMustNewDecFromStr("1.05"),
		UpdateTime: 1700000000,
	}

	require.True(t, info.Value.Equal(sdkmath.LegacyMustNewDecFromStr("1.05")))
	require.Equal(t, uint64(1700000000), info.UpdateTime)
	require.False(t, info.AnomalyDetected)
}

func TestStableswapPoolInfoDenomAt(t *testing.T) {
	pool := StableswapPoolInfo{
		PoolID: 886,
		Denoms: []string{"ibc/STK", "uosmo"},
	}

	denom, ok := pool.DenomAt(0)
	require.True(t, ok)
	require.Equal(t, "ibc/STK", denom)

	denom, ok = pool.DenomAt(1)
	require.True(t, ok)
	require.Equal(t, "uosmo", denom)

	_, ok = pool.DenomAt(2)
	require.False(t, ok)

	_, ok = pool.DenomAt(-1)
	require.False(t, ok)
}
