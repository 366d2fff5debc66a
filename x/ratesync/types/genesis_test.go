package types

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Owner:                ownerAddr,
		TransferChannelID:    "channel-0",
		TransferPortID:       DefaultTransferPortID,
		DefaultAnomalyConfig: DefaultAnomalyConfig(),
		AnomalyPolicy:        AnomalyPolicyFlag,
	}
}

func TestGenesisState_Validate(t *testing.T) {
	history := NewHistory[RedemptionRate](5)
	history.Add(rate(1, 1))
	history.Add(rate(2, 2))

	tests := []struct {
		name     string
		genState *GenesisState
		err      error
	}{
		{
			name:     "default",
			genState: DefaultGenesis(),
		},
		{
			name: "full",
			genState: &GenesisState{
				Config:         validConfig(),
				Rates:          []DenomRateHistory{{Denom: "ibc/TEST", History: history}},
				AnomalyConfigs: []DenomAnomalyConfig{{Denom: "ibc/TEST", AnomalyConfig: DefaultAnomalyConfig()}},
			},
		},
		{
			name: "invalid config",
			genState: &GenesisState{
				Config: &Config{Owner: ownerAddr, TransferPortID: "transfer", DefaultAnomalyConfig: DefaultAnomalyConfig(), AnomalyPolicy: AnomalyPolicyFlag},
			},
			err: ErrMissingTransferChannelID,
		},
		{
			name: "duplicate history",
			genState: &GenesisState{
				Rates: []DenomRateHistory{{Denom: "ibc/TEST", History: history}, {Denom: "ibc/TEST", History: history}},
			},
			err: ErrInvalidGenesis,
		},
		{
			name: "empty history denom",
			genState: &GenesisState{
				Rates: []DenomRateHistory{{History: history}},
			},
			err: ErrInvalidGenesis,
		},
		{
			name: "negative rate",
			genState: &GenesisState{
				Rates: []DenomRateHistory{{
					Denom: "ibc/A",
					History: RateHistory{
						Entries:  []RedemptionRate{{Denom: "ibc/A", RedemptionRate: math.LegacyNewDec(-1), UpdateTime: 1}},
						Capacity: 5,
					},
				}},
			},
			err: ErrInvalidGenesis,
		},
		{
			name: "history entry for another denom",
			genState: &GenesisState{
				Rates: []DenomRateHistory{{Denom: "ibc/A", History: history}},
			},
			err: ErrInvalidGenesis,
		},
		{
			name: "duplicate anomaly config",
			genState: &GenesisState{
				AnomalyConfigs: []DenomAnomalyConfig{
					{Denom: "ibc/A", AnomalyConfig: DefaultAnomalyConfig()},
					{Denom: "ibc/A", AnomalyConfig: DefaultAnomalyConfig()},
				},
			},
			err: ErrInvalidGenesis,
		},
		{
			name: "invalid anomaly config",
			genState: &GenesisState{
				AnomalyConfigs: []DenomAnomalyConfig{{Denom: "ibc/A", AnomalyConfig: AnomalyConfig{Threshold: math.LegacyOneDec()}}},
			},
			err: ErrInvalidAnomalyConfig,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.genState.Validate()
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestConfig_HashDenom(t *testing.T) {
	cfg := validConfig()
	hash, err := cfg.HashDenom("uatom")
	require.NoError(t, err)
	require.Equal(t, "ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2", hash)

	cfg.PendingOwner = "bad"
	require.Error(t, cfg.Validate())
}

func TestGetRecoverySuggestion(t *testing.T) {
	require.NotEmpty(t, GetRecoverySuggestion(ErrRateNotFound.Wrap("ibc/A")))
	require.Empty(t, GetRecoverySuggestion(ErrInvalidGenesis))
}
