package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	keepertest "github.com/ratesync-network/ratesync/testutil/keeper"
	"github.com/ratesync-network/ratesync/x/ratesync/keeper"
	"github.com/ratesync-network/ratesync/x/ratesync/types"
)

func TestMsgServerEndToEnd(t *testing.T) {
	k, ctx := keepertest.RatesyncKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)
	qs := keeper.NewQueryServerImpl(*k)

	_, err := ms.Instantiate(ctx, &types.MsgInstantiate{
		Sender:            owner.String(),
		TransferChannelID: "channel-0",
		TransferPortID:    "transfer",
	})
	require.NoError(t, err)

	_, err = ms.Instantiate(ctx, &types.MsgInstantiate{Sender: owner.String(), TransferChannelID: "channel-1"})
	require.ErrorIs(t, err, types.ErrAlreadyInstantiated)

	cfgResp, err := qs.Config(ctx, &types.QueryConfigRequest{})
	require.NoError(t, err)
	require.Equal(t, owner.String(), cfgResp.Owner)
	require.Equal(t, "channel-0", cfgResp.TransferChannelID)
	require.Equal(t, "transfer", cfgResp.TransferPortID)
	require.Equal(t, string(types.AnomalyPolicyFlag), cfgResp.AnomalyPolicy)

	hashResp, err := qs.DenomHash(ctx, &types.QueryDenomHashRequest{StkDenom: "uatom"})
	require.NoError(t, err)
	require.Equal(t, uatomHash, hashResp.Denom)

	for _, obs := range []struct {
		value int64
		time  uint64
	}{{3, 2}, {1, 1}, {4, 3}} {
		resp, err := ms.SubmitRedemptionRate(ctx, types.NewMsgSubmitRedemptionRate(owner.String(), "uatom", "uatom", math.LegacyNewDec(obs.value), obs.time))
		require.NoError(t, err)
		require.Equal(t, uatomHash, resp.Denom)
	}

	_, err = ms.SubmitRedemptionRate(ctx, types.NewMsgSubmitRedemptionRate(stranger.String(), "uatom", "uatom", math.LegacyOneDec(), 9))
	require.ErrorIs(t, err, sdkerrors.ErrUnauthorized)

	histResp, err := qs.HistoricalRedemptionRates(ctx, &types.QueryHistoricalRedemptionRatesRequest{Denom: uatomHash})
	require.NoError(t, err)
	require.Len(t, histResp.RedemptionRates, 3)
	require.Equal(t, uint64(3), histResp.RedemptionRates[0].UpdateTime)
	require.True(t, histResp.RedemptionRates[0].RedemptionRate.Equal(math.LegacyNewDec(4)))
	require.Equal(t, uint64(2), histResp.RedemptionRates[1].UpdateTime)
	require.True(t, histResp.RedemptionRates[1].RedemptionRate.Equal(math.LegacyNewDec(3)))
	require.Equal(t, uint64(1), histResp.RedemptionRates[2].UpdateTime)
	require.True(t, histResp.RedemptionRates[2].RedemptionRate.Equal(math.LegacyNewDec(1)))

	limit := uint64(2)
	histResp, err = qs.HistoricalRedemptionRates(ctx, &types.QueryHistoricalRedemptionRatesRequest{Denom: uatomHash, Limit: &limit})
	require.NoError(t, err)
	require.Len(t, histResp.RedemptionRates, 2)
	require.Equal(t, uint64(3), histResp.RedemptionRates[0].UpdateTime)
	require.Equal(t, uint64(2), histResp.RedemptionRates[1].UpdateTime)

	rateResp, err := qs.RedemptionRate(ctx, &types.QueryRedemptionRateRequest{Denom: uatomHash})
	require.NoError(t, err)
	require.True(t, rateResp.RedemptionRate.Equal(math.LegacyNewDec(4)))
	require.Equal(t, uint64(3), rateResp.UpdateTime)
}

func TestQueryServerErrors(t *testing.T) {
	k, ctx := keepertest.InstantiatedRatesyncKeeper(t, owner)
	qs := keeper.NewQueryServerImpl(*k)

	_, err := qs.Config(ctx, nil)
	require.Error(t, err)

	_, err = qs.RedemptionRate(ctx, &types.QueryRedemptionRateRequest{Denom: uatomHash})
	require.ErrorIs(t, err, types.ErrRateNotFound)

	_, err = qs.HistoricalRedemptionRates(ctx, &types.QueryHistoricalRedemptionRatesRequest{Denom: uatomHash})
	require.ErrorIs(t, err, types.ErrRateNotFound)

	_, err = qs.RedemptionRate(ctx, &types.QueryRedemptionRateRequest{Denom: uatomHash, Params: []byte(`{}`)})
	require.ErrorIs(t, err, types.ErrInvalidQueryRequest)

	_, err = qs.HistoricalRedemptionRates(ctx, &types.QueryHistoricalRedemptionRatesRequest{Denom: uatomHash, Params: []byte(`{}`)})
	require.ErrorIs(t, err, types.ErrInvalidQueryRequest)

	_, err = qs.DenomHash(ctx, &types.QueryDenomHashRequest{StkDenom: uatomHash})
	require.ErrorIs(t, err, types.ErrInvalidRedemptionRateDenom)
}

func TestQueryAnomalyConfig(t *testing.T) {
	k, ctx := keepertest.InstantiatedRatesyncKeeper(t, owner)
	ms := keeper.NewMsgServerImpl(*k)
	qs := keeper.NewQueryServerImpl(*k)

	resp, err := qs.AnomalyConfig(ctx, &types.QueryAnomalyConfigRequest{Denom: uatomHash})
	require.NoError(t, err)
	require.Equal(t, types.DefaultDeviationCountLimit, resp.DeviationCountLimit)

	setResp, err := ms.SetAnomalyConfig(ctx, &types.MsgSetAnomalyConfig{
		Sender:              owner.String(),
		StkDenom:            "uatom",
		DeviationCountLimit: 4,
		DeviationThreshold:  math.LegacyNewDecWithPrec(1, 1),
	})
	require.NoError(t, err)
	require.Equal(t, uatomHash, setResp.Denom)

	resp, err = qs.AnomalyConfig(ctx, &types.QueryAnomalyConfigRequest{Denom: uatomHash})
	require.NoError(t, err)
	require.Equal(t, uint64(4), resp.DeviationCountLimit)
	require.True(t, resp.DeviationThreshold.Equal(math.LegacyNewDecWithPrec(1, 1)))

	_, err = ms.SetAnomalyConfig(ctx, &types.MsgSetAnomalyConfig{
		Sender:              stranger.String(),
		StkDenom:            "uatom",
		DeviationCountLimit: 4,
		DeviationThreshold:  math.LegacyOneDec(),
	})
	require.ErrorIs(t, err, sdkerrors.ErrUnauthorized)
}

func TestMsgServerOwnership(t *testing.T) {
	k, ctx := keepertest.InstantiatedRatesyncKeeper(t, owner)
	ms := keeper.NewMsgServerImpl(*k)
	qs := keeper.NewQueryServerImpl(*k)
	next := keepertest.TestAddr("next")

	_, err := ms.UpdateConfig(ctx, &types.MsgUpdateConfig{Sender: owner.String(), Owner: next.String(), TransferChannelID: "channel-4"})
	require.NoError(t, err)

	cfgResp, err := qs.Config(ctx, &types.QueryConfigRequest{})
	require.NoError(t, err)
	require.Equal(t, next.String(), cfgResp.PendingOwner)
	require.Equal(t, "channel-4", cfgResp.TransferChannelID)

	_, err = ms.AcceptOwnership(ctx, &types.MsgAcceptOwnership{Sender: next.String()})
	require.NoError(t, err)

	cfgResp, err = qs.Config(ctx, &types.QueryConfigRequest{})
	require.NoError(t, err)
	require.Equal(t, next.String(), cfgResp.Owner)
	require.Empty(t, cfgResp.PendingOwner)

	_, err = ms.CancelOwnership(ctx, &types.MsgCancelOwnership{Sender: next.String()})
	require.ErrorIs(t, err, types.ErrNoPendingOwner)
}

func TestMsgServerChecksOwnerBeforePayload(t *testing.T) {
	k, ctx := keepertest.InstantiatedRatesyncKeeper(t, owner)
	ms := keeper.NewMsgServerImpl(*k)

	tests := []struct {
		name       string
		send       func(sender string) error
		payloadErr error
	}{
		{
			name: "submit with invalid denom",
			send: func(sender string) error {
				_, err := ms.SubmitRedemptionRate(ctx, types.NewMsgSubmitRedemptionRate(sender, "uatom", "9bad", math.LegacyOneDec(), 1))
				return err
			},
			payloadErr: types.ErrInvalidDenom,
		},
		{
			name: "update config with invalid channel",
			send: func(sender string) error {
				_, err := ms.UpdateConfig(ctx, &types.MsgUpdateConfig{Sender: sender, TransferChannelID: "chan-0"})
				return err
			},
			payloadErr: types.ErrInvalidChannelID,
		},
		{
			name: "set anomaly config with zero count",
			send: func(sender string) error {
				_, err := ms.SetAnomalyConfig(ctx, &types.MsgSetAnomalyConfig{
					Sender:             sender,
					StkDenom:           "uatom",
					DeviationThreshold: math.LegacyOneDec(),
				})
				return err
			},
			payloadErr: types.ErrInvalidAnomalyConfig,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.send(stranger.String()), sdkerrors.ErrUnauthorized)
			require.ErrorIs(t, tc.send(owner.String()), tc.payloadErr)
		})
	}
}
