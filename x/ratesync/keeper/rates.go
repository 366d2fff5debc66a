package keeper

import (
	"context"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ratesync-network/ratesync/x/ratesync/types"
	sharedkeeper "github.com/ratesync-network/ratesync/x/shared/keeper"
)

var _ sharedkeeper.RateOracleKeeperV1 = Keeper{}

// GetRateHistory returns the history stored under the hashed denom.
func (k Keeper) GetRateHistory(ctx context.Context, denom string) (types.RateHistory, bool, error) {
	bz := k.getStore(ctx).Get(types.GetRateHistoryKey(denom))
	if bz == nil {
		return types.RateHistory{}, false, nil
	}

	var h types.RateHistory
	if err := json.Unmarshal(bz, &h); err != nil {
		return types.RateHistory{}, false, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}
	return h, true, nil
}

// SetRateHistory stores the history under the hashed denom.
func (k Keeper) SetRateHistory(ctx context.Context, denom string, h types.RateHistory) error {
	bz, err := json.Marshal(&h)
	if err != nil {
		return errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}

	k.getStore(ctx).Set(types.GetRateHistoryKey(denom), bz)
	return nil
}

// IterateRateHistories walks every stored history in key order.
func (k Keeper) IterateRateHistories(ctx context.Context, cb func(denom string, h types.RateHistory) (stop bool)) error {
	iterator := prefixIterator(k.getStore(ctx), types.RateHistoryKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var h types.RateHistory
		if err := json.Unmarshal(iterator.Value(), &h); err != nil {
			return errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
		}
		denom := string(iterator.Key()[len(types.RateHistoryKeyPrefix):])
		if cb(denom, h) {
			break
		}
	}
	return nil
}

// SubmitRedemptionRate records the c-value of stkDenom observed at
// controllerChainTime. The rate is stored under the IBC hash of stkDenom over
// the configured transfer path. Anomalous rates are flagged or rejected
// according to the configured policy.
func (k Keeper) SubmitRedemptionRate(
	ctx context.Context,
	sender string,
	bondDenom string,
	stkDenom string,
	cValue math.LegacyDec,
	controllerChainTime uint64,
) (types.RedemptionRate, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return types.RedemptionRate{}, err
	}
	if err := sharedkeeper.ValidateOwner(cfg.Owner, sender); err != nil {
		k.metrics.RateRejections.WithLabelValues("unauthorized").Inc()
		emitRejectionTelemetry(stkDenom, "unauthorized")
		return types.RedemptionRate{}, err
	}

	if err := types.ValidateNativeDenom(bondDenom); err != nil {
		return types.RedemptionRate{}, err
	}
	if err := types.ValidateNativeDenom(stkDenom); err != nil {
		return types.RedemptionRate{}, err
	}
	if cValue.IsNil() || cValue.IsNegative() {
		return types.RedemptionRate{}, types.ErrInvalidRedemptionRate.Wrapf("c_value %s", cValue)
	}

	denom, err := cfg.HashDenom(stkDenom)
	if err != nil {
		return types.RedemptionRate{}, err
	}

	anomalyConfig, err := k.getOrCreateAnomalyConfig(ctx, cfg, denom)
	if err != nil {
		return types.RedemptionRate{}, err
	}

	history, found, err := k.GetRateHistory(ctx, denom)
	if err != nil {
		return types.RedemptionRate{}, err
	}
	if !found {
		history = types.DefaultHistory[types.RedemptionRate]()
	}

	verdict := anomalyConfig.Evaluate(history, cValue)
	if verdict.Anomalous {
		k.metrics.AnomalyDetected.WithLabelValues(denom, string(cfg.AnomalyPolicy)).Inc()
		k.Logger(ctx).Warn("redemption rate deviates from moving average",
			"denom", denom,
			"c_value", cValue.String(),
			"moving_average", verdict.MovingAverage.String(),
			"deviation", verdict.Deviation.String(),
			"policy", cfg.AnomalyPolicy,
		)
		if cfg.AnomalyPolicy == types.AnomalyPolicyReject {
			k.metrics.RateRejections.WithLabelValues("deviation").Inc()
			emitRejectionTelemetry(denom, "deviation")
			return types.RedemptionRate{}, types.ErrInvalidCValueDeviation.Wrapf(
				"c_value %s deviates %s from moving average %s (threshold %s)",
				cValue, verdict.Deviation, verdict.MovingAverage, anomalyConfig.Threshold,
			)
		}
	}

	rr := types.RedemptionRate{
		Denom:           denom,
		RedemptionRate:  cValue,
		UpdateTime:      controllerChainTime,
		AnomalyDetected: verdict.Anomalous,
	}
	history.Add(rr)
	if err := k.SetRateHistory(ctx, denom, history); err != nil {
		return types.RedemptionRate{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRedemptionRate,
			sdk.NewAttribute(types.AttributeKeyAction, types.ActionSetRedemptionRate),
			sdk.NewAttribute(types.AttributeKeyDefaultBondDenom, bondDenom),
			sdk.NewAttribute(types.AttributeKeyStkDenom, stkDenom),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyCValue, cValue.String()),
			sdk.NewAttribute(types.AttributeKeyControllerChainTime, fmtUint(controllerChainTime)),
			sdk.NewAttribute(types.AttributeKeyAnomalyDetected, boolString(verdict.Anomalous)),
		),
	)
	if verdict.Anomalous {
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeAnomalyDetected,
				sdk.NewAttribute(types.AttributeKeyDenom, denom),
				sdk.NewAttribute(types.AttributeKeyCValue, cValue.String()),
				sdk.NewAttribute(types.AttributeKeyMovingAverage, verdict.MovingAverage.String()),
				sdk.NewAttribute(types.AttributeKeyDeviation, verdict.Deviation.String()),
			),
		)
	}

	k.metrics.RateSubmissions.WithLabelValues(denom).Inc()
	k.metrics.HistoryLength.WithLabelValues(denom).Set(float64(history.Len()))
	k.metrics.RateDeviation.WithLabelValues(denom).Set(decToFloat(verdict.Deviation))
	if latest, ok := history.Latest(); ok {
		k.metrics.LatestRate.WithLabelValues(denom).Set(decToFloat(latest.RedemptionRate))
	}

	k.Logger(ctx).Debug("redemption rate submitted", "denom", denom, "c_value", cValue.String(), "time", controllerChainTime)
	return rr, nil
}

// GetLatestRedemptionRate returns the most recent rate of the hashed denom.
func (k Keeper) GetLatestRedemptionRate(ctx context.Context, denom string) (sharedkeeper.RedemptionRateInfo, error) {
	history, found, err := k.GetRateHistory(ctx, denom)
	if err != nil {
		return sharedkeeper.RedemptionRateInfo{}, err
	}
	latest, ok := history.Latest()
	if !found || !ok {
		return sharedkeeper.RedemptionRateInfo{}, types.ErrRateNotFound.Wrapf("denom %s", denom)
	}

	return sharedkeeper.RedemptionRateInfo{
		Denom:           latest.Denom,
		Value:           latest.RedemptionRate,
		UpdateTime:      latest.UpdateTime,
		AnomalyDetected: latest.AnomalyDetected,
	}, nil
}

// GetHistoricalRedemptionRates returns the rates of the hashed denom newest
// first, capped at limit when it is set.
func (k Keeper) GetHistoricalRedemptionRates(ctx context.Context, denom string, limit *uint64) ([]types.RedemptionRate, error) {
	history, found, err := k.GetRateHistory(ctx, denom)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, types.ErrRateNotFound.Wrapf("denom %s", denom)
	}

	if limit == nil {
		return history.All(), nil
	}
	return history.LatestRange(*limit), nil
}
