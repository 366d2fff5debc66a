package keeper

import (
	"context"
	"fmt"

	"github.com/ratesync-network/ratesync/x/ratesync/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid genesis state: %w", err)
	}

	if genState.Config != nil {
		if err := k.SetConfig(ctx, *genState.Config); err != nil {
			return fmt.Errorf("failed to set config: %w", err)
		}
	}

	for _, r := range genState.Rates {
		if err := k.SetRateHistory(ctx, r.Denom, r.History); err != nil {
			return fmt.Errorf("failed to set rate history for %s: %w", r.Denom, err)
		}
	}

	for _, ac := range genState.AnomalyConfigs {
		if err := k.SetAnomalyConfig(ctx, ac.Denom, ac.AnomalyConfig); err != nil {
			return fmt.Errorf("failed to set anomaly config for %s: %w", ac.Denom, err)
		}
	}

	k.Logger(ctx).Info("ratesync genesis initialized",
		"instantiated", genState.Config != nil,
		"rates", len(genState.Rates),
		"anomaly_configs", len(genState.AnomalyConfigs),
	)
	return nil
}

// ExportGenesis returns the module's exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genesis := types.DefaultGenesis()

	if k.HasConfig(ctx) {
		cfg, err := k.GetConfig(ctx)
		if err != nil {
			return nil, err
		}
		genesis.Config = &cfg
	}

	if err := k.IterateRateHistories(ctx, func(denom string, h types.RateHistory) bool {
		genesis.Rates = append(genesis.Rates, types.DenomRateHistory{Denom: denom, History: h})
		return false
	}); err != nil {
		return nil, err
	}

	if err := k.IterateAnomalyConfigs(ctx, func(denom string, ac types.AnomalyConfig) bool {
		genesis.AnomalyConfigs = append(genesis.AnomalyConfigs, types.DenomAnomalyConfig{Denom: denom, AnomalyConfig: ac})
		return false
	}); err != nil {
		return nil, err
	}

	return genesis, nil
}
