package keeper

import (
	"context"
	"fmt"

	"github.com/ratesync-network/ratesync/x/poolsync/types"
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

	for _, pool := range genState.Pools {
		if err := k.SetPool(ctx, pool); err != nil {
			return fmt.Errorf("failed to set pool %d: %w", pool.PoolID, err)
		}
	}

	k.metrics.PoolsRegistered.Set(float64(len(genState.Pools)))
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

	if err := k.IteratePools(ctx, func(pool types.Pool) bool {
		genesis.Pools = append(genesis.Pools, pool)
		return false
	}); err != nil {
		return nil, err
	}

	return genesis, nil
}
