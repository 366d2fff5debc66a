package keeper

import (
	"context"
	"slices"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	sharedkeeper "github.com/ratesync-network/ratesync/x/shared/keeper"
)

// ScalingFactorAdjustment records one AdjustScalingFactors call.
type ScalingFactorAdjustment struct {
	Sender         string
	PoolID         uint64
	ScalingFactors []uint64
}

// MockStableswapKeeper is an in-memory AMM holding stableswap pools.
type MockStableswapKeeper struct {
	Pools       map[uint64]sharedkeeper.StableswapPoolInfo
	Adjustments []ScalingFactorAdjustment
	// Err, when set, fails every AdjustScalingFactors call
	Err error
}

var _ sharedkeeper.StableswapKeeperV1 = (*MockStableswapKeeper)(nil)

// NewMockStableswapKeeper returns an AMM without pools.
func NewMockStableswapKeeper() *MockStableswapKeeper {
	return &MockStableswapKeeper{Pools: make(map[uint64]sharedkeeper.StableswapPoolInfo)}
}

// AddPool creates a two-asset pool with unit scaling factors.
func (m *MockStableswapKeeper) AddPool(poolID uint64, controller string, denoms ...string) {
	factors := make([]uint64, len(denoms))
	for i := range factors {
		factors[i] = 1
	}
	m.Pools[poolID] = sharedkeeper.StableswapPoolInfo{
		PoolID:                  poolID,
		Denoms:                  denoms,
		ScalingFactors:          factors,
		ScalingFactorController: controller,
	}
}

func (m *MockStableswapKeeper) GetStableswapPool(_ context.Context, poolID uint64) (sharedkeeper.StableswapPoolInfo, bool) {
	pool, ok := m.Pools[poolID]
	return pool, ok
}

func (m *MockStableswapKeeper) AdjustScalingFactors(_ context.Context, sender sdk.AccAddress, poolID uint64, scalingFactors []uint64) error {
	if m.Err != nil {
		return m.Err
	}
	pool, ok := m.Pools[poolID]
	if !ok {
		return sdkerrors.ErrNotFound.Wrapf("pool %d", poolID)
	}
	if pool.ScalingFactorController != sender.String() {
		return sdkerrors.ErrUnauthorized.Wrapf("%s is not the scaling factor controller", sender)
	}
	if len(scalingFactors) != len(pool.Denoms) {
		return sdkerrors.ErrInvalidRequest.Wrap("scaling factor count mismatch")
	}

	pool.ScalingFactors = slices.Clone(scalingFactors)
	m.Pools[poolID] = pool
	m.Adjustments = append(m.Adjustments, ScalingFactorAdjustment{
		Sender:         sender.String(),
		PoolID:         poolID,
		ScalingFactors: slices.Clone(scalingFactors),
	})
	return nil
}
