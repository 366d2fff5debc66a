package types

import (
	sharedkeeper "github.com/ratesync-network/ratesync/x/shared/keeper"
)

// RateOracleKeeper defines the expected redemption rate registry.
type RateOracleKeeper = sharedkeeper.RateOracleKeeperV1

// StableswapKeeper defines the expected AMM keeper.
type StableswapKeeper = sharedkeeper.StableswapKeeperV1
