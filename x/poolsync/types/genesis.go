package types

// GenesisState is the poolsync genesis. A nil Config leaves the module
// uninstantiated.
type GenesisState struct {
	Config *Config `json:"config,omitempty"`
	Pools  []Pool  `json:"pools"`
}

// DefaultGenesis returns the default genesis state for the poolsync module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Pools: []Pool{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if gs.Config != nil {
		if err := gs.Config.Validate(); err != nil {
			return err
		}
	}

	seen := make(map[uint64]struct{}, len(gs.Pools))
	for _, pool := range gs.Pools {
		if _, dup := seen[pool.PoolID]; dup {
			return ErrInvalidGenesis.Wrapf("duplicate pool %d", pool.PoolID)
		}
		seen[pool.PoolID] = struct{}{}
		if err := pool.Validate(); err != nil {
			return err
		}
	}
	return nil
}
