package types

// DenomRateHistory pairs a denom with its stored history.
type DenomRateHistory struct {
	Denom   string      `json:"denom"`
	History RateHistory `json:"history"`
}

// DenomAnomalyConfig pairs a denom with its anomaly config.
type DenomAnomalyConfig struct {
	Denom         string        `json:"denom"`
	AnomalyConfig AnomalyConfig `json:"anomaly_config"`
}

// GenesisState is the ratesync genesis. A nil Config leaves the registry
// uninstantiated until MsgInstantiate is delivered.
type GenesisState struct {
	Config         *Config              `json:"config,omitempty"`
	Rates          []DenomRateHistory   `json:"rates"`
	AnomalyConfigs []DenomAnomalyConfig `json:"anomaly_configs"`
}

// DefaultGenesis returns the default genesis state for the ratesync module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Rates:          []DenomRateHistory{},
		AnomalyConfigs: []DenomAnomalyConfig{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if gs.Config != nil {
		if err := gs.Config.Validate(); err != nil {
			return err
		}
	}

	seen := make(map[string]struct{}, len(gs.Rates))
	for _, r := range gs.Rates {
		if r.Denom == "" {
			return ErrInvalidGenesis.Wrap("rate history denom cannot be empty")
		}
		if _, dup := seen[r.Denom]; dup {
			return ErrInvalidGenesis.Wrapf("duplicate rate history for %s", r.Denom)
		}
		seen[r.Denom] = struct{}{}
		if err := r.History.Validate(); err != nil {
			return err
		}
		for _, rr := range r.History.Entries {
			if rr.RedemptionRate.IsNil() || rr.RedemptionRate.IsNegative() {
				return ErrInvalidGenesis.Wrapf("negative redemption rate for %s at %d", r.Denom, rr.UpdateTime)
			}
			if rr.Denom != r.Denom {
				return ErrInvalidGenesis.Wrapf("rate at %d has denom %s in the history of %s", rr.UpdateTime, rr.Denom, r.Denom)
			}
		}
	}

	seen = make(map[string]struct{}, len(gs.AnomalyConfigs))
	for _, ac := range gs.AnomalyConfigs {
		if ac.Denom == "" {
			return ErrInvalidGenesis.Wrap("anomaly config denom cannot be empty")
		}
		if _, dup := seen[ac.Denom]; dup {
			return ErrInvalidGenesis.Wrapf("duplicate anomaly config for %s", ac.Denom)
		}
		seen[ac.Denom] = struct{}{}
		if err := ac.AnomalyConfig.Validate(); err != nil {
			return err
		}
	}

	return nil
}
