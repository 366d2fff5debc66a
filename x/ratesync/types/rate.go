package types

import (
	"cosmossdk.io/math"
)

// RedemptionRate is one observation of an stkToken's c-value.
type RedemptionRate struct {
	// Denom is the stkToken denom as an IBC hash, as it appears on this chain
	Denom string `json:"denom"`
	// RedemptionRate is the c-value of the stkToken
	RedemptionRate math.LegacyDec `json:"redemption_rate"`
	// UpdateTime is the controller chain time of the observation
	UpdateTime uint64 `json:"update_time"`
	// AnomalyDetected is set when the value deviated from the moving average
	AnomalyDetected bool `json:"anomaly_detected"`
}

var _ Timestamped = RedemptionRate{}

// Time implements Timestamped.
func (rr RedemptionRate) Time() uint64 {
	return rr.UpdateTime
}

// RateHistory is the bounded history stored per denom.
type RateHistory = History[RedemptionRate]
