package types

import (
	"fmt"

	"cosmossdk.io/math"
)

const (
	// DefaultDeviationCountLimit is the number of recent rates in the moving average.
	DefaultDeviationCountLimit uint64 = 10
)

// DefaultDeviationThreshold is the maximum absolute deviation (0.05).
var DefaultDeviationThreshold = math.LegacyNewDecWithPrec(5, 2)

// AnomalyConfig controls anomaly detection for one denom.
type AnomalyConfig struct {
	// CountLimit is the number of most recent rates averaged
	CountLimit uint64 `json:"deviation_count_limit"`
	// Threshold is the allowed absolute deviation from the moving average
	Threshold math.LegacyDec `json:"deviation_threshold"`
}

// DefaultAnomalyConfig returns the config materialized for unseen denoms.
func DefaultAnomalyConfig() AnomalyConfig {
	return AnomalyConfig{
		CountLimit: DefaultDeviationCountLimit,
		Threshold:  DefaultDeviationThreshold,
	}
}

// Validate checks the config is usable.
func (c AnomalyConfig) Validate() error {
	if c.CountLimit == 0 {
		return ErrInvalidAnomalyConfig.Wrap("deviation count limit must be positive")
	}
	if c.Threshold.IsNil() || c.Threshold.IsNegative() {
		return ErrInvalidAnomalyConfig.Wrap("deviation threshold must be non-negative")
	}
	return nil
}

// AnomalyVerdict is the outcome of checking a new rate against history.
type AnomalyVerdict struct {
	MovingAverage math.LegacyDec
	Deviation     math.LegacyDec
	Anomalous     bool
}

// Evaluate checks value against the moving average of the most recent
// CountLimit entries of history. It must be called before value is added.
// An empty history has a zero average and never yields an anomaly.
func (c AnomalyConfig) Evaluate(history RateHistory, value math.LegacyDec) AnomalyVerdict {
	average := MovingAverage(history.LatestRange(c.CountLimit))
	deviation := average.Sub(value).Abs()

	return AnomalyVerdict{
		MovingAverage: average,
		Deviation:     deviation,
		Anomalous:     !average.IsZero() && deviation.GT(c.Threshold),
	}
}

// MovingAverage returns the arithmetic mean of the rates, or zero for none.
func MovingAverage(rates []RedemptionRate) math.LegacyDec {
	if len(rates) == 0 {
		return math.LegacyZeroDec()
	}

	total := math.LegacyZeroDec()
	for _, rr := range rates {
		total = total.Add(rr.RedemptionRate)
	}
	return total.QuoInt64(int64(len(rates)))
}

// AnomalyPolicy decides what happens to a rate flagged as anomalous.
type AnomalyPolicy string

const (
	// AnomalyPolicyFlag stores the rate with AnomalyDetected set.
	AnomalyPolicyFlag AnomalyPolicy = "flag"
	// AnomalyPolicyReject fails the submission with ErrInvalidCValueDeviation.
	AnomalyPolicyReject AnomalyPolicy = "reject"
)

// ParseAnomalyPolicy parses a policy name; empty selects AnomalyPolicyFlag.
func ParseAnomalyPolicy(s string) (AnomalyPolicy, error) {
	if s == "" {
		return AnomalyPolicyFlag, nil
	}
	p := AnomalyPolicy(s)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate checks the policy is known.
func (p AnomalyPolicy) Validate() error {
	switch p {
	case AnomalyPolicyFlag, AnomalyPolicyReject:
		return nil
	default:
		return ErrInvalidAnomalyPolicy.Wrap(fmt.Sprintf("unknown policy %q", string(p)))
	}
}
