package types

import (
	"cosmossdk.io/math"
)

type QueryConfigRequest struct{}

type QueryConfigResponse struct {
	Owner             string `json:"owner"`
	PendingOwner      string `json:"pending_owner,omitempty"`
	TransferChannelID string `json:"transfer_channel_id"`
	TransferPortID    string `json:"transfer_port_id"`
	AnomalyPolicy     string `json:"anomaly_policy"`
}

type QueryAnomalyConfigRequest struct {
	// Denom is the IBC hash of the stkToken
	Denom string `json:"denom"`
}

type QueryAnomalyConfigResponse struct {
	DeviationCountLimit uint64         `json:"deviation_count_limit"`
	DeviationThreshold  math.LegacyDec `json:"deviation_threshold"`
}

// QueryRedemptionRateRequest asks for the latest rate of a denom. Params is
// reserved for oracle interfaces that take extra arguments and must be empty.
type QueryRedemptionRateRequest struct {
	Denom  string `json:"denom"`
	Params []byte `json:"params,omitempty"`
}

type QueryRedemptionRateResponse struct {
	RedemptionRate math.LegacyDec `json:"redemption_rate"`
	UpdateTime     uint64         `json:"update_time"`
}

// QueryHistoricalRedemptionRatesRequest lists rates newest first. A nil
// Limit returns the full history.
type QueryHistoricalRedemptionRatesRequest struct {
	Denom  string  `json:"denom"`
	Params []byte  `json:"params,omitempty"`
	Limit  *uint64 `json:"limit,omitempty"`
}

type QueryHistoricalRedemptionRatesResponse struct {
	RedemptionRates []RedemptionRate `json:"redemption_rates"`
}

type QueryDenomHashRequest struct {
	StkDenom string `json:"stk_denom"`
}

type QueryDenomHashResponse struct {
	Denom string `json:"denom"`
}
