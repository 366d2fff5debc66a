package types

import "context"

// MsgServer is the ratesync message service.
type MsgServer interface {
	Instantiate(context.Context, *MsgInstantiate) (*MsgInstantiateResponse, error)
	SubmitRedemptionRate(context.Context, *MsgSubmitRedemptionRate) (*MsgSubmitRedemptionRateResponse, error)
	UpdateConfig(context.Context, *MsgUpdateConfig) (*MsgUpdateConfigResponse, error)
	SetAnomalyConfig(context.Context, *MsgSetAnomalyConfig) (*MsgSetAnomalyConfigResponse, error)
	AcceptOwnership(context.Context, *MsgAcceptOwnership) (*MsgAcceptOwnershipResponse, error)
	CancelOwnership(context.Context, *MsgCancelOwnership) (*MsgCancelOwnershipResponse, error)
}

// QueryServer is the ratesync query service.
type QueryServer interface {
	Config(context.Context, *QueryConfigRequest) (*QueryConfigResponse, error)
	AnomalyConfig(context.Context, *QueryAnomalyConfigRequest) (*QueryAnomalyConfigResponse, error)
	RedemptionRate(context.Context, *QueryRedemptionRateRequest) (*QueryRedemptionRateResponse, error)
	HistoricalRedemptionRates(context.Context, *QueryHistoricalRedemptionRatesRequest) (*QueryHistoricalRedemptionRatesResponse, error)
	DenomHash(context.Context, *QueryDenomHashRequest) (*QueryDenomHashResponse, error)
}
