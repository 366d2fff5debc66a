package types

import (
	"fmt"

	ratesynctypes "github.com/ratesync-network/ratesync/x/ratesync/types"
)

// AssetOrdering is the position of the stkToken in a two-asset pool.
type AssetOrdering string

const (
	NativeTokenFirst AssetOrdering = "native_token_first"
	StkTokenFirst    AssetOrdering = "stk_token_first"
)

// ParseAssetOrdering parses the snake_case ordering name.
func ParseAssetOrdering(s string) (AssetOrdering, error) {
	o := AssetOrdering(s)
	if err := o.Validate(); err != nil {
		return "", err
	}
	return o, nil
}

// Validate checks the ordering is known.
func (o AssetOrdering) Validate() error {
	switch o {
	case NativeTokenFirst, StkTokenFirst:
		return nil
	default:
		return ErrInvalidAssetOrdering.Wrapf("%q", string(o))
	}
}

// StkTokenIndex returns the asset index the stkToken is expected at.
func (o AssetOrdering) StkTokenIndex() int {
	if o == StkTokenFirst {
		return 0
	}
	return 1
}

// RateFactorIndex returns the index of the scaling factor derived from the
// redemption rate. The stkToken position carries ScalingFactorMultiplier.
func (o AssetOrdering) RateFactorIndex() int {
	return 1 - o.StkTokenIndex()
}

// Pool is a stableswap pool whose scaling factors track a redemption rate.
type Pool struct {
	PoolID uint64 `json:"pool_id"`
	// StkTokenDenom is the stkToken denom on the controller chain (e.g. stkuatom)
	StkTokenDenom     string `json:"stk_token_denom"`
	TransferPortID    string `json:"transfer_port_id"`
	TransferChannelID string `json:"transfer_channel_id"`
	// IBCHashStkDenom is the stkToken denom as it lives in the pool
	IBCHashStkDenom string        `json:"ibc_hash_stk_denom"`
	AssetOrdering   AssetOrdering `json:"asset_ordering"`
	// LastUpdated is the block time, in unix seconds, of the last scaling factor update
	LastUpdated uint64 `json:"last_updated"`
}

// NewPool builds a pool and derives its IBC hash.
func NewPool(poolID uint64, stkDenom, portID, channelID string, ordering AssetOrdering) (Pool, error) {
	pool := Pool{
		PoolID:            poolID,
		StkTokenDenom:     stkDenom,
		TransferPortID:    portID,
		TransferChannelID: channelID,
		AssetOrdering:     ordering,
	}
	if err := pool.validateFields(); err != nil {
		return Pool{}, err
	}

	hash, err := ratesynctypes.DenomTraceToHash(stkDenom, portID, channelID)
	if err != nil {
		return Pool{}, err
	}
	pool.IBCHashStkDenom = hash
	return pool, nil
}

func (p Pool) validateFields() error {
	if err := ratesynctypes.ValidateNativeDenom(p.StkTokenDenom); err != nil {
		return err
	}
	if err := ratesynctypes.ValidatePortID(p.TransferPortID); err != nil {
		return err
	}
	if err := ratesynctypes.ValidateChannelID(p.TransferChannelID); err != nil {
		return err
	}
	return p.AssetOrdering.Validate()
}

// Validate checks the pool fields and that the stored hash matches the path.
func (p Pool) Validate() error {
	if err := p.validateFields(); err != nil {
		return err
	}
	hash, err := ratesynctypes.DenomTraceToHash(p.StkTokenDenom, p.TransferPortID, p.TransferChannelID)
	if err != nil {
		return err
	}
	if hash != p.IBCHashStkDenom {
		return ErrInvalidGenesis.Wrap(fmt.Sprintf("pool %d ibc hash %s does not match %s", p.PoolID, p.IBCHashStkDenom, hash))
	}
	return nil
}
