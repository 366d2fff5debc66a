// Package keeper provides shared keeper interfaces and utilities for cross-module communication.
package keeper

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ValidateOwner checks that the sender of a message is the configured owner.
// Both ratesync and poolsync gate their privileged operations on a single
// owner address, so a mismatch is always reported as ErrUnauthorized.
//
// Usage example:
//
//	if err := sharedkeeper.ValidateOwner(cfg.Owner, msg.Sender); err != nil {
//	    return nil, err
//	}
func ValidateOwner(owner, sender string) error {
	if owner == "" || owner != sender {
		return sdkerrors.ErrUnauthorized.Wrapf(
			"sender %s is not the owner",
			sender,
		)
	}
	return nil
}
