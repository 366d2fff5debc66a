package types

import (
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	transfertypes "github.com/cosmos/ibc-go/v8/modules/apps/transfer/types"
	channeltypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"
	host "github.com/cosmos/ibc-go/v8/modules/core/24-host"
)

// IBCDenomPrefix marks denoms that are already IBC traced.
const IBCDenomPrefix = transfertypes.DenomPrefix + "/"

// ValidateNativeDenom checks denom is 3-128 characters long, starts with an
// ASCII letter and otherwise contains only ASCII alphanumerics or / : . _ -
func ValidateNativeDenom(denom string) error {
	if err := sdk.ValidateDenom(denom); err != nil {
		return ErrInvalidDenom.Wrapf("%q: %s", denom, err)
	}
	return nil
}

// ValidateChannelID checks the identifier is exactly channel-<u64>.
func ValidateChannelID(channelID string) error {
	if _, err := channeltypes.ParseChannelSequence(channelID); err != nil {
		return ErrInvalidChannelID.Wrapf("%q", channelID)
	}
	return nil
}

// ValidatePortID checks the identifier is a valid IBC port.
func ValidatePortID(portID string) error {
	if err := host.PortIdentifierValidator(portID); err != nil {
		return ErrInvalidPortID.Wrapf("%q: %s", portID, err)
	}
	return nil
}

// DenomTraceToHash returns the IBC denom of baseDenom after a single hop over
// portID/channelID: "ibc/" followed by the uppercase hex SHA-256 of
// "{port}/{channel}/{baseDenom}". Only denoms native to the controller chain
// are supported, so an already traced denom is rejected.
func DenomTraceToHash(baseDenom, portID, channelID string) (string, error) {
	if strings.HasPrefix(baseDenom, IBCDenomPrefix) {
		return "", ErrInvalidRedemptionRateDenom.Wrapf("%s provided", baseDenom)
	}

	trace := transfertypes.DenomTrace{
		Path:      fmt.Sprintf("%s/%s", portID, channelID),
		BaseDenom: baseDenom,
	}
	return trace.IBCDenom(), nil
}
