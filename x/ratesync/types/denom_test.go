package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDenomTraceToHash(t *testing.T) {
	hash, err := DenomTraceToHash("uatom", "transfer", "channel-0")
	require.NoError(t, err)
	require.Equal(t, "ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2", hash)

	hash, err = DenomTraceToHash("uatom", "transfer", "channel-3")
	require.NoError(t, err)
	require.Equal(t, "ibc/A4DB47A9D3CF9A068D454513891B526702455D3EF08FB9EB558C561F9DC2B701", hash)

	_, err = DenomTraceToHash("ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2", "transfer", "channel-0")
	require.ErrorIs(t, err, ErrInvalidRedemptionRateDenom)
}

func TestValidateNativeDenom(t *testing.T) {
	tests := []struct {
		denom string
		valid bool
	}{
		{"umars", true},
		{"stk/uatom", true},
		{"su", false},
		{strings.Repeat("a", 129), false},
		{strings.Repeat("a", 128), true},
		{"9kjhtwkurkm", false},
		{"fakjfh&asd!#", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.denom, func(t *testing.T) {
			err := ValidateNativeDenom(tc.denom)
			if tc.valid {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidDenom)
		})
	}
}

func TestValidateChannelID(t *testing.T) {
	require.NoError(t, ValidateChannelID("channel-0"))
	require.NoError(t, ValidateChannelID("channel-18446744073709551615"))

	for _, id := range []string{"", "channel-", "chan-0", "Xchannel-0", "channel-0X"} {
		require.ErrorIs(t, ValidateChannelID(id), ErrInvalidChannelID, id)
	}
}

func TestValidatePortID(t *testing.T) {
	require.NoError(t, ValidatePortID("transfer"))
	require.ErrorIs(t, ValidatePortID(""), ErrInvalidPortID)
	require.ErrorIs(t, ValidatePortID("bad port"), ErrInvalidPortID)
}
