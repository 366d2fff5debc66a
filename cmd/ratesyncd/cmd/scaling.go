package cmd

import (
	"github.com/spf13/cobra"

	poolsynctypes "github.com/ratesync-network/ratesync/x/poolsync/types"
)

type scalingFactorsOutput struct {
	RedemptionRate string    `json:"redemption_rate"`
	AssetOrdering  string    `json:"asset_ordering"`
	ScalingFactors [2]uint64 `json:"scaling_factors"`
}

// scalingFactorsCmd converts a rate to stableswap scaling factors without
// touching state.
func scalingFactorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "scaling-factors [rate] [native_token_first|stk_token_first]",
		Short:   "Convert a redemption rate to pool scaling factors",
		Example: "ratesyncd scaling-factors 1.2 stk_token_first",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := parseDec(args[0], "rate")
			if err != nil {
				return err
			}
			if rate.IsNegative() {
				return poolsynctypes.ErrInvalidScalingFactors.Wrapf("negative rate %s", rate)
			}
			ordering, err := poolsynctypes.ParseAssetOrdering(args[1])
			if err != nil {
				return err
			}

			return printOutput(cmd, nil, scalingFactorsOutput{
				RedemptionRate: rate.String(),
				AssetOrdering:  string(ordering),
				ScalingFactors: poolsynctypes.ConvertRedemptionRateToScalingFactors(rate, ordering),
			})
		},
	}
}
