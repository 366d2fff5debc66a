package cmd

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/ratesync-network/ratesync/x/ratesync/keeper"
	"github.com/ratesync-network/ratesync/x/ratesync/types"
)

const flagLimit = "limit"

func runQuery[R any](cmd *cobra.Command, rt *runtime, fn func(ctx sdk.Context, srv types.QueryServer) (R, error)) error {
	chain, err := rt.openChain()
	if err != nil {
		return err
	}
	defer chain.Close()

	srv := keeper.NewQueryServerImpl(*chain.keeper)

	var resp R
	if err := chain.Query(func(ctx sdk.Context) error {
		var err error
		resp, err = fn(ctx, srv)
		return err
	}); err != nil {
		return err
	}
	return printOutput(cmd, rt.cfg, resp)
}

func queryCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "query",
		Aliases: []string{"q"},
		Short:   "Query registry state",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "config",
			Short: "Show the registry config",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runQuery(cmd, rt, func(ctx sdk.Context, srv types.QueryServer) (*types.QueryConfigResponse, error) {
					return srv.Config(ctx, &types.QueryConfigRequest{})
				})
			},
		},
		&cobra.Command{
			Use:   "anomaly-config [denom]",
			Short: "Show the anomaly config applied to an ibc/ denom",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runQuery(cmd, rt, func(ctx sdk.Context, srv types.QueryServer) (*types.QueryAnomalyConfigResponse, error) {
					return srv.AnomalyConfig(ctx, &types.QueryAnomalyConfigRequest{Denom: args[0]})
				})
			},
		},
		&cobra.Command{
			Use:   "rate [denom]",
			Short: "Show the latest redemption rate of an ibc/ denom",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runQuery(cmd, rt, func(ctx sdk.Context, srv types.QueryServer) (*types.QueryRedemptionRateResponse, error) {
					return srv.RedemptionRate(ctx, &types.QueryRedemptionRateRequest{Denom: args[0]})
				})
			},
		},
		historyCmd(rt),
		&cobra.Command{
			Use:   "denom-hash [stk-denom]",
			Short: "Derive the ibc/ denom of an stkToken under the configured transfer path",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runQuery(cmd, rt, func(ctx sdk.Context, srv types.QueryServer) (*types.QueryDenomHashResponse, error) {
					return srv.DenomHash(ctx, &types.QueryDenomHashRequest{StkDenom: args[0]})
				})
			},
		},
	)
	return cmd
}

func historyCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [denom]",
		Short: "List stored redemption rates of an ibc/ denom, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &types.QueryHistoricalRedemptionRatesRequest{Denom: args[0]}
			if cmd.Flags().Changed(flagLimit) {
				limit, _ := cmd.Flags().GetUint64(flagLimit)
				req.Limit = &limit
			}
			return runQuery(cmd, rt, func(ctx sdk.Context, srv types.QueryServer) (*types.QueryHistoricalRedemptionRatesResponse, error) {
				return srv.HistoricalRedemptionRates(ctx, req)
			})
		},
	}
	cmd.Flags().Uint64(flagLimit, 0, "return at most this many rates (default: all)")
	return cmd
}
