package cmd

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/ratesync-network/ratesync/x/ratesync/keeper"
	"github.com/ratesync-network/ratesync/x/ratesync/types"
)

const (
	flagOwner      = "owner"
	flagChannel    = "channel"
	flagPort       = "port"
	flagCountLimit = "count-limit"
	flagThreshold  = "threshold"
	flagPolicy     = "policy"
)

// txResult is printed after a committed tx.
type txResult struct {
	Height   int64       `json:"height"`
	Events   sdk.Events  `json:"events"`
	Response interface{} `json:"response"`
}

func runTx[R any](cmd *cobra.Command, rt *runtime, fn func(ctx sdk.Context, srv types.MsgServer) (R, error)) error {
	chain, err := rt.openChain()
	if err != nil {
		return err
	}
	defer chain.Close()

	srv := keeper.NewMsgServerImpl(*chain.keeper)

	var resp R
	events, err := chain.Execute(func(ctx sdk.Context) error {
		var err error
		resp, err = fn(ctx, srv)
		return err
	})
	if err != nil {
		return err
	}

	rt.logger.Info("tx committed", "cmd", cmd.Name(), "height", chain.Height())
	return printOutput(cmd, rt.cfg, txResult{
		Height:   chain.Height(),
		Events:   events,
		Response: resp,
	})
}

func initCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config and instantiate the registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			written, err := WriteDefaultConfig(rt.home)
			if err != nil {
				return err
			}
			if written {
				rt.logger.Info("wrote default config", "path", ConfigPath(rt.home))
			}

			owner, _ := cmd.Flags().GetString(flagOwner)
			channel, _ := cmd.Flags().GetString(flagChannel)
			port, _ := cmd.Flags().GetString(flagPort)
			policy, _ := cmd.Flags().GetString(flagPolicy)

			msg := &types.MsgInstantiate{
				Sender:            owner,
				Owner:             owner,
				TransferChannelID: channel,
				TransferPortID:    port,
				AnomalyPolicy:     policy,
			}
			if cmd.Flags().Changed(flagCountLimit) {
				limit, _ := cmd.Flags().GetUint64(flagCountLimit)
				msg.DeviationCountLimit = &limit
			}
			if cmd.Flags().Changed(flagThreshold) {
				raw, _ := cmd.Flags().GetString(flagThreshold)
				threshold, err := parseDec(raw, "threshold")
				if err != nil {
					return err
				}
				msg.DeviationThreshold = &threshold
			}

			return runTx(cmd, rt, func(ctx sdk.Context, srv types.MsgServer) (*types.MsgInstantiateResponse, error) {
				return srv.Instantiate(ctx, msg)
			})
		},
	}

	cmd.Flags().String(flagOwner, "", "bech32 address allowed to submit rates")
	cmd.Flags().String(flagChannel, "", "transfer channel the stkTokens arrive over")
	cmd.Flags().String(flagPort, types.DefaultTransferPortID, "transfer port the stkTokens arrive over")
	cmd.Flags().Uint64(flagCountLimit, types.DefaultDeviationCountLimit, "number of recent rates in the moving average")
	cmd.Flags().String(flagThreshold, "", "maximum deviation from the moving average (default 0.05)")
	cmd.Flags().String(flagPolicy, string(types.AnomalyPolicyFlag), "what to do with anomalous rates: flag or reject")
	_ = cmd.MarkFlagRequired(flagOwner)
	_ = cmd.MarkFlagRequired(flagChannel)

	return cmd
}

func txCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Registry transactions",
	}

	cmd.PersistentFlags().String(flagFrom, "", "bech32 address of the sender")
	_ = cmd.MarkPersistentFlagRequired(flagFrom)

	cmd.AddCommand(
		submitRateCmd(rt),
		updateConfigCmd(rt),
		acceptOwnershipCmd(rt),
		cancelOwnershipCmd(rt),
		setAnomalyConfigCmd(rt),
	)
	return cmd
}

func submitRateCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "submit-rate [bond-denom] [stk-denom] [c-value] [controller-time]",
		Short:   "Submit a redemption rate observed on the controller chain",
		Example: "ratesyncd tx submit-rate uatom stkuatom 1.0123 1700000000 --from cosmos1...",
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString(flagFrom)

			cValue, err := parseDec(args[2], "c-value")
			if err != nil {
				return err
			}
			controllerTime, err := strconv.ParseUint(args[3], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid controller-time %q: %w", args[3], err)
			}

			msg := types.NewMsgSubmitRedemptionRate(from, args[0], args[1], cValue, controllerTime)
			return runTx(cmd, rt, func(ctx sdk.Context, srv types.MsgServer) (*types.MsgSubmitRedemptionRateResponse, error) {
				return srv.SubmitRedemptionRate(ctx, msg)
			})
		},
	}
}

func updateConfigCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-config",
		Short: "Change the transfer path or propose a new owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, _ := cmd.Flags().GetString(flagFrom)
			channel, _ := cmd.Flags().GetString(flagChannel)
			port, _ := cmd.Flags().GetString(flagPort)
			owner, _ := cmd.Flags().GetString(flagOwner)

			msg := &types.MsgUpdateConfig{
				Sender:            from,
				TransferChannelID: channel,
				TransferPortID:    port,
				Owner:             owner,
			}
			return runTx(cmd, rt, func(ctx sdk.Context, srv types.MsgServer) (*types.MsgUpdateConfigResponse, error) {
				return srv.UpdateConfig(ctx, msg)
			})
		},
	}

	cmd.Flags().String(flagChannel, "", "new transfer channel")
	cmd.Flags().String(flagPort, "", "new transfer port")
	cmd.Flags().String(flagOwner, "", "proposed owner; takes effect once they run accept-ownership")
	return cmd
}

func acceptOwnershipCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "accept-ownership",
		Short: "Accept a pending ownership transfer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, _ := cmd.Flags().GetString(flagFrom)
			msg := &types.MsgAcceptOwnership{Sender: from}
			return runTx(cmd, rt, func(ctx sdk.Context, srv types.MsgServer) (*types.MsgAcceptOwnershipResponse, error) {
				return srv.AcceptOwnership(ctx, msg)
			})
		},
	}
}

func cancelOwnershipCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel-ownership",
		Short: "Withdraw a pending ownership transfer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, _ := cmd.Flags().GetString(flagFrom)
			msg := &types.MsgCancelOwnership{Sender: from}
			return runTx(cmd, rt, func(ctx sdk.Context, srv types.MsgServer) (*types.MsgCancelOwnershipResponse, error) {
				return srv.CancelOwnership(ctx, msg)
			})
		},
	}
}

func setAnomalyConfigCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "set-anomaly-config [stk-denom] [count-limit] [threshold]",
		Short: "Override anomaly detection for one stkToken",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString(flagFrom)

			limit, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid count-limit %q: %w", args[1], err)
			}
			threshold, err := parseDec(args[2], "threshold")
			if err != nil {
				return err
			}

			msg := &types.MsgSetAnomalyConfig{
				Sender:              from,
				StkDenom:            args[0],
				DeviationCountLimit: limit,
				DeviationThreshold:  threshold,
			}
			return runTx(cmd, rt, func(ctx sdk.Context, srv types.MsgServer) (*types.MsgSetAnomalyConfigResponse, error) {
				return srv.SetAnomalyConfig(ctx, msg)
			})
		},
	}
}

func parseDec(raw, name string) (math.LegacyDec, error) {
	d, err := math.LegacyNewDecFromStr(raw)
	if err != nil {
		return math.LegacyDec{}, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return d, nil
}
