package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
)

const (
	flagHome     = "home"
	flagLogLevel = "log-level"
	flagFrom     = "from"
)

// DefaultNodeHome is the home directory used when --home is not given.
var DefaultNodeHome = defaultHome()

func defaultHome() string {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return ".ratesyncd"
	}
	return filepath.Join(userHome, ".ratesyncd")
}

// runtime carries the state PersistentPreRunE prepares for subcommands.
type runtime struct {
	home     string
	logLevel string
	cfg      *Config
	logger   log.Logger
}

// openChain opens the local chain; callers must Close it.
func (rt *runtime) openChain() (*localChain, error) {
	return openLocalChain(rt.home, rt.cfg, rt.logger)
}

// NewRootCmd creates the ratesyncd root command.
func NewRootCmd() *cobra.Command {
	rt := &runtime{}

	rootCmd := &cobra.Command{
		Use:   "ratesyncd",
		Short: "Local redemption rate registry",
		Long: `ratesyncd runs the redemption rate registry against a local single-node store.
Owners submit stkToken redemption rates observed on the controller chain; anyone
can query the latest and historical rates by their IBC denom hash.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(rt.home)
			if err != nil {
				return err
			}
			if rt.logLevel != "" {
				level, err := ParseLogLevel(rt.logLevel)
				if err != nil {
					return fmt.Errorf("invalid --%s: %w", flagLogLevel, err)
				}
				cfg.Logging.Level = level
			}
			rt.cfg = cfg
			rt.logger = NewLogger(cfg.Logging, cmd.ErrOrStderr()).With("home", rt.home)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&rt.home, flagHome, DefaultNodeHome, "directory for config and data")
	rootCmd.PersistentFlags().StringVar(&rt.logLevel, flagLogLevel, "", "override the log level set in the config file")

	rootCmd.AddCommand(
		initCmd(rt),
		txCmd(rt),
		queryCmd(rt),
		scalingFactorsCmd(),
	)

	return rootCmd
}

func printOutput(cmd *cobra.Command, cfg *Config, v interface{}) error {
	var (
		bz  []byte
		err error
	)
	if cfg != nil && cfg.Output.Indent {
		bz, err = json.MarshalIndent(v, "", "  ")
	} else {
		bz, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
