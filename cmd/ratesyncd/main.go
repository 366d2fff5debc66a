package main

import (
	"fmt"
	"os"

	"github.com/ratesync-network/ratesync/cmd/ratesyncd/cmd"
	"github.com/ratesync-network/ratesync/x/ratesync/types"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if suggestion := types.GetRecoverySuggestion(err); suggestion != "" {
			fmt.Fprintln(os.Stderr, "Suggestion:", suggestion)
		}
		os.Exit(1)
	}
}
