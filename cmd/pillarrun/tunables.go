package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pillarrun/internal/config"
)

var tunablesCmd = &cobra.Command{
	Use:   "tunables",
	Short: "Print the effective tunables as YAML",
	Long: `Print the tunables a run would use after merging the config file
over the built-in defaults. The output is a valid tunables file.

Examples:
  pillarrun tunables
  pillarrun tunables --config ./hard.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		if path := config.Resolve(flagConfig); path != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "# from %s\n", path)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
