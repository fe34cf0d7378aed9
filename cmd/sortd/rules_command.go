package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sortd/internal/rules"
)

func newRulesCommand(cctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show the loaded category rules in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			set := rules.FromConfig(cfg)

			if jsonOut {
				return writeJSON(cmd, set.Rules())
			}

			rows := make([][]string, 0, len(set.Rules()))
			for _, rule := range set.Rules() {
				rows = append(rows, []string{
					rule.Name,
					strings.Join(rule.Extensions, ", "),
					rule.Destination,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Category", "Extensions", "Destination"},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit rules as JSON")
	return cmd
}
