package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/phanxgames/dnd"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <script>",
		Short: "Check that a gesture script parses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			runner, err := dnd.LoadGestureScript(data)
			if err != nil {
				return err
			}
			steps := runner.Steps()
			if rootOpts.Format == "json" {
				return outputJSON(cmd.OutOrStdout(), map[string]any{"steps": len(steps), "valid": true})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d steps\n", color.GreenString("ok"), args[0], len(steps))
			return nil
		},
	}
}
