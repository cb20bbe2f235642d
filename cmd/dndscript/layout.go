package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/phanxgames/dnd/internal/board"
)

// SlotPosition is the center of one slot in the default layout.
type SlotPosition struct {
	Group int     `json:"group"`
	Row   int     `json:"row"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// NewLayoutCommand creates the layout command.
func NewLayoutCommand(rootOpts *RootOptions) *cobra.Command {
	var groups, users int
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print slot centers for writing scripts",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := board.DefaultLayout()
			var slots []SlotPosition
			for g := range groups {
				for row := range users {
					c := l.Slot(g, row).Center()
					slots = append(slots, SlotPosition{Group: g, Row: row, X: c.X, Y: c.Y})
				}
			}
			if rootOpts.Format == "json" {
				return outputJSON(cmd.OutOrStdout(), slots)
			}
			w := cmd.OutOrStdout()
			for _, s := range slots {
				if s.Row == 0 {
					color.New(color.FgCyan).Fprintf(w, "group %d\n", s.Group)
				}
				fmt.Fprintf(w, "  row %d  x=%g y=%g\n", s.Row, s.X, s.Y)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&groups, "groups", 2, "number of groups")
	cmd.Flags().IntVar(&users, "users", 5, "users per group")
	return cmd
}
