package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/phanxgames/dnd"
	"github.com/phanxgames/dnd/internal/board"
	"github.com/phanxgames/dnd/internal/roster"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Groups    int
	Users     int
	Seed      uint64
	MaxFrames int
}

// ReplayUser is one user in the replay output.
type ReplayUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Index int    `json:"index"`
}

// ReplayGroup is one group in the replay output.
type ReplayGroup struct {
	ID    string       `json:"id"`
	Index int          `json:"index"`
	Users []ReplayUser `json:"users"`
}

// ReplayResult holds the replay output.
type ReplayResult struct {
	Frames   int           `json:"frames"`
	Drops    int           `json:"drops"`
	Reorders int           `json:"reorders"`
	Marks    []string      `json:"marks,omitempty"`
	Groups   []ReplayGroup `json:"groups"`
}

// countSink tallies engine events.
type countSink struct {
	drops, reorders int
}

func (c *countSink) EmitEvent(ev dnd.Event) {
	switch ev.Type {
	case dnd.EventDrop:
		c.drops++
	case dnd.EventReorder:
		c.reorders++
	}
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay <script>",
		Short: "Run a gesture script against a generated roster",
		Long: `Run a YAML gesture script against a headless board and print each
group's users in their final order.

Coordinates in the script use the default board layout; run "dndscript
layout" to list slot positions.

Examples:
  dndscript replay drag.yaml
  dndscript replay drag.yaml --groups 3 --seed 42 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			res, err := runReplay(opts, data, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if opts.Format == "json" {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			outputReplayText(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Groups, "groups", 2, "number of groups")
	cmd.Flags().IntVar(&opts.Users, "users", 5, "users per group")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 1, "seed for generated names")
	cmd.Flags().IntVar(&opts.MaxFrames, "max-frames", 10000, "give up after this many frames")

	return cmd
}

func runReplay(opts *ReplayOptions, script []byte, logOut io.Writer) (ReplayResult, error) {
	runner, err := dnd.LoadGestureScript(script)
	if err != nil {
		return ReplayResult{}, err
	}

	log := opts.logger(logOut)
	sink := &countSink{}
	engine := dnd.NewEngine(
		dnd.WithPointerReader(nil),
		dnd.WithLogger(log),
		dnd.WithEventSink(sink),
	)
	r := roster.New(opts.Groups,
		roster.WithLogger(log),
		roster.WithSeed(opts.Seed),
		roster.WithUsersPerGroup(opts.Users),
	)
	b := board.New(engine, r, board.WithSlide(0, nil), board.WithLogger(log))

	var res ReplayResult
	runner.OnMark = func(label string) { res.Marks = append(res.Marks, label) }
	engine.SetScriptRunner(runner)

	for !runner.Done() {
		if res.Frames >= opts.MaxFrames {
			return ReplayResult{}, fmt.Errorf("script not finished after %d frames", opts.MaxFrames)
		}
		engine.Update()
		b.Update(1.0 / 60)
		res.Frames++
	}

	res.Drops = sink.drops
	res.Reorders = sink.reorders
	for _, g := range r.Groups() {
		rg := ReplayGroup{ID: g.ID, Index: g.Index, Users: []ReplayUser{}}
		for _, u := range g.Users {
			rg.Users = append(rg.Users, ReplayUser{ID: u.ID, Name: u.Name, Index: u.Index})
		}
		res.Groups = append(res.Groups, rg)
	}
	return res, nil
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func outputReplayText(w io.Writer, res ReplayResult) {
	header := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.FgHiBlack)

	for _, g := range res.Groups {
		header.Fprintf(w, "group %d", g.Index)
		dim.Fprintf(w, " %s\n", g.ID)
		if len(g.Users) == 0 {
			dim.Fprintln(w, "  (empty)")
		}
		for _, u := range g.Users {
			fmt.Fprintf(w, "  %d : %s\n", u.Index, u.Name)
		}
	}
	fmt.Fprintf(w, "%d frames, %s, %s\n", res.Frames,
		color.GreenString("%d drops", res.Drops),
		color.YellowString("%d reorders", res.Reorders))
}
