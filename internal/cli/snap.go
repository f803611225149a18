package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/slateboard/slateboard/pkg/board"
)

// snapOutput is the JSON shape of the snap command.
type snapOutput struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Snapped bool    `json:"snapped"`

	// Lane fields are present only with --commit.
	LaneID   string `json:"lane_id,omitempty"`
	Assigned *bool  `json:"assigned,omitempty"`
}

// newSnapCmd creates the snap command. It runs a drag frame with the snap
// modifier held and reports the corrected position; with --commit it also
// ends the drag and reports the re-resolved lane assignment.
func newSnapCmd() *cobra.Command {
	var (
		shapeID string
		x, y    float64
		commit  bool
	)

	cmd := &cobra.Command{
		Use:   "snap [file]",
		Short: "Compute the snapped position for a drag position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnap(cmd, args[0], shapeID, x, y, commit)
		},
	}

	cmd.Flags().StringVarP(&shapeID, "shape", "s", "", "id of the dragged shape")
	cmd.Flags().Float64VarP(&x, "x", "x", 0, "pointer x position of the dragged shape")
	cmd.Flags().Float64VarP(&y, "y", "y", 0, "pointer y position of the dragged shape")
	cmd.Flags().BoolVar(&commit, "commit", false, "end the drag and report the lane assignment")
	_ = cmd.MarkFlagRequired("shape")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}

func runSnap(cmd *cobra.Command, path, shapeID string, x, y float64, commit bool) error {
	ctx := cmd.Context()
	cfg := configFromContext(ctx)

	doc, err := board.ReadDocumentFile(path)
	if err != nil {
		return err
	}

	sess, err := board.NewDragSession(ctx, doc, shapeID, board.DragOptions{
		Threshold: cfg.Snap.Threshold,
		Tolerance: cfg.Snap.Tolerance,
		Defaults:  cfg.SizeDefaults(),
	})
	if err != nil {
		return err
	}
	frame := sess.Move(ctx, x, y, true)

	out := snapOutput{X: frame.X, Y: frame.Y, Snapped: frame.Snapped}
	if commit {
		res := sess.Commit(ctx, x, y)
		out.X, out.Y = res.X, res.Y
		out.LaneID = res.LaneID
		out.Assigned = &res.Assigned
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
