package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/slateboard/slateboard/pkg/align"
	"github.com/slateboard/slateboard/pkg/board"
)

// guidesOutput is the JSON shape of the guides command: one drag frame's
// detection output at the probed position.
type guidesOutput struct {
	Guides align.GuideSet   `json:"guides"`
	Gaps   []align.Gap      `json:"gaps,omitempty"`
	Equal  *align.EqualSnap `json:"equal,omitempty"`
}

// newGuidesCmd creates the guides command. It runs a single drag frame for
// the given shape at the given pointer position and reports the alignment
// guides, spacing gaps, and any equal-spacing opportunity.
func newGuidesCmd() *cobra.Command {
	var (
		shapeID string
		x, y    float64
	)

	cmd := &cobra.Command{
		Use:   "guides [file]",
		Short: "Report alignment guides and spacing gaps for a drag position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuides(cmd, args[0], shapeID, x, y)
		},
	}

	cmd.Flags().StringVarP(&shapeID, "shape", "s", "", "id of the dragged shape")
	cmd.Flags().Float64VarP(&x, "x", "x", 0, "pointer x position of the dragged shape")
	cmd.Flags().Float64VarP(&y, "y", "y", 0, "pointer y position of the dragged shape")
	_ = cmd.MarkFlagRequired("shape")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}

func runGuides(cmd *cobra.Command, path, shapeID string, x, y float64) error {
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
	frame := sess.Move(ctx, x, y, false)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(guidesOutput{
		Guides: frame.Guides,
		Gaps:   frame.Gaps,
		Equal:  frame.Equal,
	})
}
