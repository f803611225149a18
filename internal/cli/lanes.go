package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/slateboard/slateboard/pkg/board"
	"github.com/slateboard/slateboard/pkg/lane"
)

// newLanesCmd creates the lanes command. It derives the lane bands from the
// document's lane definitions and reports which lane each shape falls into.
func newLanesCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "lanes [file]",
		Short: "Derive swimlane bands and shape assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLanes(cmd, args[0], jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit machine-readable JSON")

	return cmd
}

// lanesOutput is the JSON shape of the lanes command.
type lanesOutput struct {
	Horizontal  []lane.Boundary   `json:"horizontal,omitempty"`
	Vertical    []lane.Boundary   `json:"vertical,omitempty"`
	Assignments map[string]string `json:"assignments"`
}

func runLanes(cmd *cobra.Command, path string, jsonOut bool) error {
	logger := loggerFromContext(cmd.Context())
	cfg := configFromContext(cmd.Context())
	p := newProgress(logger)

	doc, err := board.ReadDocumentFile(path)
	if err != nil {
		return err
	}

	defaults := cfg.SizeDefaults()
	out := lanesOutput{
		Horizontal:  doc.Lanes.HorizontalBoundaries(),
		Vertical:    doc.Lanes.VerticalBoundaries(),
		Assignments: make(map[string]string, len(doc.Shapes)),
	}
	for _, s := range doc.Shapes {
		if id, ok := doc.ResolveLane(s, defaults); ok {
			out.Assignments[s.ID] = id
		}
	}

	w := cmd.OutOrStdout()
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(out.Horizontal) > 0 {
		printBoundaryTable(w, "Horizontal lanes (y)", out.Horizontal)
	}
	if len(out.Vertical) > 0 {
		printBoundaryTable(w, "Vertical lanes (x)", out.Vertical)
	}
	if doc.Lanes.Empty() {
		fmt.Fprintln(w, StyleDim.Render("document has no lanes"))
		return nil
	}

	fmt.Fprintln(w, StyleTitle.Render("Assignments"))
	for _, id := range sortedShapeIDs(doc) {
		laneID, ok := out.Assignments[id]
		if !ok {
			laneID = StyleDim.Render("(unassigned)")
		}
		printKeyValue(w, id, laneID)
	}

	p.done(fmt.Sprintf("Assigned %d of %d shapes", len(out.Assignments), len(doc.Shapes)))
	return nil
}

// printBoundaryTable renders one axis's bands as a bordered table.
func printBoundaryTable(w io.Writer, title string, bounds []lane.Boundary) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, len(bounds))
	for i, b := range bounds {
		rows[i] = []string{
			b.LaneID,
			b.Label,
			fmt.Sprintf("%g", b.Offset),
			fmt.Sprintf("%g", b.End()),
			fmt.Sprintf("%g", b.Size),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Lane", "Label", "Start", "End", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	fmt.Fprintln(w, StyleTitle.Render(title))
	fmt.Fprintln(w, t.Render())
}

func sortedShapeIDs(doc *board.Document) []string {
	ids := make([]string, len(doc.Shapes))
	for i, s := range doc.Shapes {
		ids[i] = s.ID
	}
	sort.Strings(ids)
	return ids
}
