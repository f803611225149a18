package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/slateboard/slateboard/pkg/board"
)

// newEditCmd creates the edit command: a terminal editor that moves shapes
// through the same drag pipeline the graphical frontends use.
func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Move shapes interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args[0])
		},
	}
	return cmd
}

func runEdit(cmd *cobra.Command, path string) error {
	cfg := configFromContext(cmd.Context())

	doc, err := board.ReadDocumentFile(path)
	if err != nil {
		return err
	}

	m := newEditModel(doc, path, board.DragOptions{
		Threshold: cfg.Snap.Threshold,
		Tolerance: cfg.Snap.Tolerance,
		Defaults:  cfg.SizeDefaults(),
	})

	final, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(editModel); ok {
		w := cmd.OutOrStdout()
		if fm.saved && !fm.dirty {
			printSuccess(w, "Saved %s", path)
			printFile(w, path)
		} else if fm.dirty {
			fmt.Fprintln(w, StyleWarning.Render("! unsaved changes discarded (press w in the editor to save)"))
		}
	}
	return nil
}
