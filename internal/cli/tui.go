package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/slateboard/slateboard/pkg/board"
	"github.com/slateboard/slateboard/pkg/geom"
)

// moveStep is how far one arrow key press moves the dragged shape.
const moveStep = 10.0

// =============================================================================
// editModel - Interactive shape editor
// =============================================================================

// editModel is the bubbletea model for the interactive editor. The document
// stays authoritative; every shape move runs through a drag session exactly
// as a pointer-driven frontend would, so guides, spacing, and snapping
// behave the same as in the HTTP service.
type editModel struct {
	doc  *board.Document
	path string
	opts board.DragOptions

	cursor  int
	session *board.DragSession
	frame   board.FrameResult
	pos     geom.Point
	snap    bool

	status string
	dirty  bool
	saved  bool
}

// newEditModel creates an editor over the given document.
func newEditModel(doc *board.Document, path string, opts board.DragOptions) editModel {
	return editModel{
		doc:    doc,
		path:   path,
		opts:   opts,
		snap:   true,
		status: StyleDim.Render("select a shape and move it with the arrow keys"),
	}
}

func (m editModel) Init() tea.Cmd {
	return nil
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "j":
		if m.session == nil && len(m.doc.Shapes) > 0 {
			m.cursor = (m.cursor + 1) % len(m.doc.Shapes)
		}
	case "shift+tab", "k":
		if m.session == nil && len(m.doc.Shapes) > 0 {
			m.cursor = (m.cursor - 1 + len(m.doc.Shapes)) % len(m.doc.Shapes)
		}
	case "left", "h":
		m = m.move(-moveStep, 0)
	case "right", "l":
		m = m.move(moveStep, 0)
	case "up":
		m = m.move(0, -moveStep)
	case "down":
		m = m.move(0, moveStep)
	case "enter":
		m = m.commit()
	case "esc":
		m = m.cancel()
	case "s":
		m.snap = !m.snap
		if m.session != nil {
			m.frame = m.session.Move(context.Background(), m.pos.X, m.pos.Y, m.snap)
			m.status = frameStatus(m.frame)
		}
	case "w":
		m = m.save()
	}
	return m, nil
}

// move starts a drag session on first use and feeds it one frame.
func (m editModel) move(dx, dy float64) editModel {
	if len(m.doc.Shapes) == 0 {
		return m
	}
	if m.session == nil {
		s := m.doc.Shapes[m.cursor]
		sess, err := board.NewDragSession(context.Background(), m.doc, s.ID, m.opts)
		if err != nil {
			m.status = StyleWarning.Render(err.Error())
			return m
		}
		m.session = sess
		m.pos = geom.Point{X: s.X, Y: s.Y}
	}

	m.pos.X += dx
	m.pos.Y += dy
	m.frame = m.session.Move(context.Background(), m.pos.X, m.pos.Y, m.snap)
	m.status = frameStatus(m.frame)
	return m
}

// commit ends the drag and writes the final position and lane back into the
// document.
func (m editModel) commit() editModel {
	if m.session == nil {
		return m
	}
	res := m.session.Commit(context.Background(), m.pos.X, m.pos.Y)

	s := &m.doc.Shapes[m.cursor]
	s.X, s.Y = res.X, res.Y
	s.LaneID = ""
	if res.Assigned {
		s.LaneID = res.LaneID
	}

	m.session = nil
	m.frame = board.FrameResult{}
	m.dirty = true
	if res.Assigned {
		m.status = StyleSuccess.Render(fmt.Sprintf("moved %s to (%g, %g) in lane %s", s.ID, res.X, res.Y, res.LaneID))
	} else {
		m.status = StyleSuccess.Render(fmt.Sprintf("moved %s to (%g, %g)", s.ID, res.X, res.Y))
	}
	return m
}

// cancel abandons the drag; the document keeps the pre-drag position.
func (m editModel) cancel() editModel {
	if m.session == nil {
		return m
	}
	m.session = nil
	m.frame = board.FrameResult{}
	m.status = StyleDim.Render("drag cancelled")
	return m
}

// save writes the document back to its file.
func (m editModel) save() editModel {
	if err := board.WriteDocumentFile(m.doc, m.path); err != nil {
		m.status = StyleWarning.Render(err.Error())
		return m
	}
	m.dirty = false
	m.saved = true
	m.status = StyleSuccess.Render("saved " + m.path)
	return m
}

func (m editModel) View() string {
	var b strings.Builder

	title := "Slateboard"
	if m.dirty {
		title += " *"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("tab select  arrows move  ⏎ commit  esc cancel  s snap  w write  q quit"))
	b.WriteString("\n\n")

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, len(m.doc.Shapes))
	for i, s := range m.doc.Shapes {
		x, y := s.X, s.Y
		if m.session != nil && i == m.cursor {
			x, y = m.frame.X, m.frame.Y
		}

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		laneID := s.LaneID
		if laneID == "" {
			laneID = "—"
		}
		rows[i] = []string{cursor, s.ID, s.Kind, fmt.Sprintf("%g", x), fmt.Sprintf("%g", y), laneID}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Shape", "Kind", "X", "Y", "Lane").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.cursor {
				if m.session != nil {
					return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
				}
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})
	b.WriteString(t.Render())
	b.WriteString("\n\n")

	snapLabel := StyleDim.Render("snap off")
	if m.snap {
		snapLabel = StyleSuccess.Render("snap on")
	}
	b.WriteString(snapLabel)
	b.WriteString(StyleDim.Render("  ·  "))
	b.WriteString(m.status)
	b.WriteString("\n")

	return b.String()
}

// frameStatus summarizes one drag frame for the status line.
func frameStatus(f board.FrameResult) string {
	var parts []string
	if n := len(f.Guides.Vertical); n > 0 {
		parts = append(parts, fmt.Sprintf("%d vertical", n))
	}
	if n := len(f.Guides.Horizontal); n > 0 {
		parts = append(parts, fmt.Sprintf("%d horizontal", n))
	}
	if f.Equal != nil {
		parts = append(parts, "equal spacing")
	}
	if f.Snapped {
		parts = append(parts, StyleSuccess.Render("snapped"))
	}
	if len(parts) == 0 {
		return StyleDim.Render("no guides")
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}
