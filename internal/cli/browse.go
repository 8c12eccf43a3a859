package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	sceneio "github.com/matzehuels/figtree/pkg/io"
	"github.com/matzehuels/figtree/pkg/scene"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// newBrowseCmd creates the browse command, an interactive terminal viewer
// for scene documents.
func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [file]",
		Short: "Explore a scene document interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := sceneio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			m := NewBrowseModel(g, args[0])
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// =============================================================================
// BrowseModel - Interactive scene tree browser
// =============================================================================

// browseRow is one visible line of the tree: a graphic at a depth.
type browseRow struct {
	graphic scene.Graphic
	depth   int
}

// BrowseModel is the bubbletea model for the scene tree browser.
// Groups can be expanded and collapsed; leaves show their draw line.
type BrowseModel struct {
	Root     scene.Graphic
	Title    string
	Cursor   int
	Height   int
	Offset   int
	expanded map[*scene.Group]bool
	rows     []browseRow
}

// NewBrowseModel creates a browse model with every group expanded.
func NewBrowseModel(root scene.Graphic, title string) BrowseModel {
	m := BrowseModel{
		Root:     root,
		Title:    title,
		Height:   15,
		expanded: map[*scene.Group]bool{},
	}
	if grp, ok := root.(*scene.Group); ok {
		grp.Walk(func(g scene.Graphic, depth int) bool {
			if sub, ok := g.(*scene.Group); ok {
				m.expanded[sub] = true
			}
			return true
		})
	}
	m.rows = m.visibleRows()
	return m
}

// visibleRows flattens the tree into the rows currently on display,
// honoring collapsed groups.
func (m BrowseModel) visibleRows() []browseRow {
	var rows []browseRow
	var visit func(g scene.Graphic, depth int)
	visit = func(g scene.Graphic, depth int) {
		rows = append(rows, browseRow{graphic: g, depth: depth})
		grp, ok := g.(*scene.Group)
		if !ok || !m.expanded[grp] {
			return
		}
		for _, c := range grp.Children() {
			visit(c, depth+1)
		}
	}
	visit(m.Root, 0)
	return rows
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", " ":
			if grp, ok := m.rows[m.Cursor].graphic.(*scene.Group); ok {
				m.expanded[grp] = !m.expanded[grp]
				m.rows = m.visibleRows()
				if m.Cursor >= len(m.rows) {
					m.Cursor = len(m.rows) - 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ expand/collapse  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.Offset; i < end; i++ {
		row := m.rows[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := cursor + strings.Repeat("  ", row.depth) + rowLabel(row.graphic, m.expanded)

		switch {
		case i == m.Cursor:
			b.WriteString(listSelectedStyle.Render(line))
		case row.graphic.Kind() == scene.KindGroup:
			b.WriteString(listNormalStyle.Render(line))
		default:
			b.WriteString(listDimStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.rows))))

	return b.String()
}

// rowLabel renders the display text for one tree row.
func rowLabel(g scene.Graphic, expanded map[*scene.Group]bool) string {
	if grp, ok := g.(*scene.Group); ok {
		marker := "+"
		if expanded[grp] {
			marker = "-"
		}
		return fmt.Sprintf("%s group (%d children)", marker, grp.Len())
	}
	lines := g.Draw()
	if len(lines) == 0 {
		return "(empty)"
	}
	return lines[0]
}
