package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/dynvec/internal/dynarray"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
)

// Walker steps a cursor through an array one key press at a time.
type Walker struct {
	source   *dynarray.Array[float64]
	cursor   *dynarray.Cursor[float64]
	steps    int
	quitting bool
}

func NewWalker(a *dynarray.Array[float64]) Walker {
	return Walker{source: a, cursor: a.Begin()}
}

func (w Walker) Init() tea.Cmd { return nil }

func (w Walker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		w.quitting = true
		return w, tea.Quit
	case "n", " ", "right", "l", "enter":
		if !w.cursor.IsEnd() {
			w.steps++
		}
		w.cursor.Next()
	case "e", "end":
		w.cursor = w.source.End()
	case "r", "home":
		w.cursor = w.source.Begin()
		w.steps = 0
	}
	return w, nil
}

func (w Walker) View() string {
	if w.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(cyan.Render("cursor walk"))
	b.WriteString("\n\n")

	snap := w.cursor.Snapshot()
	cells := make([]string, 0, snap.Len())
	for i, v := range snap.All() {
		cell := fmt.Sprint(v)
		if i == w.cursor.Pos() {
			cells = append(cells, magenta.Render("["+cell+"]"))
		} else {
			cells = append(cells, white.Render(cell))
		}
	}
	b.WriteString("  " + strings.Join(cells, dim.Render(", ")) + "\n\n")

	end := dim.Render("no")
	if w.cursor.IsEnd() {
		end = green.Render("yes")
	}
	fmt.Fprintf(&b, "  %s %s\n", dim.Render("position"), white.Render(fmt.Sprintf("%d/%d", w.cursor.Pos(), w.cursor.Len())))
	if w.cursor.Len() > 0 {
		fmt.Fprintf(&b, "  %s %s\n", dim.Render("value   "), white.Render(fmt.Sprint(w.cursor.Value())))
	}
	fmt.Fprintf(&b, "  %s %s\n", dim.Render("at end  "), end)
	fmt.Fprintf(&b, "  %s %s\n\n", dim.Render("advances"), white.Render(fmt.Sprint(w.steps)))

	b.WriteString(dim.Render("  n/space next · e end · r restart · q quit"))
	b.WriteString("\n")
	return b.String()
}

// Cursor exposes the current cursor.
func (w Walker) Cursor() *dynarray.Cursor[float64] {
	return w.cursor
}

// Run starts the walker on the terminal.
func Run(a *dynarray.Array[float64]) error {
	_, err := tea.NewProgram(NewWalker(a)).Run()
	return err
}
