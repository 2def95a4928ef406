package tui

import (
	"encoding/base64"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/prism-home/prism/internal/models"
)

// ScenePreviewRow is one browsable scene with its derived summary.
type ScenePreviewRow struct {
	Scene     models.PrismScene
	Palette   models.ScenePalette
	Thumbnail string
}

type sceneApplier interface {
	ApplyUIColour(sceneID string, rgb models.RGB, briPct int) error
}

var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

var swatchStyle = lipgloss.NewStyle().Padding(0, 2)

type PrismTUI struct {
	teaProgram *tea.Program
}

func NewPrismTUI(rows []ScenePreviewRow, applier sceneApplier) *PrismTUI {
	m := NewModel(rows, applier)
	p := tea.NewProgram(m, tea.WithAltScreen())
	return &PrismTUI{p}
}

func (t *PrismTUI) Run() error {
	_, err := t.teaProgram.Run()
	return err
}

type Model struct {
	table   table.Model
	rows    []ScenePreviewRow
	applier sceneApplier
	status  string
}

func NewModel(rows []ScenePreviewRow, applier sceneApplier) *Model {

	columns := []table.Column{
		{Title: "Scene", Width: 24},
		{Title: "Group", Width: 16},
		{Title: "Lights", Width: 6},
		{Title: "Brightness", Width: 10},
	}

	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, table.Row{
			r.Scene.Name,
			r.Scene.GroupName,
			fmt.Sprint(r.Palette.LightCount),
			fmt.Sprintf("%.0f%%", r.Palette.Brightness),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return &Model{table: t, rows: rows, applier: applier}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := message.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "s":
			m.status = m.saveSelectedThumbnail()
			return m, nil
		case "a":
			m.status = m.applySelectedColour()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(message)
	return m, cmd
}

func (m Model) View() string {
	view := baseStyle.Render(m.table.View()) + "\n" + m.renderSwatches()
	if m.status != "" {
		view += "\n" + m.status
	}
	return view + "\nq: quit  s: save thumbnail  a: light up scene\n"
}

// applySelectedColour pushes the selected scene's lead palette colour to
// its lights at the palette brightness, lighting the scene up so it can
// be identified in the room.
func (m Model) applySelectedColour() string {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.rows) {
		return "no scene selected"
	}
	row := m.rows[cursor]
	if len(row.Palette.Colours) == 0 {
		return "scene has no colours"
	}

	c, err := colorful.Hex(row.Palette.Colours[0])
	if err != nil {
		return fmt.Sprintf("error parsing palette colour: %s", err)
	}
	rgb := models.RGB{
		R: int(math.Round(c.R * 255)),
		G: int(math.Round(c.G * 255)),
		B: int(math.Round(c.B * 255)),
	}
	briPct := int(math.Round(row.Palette.Brightness))

	if err := m.applier.ApplyUIColour(row.Scene.ID, rgb, briPct); err != nil {
		return fmt.Sprintf("error lighting up %s: %s", row.Scene.Name, err)
	}
	return fmt.Sprintf("lit up %s with %s", row.Scene.Name, row.Palette.Colours[0])
}

// renderSwatches paints the selected scene's palette as coloured blocks.
func (m Model) renderSwatches() string {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.rows) {
		return ""
	}

	var b strings.Builder
	for _, hex := range m.rows[cursor].Palette.Colours {
		b.WriteString(swatchStyle.Background(lipgloss.Color(hex)).Render(" "))
	}
	return b.String()
}

// saveSelectedThumbnail writes the selected scene's gradient swatch next
// to the binary, decoded from its data URI.
func (m Model) saveSelectedThumbnail() string {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.rows) {
		return "no scene selected"
	}
	row := m.rows[cursor]

	encoded, found := strings.CutPrefix(row.Thumbnail, "data:image/svg+xml;base64,")
	if !found {
		return "scene has no svg thumbnail"
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Sprintf("error decoding thumbnail: %s", err)
	}

	filename := fmt.Sprintf("scene-%s.svg", row.Scene.ID)
	if err := os.WriteFile(filename, raw, 0o644); err != nil {
		return fmt.Sprintf("error writing %s: %s", filename, err)
	}
	return fmt.Sprintf("saved %s", filename)
}
