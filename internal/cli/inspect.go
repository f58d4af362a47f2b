package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/WJZ-P/CommitCraft/pkg/calendar"
	"github.com/WJZ-P/CommitCraft/pkg/pipeline"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/hover"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/material"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/tooltip"
)

// inspectCommand creates the inspect command, a terminal browser over the
// columns of a scene. Moving the cursor reveals one tooltip at a time, the
// same way a pointer does in the SVG.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		input   string
		mode    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [username]",
		Short: "Browse a calendar's blocks and tooltips in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{}
			c.setCLIDefaults(&opts)
			if len(args) == 1 {
				opts.Username = args[0]
			}
			opts.Input = input
			if mode != "" {
				opts.Mode = mode
			}
			opts.Formats = []string{pipeline.FormatJSON}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			cal, err := runner.Fetch(cmd.Context(), opts)
			if err != nil {
				return err
			}
			scene, err := runner.Build(cmd.Context(), cal, opts)
			if err != nil {
				return err
			}

			p := tea.NewProgram(newInspectModel(scene), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "calendar JSON file instead of a GitHub user")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "detail mode: rich (default), simple")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}

// =============================================================================
// inspectModel
// =============================================================================

var (
	inspectCursorStyle = lipgloss.NewStyle().Reverse(true)
	inspectEmptyStyle  = lipgloss.NewStyle().Foreground(colorDim)
	inspectBoxStyle    = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// inspectModel is the bubbletea model of the inspector. The grid mirrors the
// calendar: one column per week, one row per weekday.
type inspectModel struct {
	scene   *iso.Scene
	grid    [][]*iso.Column // [day][week], nil where no day exists
	week    int
	day     int
	tracker *hover.Tracker
	quit    bool
}

func newInspectModel(s *iso.Scene) inspectModel {
	grid := make([][]*iso.Column, calendar.DaysPerWeek)
	for i := range grid {
		grid[i] = make([]*iso.Column, s.Weeks)
	}
	for i := range s.Columns {
		col := &s.Columns[i]
		if col.Day < len(grid) && col.Week < s.Weeks {
			grid[col.Day][col.Week] = col
		}
	}

	m := inspectModel{scene: s, grid: grid, tracker: hover.NewTracker(true)}
	// Start on the first existing day.
	for w := 0; w < s.Weeks; w++ {
		for d := 0; d < calendar.DaysPerWeek; d++ {
			if grid[d][w] != nil {
				m.week, m.day = w, d
				m.enter()
				return m
			}
		}
	}
	return m
}

// current returns the column under the cursor, or nil.
func (m inspectModel) current() *iso.Column {
	if m.day < 0 || m.day >= len(m.grid) || m.week < 0 || m.week >= m.scene.Weeks {
		return nil
	}
	return m.grid[m.day][m.week]
}

func (m inspectModel) enter() {
	if col := m.current(); col != nil {
		m.tracker.Enter(col.ID)
	}
}

func (m inspectModel) leave() {
	if col := m.current(); col != nil {
		m.tracker.Leave(col.ID)
	}
}

// move shifts the cursor by dw weeks and dd days, clamped to the grid.
func (m inspectModel) move(dw, dd int) inspectModel {
	week := max(0, min(m.week+dw, m.scene.Weeks-1))
	day := max(0, min(m.day+dd, calendar.DaysPerWeek-1))
	if week == m.week && day == m.day {
		return m
	}
	m.leave()
	m.week, m.day = week, day
	m.enter()
	return m
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit
		case "left", "h":
			m = m.move(-1, 0)
		case "right", "l":
			m = m.move(1, 0)
		case "up", "k":
			m = m.move(0, -1)
		case "down", "j":
			m = m.move(0, 1)
		case "home", "g":
			m = m.move(-m.week, 0)
		case "end", "G":
			m = m.move(m.scene.Weeks, 0)
		}
	}
	return m, nil
}

func (m inspectModel) View() string {
	if m.quit {
		return ""
	}
	var b strings.Builder

	title := m.scene.Label
	if title == "" {
		title = "calendar"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %s · seed %d · %s blocks", m.scene.Mode, m.scene.Seed, numbers.Sprint(m.scene.BlockCount()))))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ week  ↑/↓ day  g/G ends  q quit"))
	b.WriteString("\n\n")

	for d, row := range m.grid {
		b.WriteString("  ")
		for w, col := range row {
			cell := inspectEmptyStyle.Render("·")
			if col != nil {
				cell = lipgloss.NewStyle().Foreground(levelColors[clampLevel(col.Level)]).Render("■")
			}
			if d == m.day && w == m.week {
				cell = inspectCursorStyle.Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if col := m.current(); col != nil && m.tracker.State(col.ID) == hover.Revealed {
		b.WriteString(inspectCard(col))
	} else {
		b.WriteString(StyleDim.Render("  no day here"))
	}
	b.WriteString("\n")
	return b.String()
}

// inspectCard renders the tooltip of col with its tier swatch.
func inspectCard(col *iso.Column) string {
	lines := tooltip.Lines(col.Date, col.Count)
	info := tooltip.TierInfoOf(material.TierOf(col.Count))
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(info.Color)).Render("██")

	body := []string{
		swatch + " " + StyleValue.Bold(true).Render(lines[0]),
		lines[1],
		StyleDim.Render(lines[2]),
		StyleDim.Render(fmt.Sprintf("%d layers · %d blocks", col.Height, len(col.Static)+len(col.Blocks))),
	}
	return inspectBoxStyle.Render(strings.Join(body, "\n"))
}
