package tui

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/janekbaraniewski/openchart/internal/config"
	"github.com/janekbaraniewski/openchart/internal/core"
	"github.com/janekbaraniewski/openchart/internal/pipeline"
)

const (
	headerRows = 3
	footerRows = 2
)

// TableMsg replaces the table on screen, typically after the source file
// changed on disk.
type TableMsg struct {
	Input pipeline.Input
	Err   error
}

type themePersistedMsg struct {
	err error
}

// Model is the interactive chart viewer. Every option change reruns the
// pipeline on the loaded table.
type Model struct {
	name   string
	input  pipeline.Input
	cfg    core.ChartConfig
	result pipeline.Result

	width    int
	height   int
	showHelp bool
	status   string
	loadErr  error

	persistTheme bool
}

// NewModel builds a viewer for one loaded table.
func NewModel(name string, in pipeline.Input, cfg core.ChartConfig) Model {
	m := Model{name: name, input: in, cfg: cfg.Normalize(), width: 80, height: 24}
	m.rerun()
	return m
}

// SetPersistTheme makes theme switches write back to the settings file.
func (m *Model) SetPersistTheme(on bool) {
	m.persistTheme = on
}

// Config returns the chart options as currently adjusted by the user.
func (m Model) Config() core.ChartConfig { return m.cfg }

// Result returns the latest pipeline output.
func (m Model) Result() pipeline.Result { return m.result }

func (m *Model) rerun() {
	m.result = pipeline.Run(m.input, m.cfg)
	m.cfg = m.result.Config
}

func (m Model) persistThemeCmd(themeName string) tea.Cmd {
	return func() tea.Msg {
		return themePersistedMsg{err: config.SaveTheme(themeName)}
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case TableMsg:
		if msg.Err != nil {
			m.loadErr = msg.Err
			m.status = "reload failed"
			return m, nil
		}
		m.loadErr = nil
		m.input = msg.Input
		m.rerun()
		m.status = fmt.Sprintf("reloaded %d rows", len(msg.Input.Rows))
		return m, nil
	case themePersistedMsg:
		if msg.err != nil {
			log.Printf("tui: persist theme: %v", msg.err)
			m.status = "theme not saved"
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	var cmd tea.Cmd
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "k":
		m.cfg = m.cfg.WithKind(core.NextChartKind(m.cfg.Type))
		m.status = core.Capabilities(m.cfg.Type).DisplayName
	case "s":
		m.cfg.Sort = core.NextSortMode(m.cfg.Sort)
		m.status = "sort " + string(m.cfg.Sort)
	case "3":
		m.cfg.Enable3D = !m.cfg.Enable3D
	case "+", "=":
		m.cfg.Shadow3DDepth++
	case "-", "_":
		m.cfg.Shadow3DDepth--
	case "p":
		m.cfg.Shadow3DPosition = core.NextShadowPosition(m.cfg.Shadow3DPosition)
		m.status = "shadow " + string(m.cfg.Shadow3DPosition)
	case "t":
		m.cfg.Trendline = !m.cfg.Trendline
	case "l":
		m.cfg.LogScale = !m.cfg.LogScale
	case "g":
		m.cfg.Gradient = !m.cfg.Gradient
	case "o":
		m.cfg.GroupOthers = !m.cfg.GroupOthers
	case "v":
		m.cfg.ShowLabels = !m.cfg.ShowLabels
	case "T":
		name := CycleTheme()
		m.status = "theme " + name
		if m.persistTheme {
			cmd = m.persistThemeCmd(name)
		}
		return m, cmd
	default:
		return m, nil
	}
	m.rerun()
	return m, cmd
}

func (m Model) View() string {
	if m.showHelp {
		return m.renderHelpOverlay(m.width, m.height)
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(m.renderPills())
	sb.WriteString("\n")
	sb.WriteString(" " + sectionSepStyle.Render(strings.Repeat("─", max(m.width-2, 1))))
	sb.WriteString("\n")

	chartH := max(m.height-headerRows-footerRows-len(m.result.Advisories)-3, minChartHeight)
	sb.WriteString(RenderDataset(m.result.Dataset, m.cfg, m.width-2, chartH))
	sb.WriteString("\n")

	for _, a := range lo.Uniq(m.result.Advisories) {
		sb.WriteString("\n  " + advisoryStyle.Render("! "+a))
	}
	if m.loadErr != nil {
		sb.WriteString("\n  " + errorStyle.Render(m.loadErr.Error()))
	}
	sb.WriteString("\n")
	sb.WriteString(m.renderFooter())
	return sb.String()
}

func (m Model) renderHeader() string {
	caps := core.Capabilities(m.cfg.Type)
	left := headerBrandStyle.Render("openchart") + dimStyle.Render(" · ") + headerStyle.Render(m.name)
	cols := dimStyle.Render(fmt.Sprintf("%s by %s", orDash(m.result.ValueColumn), orDash(m.result.LabelColumn)))
	right := chartTitleStyle.Render(caps.DisplayName) + dimStyle.Render("  "+ThemeName())
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(cols)-lipgloss.Width(right)-6, 1)
	return " " + left + "  " + cols + strings.Repeat(" ", gap) + right
}

func (m Model) renderPills() string {
	caps := core.Capabilities(m.cfg.Type)
	depthLabel := fmt.Sprintf("3D %d %s", m.cfg.Shadow3DDepth, m.cfg.Shadow3DPosition)
	pills := []string{
		Pill("sort "+string(m.cfg.Sort), m.cfg.Sort != core.SortNone),
	}
	if caps.Supports3D {
		pills = append(pills, Pill(depthLabel, m.cfg.Enable3D))
	}
	if caps.SupportsTrendline {
		pills = append(pills, Pill("trend", m.cfg.Trendline))
	}
	if caps.SupportsLogScale {
		pills = append(pills, Pill("log", m.cfg.LogScale))
	}
	if caps.SupportsGradient {
		pills = append(pills, Pill("gradient", m.cfg.Gradient))
	}
	if caps.SupportsLabels {
		pills = append(pills, Pill("labels", m.cfg.ShowLabels))
	}
	if m.cfg.TopN > 0 {
		pills = append(pills, Pill(fmt.Sprintf("top %d", m.cfg.TopN), m.cfg.GroupOthers))
	}
	return " " + strings.Join(pills, " ")
}

func (m Model) renderFooter() string {
	status := ""
	if m.status != "" {
		status = dimStyle.Render(m.status) + "  "
	}
	keys := []struct{ key, desc string }{
		{"k", "kind"}, {"s", "sort"}, {"3", "3D"}, {"+/-", "depth"}, {"p", "shadow"},
		{"t", "trend"}, {"l", "log"}, {"g", "gradient"}, {"?", "help"}, {"q", "quit"},
	}
	parts := lo.Map(keys, func(k struct{ key, desc string }, _ int) string {
		return helpKeyStyle.Render(k.key) + helpStyle.Render(" "+k.desc)
	})
	return " " + status + strings.Join(parts, helpStyle.Render("  "))
}

func orDash(s string) string {
	if s == "" {
		return "–"
	}
	return s
}
