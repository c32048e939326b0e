package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/janekbaraniewski/openchart/internal/core"
	"github.com/janekbaraniewski/openchart/internal/pipeline"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m, cmd
}

func newTestModel() Model {
	return NewModel("regions.csv", regionInput(), core.DefaultChartConfig())
}

func TestNewModelRunsPipeline(t *testing.T) {
	m := newTestModel()
	res := m.Result()
	if res.Dataset.Empty {
		t.Fatal("expected a populated dataset")
	}
	if res.LabelColumn != "region" || res.ValueColumn != "sales" {
		t.Fatalf("columns = %q/%q, want region/sales", res.LabelColumn, res.ValueColumn)
	}
}

func TestModelKeysAdjustConfig(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		check func(core.ChartConfig) bool
	}{
		{"kind cycles", []string{"k"}, func(c core.ChartConfig) bool { return c.Type == core.KindColumn }},
		{"sort cycles", []string{"s"}, func(c core.ChartConfig) bool { return c.Sort == core.NextSortMode(core.SortNone) }},
		{"3d toggles", []string{"3"}, func(c core.ChartConfig) bool { return c.Enable3D }},
		{"3d toggles back", []string{"3", "3"}, func(c core.ChartConfig) bool { return !c.Enable3D }},
		{"depth grows", []string{"+"}, func(c core.ChartConfig) bool { return c.Shadow3DDepth == 9 }},
		{"depth shrinks", []string{"-", "-"}, func(c core.ChartConfig) bool { return c.Shadow3DDepth == 6 }},
		{"depth clamps high", []string{"+", "+", "+", "+", "+", "+", "+", "+", "+", "+"}, func(c core.ChartConfig) bool { return c.Shadow3DDepth == 15 }},
		{"depth clamps low", []string{"-", "-", "-", "-", "-", "-"}, func(c core.ChartConfig) bool { return c.Shadow3DDepth == 5 }},
		{"shadow rotates", []string{"p"}, func(c core.ChartConfig) bool { return c.Shadow3DPosition == core.ShadowBottom }},
		{"trendline", []string{"t"}, func(c core.ChartConfig) bool { return c.Trendline }},
		{"log scale", []string{"l"}, func(c core.ChartConfig) bool { return c.LogScale }},
		{"gradient", []string{"g"}, func(c core.ChartConfig) bool { return c.Gradient }},
		{"labels", []string{"v"}, func(c core.ChartConfig) bool { return c.ShowLabels }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := press(t, newTestModel(), tt.keys...)
			if !tt.check(m.Config()) {
				t.Fatalf("after %v config = %+v", tt.keys, m.Config())
			}
		})
	}
}

func TestModelTrendlineReachesDataset(t *testing.T) {
	m, _ := press(t, newTestModel(), "t")
	if _, ok := m.Result().Dataset.SeriesByRole(core.RoleTrend); !ok {
		t.Fatal("toggling the trendline should add a trend series")
	}
}

func TestModelQuit(t *testing.T) {
	_, cmd := press(t, newTestModel(), "q")
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should quit")
	}
}

func TestModelHelpOverlay(t *testing.T) {
	m, _ := press(t, newTestModel(), "?")
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Keys") || !strings.Contains(view, "Cycle chart kind") {
		t.Fatalf("help overlay missing key list:\n%s", view)
	}

	m, _ = press(t, m, "k")
	if m.Config().Type != core.KindBar {
		t.Fatal("a key pressed while help is open should only dismiss it")
	}
	if strings.Contains(ansi.Strip(m.View()), "Press any key to dismiss") {
		t.Fatal("help should be dismissed")
	}
}

func TestModelWindowSize(t *testing.T) {
	next, _ := newTestModel().Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m := next.(Model)
	if m.width != 120 || m.height != 40 {
		t.Fatalf("size = %dx%d, want 120x40", m.width, m.height)
	}
}

func TestModelTableReload(t *testing.T) {
	in := regionInput()
	in.Rows = append(in.Rows, core.Row{"region": "West", "sales": 5.0, "target": 1.0})

	next, _ := newTestModel().Update(TableMsg{Input: in})
	m := next.(Model)
	if got := len(m.Result().Dataset.Labels); got != 4 {
		t.Fatalf("labels after reload = %d, want 4", got)
	}
	if !strings.Contains(m.status, "4 rows") {
		t.Fatalf("status = %q, want reload notice", m.status)
	}

	next, _ = m.Update(TableMsg{Err: errors.New("boom")})
	m = next.(Model)
	if got := len(m.Result().Dataset.Labels); got != 4 {
		t.Fatalf("a failed reload should keep the previous table, got %d labels", got)
	}
	if !strings.Contains(ansi.Strip(m.View()), "boom") {
		t.Fatal("reload error should be shown")
	}
}

func TestModelViewShowsAdvisories(t *testing.T) {
	cfg := core.DefaultChartConfig().WithKind(core.KindGauge)
	cfg.Trendline = true
	m := NewModel("regions.csv", regionInput(), cfg)
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "openchart") || !strings.Contains(view, "Gauge") {
		t.Fatalf("header missing:\n%s", view)
	}
	if !strings.Contains(view, "Trendline") {
		t.Fatalf("advisory for the unsupported trendline missing:\n%s", view)
	}
}

func TestModelEmptyInput(t *testing.T) {
	m := NewModel("empty.csv", pipeline.Input{}, core.DefaultChartConfig())
	if !strings.Contains(ansi.Strip(m.View()), "No data") {
		t.Fatal("empty input should show the empty state")
	}
}
