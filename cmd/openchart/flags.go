package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/janekbaraniewski/openchart/internal/config"
	"github.com/janekbaraniewski/openchart/internal/core"
	"github.com/janekbaraniewski/openchart/internal/pipeline"
	"github.com/janekbaraniewski/openchart/internal/source"
)

// chartFlags are the options shared by every command that draws a file.
// A preset is applied first; explicitly set flags override it.
type chartFlags struct {
	preset string

	kind        string
	label       string
	value       string
	sort        string
	aggregateBy string
	agg         string
	top         int
	others      bool
	stacked     bool
	trendline   bool
	logScale    bool
	logMin      float64
	compare     string
	color       string
	gradient    bool
	stops       []string
	enable3D    bool
	depth       int
	shadow      string
	labels      bool

	sheet string
	table string
	query string
}

func (f *chartFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.preset, "preset", "", "chart preset file (.yaml, .toml or .json)")

	fl.StringVarP(&f.kind, "type", "k", "", "chart kind: "+strings.Join(lo.Map(core.ValidChartKinds, func(k core.ChartKind, _ int) string { return string(k) }), ", "))
	fl.StringVar(&f.label, "label", "", "label column (default: first categorical or date column)")
	fl.StringVar(&f.value, "value", "", "value column (default: first numeric column)")
	fl.StringVar(&f.sort, "sort", "", "sort by value: none, asc, desc")
	fl.StringVar(&f.aggregateBy, "aggregate-by", "", "group rows by this column")
	fl.StringVar(&f.agg, "agg", "", "aggregate function: sum, mean, median, count")
	fl.IntVar(&f.top, "top", 0, "keep the N largest groups")
	fl.BoolVar(&f.others, "others", false, "fold groups beyond --top into \"Others\"")
	fl.BoolVar(&f.stacked, "stacked", false, "stack series (area charts)")
	fl.BoolVar(&f.trendline, "trendline", false, "overlay a least-squares trendline")
	fl.BoolVar(&f.logScale, "log", false, "logarithmic value axis")
	fl.Float64Var(&f.logMin, "log-min", 0, "floor for non-positive values on a log axis")
	fl.StringVar(&f.compare, "compare", "", "second numeric column to plot next to the value column")
	fl.StringVar(&f.color, "color", "", "base color (hex, rgb() or rgba())")
	fl.BoolVar(&f.gradient, "gradient", false, "color points along a gradient")
	fl.StringSliceVar(&f.stops, "stops", nil, "gradient stops, 2 to 5 colors")
	fl.BoolVar(&f.enable3D, "3d", false, "pseudo-3D depth for bar and pie charts")
	fl.IntVar(&f.depth, "depth", 0, "3D depth in pixels")
	fl.StringVar(&f.shadow, "shadow", "", "3D shadow position: "+strings.Join(lo.Map(core.ValidShadowPositions, func(p core.ShadowPosition, _ int) string { return string(p) }), ", "))
	fl.BoolVar(&f.labels, "labels", false, "print data labels")

	fl.StringVar(&f.sheet, "sheet", "", "xlsx sheet (default: first)")
	fl.StringVar(&f.table, "table", "", "sqlite table")
	fl.StringVar(&f.query, "query", "", "sqlite query, instead of --table")
}

// chartConfig resolves the effective chart options for cmd.
func (f *chartFlags) chartConfig(cmd *cobra.Command, app config.Config) (core.ChartConfig, error) {
	cfg := core.DefaultChartConfig().WithKind(app.DefaultKind)
	if f.preset != "" {
		p, err := config.LoadPreset(f.preset)
		if err != nil {
			return cfg, err
		}
		cfg = p
	}

	set := cmd.Flags().Changed
	if set("type") {
		kind := core.ParseChartKind(f.kind)
		if string(kind) != strings.ToLower(strings.TrimSpace(f.kind)) && !isKindAlias(f.kind) {
			return cfg, fmt.Errorf("unknown chart type %q", f.kind)
		}
		cfg = cfg.WithKind(kind)
	}
	if set("label") {
		cfg.LabelColumn = f.label
	}
	if set("value") {
		cfg.ValueColumn = f.value
	}
	if set("sort") {
		cfg.Sort = core.ParseSortMode(f.sort)
	}
	if set("aggregate-by") {
		cfg.AggregateBy = f.aggregateBy
	}
	if set("agg") {
		cfg.AggregateFunction = core.ParseAggregateFunc(f.agg)
	}
	if set("top") {
		cfg.TopN = f.top
	}
	if set("others") {
		cfg.GroupOthers = f.others
	}
	if set("stacked") {
		cfg.Stacked = f.stacked
	}
	if set("trendline") {
		cfg.Trendline = f.trendline
	}
	if set("log") {
		cfg.LogScale = f.logScale
	}
	if set("log-min") {
		v := f.logMin
		cfg.LogMin = &v
	}
	if set("compare") {
		cfg.CompareField = f.compare
	}
	if set("color") {
		cfg.Color = f.color
	}
	if set("gradient") {
		cfg.Gradient = f.gradient
	}
	if set("stops") {
		cfg.GradientStops = f.stops
	}
	if set("3d") {
		cfg.Enable3D = f.enable3D
	}
	if set("depth") {
		cfg.Shadow3DDepth = f.depth
	}
	if set("shadow") {
		cfg.Shadow3DPosition = core.ParseShadowPosition(f.shadow)
	}
	if set("labels") {
		cfg.ShowLabels = f.labels
	}
	return cfg.Normalize(), nil
}

func isKindAlias(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "donut", "hbar", "horizontal", "vbar", "vertical", "side-by-side", "grouped":
		return true
	}
	return false
}

func (f *chartFlags) sourceOptions() source.Options {
	return source.Options{Sheet: f.sheet, Table: f.table, Query: f.query}
}

func (f *chartFlags) load(ctx context.Context, path string) (pipeline.Input, error) {
	t, err := source.Load(ctx, path, f.sourceOptions())
	if err != nil {
		return pipeline.Input{}, err
	}
	return t.Input(), nil
}
