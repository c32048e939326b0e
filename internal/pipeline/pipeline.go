package pipeline

import (
	"fmt"
	"log"

	"github.com/janekbaraniewski/openchart/internal/colors"
	"github.com/janekbaraniewski/openchart/internal/core"
	"github.com/samber/lo"
)

// Result is the output of one pipeline run. Advisories are non-blocking
// messages about options that were ignored.
type Result struct {
	Dataset     core.Dataset
	Config      core.ChartConfig
	LabelColumn string
	ValueColumn string
	Advisories  []string
}

// Run executes every stage for one render pass: coercion and aggregation,
// sorting, trendline, color resolution, log-scale guarding and capability
// filtering. It never fails; problems degrade to the nearest safe default.
func Run(in Input, cfg core.ChartConfig) Result {
	cfg = cfg.Normalize()
	caps := core.Capabilities(cfg.Type)
	res := Result{Config: cfg}
	advise := func(f core.Feature) {
		msg := core.UnsupportedAdvisory(cfg.Type, f)
		log.Printf("pipeline: %s", msg)
		res.Advisories = append(res.Advisories, msg)
	}

	res.LabelColumn, res.ValueColumn = PickColumns(in, cfg.LabelColumn, cfg.ValueColumn)
	res.Dataset = core.Dataset{
		Kind: cfg.Type,
		Options: core.DatasetOptions{
			IndexAxis: caps.IndexAxis,
		},
	}

	compareCol := ""
	if cfg.CompareField != "" {
		switch {
		case !caps.SupportsCompare:
			advise(core.FeatureCompare)
		case !lo.Contains(in.Columns, cfg.CompareField):
			res.Advisories = append(res.Advisories, fmt.Sprintf("Compare field %q not found", cfg.CompareField))
		default:
			compareCol = cfg.CompareField
		}
	}
	if cfg.Trendline && !caps.SupportsTrendline {
		advise(core.FeatureTrendline)
	}
	if cfg.Gradient && !caps.SupportsGradient {
		advise(core.FeatureGradient)
	}
	if cfg.LogScale && !caps.SupportsLogScale {
		advise(core.FeatureLogScale)
	}
	if cfg.Stacked && !caps.SupportsStacking {
		advise(core.FeatureStacking)
	}
	if cfg.ShowLabels && !caps.SupportsLabels {
		advise(core.FeatureLabels)
	}
	if cfg.Enable3D && !caps.Supports3D {
		advise(core.Feature3D)
	}

	if res.ValueColumn == "" || len(in.Rows) == 0 {
		if res.ValueColumn == "" && len(in.Rows) > 0 {
			res.Advisories = append(res.Advisories, "No numeric column to plot")
		}
		res.Dataset.Empty = true
		return res
	}

	if cfg.AggregateBy != "" && !lo.Contains(in.Columns, cfg.AggregateBy) {
		res.Advisories = append(res.Advisories, fmt.Sprintf("Aggregate column %q not found", cfg.AggregateBy))
		cfg.AggregateBy = ""
	}

	series, compare := shape(in.Rows, res.LabelColumn, res.ValueColumn, compareCol, cfg)
	moved := [][]float64{compare}
	series, moved = SortSeries(series, cfg.Sort, moved...)
	compare = moved[0]

	if series.Len() == 0 {
		res.Dataset.Empty = true
		return res
	}

	ds := &res.Dataset
	ds.Labels = series.Labels
	pointColors := colors.Ramp(cfg.Color, cfg.Gradient && caps.SupportsGradient, cfg.GradientStops, series.Len())
	ds.Series = append(ds.Series, core.DatasetSeries{
		Label:       res.ValueColumn,
		Role:        core.RolePrimary,
		Values:      series.Values,
		Raw:         series.Raw,
		Color:       baseColor(cfg.Color),
		PointColors: pointColors,
	})
	if compareCol != "" {
		ds.Series = append(ds.Series, core.DatasetSeries{
			Label:  compareCol,
			Role:   core.RoleCompare,
			Values: compare,
			Color:  colors.Contrasting(cfg.Color, 1),
		})
	}
	if cfg.Trendline && caps.SupportsTrendline {
		if fitted := Trendline(series.Values); fitted != nil {
			ds.Series = append(ds.Series, core.DatasetSeries{
				Label:  "Trend",
				Role:   core.RoleTrend,
				Values: fitted,
				Color:  colors.TrendColor,
			})
		}
	}

	if cfg.LogScale && caps.SupportsLogScale {
		ds.Options.LogScale = true
		ds.Options.LogFloor = LogFloor(cfg.LogMin)
		for i := range ds.Series {
			ds.Series[i].Values, ds.Series[i].Original = GuardLog(ds.Series[i].Values, cfg.LogMin)
		}
	}
	ds.Options.Stacked = caps.SupportsStacking && (caps.DefaultStacked || cfg.Stacked)
	ds.Options.Labels = caps.SupportsLabels && cfg.ShowLabels
	return res
}

// shape produces the pre-sort series: aggregated buckets when a group-by
// column or top-N is configured, one point per row otherwise.
func shape(rows []core.Row, labelCol, valueCol, compareCol string, cfg core.ChartConfig) (core.Series, []float64) {
	by := cfg.AggregateBy
	if by == "" && cfg.TopN > 0 {
		by = labelCol
	}
	if by == "" {
		s := BuildSeries(rows, labelCol, valueCol)
		var compare []float64
		if compareCol != "" {
			compare = ColumnValues(rows, compareCol)
		}
		return s, compare
	}

	buckets := Aggregate(rows, by, valueCol, compareCol, cfg.AggregateFunction)
	buckets = TopN(buckets, cfg.TopN, cfg.GroupOthers, cfg.AggregateFunction)
	s, compare := BucketSeries(buckets)
	if compareCol == "" {
		compare = nil
	}
	return s, compare
}

func baseColor(c string) string {
	if _, err := colors.Parse(c); err != nil {
		return colors.Fallback
	}
	return c
}
