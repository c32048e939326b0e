package colors

// SeriesPalette holds the colors given to secondary series.
var SeriesPalette = []string{
	"#2563eb", // blue
	"#f97316", // orange
	"#10b981", // emerald
	"#ef4444", // red
	"#8b5cf6", // violet
	"#06b6d4", // cyan
	"#eab308", // yellow
	"#ec4899", // pink
	"#84cc16", // lime
	"#64748b", // slate
}

// TrendColor is used for fitted trendlines.
const TrendColor = "#f43f5e"

// SeriesColor returns the color for a given series index, cycling through the palette.
func SeriesColor(index int) string {
	if index < 0 {
		index = -index
	}
	return SeriesPalette[index%len(SeriesPalette)]
}

// Contrasting picks the palette entry at offset from base's position, so a
// compare series never reuses the primary color.
func Contrasting(base string, offset int) string {
	b, err := Parse(base)
	if err != nil {
		return SeriesColor(offset)
	}
	for i, s := range SeriesPalette {
		if p, err := Parse(s); err == nil && p == b {
			return SeriesColor(i + offset)
		}
	}
	return SeriesColor(offset)
}
