package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/janekbaraniewski/openchart/internal/core"
)

func newKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List chart kinds and the options each one supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeKinds(cmd.OutOrStdout())
		},
	}
}

func writeKinds(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	header := append([]string{"KIND", "NAME", "AXIS"}, lo.Map(core.AllFeatures, func(f core.Feature, _ int) string { return string(f) })...)
	header = append(header, "DEPTH")
	fmt.Fprintln(w, strings.Join(header, "\t"))

	for _, k := range core.ValidChartKinds {
		c := core.Capabilities(k)
		row := []string{string(k), c.DisplayName, lo.Ternary(c.IndexAxis == "", "-", c.IndexAxis)}
		for _, f := range core.AllFeatures {
			row = append(row, lo.Ternary(core.Supports(k, f), "yes", "-"))
		}
		depth := "-"
		if c.Supports3D {
			depth = fmt.Sprintf("%d-%d (%d)", c.DepthMin, c.DepthMax, c.DepthDefault)
		}
		row = append(row, depth)
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}
