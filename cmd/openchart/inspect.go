package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/janekbaraniewski/openchart/internal/config"
	"github.com/janekbaraniewski/openchart/internal/core"
	"github.com/janekbaraniewski/openchart/internal/pipeline"
)

type inspectOutput struct {
	LabelColumn string           `json:"label_column"`
	ValueColumn string           `json:"value_column"`
	Config      core.ChartConfig `json:"config"`
	Dataset     core.Dataset     `json:"dataset"`
	Advisories  []string         `json:"advisories"`
}

func newInspectCommand(app config.Config) *cobra.Command {
	var flags chartFlags

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the render-ready dataset as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.chartConfig(cmd, app)
			if err != nil {
				return err
			}
			in, err := flags.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeInspect(cmd.OutOrStdout(), pipeline.Run(in, cfg))
		},
	}

	flags.register(cmd)
	return cmd
}

func writeInspect(w io.Writer, res pipeline.Result) error {
	out := inspectOutput{
		LabelColumn: res.LabelColumn,
		ValueColumn: res.ValueColumn,
		Config:      res.Config,
		Dataset:     res.Dataset,
		Advisories:  res.Advisories,
	}
	if out.Advisories == nil {
		out.Advisories = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
