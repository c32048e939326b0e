package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/janekbaraniewski/openchart/internal/config"
	"github.com/janekbaraniewski/openchart/internal/pipeline"
	"github.com/janekbaraniewski/openchart/internal/raster"
	"github.com/janekbaraniewski/openchart/internal/tui"
)

type renderOptions struct {
	png    string
	width  int
	height int
	watch  bool
}

func newRenderCommand(app config.Config) *cobra.Command {
	var (
		flags chartFlags
		opts  renderOptions
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Draw a chart in the terminal or export it as PNG",
		Long: "Load a CSV, XLSX or SQLite file, run it through the chart pipeline and draw it.\n" +
			"With --png the chart is rasterized to an image instead.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.chartConfig(cmd, app)
			if err != nil {
				return err
			}
			path := args[0]
			draw := func(ctx context.Context) error {
				in, err := flags.load(ctx, path)
				if err != nil {
					return err
				}
				res := pipeline.Run(in, cfg)
				return writeChart(cmd.OutOrStdout(), cmd.ErrOrStderr(), res, app, opts)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := draw(ctx); err != nil {
				return err
			}
			if !opts.watch {
				return nil
			}
			debounce := time.Duration(app.Watch.DebounceMillis) * time.Millisecond
			return watchFile(ctx, path, debounce, func() {
				if err := draw(ctx); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "render: %v\n", err)
				}
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&opts.png, "png", "o", "", "write a PNG image to this path")
	cmd.Flags().IntVar(&opts.width, "width", 0, "output width (pixels with --png, cells otherwise)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "output height (pixels with --png, rows otherwise)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "redraw whenever the file changes")
	return cmd
}

// writeChart sends one pipeline result to its destination. Advisories go to
// errOut so piped terminal output stays clean.
func writeChart(out, errOut io.Writer, res pipeline.Result, app config.Config, opts renderOptions) error {
	for _, a := range res.Advisories {
		fmt.Fprintf(errOut, "note: %s\n", a)
	}

	if opts.png != "" {
		frame, err := raster.Render(res.Dataset, res.Config, raster.Options{
			Width:      firstPositive(opts.width, app.Canvas.Width),
			Height:     firstPositive(opts.height, app.Canvas.Height),
			Background: app.Canvas.Background,
		})
		if err != nil {
			return err
		}
		if err := raster.WritePNG(opts.png, frame.Canvas.Image()); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s (%d depth layers)\n", opts.png, frame.Depth.Len())
		return nil
	}

	w := firstPositive(opts.width, app.Terminal.Width)
	h := firstPositive(opts.height, app.Terminal.Height)
	_, err := fmt.Fprintln(out, tui.RenderDataset(res.Dataset, res.Config, w, h))
	return err
}

func firstPositive(vals ...int) int {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}
