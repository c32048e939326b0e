package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/janekbaraniewski/openchart/internal/config"
	"github.com/janekbaraniewski/openchart/internal/tui"
	"github.com/janekbaraniewski/openchart/internal/version"
)

func main() {
	if os.Getenv("OPENCHART_DEBUG") != "" {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Config path: %s\n", config.ConfigPath())
		os.Exit(1)
	}
	if err := tui.LoadThemes(config.ConfigDir()); err != nil {
		log.Printf("themes: %v", err)
	}
	tui.SetThemeByName(cfg.Theme)

	if err := newRootCommand(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "openchart",
		Short:        "openchart turns tabular files into charts in the terminal or as PNG images.",
		Version:      version.String(),
		SilenceUsage: true,
	}

	root.AddCommand(newRenderCommand(cfg))
	root.AddCommand(newViewCommand(cfg))
	root.AddCommand(newInspectCommand(cfg))
	root.AddCommand(newKindsCommand())
	return root
}
