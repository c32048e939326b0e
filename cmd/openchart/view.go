package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/janekbaraniewski/openchart/internal/config"
	"github.com/janekbaraniewski/openchart/internal/tui"
)

func newViewCommand(app config.Config) *cobra.Command {
	var (
		flags chartFlags
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Explore a file interactively in the terminal",
		Long:  "Open the interactive chart viewer. Press ? inside the viewer for key bindings.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.chartConfig(cmd, app)
			if err != nil {
				return err
			}
			path := args[0]
			in, err := flags.load(cmd.Context(), path)
			if err != nil {
				return err
			}

			model := tui.NewModel(filepath.Base(path), in, cfg)
			model.SetPersistTheme(true)
			program := tea.NewProgram(model, tea.WithAltScreen())

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			if watch {
				debounce := time.Duration(app.Watch.DebounceMillis) * time.Millisecond
				go func() {
					err := watchFile(ctx, path, debounce, func() {
						in, err := flags.load(ctx, path)
						program.Send(tui.TableMsg{Input: in, Err: err})
					})
					if err != nil {
						log.Printf("view: %v", err)
					}
				}()
			}

			if _, err := program.Run(); err != nil {
				return fmt.Errorf("TUI error: %w", err)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload whenever the file changes")
	return cmd
}
