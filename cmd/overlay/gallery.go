package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/overlay/internal/config"
	"github.com/alexisbeaulieu97/overlay/internal/tui"
	"github.com/alexisbeaulieu97/overlay/internal/ui/components"
	overlayerrors "github.com/alexisbeaulieu97/overlay/pkg/errors"
)

type galleryOptions struct {
	configPath string
	theme      string
	noMouse    bool
	inline     bool
}

var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newGalleryCmd(app *AppContext) *cobra.Command {
	opts := &galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Run the interactive widget gallery",
		Long: `Gallery renders every widget in a widget file on one scrollable page.
Click or tab to a trigger to open it; escape and outside clicks dismiss.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Widget file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&opts.theme, "theme", "default", fmt.Sprintf("Theme (%s)", strings.Join(components.ThemeNames(), ", ")))
	cmd.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "Disable mouse input")
	cmd.Flags().BoolVar(&opts.inline, "inline", false, "Render inline instead of on the alternate screen")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runGallery(cmd *cobra.Command, app *AppContext, opts *galleryOptions) error {
	ctx, log := app.CommandContext(cmd, "gallery")

	theme, ok := components.ThemeByName(opts.theme)
	if !ok {
		return overlayerrors.NewUsageError("theme", fmt.Sprintf("unknown theme %q (want one of %s)", opts.theme, strings.Join(components.ThemeNames(), ", ")))
	}
	if !isInteractive() {
		return overlayerrors.NewUsageError("", "gallery needs an interactive terminal; use 'overlay simulate' for scripted runs")
	}

	f, err := config.ParseConfig(opts.configPath)
	if err != nil {
		return err
	}

	model, err := tui.NewModel(ctx, f, tui.Options{
		Theme:      theme,
		Offset:     f.Settings.Offset,
		EdgeMargin: f.Settings.EdgeMargin,
		Level:      f.Settings.LogLevel,
	})
	if err != nil {
		return err
	}
	defer model.Close()

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if !opts.inline {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if !opts.noMouse {
		programOpts = append(programOpts, tea.WithMouseAllMotion())
	}

	log.Info(ctx, "launching gallery", "config", opts.configPath, "widgets", len(f.Widgets))
	_, runErr := tea.NewProgram(model, programOpts...).Run()

	// replay the session's engine diagnostics into the process log
	model.Events().Flush(log)
	if runErr != nil {
		log.Error(ctx, "gallery execution failed", "error", runErr)
		return fmt.Errorf("failed to run gallery: %w", runErr)
	}
	log.Info(ctx, "gallery closed")
	return nil
}
