package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/overlay/internal/config"
)

type validateOptions struct {
	jsonOutput bool
	quiet      bool
}

func newValidateCmd(app *AppContext) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <widget-file>...",
		Short: "Check widget files without running them",
		Long: `Validate parses each YAML or TOML widget file, applies kind defaults and
checks every rule the gallery enforces. It exits with code 3 if any file is
invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, log := app.CommandContext(cmd, "validate")
			err := runValidate(cmd, opts, args)
			if err != nil {
				log.Error(ctx, "validation failed", "error", err)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Only report failures")

	return cmd
}

type validateJSONWidget struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Trigger  string `json:"trigger"`
	Position string `json:"position"`
	Parent   string `json:"parent,omitempty"`
}

type validateJSONFile struct {
	Path    string               `json:"path"`
	Valid   bool                 `json:"valid"`
	Error   string               `json:"error,omitempty"`
	Widgets []validateJSONWidget `json:"widgets,omitempty"`
}

func runValidate(cmd *cobra.Command, opts *validateOptions, paths []string) error {
	var errs []error
	results := make([]validateJSONFile, 0, len(paths))

	for _, path := range paths {
		f, err := config.ParseConfig(path)
		result := validateJSONFile{Path: path, Valid: err == nil}
		if err != nil {
			result.Error = err.Error()
			errs = append(errs, err)
		} else {
			for _, w := range f.Widgets {
				result.Widgets = append(result.Widgets, validateJSONWidget{
					ID:       w.ID,
					Kind:     string(w.Kind),
					Trigger:  w.Trigger,
					Position: w.Position,
					Parent:   w.Parent,
				})
			}
		}
		results = append(results, result)
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
	} else if err := renderValidateTable(cmd, opts, results); err != nil {
		return err
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d files invalid: %w", len(errs), len(paths), errors.Join(errs...))
	}
	return nil
}

func renderValidateTable(cmd *cobra.Command, opts *validateOptions, results []validateJSONFile) error {
	out := cmd.OutOrStdout()
	for _, r := range results {
		if !r.Valid {
			fmt.Fprintf(out, "✖ %s\n  %s\n", r.Path, r.Error)
			continue
		}
		if opts.quiet {
			continue
		}
		fmt.Fprintf(out, "✔ %s (%d widgets)\n", r.Path, len(r.Widgets))

		writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(writer, "  ID\tKIND\tTRIGGER\tPOSITION\tPARENT")
		for _, w := range r.Widgets {
			fmt.Fprintf(writer, "  %s\t%s\t%s\t%s\t%s\n", w.ID, w.Kind, w.Trigger, w.Position, valueOrDash(w.Parent))
		}
		if err := writer.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func valueOrDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
