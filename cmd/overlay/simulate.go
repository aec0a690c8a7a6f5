package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/overlay/internal/config"
	"github.com/alexisbeaulieu97/overlay/internal/disclosure"
	"github.com/alexisbeaulieu97/overlay/internal/engine"
	"github.com/alexisbeaulieu97/overlay/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/overlay/internal/ports"
	"github.com/alexisbeaulieu97/overlay/internal/schedule"
	"github.com/alexisbeaulieu97/overlay/internal/surface"
	"github.com/alexisbeaulieu97/overlay/internal/transition"
	"github.com/alexisbeaulieu97/overlay/internal/ui/components"
	"github.com/alexisbeaulieu97/overlay/pkg/diff"
	overlayerrors "github.com/alexisbeaulieu97/overlay/pkg/errors"
)

const defaultSettleLimit = 10 * time.Second

type simulateOptions struct {
	configPath  string
	viewport    surface.Size
	format      string
	verbose     bool
	settleLimit time.Duration
	expect      string
	update      bool
}

func newSimulateCmd(app *AppContext) *cobra.Command {
	opts := &simulateOptions{
		viewport:    surface.Size{Width: 80, Height: 24},
		settleLimit: defaultSettleLimit,
	}

	cmd := &cobra.Command{
		Use:   "simulate <step>...",
		Short: "Replay input against a widget file on a virtual clock",
		Long: `Simulate builds every widget headlessly and applies the steps in order,
printing each state and phase change with the virtual time it happened at.

Steps:
  open:ID  close:ID  toggle:ID  activate:ID
  click:X,Y  move:X,Y  key:NAME  scroll
  advance:DURATION  settle  resize:WxH`,
		Example: "  overlay simulate -c gallery.yaml click:2,1 advance:200ms key:esc settle",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, app, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Widget file (.yaml, .yml or .toml)")
	cmd.Flags().Var(sizeValue{&opts.viewport}, "viewport", "Viewport size")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Timeline format (text, json, logfmt)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Include engine diagnostics in the timeline")
	cmd.Flags().DurationVar(&opts.settleLimit, "settle-limit", defaultSettleLimit, "Longest virtual time a settle step may run")
	cmd.Flags().StringVar(&opts.expect, "expect", "", "Compare the timeline against this transcript instead of printing it")
	cmd.Flags().BoolVar(&opts.update, "update", false, "Rewrite the --expect transcript with this run's timeline")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

type stepKind string

const (
	stepOpen     stepKind = "open"
	stepClose    stepKind = "close"
	stepToggle   stepKind = "toggle"
	stepActivate stepKind = "activate"
	stepClick    stepKind = "click"
	stepMove     stepKind = "move"
	stepKey      stepKind = "key"
	stepAdvance  stepKind = "advance"
	stepSettle   stepKind = "settle"
	stepResize   stepKind = "resize"
	stepScroll   stepKind = "scroll"
)

type step struct {
	raw      string
	kind     stepKind
	id       string
	x, y     int
	key      string
	duration time.Duration
	size     surface.Size
}

// parseStep decodes one positional argument.
func parseStep(raw string) (step, error) {
	name, arg, hasArg := strings.Cut(raw, ":")
	s := step{raw: raw, kind: stepKind(name)}

	switch s.kind {
	case stepSettle, stepScroll:
		if hasArg {
			return step{}, fmt.Errorf("%s takes no argument", name)
		}
		return s, nil
	case stepOpen, stepClose, stepToggle, stepActivate:
		if arg == "" {
			return step{}, fmt.Errorf("%s needs a widget id", name)
		}
		s.id = arg
	case stepClick, stepMove:
		values, err := parseInts(arg, 2)
		if err != nil {
			return step{}, fmt.Errorf("%s: %w", name, err)
		}
		s.x, s.y = values[0], values[1]
	case stepKey:
		if arg == "" {
			return step{}, fmt.Errorf("key needs a key name")
		}
		s.key = arg
	case stepAdvance:
		d, err := time.ParseDuration(arg)
		if err != nil {
			return step{}, fmt.Errorf("advance: %w", err)
		}
		if d < 0 {
			return step{}, fmt.Errorf("advance: duration must not be negative")
		}
		s.duration = d
	case stepResize:
		var size surface.Size
		if err := (sizeValue{&size}).Set(arg); err != nil {
			return step{}, fmt.Errorf("resize: %w", err)
		}
		s.size = size
	default:
		return step{}, fmt.Errorf("unknown step %q (want one of %s)", name, stepNames())
	}
	return s, nil
}

// simulation is a headless gallery driven by a virtual clock.
type simulation struct {
	ctx      context.Context
	clock    *schedule.Manual
	engine   *engine.Engine
	widgets  *components.Set
	timeline ports.Logger
	limit    time.Duration
}

func runSimulate(cmd *cobra.Command, app *AppContext, opts *simulateOptions, args []string) error {
	ctx, log := app.CommandContext(cmd, "simulate")

	steps := make([]step, 0, len(args))
	for _, arg := range args {
		s, err := parseStep(arg)
		if err != nil {
			return overlayerrors.NewUsageError("step", err.Error())
		}
		steps = append(steps, s)
	}

	if opts.update && opts.expect == "" {
		return overlayerrors.NewUsageError("update", "requires --expect")
	}

	level := "info"
	if opts.verbose {
		level = "debug"
	}
	var out io.Writer = cmd.OutOrStdout()
	transcript := &bytes.Buffer{}
	if opts.expect != "" {
		out = transcript
	}
	timeline, err := logging.New(logging.Options{
		Writer: out,
		Level:  level,
		Format: opts.format,
		Layer:  "simulate",
	})
	if err != nil {
		return overlayerrors.NewUsageError("format", err.Error())
	}

	f, err := config.ParseConfig(opts.configPath)
	if err != nil {
		return err
	}

	// the timeline carries no session id so transcripts are reproducible
	simCtx := cmd.Context()
	if simCtx == nil {
		simCtx = context.Background()
	}
	sim, err := newSimulation(simCtx, f, opts, timeline)
	if err != nil {
		return err
	}
	defer sim.widgets.Destroy()

	log.Debug(ctx, "simulation starting", "config", opts.configPath, "steps", len(steps))
	for _, s := range steps {
		if err := sim.apply(s); err != nil {
			return overlayerrors.NewUsageError("step", fmt.Sprintf("%s: %v", s.raw, err))
		}
	}
	sim.summary()

	if opts.expect == "" {
		return nil
	}
	return checkTranscript(cmd, opts, transcript.Bytes())
}

// checkTranscript compares a captured timeline with the --expect file, or
// rewrites the file when --update is set.
func checkTranscript(cmd *cobra.Command, opts *simulateOptions, actual []byte) error {
	if opts.update {
		if err := os.WriteFile(opts.expect, actual, 0o644); err != nil {
			return fmt.Errorf("write transcript: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", opts.expect)
		return nil
	}

	expected, err := os.ReadFile(opts.expect)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}
	if d := diff.Unified(expected, actual, opts.expect, "timeline"); d != "" {
		fmt.Fprint(cmd.OutOrStdout(), d)
		return fmt.Errorf("timeline differs from %s", opts.expect)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✔ timeline matches %s\n", opts.expect)
	return nil
}

func newSimulation(ctx context.Context, f *config.File, opts *simulateOptions, timeline ports.Logger) (*simulation, error) {
	clock := schedule.NewManual()
	screen := surface.New(opts.viewport.Width, opts.viewport.Height)

	engineLog := logging.NewNoOpLogger()
	if opts.verbose {
		engineLog = timeline.With("component", "engine")
	}
	engineOpts := []engine.Option{engine.WithLogger(engineLog), engine.WithContext(ctx)}
	if f.Settings.EdgeMargin != nil {
		engineOpts = append(engineOpts, engine.WithEdgeMargin(*f.Settings.EdgeMargin))
	}
	eng := engine.New(screen, clock, engineOpts...)

	widgets, err := components.BuildAll(components.Deps{
		Engine:  eng,
		Logger:  engineLog,
		Context: ctx,
		Offset:  f.Settings.Offset,
	}, f)
	if err != nil {
		return nil, err
	}

	sim := &simulation{
		ctx:      ctx,
		clock:    clock,
		engine:   eng,
		widgets:  widgets,
		timeline: timeline,
		limit:    opts.settleLimit,
	}

	// one trigger per row pair, as the gallery page lays them out
	for i, w := range widgets.Roots {
		node := w.TriggerNode()
		screen.Root().AppendChild(node)
		node.SetRect(surface.NewRect(2, 1+2*i, components.HeaderWidth(w), 1))
	}

	for _, w := range widgets.All {
		id := w.ID()
		w.Disclosure().Subscribe(func(c disclosure.Change) {
			sim.timeline.Info(ctx, "state", "at", sim.clock.Elapsed(), "widget", id, "from", c.From.String(), "to", c.To.String())
		})
		w.Disclosure().SubscribePhase(func(c transition.PhaseChange) {
			sim.timeline.Info(ctx, "phase", "at", sim.clock.Elapsed(), "widget", id, "from", c.From.String(), "to", c.To.String())
		})
	}
	eng.Scroll()
	return sim, nil
}

func (s *simulation) widget(id string) (components.Widget, error) {
	w, ok := s.widgets.Widget(id)
	if !ok {
		return nil, fmt.Errorf("unknown widget %q", id)
	}
	return w, nil
}

// apply runs one step, then drains deferred work so the settled state is
// visible before the next step.
func (s *simulation) apply(st step) error {
	switch st.kind {
	case stepOpen, stepClose, stepToggle, stepActivate:
		w, err := s.widget(st.id)
		if err != nil {
			return err
		}
		switch st.kind {
		case stepOpen:
			w.Disclosure().RequestOpen()
		case stepClose:
			w.Disclosure().RequestClose()
		case stepToggle:
			w.Disclosure().Toggle()
		default:
			w.Activate()
		}
	case stepClick:
		s.widgets.Press(s.engine, st.x, st.y)
	case stepMove:
		s.engine.PointerMove(st.x, st.y)
	case stepKey:
		if !s.engine.Key(st.key) {
			s.widgets.HandleKey(st.key)
		}
	case stepAdvance:
		s.clock.Advance(st.duration)
	case stepSettle:
		if !s.clock.Settle(s.limit) {
			s.timeline.Warn(s.ctx, "timers still pending", "at", s.clock.Elapsed(), "pending", s.clock.Pending())
		}
	case stepResize:
		s.engine.Resize(st.size.Width, st.size.Height)
	case stepScroll:
		s.engine.Scroll()
	}
	s.clock.Flush()
	return nil
}

func (s *simulation) summary() {
	for _, w := range s.widgets.All {
		d := w.Disclosure()
		s.timeline.Info(s.ctx, "final", "widget", w.ID(), "state", d.State().String(), "phase", d.Phase().String())
	}
	s.timeline.Info(s.ctx, "done", "at", s.clock.Elapsed(), "scroll_locks", s.engine.ScrollLock().Count())
}

// stepNames lists the accepted step verbs, for error messages.
func stepNames() string {
	names := []string{
		string(stepOpen), string(stepClose), string(stepToggle), string(stepActivate),
		string(stepClick), string(stepMove), string(stepKey), string(stepScroll),
		string(stepAdvance), string(stepSettle), string(stepResize),
	}
	return strings.Join(names, ", ")
}
