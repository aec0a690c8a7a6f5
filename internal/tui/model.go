// Package tui hosts the interactive widget gallery: a bubbletea program that
// feeds terminal input into the overlay engine and paints floating widgets
// over a scrollable page.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/overlay/internal/config"
	"github.com/alexisbeaulieu97/overlay/internal/engine"
	"github.com/alexisbeaulieu97/overlay/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/overlay/internal/ports"
	"github.com/alexisbeaulieu97/overlay/internal/schedule"
	"github.com/alexisbeaulieu97/overlay/internal/surface"
	"github.com/alexisbeaulieu97/overlay/internal/ui/components"
)

const (
	defaultTitle = "Overlay gallery"

	// page rows start under the title line
	pageTop    = 1
	pageIndent = 2
	eventLines = 3
	// rule plus event lines
	eventPaneHeight = eventLines + 1
	footerHeight    = 1
)

// Options configures a gallery model.
type Options struct {
	Theme  components.Theme
	Offset int
	// EdgeMargin overrides the placement edge margin when set.
	EdgeMargin *int
	// Events receives engine diagnostics; a buffer is created when nil.
	Events *logging.EventBuffer
	// Level filters what reaches Events; empty means debug.
	Level string
	// Width and Height size the screen until the first WindowSizeMsg.
	Width, Height int
}

// Model is the gallery's bubbletea state. The engine and widgets are shared
// by every copy of the model.
type Model struct {
	ctx     context.Context
	title   string
	engine  *engine.Engine
	program *schedule.Program
	widgets *components.Set
	events  *logging.EventBuffer
	logger  ports.Logger

	page viewport.Model
	help help.Model
	keys KeyMap

	width    int
	height   int
	quitting bool
}

// NewModel builds the engine and every widget in file.
func NewModel(ctx context.Context, file *config.File, opts Options) (Model, error) {
	if file == nil {
		return Model{}, fmt.Errorf("gallery needs a configuration")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}
	if opts.Events == nil {
		opts.Events = logging.NewEventBuffer(0)
	}
	level := cblog.DebugLevel
	if opts.Level != "" {
		parsed, err := logging.ParseLevel(opts.Level)
		if err != nil {
			return Model{}, err
		}
		level = parsed
	}

	logger := logging.NewBufferedLogger(opts.Events, level)
	program := schedule.NewProgram()
	screen := surface.New(opts.Width, opts.Height)

	engineOpts := []engine.Option{engine.WithLogger(logger), engine.WithContext(ctx)}
	if opts.EdgeMargin != nil {
		engineOpts = append(engineOpts, engine.WithEdgeMargin(*opts.EdgeMargin))
	}
	eng := engine.New(screen, program, engineOpts...)

	widgets, err := components.BuildAll(components.Deps{
		Engine:  eng,
		Theme:   opts.Theme,
		Logger:  logger,
		Context: ctx,
		Offset:  opts.Offset,
	}, file)
	if err != nil {
		return Model{}, err
	}
	for _, w := range widgets.Roots {
		screen.Root().AppendChild(w.TriggerNode())
	}

	title := file.Title
	if title == "" {
		title = defaultTitle
	}

	m := Model{
		ctx:     ctx,
		title:   title,
		engine:  eng,
		program: program,
		widgets: widgets,
		events:  opts.Events,
		logger:  logger.With("component", "gallery"),
		page:    viewport.New(opts.Width, 1),
		help:    help.New(),
		keys:    DefaultKeyMap(),
	}
	m.resize(opts.Width, opts.Height)
	m.logger.Info(ctx, "gallery ready", "widgets", len(widgets.All))
	return m, nil
}

// Init sets the terminal title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

// Engine exposes the overlay engine driving the gallery.
func (m Model) Engine() *engine.Engine {
	return m.engine
}

// Widgets returns every widget in the gallery.
func (m Model) Widgets() *components.Set {
	return m.widgets
}

// Events returns the diagnostics buffer.
func (m Model) Events() *logging.EventBuffer {
	return m.events
}

// Close destroys every widget.
func (m Model) Close() {
	m.widgets.Destroy()
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.page.Width = width
	m.page.Height = max(1, height-pageTop-eventPaneHeight-footerHeight)
	m.help.Width = width
	m.engine.Resize(width, height)
	m.layout()
}

// layout renders the page and moves every root trigger node to the cell its
// widget occupies on screen. Triggers scrolled out of the page get an empty
// rectangle so they cannot be hit.
func (m *Model) layout() {
	var lines []string
	starts := make([]int, len(m.widgets.Roots))
	for i, w := range m.widgets.Roots {
		starts[i] = len(lines)
		for _, line := range strings.Split(w.View(), "\n") {
			lines = append(lines, strings.Repeat(" ", pageIndent)+line)
		}
		lines = append(lines, "")
	}
	m.page.SetContent(strings.Join(lines, "\n"))

	moved := false
	for i, w := range m.widgets.Roots {
		y := pageTop + starts[i] - m.page.YOffset
		width := components.HeaderWidth(w)
		if y < pageTop || y >= pageTop+m.page.Height {
			width = 0
		}
		rect := surface.NewRect(pageIndent, y, width, 1)
		if old, _ := w.TriggerNode().Rect(); old != rect {
			w.TriggerNode().SetRect(rect)
			moved = true
		}
	}
	if moved {
		m.engine.Scroll()
	}
}
