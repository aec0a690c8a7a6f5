package schedule

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FiredMsg is delivered to the bubbletea Update loop when a task scheduled on
// a Program is due. Pass it to Program.Handle.
type FiredMsg struct {
	ID uint64
}

// Program bridges the engine onto a bubbletea program. Deferred tasks become
// commands that resolve immediately, so the program renders once before they
// run; timers become tea.Tick commands.
//
// Program must only be used from the Update goroutine.
type Program struct {
	seq    uint64
	tasks  map[uint64]func()
	queued []tea.Cmd
}

// NewProgram creates an empty bridge.
func NewProgram() *Program {
	return &Program{tasks: make(map[uint64]func())}
}

// Defer implements Scheduler.
func (p *Program) Defer(fn func()) Cancel {
	id := p.add(fn)
	p.queued = append(p.queued, func() tea.Msg { return FiredMsg{ID: id} })
	return p.canceller(id)
}

// After implements Scheduler.
func (p *Program) After(d time.Duration, fn func()) Cancel {
	if d < 0 {
		d = 0
	}
	id := p.add(fn)
	p.queued = append(p.queued, tea.Tick(d, func(time.Time) tea.Msg { return FiredMsg{ID: id} }))
	return p.canceller(id)
}

func (p *Program) add(fn func()) uint64 {
	p.seq++
	p.tasks[p.seq] = fn
	return p.seq
}

func (p *Program) canceller(id uint64) Cancel {
	return func() { delete(p.tasks, id) }
}

// Commands drains the commands queued since the last call. Return it from
// Update alongside the model's own commands.
func (p *Program) Commands() tea.Cmd {
	if len(p.queued) == 0 {
		return nil
	}
	cmds := p.queued
	p.queued = nil
	return tea.Batch(cmds...)
}

// Handle runs the task identified by msg unless it was cancelled. It reports
// whether a task ran.
func (p *Program) Handle(msg FiredMsg) bool {
	fn, ok := p.tasks[msg.ID]
	if !ok {
		return false
	}
	delete(p.tasks, msg.ID)
	fn()
	return true
}

// Pending counts tasks that have neither run nor been cancelled.
func (p *Program) Pending() int {
	return len(p.tasks)
}

var _ Scheduler = (*Program)(nil)
