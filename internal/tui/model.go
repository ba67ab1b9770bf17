// Package tui implements the live dashboard behind `rsa4096 benchmark
// --tui`: a bubbletea program that streams sweep results into a table as
// they complete, with a duration sparkline and a spinner while engines are
// still running.
package tui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/clipresent"
	"github.com/agbru/rsa4096/internal/orchestration"
	"github.com/agbru/rsa4096/internal/telemetry"
)

// ResultMsg carries one completed sweep result into the model.
type ResultMsg struct {
	Result orchestration.Result
}

// SweepDoneMsg signals that every case finished, carrying the exit code
// AnalyzeAgreement assigned to the sweep.
type SweepDoneMsg struct {
	ExitCode   int
	Mismatches []orchestration.Mismatch
}

// MemStatsMsg carries a periodic process memory sample.
type MemStatsMsg telemetry.MemorySnapshot

// TickMsg drives the periodic memory sampling.
type TickMsg time.Time

// KeyMap defines the dashboard's key bindings.
type KeyMap struct {
	Quit key.Binding
	Help key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Quit, k.Help} }

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Quit, k.Help}} }

// programRef lets the sweep goroutine Send messages into a program that is
// constructed after the model.
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Model is the root bubbletea model for the benchmark dashboard.
type Model struct {
	keymap  KeyMap
	help    help.Model
	spin    spinner.Model
	rows    []orchestration.Result
	samples *RingBuffer
	mem     telemetry.MemorySnapshot

	total      int
	done       bool
	exitCode   int
	mismatches []orchestration.Mismatch
	width      int
	showHelp   bool
	startTime  time.Time
	elapsed    time.Duration

	cancel context.CancelFunc
}

// NewModel creates the dashboard model for a sweep of total results.
func NewModel(total int, cancel context.CancelFunc) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		spin:      sp,
		samples:   NewRingBuffer(64),
		total:     total,
		exitCode:  apperrors.ExitSuccess,
		startTime: time.Now(),
		cancel:    cancel,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, tickCmd())
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Help):
			m.showHelp = !m.showHelp
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case ResultMsg:
		m.rows = append(m.rows, msg.Result)
		if msg.Result.Err == nil {
			m.samples.Push(float64(msg.Result.Duration.Microseconds()))
		}
		return m, nil

	case SweepDoneMsg:
		m.done = true
		m.exitCode = msg.ExitCode
		m.mismatches = msg.Mismatches
		m.elapsed = time.Since(m.startTime)
		return m, tea.Quit

	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tea.Batch(sampleMemCmd(), tickCmd())

	case MemStatsMsg:
		m.mem = telemetry.MemorySnapshot(msg)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	var body string

	status := fmt.Sprintf("%s running %d/%d", m.spin.View(), len(m.rows), m.total)
	if m.done {
		status = okStyle.Render(fmt.Sprintf("done in %s", clipresent.FormatExecutionDuration(m.elapsed)))
	}
	body += headerStyle.Render("rsa4096 benchmark") + "  " + status + "\n\n"

	for _, r := range m.rows {
		line := fmt.Sprintf("%-24s %-11s %-8d", r.CaseLabel, engineStyle.Render(r.Engine), r.BitLen)
		if r.Err != nil {
			line += errStyle.Render(fmt.Sprintf("error: %v", r.Err))
		} else {
			line += durationStyle.Render(clipresent.FormatExecutionDuration(r.Duration))
		}
		body += line + "\n"
	}

	if m.samples.Len() > 0 {
		body += "\n" + sparklineStyle.Render(RenderSparkline(m.samples.Slice())) + "\n"
	}
	body += footerStyle.Render(fmt.Sprintf("heap %.1f MiB  gc %d",
		float64(m.mem.HeapAlloc)/(1024*1024), m.mem.NumGC)) + "\n"

	for _, mm := range m.mismatches {
		body += errStyle.Render("MISMATCH "+mm.String()) + "\n"
	}

	view := panelStyle.Render(body)
	if m.showHelp {
		view = lipgloss.JoinVertical(lipgloss.Left, view, m.help.View(m.keymap))
	} else {
		view = lipgloss.JoinVertical(lipgloss.Left, view, footerStyle.Render("q quit  ? help"))
	}
	return view
}

// Run executes a sweep under the dashboard and returns the exit code: the
// sweep's own agreement verdict, or ExitErrorGeneric if the terminal could
// not be driven.
func Run(parent context.Context, engines []orchestration.Engine, cases []orchestration.Case) int {
	initTUIStyles()

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	ref := &programRef{}
	model := NewModel(len(cases)*len(engines), cancel)

	p := tea.NewProgram(model, tea.WithAltScreen())
	ref.SetProgram(p)

	go func() {
		results := orchestration.ExecuteSweep(ctx, engines, cases, orchestration.ReporterFunc(func(r orchestration.Result) {
			ref.Send(ResultMsg{Result: r})
		}))
		code, mismatches := orchestration.AnalyzeAgreement(results)
		ref.Send(SweepDoneMsg{ExitCode: code, Mismatches: mismatches})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// tickCmd schedules the next memory sample.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemCmd reads process memory statistics off the UI goroutine.
func sampleMemCmd() tea.Cmd {
	return func() tea.Msg {
		return MemStatsMsg(telemetry.Snapshot())
	}
}
