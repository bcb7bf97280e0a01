// Package app runs the interactive loop: it owns the terminal for the
// lifetime of Run, feeds key events through the input machine into the
// session and redraws after every change.
package app

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tictactui/engine"
	"github.com/lixenwraith/tictactui/input"
	"github.com/lixenwraith/tictactui/render"
)

var ErrScreenInit = errors.New("terminal initialization failed")

// Cues receives the audible feedback for session outcomes
type Cues interface {
	PlayPlace()
	PlayWin()
	PlayDraw()
}

type App struct {
	screen  tcell.Screen
	session *engine.Session
	machine *input.Machine
	cues    Cues
	log     zerolog.Logger
}

type Option func(*App)

// WithCues plays audio for placed marks and finished games
func WithCues(c Cues) Option {
	return func(a *App) { a.cues = c }
}

// WithLogger sets the logger for lifecycle and intent events
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithKeyTable replaces the default key bindings
func WithKeyTable(kt *input.KeyTable) Option {
	return func(a *App) { a.machine = input.NewMachineWithTable(kt) }
}

// New creates an app drawing on screen. The screen is initialized by Run.
func New(screen tcell.Screen, opts ...Option) *App {
	a := &App{
		screen:  screen,
		session: engine.NewSession(),
		machine: input.NewMachine(),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Snapshot returns the current session state
func (a *App) Snapshot() engine.Snapshot {
	return a.session.Snapshot()
}

// Run takes over the terminal until the player quits or the event stream
// ends. The terminal is restored on every return path, panics included.
func (a *App) Run() error {
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("%w: %w", ErrScreenInit, err)
	}
	defer a.screen.Fini()

	a.log.Info().Msg("session started")
	a.draw()

	for {
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			a.log.Info().Msg("event stream closed")
			return nil
		case *tcell.EventError:
			a.log.Warn().Err(ev).Msg("terminal event error")
			return nil
		case *tcell.EventResize:
			a.screen.Sync()
			a.draw()
		case *tcell.EventKey:
			if !a.handleKey(ev) {
				a.log.Info().Msg("quit")
				return nil
			}
		}
	}
}

// handleKey applies one key press, returning false on quit
func (a *App) handleKey(ev *tcell.EventKey) bool {
	intent := a.machine.Process(ev)
	switch intent.Type {
	case input.IntentQuit:
		return false
	case input.IntentNone:
		return true
	}

	outcome := a.session.Apply(intent)
	state := a.session.State()
	a.log.Debug().
		Stringer("intent", intent).
		Stringer("outcome", outcome).
		Stringer("state", state).
		Msg("intent applied")

	a.cue(outcome)
	switch outcome {
	case engine.OutcomeWon, engine.OutcomeDrew:
		a.log.Info().Stringer("state", state).Msg("game over")
	case engine.OutcomeRestarted:
		a.log.Info().Msg("game restarted")
	}

	if outcome != engine.OutcomeIgnored {
		a.draw()
	}
	return true
}

func (a *App) cue(o engine.Outcome) {
	if a.cues == nil {
		return
	}
	switch o {
	case engine.OutcomePlaced:
		a.cues.PlayPlace()
	case engine.OutcomeWon:
		a.cues.PlayWin()
	case engine.OutcomeDrew:
		a.cues.PlayDraw()
	}
}

func (a *App) draw() {
	render.Present(a.screen, render.Render(a.session.Snapshot()))
}
