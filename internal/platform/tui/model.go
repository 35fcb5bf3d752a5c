package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/matrix-snake/internal/config"
	"github.com/vovakirdan/matrix-snake/internal/core"
	"github.com/vovakirdan/matrix-snake/internal/display"
	"github.com/vovakirdan/matrix-snake/internal/input"
	"github.com/vovakirdan/matrix-snake/internal/registry"
	"github.com/vovakirdan/matrix-snake/internal/storage"
)

// Model is the Bubble Tea model of the emulated device.
//
// Every tick takes one stick sample. A full sample window becomes one
// engine step. While a banner or flash plays, input is ignored and the
// engine is not stepped.
type Model struct {
	game     registry.Game
	seed     int64
	store    *storage.Store
	logger   *log.Logger
	matrix   *display.Matrix
	stick    *input.KeyStick
	sampler  *input.Sampler
	timing   display.Timing
	interval time.Duration

	anim    *display.Animation
	elapsed time.Duration // time into anim

	stats    *sessionStats
	keys     KeyMap
	help     help.Model
	width    int
	quitting bool
}

// sessionStats counts what happened since the device was switched on.
type sessionStats struct {
	steps  int
	wins   int
	deaths int
	resets int
	last   core.GameResult
}

// NewModel creates a device model around game. store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg config.Config, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	th := input.Thresholds{Center: cfg.Input.Center, Quarter: cfg.Input.Threshold}

	m := Model{
		game:     game,
		seed:     cfg.Seed,
		store:    store,
		logger:   logger,
		matrix:   display.ForGrid(game.Grid()),
		stick:    input.NewKeyStick(th, 1),
		sampler:  input.NewSampler(cfg.Input.SamplesPerStep, th),
		timing:   timingFrom(cfg.Animation),
		interval: cfg.Input.SampleInterval,
		stats:    &sessionStats{},
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	display.Redraw(m.matrix, game)
	return m
}

func timingFrom(a config.AnimationConfig) display.Timing {
	return display.Timing{
		FirstFrame: a.FirstFrame,
		Frame:      a.Frame,
		FinalHold:  a.FinalHold,
		Flash:      a.Flash,
		Flashes:    a.Flashes,
	}
}

// Init starts the sampling loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("device started", "variant", m.game.ID(), "grid", m.game.Grid(), "seed", m.seed)
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.tick()
		return m, tickCmd(m.interval)
	}

	return m, nil
}

// handleKey moves the emulated stick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Shot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	// The device does not read the stick during animations.
	if m.anim != nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.stick.Deflect(core.Up)
	case key.Matches(msg, m.keys.Down):
		m.stick.Deflect(core.Down)
	case key.Matches(msg, m.keys.Left):
		m.stick.Deflect(core.Left)
	case key.Matches(msg, m.keys.Right):
		m.stick.Deflect(core.Right)
	case key.Matches(msg, m.keys.Press):
		m.stick.Click()
	}
	return m, nil
}

// tick advances the animation or takes one sample.
func (m *Model) tick() {
	if m.anim != nil {
		m.elapsed += m.interval
		m.showFrame()
		return
	}

	if !m.sampler.Add(m.stick.Read()) {
		return
	}

	cmd := m.sampler.Command()
	res := m.game.Step(cmd)
	m.stats.steps++
	m.stats.last = res
	m.logger.Debug("step", "command", cmd, "result", res)

	switch res {
	case core.Continue:
		display.Apply(m.matrix, m.game)
		return
	case core.Died:
		m.stats.deaths++
		m.play(display.Lose(m.timing))
	case core.Won:
		m.stats.wins++
		m.play(display.Win(m.timing))
	case core.Restarting:
		m.stats.resets++
		m.play(display.RestartFlash(m.timing))
	}
	m.recordRound()
}

// play starts an animation on its first frame.
func (m *Model) play(a *display.Animation) {
	m.logger.Info("animation", "name", a.Name(), "duration", a.Duration())
	m.anim = a
	m.elapsed = 0
	m.showFrame()
}

// showFrame paints the frame due now. At the end of the animation the
// matrix is cleared and the fresh round is drawn.
func (m *Model) showFrame() {
	f, done := m.anim.FrameAt(m.elapsed)
	if done {
		m.anim = nil
		m.elapsed = 0
		display.Redraw(m.matrix, m.game)
		return
	}
	f.Paint(m.matrix)
}

// recordRound writes the finished round to the journal. Failures are
// logged and play continues.
func (m *Model) recordRound() {
	sum, ok := m.game.LastRound()
	if !ok {
		return
	}
	m.logger.Info("round over",
		"round", sum.Round,
		"outcome", sum.Outcome,
		"length", sum.Length,
		"steps", sum.Steps,
		"eaten", sum.Eaten,
	)
	if m.store == nil {
		return
	}
	if _, err := m.store.RecordRound(storage.NewRoundRecord(m.game.ID(), m.seed, sum)); err != nil {
		m.logger.Warn("journal write failed", "err", err)
	}
}

// Animating reports whether a banner or flash is playing.
func (m Model) Animating() bool {
	return m.anim != nil
}

// Matrix returns the emulated LED matrix.
func (m Model) Matrix() *display.Matrix {
	return m.matrix
}

// Steps returns the number of engine steps taken.
func (m Model) Steps() int {
	return m.stats.steps
}

// LastResult returns the outcome of the most recent step.
func (m Model) LastResult() core.GameResult {
	return m.stats.last
}

// saveScreenshot writes the matrix as text under ~/.snake/screenshots.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return path, os.WriteFile(path, []byte(m.matrix.String('#', '.')), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg config.Config, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
