package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var tooSmallStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// Model is the Bubble Tea model for a tetris session. Gravity ticks and key
// presses both arrive through Update, so the engine is only ever touched from
// the Bubble Tea event loop.
type Model struct {
	engine  *tetris.Engine
	ruleset config.RulesetConfig
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	screen  *core.Screen
	logger  *log.Logger
	session string

	gen        uint64 // generation of the live gravity timer
	width      int
	height     int
	quitting   bool
	overLogged bool
	autoPaused bool // paused because the terminal got too small
}

// NewModel creates a model running the given ruleset.
func NewModel(rs config.RulesetConfig, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.ShowAll = false

	m := Model{
		ruleset: rs,
		config:  cfg,
		keys:    DefaultKeyMap(rs.Controls.UpRotatesCW()),
		help:    h,
		logger:  logger,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	if err := m.newGame(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newGame builds a fresh engine and session. A zero seed is replaced with
// one taken from the clock.
func (m *Model) newGame() error {
	seed := m.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ec, err := m.ruleset.ToEngine(seed)
	if err != nil {
		return err
	}
	e, err := tetris.New(ec)
	if err != nil {
		return err
	}

	m.engine = e
	w, h := layoutSize(e.Width(), e.Height())
	if m.screen == nil {
		m.screen = core.NewScreen(w, h)
	} else {
		m.screen.Resize(w, h)
	}
	m.session = uuid.NewString()
	m.overLogged = false
	m.autoPaused = false
	if m.tooSmall() {
		e.TogglePause()
		m.autoPaused = true
	}
	m.keys.Restart.SetEnabled(false)
	m.logger.Info("game started",
		"session", m.session,
		"ruleset", m.ruleset.Name,
		"seed", seed,
		"interval", e.TickInterval(),
	)
	return nil
}

// Init starts the gravity timer unless the game starts paused.
func (m Model) Init() tea.Cmd {
	if m.engine.Paused() {
		return nil
	}
	return tickCmd(m.engine.TickInterval(), m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m.fitPause()

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch act := m.keys.Action(msg); act {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "session", m.session, "score", m.engine.Score())
		return m, tea.Quit

	case core.ActionRestart:
		if !m.engine.Over() {
			return m, nil
		}
		if err := m.newGame(); err != nil {
			m.logger.Error("restart failed", "error", err)
			return m, tea.Quit
		}
		m.gen++
		if m.engine.Paused() {
			return m, nil
		}
		return m, tickCmd(m.engine.TickInterval(), m.gen)

	case core.ActionPause:
		if m.engine.Over() || m.tooSmall() {
			return m, nil
		}
		paused := m.engine.TogglePause()
		m.gen++
		m.logger.Debug("pause", "session", m.session, "paused", paused)
		if paused {
			return m, nil
		}
		return m, tickCmd(m.engine.TickInterval(), m.gen)

	default:
		res := m.engine.Apply(act)
		m.afterDrop(res)
		return m, nil
	}
}

// fitPause pauses the game while the terminal cannot show the board and
// resumes it once it can, unless the player paused it themselves.
func (m Model) fitPause() (tea.Model, tea.Cmd) {
	if m.engine.Over() {
		return m, nil
	}
	small := m.tooSmall()
	switch {
	case small && !m.engine.Paused():
		m.engine.TogglePause()
		m.autoPaused = true
		m.gen++
		m.logger.Debug("auto pause", "session", m.session, "width", m.width, "height", m.height)
	case !small && m.autoPaused:
		m.engine.TogglePause()
		m.autoPaused = false
		m.gen++
		m.logger.Debug("auto resume", "session", m.session)
		return m, tickCmd(m.engine.TickInterval(), m.gen)
	}
	return m, nil
}

// tooSmall reports whether the known terminal size cannot fit the screen
// plus the help line. An unknown size never counts as too small.
func (m Model) tooSmall() bool {
	if m.width <= 0 || m.height <= 0 {
		return false
	}
	return m.width < m.screen.Width() || m.height < m.screen.Height()+1
}

// handleTick runs one gravity step and re-arms the timer from the engine's
// current interval. Stale ticks and ticks after pause or game over stop the
// chain.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.engine.Paused() || m.engine.Over() {
		return m, nil
	}

	res := m.engine.Tick()
	m.afterDrop(res)
	if m.engine.Over() {
		return m, nil
	}
	return m, tickCmd(m.engine.TickInterval(), m.gen)
}

// afterDrop logs locks and the end of the game.
func (m *Model) afterDrop(res tetris.DropResult) {
	if res.Locked {
		m.logger.Debug("locked",
			"session", m.session,
			"rows", res.RowsCleared,
			"points", res.Points,
			"score", m.engine.Score(),
			"interval", m.engine.TickInterval(),
		)
	}
	if m.engine.Over() && !m.overLogged {
		m.overLogged = true
		m.keys.Restart.SetEnabled(true)
		m.logger.Info("game over",
			"session", m.session,
			"score", m.engine.Score(),
			"lines", m.engine.Lines(),
			"level", m.engine.Level(),
		)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		return tooSmallStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d",
			m.screen.Width(), m.screen.Height()+1, m.width, m.height,
		))
	}

	drawGame(m.screen, m.engine, m.ruleset.Name)
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		m.help.View(m.keys),
	)
}

// Run starts the Bubble Tea program for the given ruleset.
func Run(rs config.RulesetConfig, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(rs, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
