package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/omega-arcade/internal/config"
	"github.com/vovakirdan/omega-arcade/internal/core"
	"github.com/vovakirdan/omega-arcade/internal/logging"
	"github.com/vovakirdan/omega-arcade/internal/registry"
	"github.com/vovakirdan/omega-arcade/internal/storage"
)

// maxFrameDelta caps the elapsed time fed to a single Step, so a stalled
// terminal (suspended process, slow SSH link) does not teleport the player.
const maxFrameDelta = 250 * time.Millisecond

// Tunable is implemented by games that accept a new configuration mid-session.
type Tunable interface {
	Apply(cfg config.OmegaConfig)
}

// ConfigReloadedMsg carries the result of a config file reload.
type ConfigReloadedMsg struct {
	Config config.OmegaConfig
	Err    error
}

// Options configure a game session.
type Options struct {
	Config     core.RuntimeConfig
	Player     string        // Name stored with the run; defaults to $USER
	Logger     *log.Logger   // Nil discards
	HoldWindow time.Duration // Key hold emulation window
	WatchPath  string        // Config file to watch for live reloads
}

// Model is the Bubble Tea model for running an arcade game.
// It is the frame scheduler: every TickMsg becomes one Step with the wall
// time elapsed since the previous tick.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	keys      *KeyState
	help      help.Model
	logger    *log.Logger
	player    string
	now       func() time.Time

	gameState core.GameState
	started   time.Time
	lastTick  time.Time
	quitting  bool
	runSaved  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The high score is seeded from the best run in store, when there is one.
func NewModel(game registry.Game, store *storage.Store, opts Options) Model {
	cfg := opts.Config
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	if store != nil && cfg.BestScore == 0 {
		best, err := store.HighScore(game.ID())
		if err != nil {
			logger.Warn("could not load high score", "game", game.ID(), "error", err)
		}
		cfg.BestScore = best
	}

	player := opts.Player
	if player == "" {
		player = os.Getenv("USER")
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		keys:      NewKeyState(opts.HoldWindow),
		help:      h,
		logger:    logger,
		player:    player,
		now:       time.Now,
	}
}

// playHeight reserves the bottom row for the help footer.
func playHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "player", m.player, "best", m.config.BestScore)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case ConfigReloadedMsg:
		return m.handleReload(msg)

	case tea.BlurMsg:
		// Key events stop arriving while the terminal is unfocused.
		m.keys.Reset()
		return m, nil
	}

	return m, nil
}

// handleKey records key presses; the simulation samples them on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keyMapper.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	}

	m.keys.Press(action, m.now())
	return m, nil
}

// handleResize resizes the output; the world keeps its own coordinates.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	var dt time.Duration
	if m.lastTick.IsZero() {
		m.started = at
	} else {
		dt = min(max(at.Sub(m.lastTick), 0), maxFrameDelta)
	}
	m.lastTick = at

	result := m.game.Step(m.keys.Frame(m.now()), dt)
	m.gameState = result.State

	return m, tickCmd(m.config.TickRate)
}

// handleReload applies a reloaded configuration to a tunable game.
func (m Model) handleReload(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("config reload rejected", "error", msg.Err)
		return m, nil
	}
	if t, ok := m.game.(Tunable); ok {
		t.Apply(msg.Config)
		m.keys.SetHold(msg.Config.Input.HoldWindow())
		m.logger.Info("config reloaded", "game", m.game.ID())
	}
	return m, nil
}

// saveRun stores the finished run once. Failures are logged; the game
// never blocks on storage.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil {
		return
	}
	m.runSaved = true

	state := m.game.State()
	if state.Frames == 0 {
		return
	}

	run, err := m.store.SaveRun(storage.Run{
		GameID:    m.game.ID(),
		Player:    m.player,
		Score:     state.Score,
		HighScore: state.HighScore,
		Frames:    int64(state.Frames),
		Duration:  m.lastTick.Sub(m.started),
	})
	if err != nil {
		m.logger.Error("could not save run", "game", m.game.ID(), "error", err)
		return
	}
	m.logger.Info("run saved", "run", run.RunID, "score", run.Score)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".omega", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.config.ScreenH > 1 {
		out += "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
	}
	return out
}

// State returns the game state as of the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for game and blocks until the player quits.
func Run(game registry.Game, store *storage.Store, opts Options) error {
	model := NewModel(game, store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	if opts.WatchPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			err := config.Watch(ctx, opts.WatchPath, func(cfg config.OmegaConfig, err error) {
				p.Send(ConfigReloadedMsg{Config: cfg, Err: err})
			})
			if err != nil {
				model.logger.Warn("config watch stopped", "path", opts.WatchPath, "error", err)
			}
		}()
	}

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}

	// Interrupted programs end without a quit key; keep their run too.
	if fm, ok := final.(Model); ok {
		fm.saveRun()
	}
	return nil
}
