package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/registry"
	"github.com/vovakirdan/tui-tiles/internal/storage"
)

// Resizer is implemented by games that can follow a terminal resize without
// restarting.
type Resizer interface {
	Resize(w, h int)
}

// recorder persists the events a game reports. A nil store only logs.
type recorder struct {
	store  *storage.Store
	logger *log.Logger
	gameID string
	user   string
}

// record saves level results and run scores. Failures are logged and
// never interrupt play.
func (r recorder) record(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventLevelFinished:
			r.logger.Info("level finished",
				"game", r.gameID, "level", e.LevelID, "score", e.Score,
				"won", e.Won, "moves", e.MovesUsed, "user", r.user)
			if r.store == nil {
				continue
			}
			_, err := r.store.SaveLevelResult(storage.LevelResult{
				GameID:    r.gameID,
				LevelID:   e.LevelID,
				Score:     e.Score,
				Won:       e.Won,
				MovesUsed: e.MovesUsed,
			})
			if err != nil {
				r.logger.Warn("could not save level result", "level", e.LevelID, "error", err)
			}

		case core.EventGameFinished:
			r.logger.Info("game finished", "game", r.gameID, "score", e.Score, "won", e.Won, "user", r.user)
			if r.store == nil || e.Score <= 0 {
				continue
			}
			if _, err := r.store.SaveScore(r.gameID, e.Score); err != nil {
				r.logger.Warn("could not save score", "game", r.gameID, "error", err)
			}
		}
	}
}

// orDiscard returns l, or a logger that drops everything when l is nil.
func orDiscard(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return log.New(io.Discard)
}

// GameModel is the Bubble Tea model running one game, with back-to-menu
// capability when embedded in a session.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	rec        recorder
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		rec:        recorder{store: store, logger: orDiscard(logger), gameID: game.ID()},
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game once it is over or paused; otherwise the game
	// uses it to drop the selection
	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.rec.record(result.Events)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a text file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.rec.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".tiles", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.rec.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.rec.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.rec.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game. The program ends on
// quit or when the player leaves a finished game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		standaloneGame{NewGameModel(game, store, logger, cfg)},
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// standaloneGame ends the program where a session would return to its menu.
type standaloneGame struct {
	GameModel
}

func (s standaloneGame) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.GameModel.Update(msg)
	s.GameModel = next.(GameModel)
	if s.BackToMenu() {
		return s, tea.Quit
	}
	return s, cmd
}
