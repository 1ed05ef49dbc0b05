package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/levels"
	"github.com/vovakirdan/tui-tiles/internal/registry"
	"github.com/vovakirdan/tui-tiles/internal/storage"
)

// SessionOptions is everything a session needs to create games.
type SessionOptions struct {
	Levels []levels.Level
	Tiles  config.TilesConfig
	Store  *storage.Store // May be nil
	Logger *log.Logger    // May be nil
	User   string         // SSH user, empty for local play
}

type sessionState int

const (
	stateMenu sessionState = iota
	stateGame
	stateScoreboard
)

// SessionModel manages the full session flow: menu -> game -> menu, with
// the scoreboard reachable from the menu. Used for local play and for
// every SSH session.
type SessionModel struct {
	opts       SessionOptions
	config     core.RuntimeConfig
	state      sessionState
	menu       MenuModel
	gameModel  GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(opts SessionOptions, cfg core.RuntimeConfig) SessionModel {
	opts.Logger = orDiscard(opts.Logger)
	return SessionModel{
		opts:   opts,
		config: cfg,
		menu:   NewMenuModel(opts.Levels, opts.Store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages based on current state. Child models end their
// standalone programs with tea.Quit; the session checks their state first
// and drops that command.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = size.Width
		m.config.ScreenH = size.Height
	}

	switch m.state {
	case stateGame:
		return m.updateGame(msg)
	case stateScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.opts.Levels, m.config.ScreenW, m.config.ScreenH)
		m.state = stateScoreboard
		return m, nil

	case m.menu.Selected() != nil:
		return m.startGame(*m.menu.Selected())
	}

	return m, cmd
}

// startGame creates the selected game and switches to it.
func (m SessionModel) startGame(sel Selection) (tea.Model, tea.Cmd) {
	game, err := registry.Create(sel.GameID, registry.Options{
		Levels:     m.opts.Levels,
		Config:     m.opts.Tiles,
		StartLevel: sel.StartLevel,
	})
	if err != nil {
		m.opts.Logger.Error("cannot create game", "game", sel.GameID, "error", err)
		m.menu = NewMenuModel(m.opts.Levels, m.opts.Store, m.config)
		return m, nil
	}

	m.gameModel = NewGameModel(game, m.opts.Store, m.opts.Logger, m.config)
	m.gameModel.rec.user = m.opts.User
	m.state = stateGame
	m.opts.Logger.Debug("game started", "game", sel.GameID, "level", sel.StartLevel, "user", m.opts.User)

	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.gameModel = gm
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.state = stateMenu
		m.menu = NewMenuModel(m.opts.Levels, m.opts.Store, m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is open.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		m.state = stateMenu
		m.menu = NewMenuModel(m.opts.Levels, m.opts.Store, m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateGame:
		return m.gameModel.View()
	case stateScoreboard:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession starts a local session in the terminal.
func RunSession(opts SessionOptions, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(opts, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
