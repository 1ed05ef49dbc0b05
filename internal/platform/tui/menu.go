package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/levels"
	"github.com/vovakirdan/tui-tiles/internal/storage"
)

// Selection is what the player picked in the menu.
type Selection struct {
	GameID     string // "tiles" or "tiles_single"
	StartLevel int    // Index into the level list
}

// Entries of the top-level menu.
const (
	entryCampaign = iota
	entrySingle
	entryScores
	entryCount
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel lets users start the campaign, pick a single level or open the
// scoreboard.
type MenuModel struct {
	levels         []levels.Level
	best           map[string]int // Best score per level ID
	cursor         int
	levelCursor    int
	inLevelSelect  bool
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	selection      *Selection
	quitting       bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model. A nil store shows no best scores.
func NewMenuModel(lvls []levels.Level, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	best := map[string]int{}
	if store != nil {
		if scores, err := store.BestLevelScores(); err == nil {
			best = scores
		}
	}

	return MenuModel{
		levels:    lvls,
		best:      best,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handleMainKey(action)
}

func (m MenuModel) handleMainKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < entryCount-1 {
			m.cursor++
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	case MenuActionSelect:
		switch m.cursor {
		case entryCampaign:
			m.selection = &Selection{GameID: "tiles"}
			return m, tea.Quit
		case entrySingle:
			m.inLevelSelect = true
			m.levelCursor = 0
		case entryScores:
			m.openScoreboard = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.selection = &Selection{GameID: "tiles_single", StartLevel: m.levelCursor}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewMain()
}

func (m MenuModel) viewMain() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("T I L E S"), m.width))
	b.WriteString("\n\n")

	entries := []string{
		fmt.Sprintf("Campaign (%d levels)", len(m.levels)),
		"Single Level...",
		"High Scores",
	}
	for i, entry := range entries {
		line := "  " + entry
		if i == m.cursor {
			line = menuActiveStyle.Render("> " + entry)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))

	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	for i, lvl := range m.levels {
		best := "-"
		if score, ok := m.best[lvl.ID]; ok {
			best = fmt.Sprintf("%d", score)
		}

		line := fmt.Sprintf("%2d. %-16s Target %-5d Moves %-3d Best %s",
			i+1, lvl.Title(), lvl.TargetScore, lvl.Moves, best)
		if i == m.levelCursor {
			line = menuActiveStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Enter: Play  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m MenuModel) Selected() *Selection {
	return m.selection
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
