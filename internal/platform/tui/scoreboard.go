package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/omega-arcade/internal/registry"
	"github.com/vovakirdan/omega-arcade/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForStats = 80  // Below this the stats panel collapses to one line
	statsPanelWidth  = 26  // Width of the stats panel
	maxRuns          = 100 // Max runs to load per game
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Refresh  key.Binding
	Close    key.Binding
}

// ShortHelp returns key bindings for the short help view.
// Disabled bindings are hidden by the help model.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Refresh, k.Close}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextGame, k.PrevGame},
		{k.Refresh, k.Close},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("q", "close"),
		),
	}
}

// ScoreboardModel shows the best stored runs of a game next to its totals.
// Runs from SSH players land in the same database, so the view can be
// refreshed while open.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	runs       []storage.Run
	stats      *storage.GameStats
	loadErr    error
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
}

// NewScoreboardModel creates a scoreboard for every registered game,
// starting with the first one.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	return newScoreboard(store, registry.List(), width, height)
}

func newScoreboard(store *storage.Store, games []registry.GameInfo, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  games,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	// Switching only makes sense with more than one game.
	multi := len(m.games) > 1
	m.keys.NextGame.SetEnabled(multi)
	m.keys.PrevGame.SetEnabled(multi)

	m.table = m.createTable()
	m.reload()
	return m
}

// currentGame returns the selected game, or a zero GameInfo when none is registered.
func (m ScoreboardModel) currentGame() registry.GameInfo {
	if len(m.games) == 0 {
		return registry.GameInfo{}
	}
	return m.games[m.gameCursor]
}

// wide reports whether the table has room for player and time columns.
func (m ScoreboardModel) wide() bool {
	return m.tableWidth() >= 60
}

func (m ScoreboardModel) tableWidth() int {
	w := m.width - 4 // Border and padding
	if m.width >= minWidthForStats {
		w -= statsPanelWidth + 2
	}
	return w
}

// createTable builds the runs table sized to the current window.
func (m ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 10},
		{Title: "Player", Width: 14},
		{Title: "Time", Width: 7},
		{Title: "Played", Width: 14},
	}
	if !m.wide() {
		columns = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 10},
			{Title: "Played", Width: max(m.tableWidth()-20, 12)},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Title, help and borders
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload fetches runs and totals for the selected game.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats, m.loadErr = nil, nil, nil

	gameID := m.currentGame().ID
	if m.store != nil && gameID != "" {
		m.runs, m.loadErr = m.store.TopRuns(gameID, maxRuns)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetGameStats(gameID)
		}
	}
	m.fillTable()
}

// fillTable turns the loaded runs into table rows, best run first.
func (m *ScoreboardModel) fillTable() {
	wide := m.wide()
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		played := r.CreatedAt.Local().Format("Jan 02 15:04")
		if wide {
			rows[i] = table.Row{
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%d", r.Score),
				r.Player,
				formatDuration(r.Duration),
				played,
			}
			continue
		}
		rows[i] = table.Row{fmt.Sprintf("%d", i+1), fmt.Sprintf("%d", r.Score), played}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Close):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			m.gameCursor = (m.gameCursor + 1) % len(m.games)
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			m.gameCursor = (m.gameCursor + len(m.games) - 1) % len(m.games)
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.fillTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := "BEST RUNS"
	if g := m.currentGame(); g.Title != "" {
		title = fmt.Sprintf("%s · BEST RUNS", strings.ToUpper(g.Title))
	}
	if len(m.games) > 1 {
		title = fmt.Sprintf("%s  (%d/%d)", title, m.gameCursor+1, len(m.games))
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	runs := boardPanelStyle.Render(m.runsContent())
	if m.width >= minWidthForStats {
		stats := boardPanelStyle.Width(statsPanelWidth).Render(m.statsContent("\n"))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stats, "  ", runs))
	} else {
		b.WriteString(centerText(boardDimStyle.Render(m.statsContent("   ")), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(runs, m.width))
	}

	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// statsContent lists the game totals separated by sep.
func (m ScoreboardModel) statsContent(sep string) string {
	if m.stats == nil || m.stats.RunsCount == 0 {
		return "no runs yet"
	}
	parts := []string{
		fmt.Sprintf("Runs     %d", m.stats.RunsCount),
		fmt.Sprintf("Best     %d", m.stats.HighScore),
		fmt.Sprintf("Average  %.0f", m.stats.AvgScore),
	}
	if !m.stats.LastPlayed.IsZero() {
		parts = append(parts, "Last     "+m.stats.LastPlayed.Local().Format("Jan 02 15:04"))
	}
	return strings.Join(parts, sep)
}

// runsContent renders the table, or a hint when there is nothing to show.
func (m ScoreboardModel) runsContent() string {
	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 2)

	switch {
	case m.loadErr != nil:
		return hint.Render("Could not read the scores database:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return hint.Render("No runs stored yet.\nStart one with 'omega play'; it is saved when you quit.")
	}
	return m.table.View()
}

// IsQuitting returns true once the scoreboard has been closed.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// formatDuration renders a run length as m:ss.
func formatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// centerText pads text so it is centered within width cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunScoreboard runs the scoreboard screen until the user closes it.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: scoreboard: %w", err)
	}
	return nil
}
