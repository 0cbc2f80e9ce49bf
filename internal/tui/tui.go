package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/podrida/internal/game"
	"github.com/lox/podrida/internal/statistics"
)

// Phase is the step of the round the scorekeeper is waiting on
type Phase int

const (
	PhaseBids Phase = iota
	PhaseTricks
	PhaseFinal
)

func (p Phase) String() string {
	switch p {
	case PhaseBids:
		return "bids"
	case PhaseTricks:
		return "tricks"
	case PhaseFinal:
		return "final"
	}
	return "unknown"
}

type logEntry struct {
	text  string
	style lipgloss.Style
}

// Model is the Bubble Tea model for the scorekeeper. It collects one number
// per player for the bids, then for the tricks won, and submits the round to
// the game.
type Model struct {
	game      *game.Game
	stats     *statistics.Collector
	formatter *game.EventFormatter
	logger    *log.Logger

	// UI components
	logViewport viewport.Model
	inputs      []textinput.Model

	// State
	phase    Phase
	focus    int
	bids     []int
	gameLog  []logEntry
	status   string
	quitting bool

	// Dimensions
	width       int
	height      int
	initialized bool
}

// NewModel creates a scorekeeper for g. The model subscribes to the game's
// event bus, so rounds scored elsewhere also show up in its log.
func NewModel(g *game.Game, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	m := &Model{
		game:        g,
		stats:       statistics.Attach(g),
		formatter:   game.NewEventFormatter(game.FormattingOptions{ShowBids: true}),
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		inputs:      make([]textinput.Model, g.PlayerCount()),
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 3
		ti.Width = 6
		ti.Prompt = "> "
		ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
		ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
		m.inputs[i] = ti
	}

	g.EventBus().Subscribe(game.EventSubscriberFunc(m.onEvent))

	if g.IsTerminal() {
		m.phase = PhaseFinal
	} else {
		m.startRound()
	}
	return m
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, nil
		case "ctrl+b":
			if m.phase == PhaseTricks {
				m.backToBids()
			}
			return m, nil
		case "pgup":
			m.logViewport.HalfPageUp()
			return m, nil
		case "pgdown":
			m.logViewport.HalfPageDown()
			return m, nil
		case "enter":
			if m.phase == PhaseFinal {
				m.quitting = true
				return m, tea.Quit
			}
			m.submit()
			return m, nil
		case "q":
			if m.phase == PhaseFinal {
				m.quitting = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	if m.phase != PhaseFinal && len(m.inputs) > 0 {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		cmds = append(cmds, cmd)
	}

	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit reads every input and advances the phase
func (m *Model) submit() {
	values, err := m.readInputs()
	if err != nil {
		m.status = err.Error()
		return
	}

	switch m.phase {
	case PhaseBids:
		if err := game.ValidateBids(values, m.game.CurrentRoundCards()); err != nil {
			m.status = game.ViolationMessage(err)
			m.addLog(fmt.Sprintf("Round %d bids rejected: %s", m.game.RoundNumber(), m.status), ErrorStyle)
			return
		}
		m.bids = values
		m.phase = PhaseTricks
		m.status = ""
		m.resetInputs()
		m.logger.Debug("Bids entered", "round", m.game.RoundNumber(), "bids", values)

	case PhaseTricks:
		if _, err := m.game.ProcessRound(m.bids, values); err != nil {
			// the rejection itself is logged by onEvent
			m.status = game.ViolationMessage(err)
			return
		}
		m.status = ""
		if m.game.IsTerminal() {
			m.phase = PhaseFinal
			return
		}
		m.startRound()
	}
}

// backToBids reopens the bids of the current round with the accepted values
// filled in, so a legal but mistyped bid can be corrected.
func (m *Model) backToBids() {
	for i := range m.inputs {
		m.inputs[i].SetValue(strconv.Itoa(m.bids[i]))
	}
	m.phase = PhaseBids
	m.bids = nil
	m.status = ""
	m.setFocus(m.game.LeadIndex())
	m.logger.Debug("Bids reopened", "round", m.game.RoundNumber())
}

// readInputs parses one number per player. Empty input counts as 0.
func (m *Model) readInputs() ([]int, error) {
	values := make([]int, len(m.inputs))
	for i, in := range m.inputs {
		s := strings.TrimSpace(in.Value())
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			m.setFocus(i)
			return nil, fmt.Errorf("%s: %q is not a number", m.playerName(i), s)
		}
		values[i] = n
	}
	return values, nil
}

func (m *Model) startRound() {
	m.phase = PhaseBids
	m.bids = nil
	m.resetInputs()

	line := fmt.Sprintf("Round %d of %d: %d %s, %s deals, %s leads",
		m.game.RoundNumber(), m.game.TotalRounds(), m.game.CurrentRoundCards(),
		cardsWord(m.game.CurrentRoundCards()), m.game.DealerName(), m.game.LeadName())
	m.addLog(line, RoundInfoStyle)
}

func (m *Model) resetInputs() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.setFocus(m.game.LeadIndex())
}

func (m *Model) setFocus(i int) {
	n := len(m.inputs)
	if n == 0 {
		return
	}
	m.focus = ((i % n) + n) % n
	for j := range m.inputs {
		if j == m.focus {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m *Model) onEvent(event game.GameEvent) {
	style := lipgloss.NewStyle()
	switch event.(type) {
	case game.RoundRejectedEvent:
		style = ErrorStyle
	case game.GameOverEvent:
		style = SuccessStyle
	}
	for _, line := range m.formatter.Format(event) {
		m.addLog(line, style)
	}
}

// addLog appends a line to the log and scrolls to it
func (m *Model) addLog(text string, style lipgloss.Style) {
	m.gameLog = append(m.gameLog, logEntry{text: text, style: style})
	m.logViewport.SetContent(m.renderLogPane())
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	headerHeight := lipgloss.Height(header)

	var bottom string
	if m.phase == PhaseFinal {
		bottom = m.renderFinalPane()
	} else {
		bottom = m.renderInputPane()
	}
	bottomHeight := lipgloss.Height(bottom)
	bottomPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(focusedBorder).
		Width(max(m.width-2, 1)).
		Render(bottom)

	sidebarContent := m.renderSidebarPane()
	sidebarWidth := max(lipgloss.Width(sidebarContent), 24)
	paneHeight := max(m.height-headerHeight-bottomHeight-4, 1)

	sidebarPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(blurredBorder).
		Width(sidebarWidth).
		Height(paneHeight).
		Render(sidebarContent)

	logWidth := max(m.width-sidebarWidth-4, 1)
	m.logViewport.Width = logWidth
	m.logViewport.Height = paneHeight
	m.logViewport.SetContent(m.renderLogPane())
	if !m.initialized && logWidth > 1 && paneHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(blurredBorder).
		Width(logWidth).
		Height(paneHeight).
		Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Left, header, topRow, bottomPane)
}

func (m *Model) renderHeader() string {
	title := HeaderStyle.Render("PODRIDA")
	if m.phase == PhaseFinal {
		return title + " " + RoundInfoStyle.Render(fmt.Sprintf("Game over after %d rounds", m.game.TotalRounds()))
	}

	cards := m.game.CurrentRoundCards()
	info := fmt.Sprintf("Round %d of %d · %d %s · dealer %s · lead %s",
		m.game.RoundNumber(), m.game.TotalRounds(), cards, cardsWord(cards),
		m.game.DealerName(), m.game.LeadName())
	out := title + " " + RoundInfoStyle.Render(info)
	if m.game.Variant() == game.ForcedMaxRound && m.game.IsPeakRound() {
		out += " " + WarningStyle.Render(fmt.Sprintf("%s picks trump", m.game.LeadName()))
	}
	return out
}

func (m *Model) renderLogPane() string {
	lines := make([]string, len(m.gameLog))
	for i, e := range m.gameLog {
		lines[i] = e.style.Render(e.text)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderSidebarPane() string {
	var content strings.Builder
	content.WriteString(InfoStyle.Render("Standings"))
	content.WriteString("\n")

	leaders := map[int]bool{}
	if m.game.RoundsPlayed() > 0 {
		for _, p := range m.game.Leaders() {
			leaders[p.Seat] = true
		}
	}
	for i, s := range game.RankStandings(m.game.Standings()) {
		line := fmt.Sprintf("%d. %-12s %4d", i+1, s.Name, s.Score)
		if leaders[s.Seat] {
			line = LeaderStyle.Render(line)
		}
		content.WriteString(line)
		content.WriteString("\n")
	}
	if n := m.stats.Rejected(); n > 0 {
		content.WriteString("\n")
		content.WriteString(InfoStyle.Render(fmt.Sprintf("%d rejected %s", n, pluralize(n, "submission"))))
	}
	return content.String()
}

func (m *Model) renderInputPane() string {
	var content strings.Builder

	prompt := "Bids"
	if m.phase == PhaseTricks {
		prompt = "Tricks won"
	}
	content.WriteString(RoundInfoStyle.Render(prompt))
	content.WriteString("\n")

	for i, in := range m.inputs {
		name := fmt.Sprintf("%-12s", m.playerName(i))
		if i == m.game.DealerIndex() {
			name = DealerStyle.Render(name)
		}
		row := name + " " + in.View()
		if m.phase == PhaseTricks {
			row += InfoStyle.Render(fmt.Sprintf("  (bid %d)", m.bids[i]))
		}
		content.WriteString(row)
		content.WriteString("\n")
	}

	if m.status != "" {
		content.WriteString(ErrorStyle.Render(m.status))
		content.WriteString("\n")
	}
	help := "Tab/Shift+Tab to move • Enter to submit • PgUp/PgDn scroll log • Ctrl+C to quit"
	if m.phase == PhaseTricks {
		help = "Tab/Shift+Tab to move • Enter to submit • Ctrl+B back to bids • Ctrl+C to quit"
	}
	content.WriteString(InfoStyle.Render(help))
	return content.String()
}

func (m *Model) renderFinalPane() string {
	var content strings.Builder

	leaders := m.game.Leaders()
	winner := m.game.Winner()
	if len(leaders) > 1 {
		names := make([]string, len(leaders))
		for i, p := range leaders {
			names[i] = p.Name
		}
		content.WriteString(WarningStyle.Render(fmt.Sprintf("Tie at %d points: %s", winner.Score, strings.Join(names, ", "))))
		content.WriteString("\n")
	}
	content.WriteString(SuccessStyle.Render(fmt.Sprintf("%s wins with %d points", winner.Name, winner.Score)))
	content.WriteString("\n\n")

	var columns []string
	for _, s := range m.stats.Report().Players {
		var col strings.Builder
		col.WriteString(RoundInfoStyle.Render(s.Name))
		col.WriteString(InfoStyle.Render(fmt.Sprintf("  %d/%d hit", s.Hits, s.Rounds)))
		col.WriteString("\n")
		col.WriteString(renderHistogram("bids  ", s.Bids, BidBarStyle))
		col.WriteString(renderHistogram("tricks", s.Tricks, TrickBarStyle))
		columns = append(columns, lipgloss.NewStyle().MarginRight(3).Render(col.String()))
	}
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	content.WriteString("\n")
	content.WriteString(InfoStyle.Render("Enter or q to quit"))
	return content.String()
}

const barWidth = 12

// renderHistogram draws one bar per bucket, scaled to the largest bucket.
// Values outside 0..Max get their own rows when present.
func renderHistogram(title string, h *statistics.Histogram, style lipgloss.Style) string {
	var out strings.Builder
	out.WriteString(InfoStyle.Render(title))
	out.WriteString("\n")
	peak := max(h.Peak(), h.Below, h.Above)
	row := func(label string, n int) {
		width := 0
		if peak > 0 {
			width = n * barWidth / peak
		}
		if n > 0 && width == 0 {
			width = 1
		}
		out.WriteString(fmt.Sprintf("%2s ", label))
		out.WriteString(style.Render(strings.Repeat("█", width)))
		out.WriteString(fmt.Sprintf(" %d\n", n))
	}

	if h.Below > 0 {
		row("<0", h.Below)
	}
	for v, label := range h.Labels() {
		row(label, h.Counts[v])
	}
	if h.Above > 0 {
		row(fmt.Sprintf(">%d", h.Max), h.Above)
	}
	return out.String()
}

func (m *Model) playerName(seat int) string {
	if p, ok := m.game.Player(seat); ok {
		return p.Name
	}
	return fmt.Sprintf("seat %d", seat)
}

func cardsWord(n int) string {
	return pluralize(n, "card")
}

func pluralize(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// Phase returns the step the model is waiting on
func (m *Model) Phase() Phase {
	return m.phase
}

// Status returns the last input or rule error shown to the user
func (m *Model) Status() string {
	return m.status
}

// Focused returns the seat whose input has focus
func (m *Model) Focused() int {
	return m.focus
}

// Log returns the plain text of every log line
func (m *Model) Log() []string {
	out := make([]string, len(m.gameLog))
	for i, e := range m.gameLog {
		out[i] = e.text
	}
	return out
}

// Stats returns the statistics collected so far
func (m *Model) Stats() *statistics.Report {
	return m.stats.Report()
}

// Quitting reports whether the user asked to leave
func (m *Model) Quitting() bool {
	return m.quitting
}
