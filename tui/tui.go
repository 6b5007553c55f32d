// Package tui provides a Bubble Tea terminal UI for the Neon Boroughs
// engine.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/neonboroughs/engine"
	"github.com/nathoo/neonboroughs/engine/save"
	"github.com/nathoo/neonboroughs/types"
)

// rawLine stores an unstyled output line with its classification, so we
// can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text string
	kind lineKind
}

// Model is the Bubble Tea model for the game.
type Model struct {
	session *engine.Session

	viewport viewport.Model
	input    textinput.Model
	history  *history

	rawLines []rawLine // accumulated output (unstyled, for re-wrapping)

	width    int
	height   int
	ready    bool
	quitting bool
	saveDir  string
}

// gameOutputMsg carries output lines into the Update loop.
type gameOutputMsg struct {
	input string // echoed player input (empty for the intro)
	lines []rawLine
}

// New creates a TUI model wired to the given session.
func New(s *engine.Session) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		session: s,
		input:   ti,
		history: newHistory(100),
		saveDir: defaultSaveDir(),
	}
}

// defaultSaveDir honors NEONBOROUGHS_SAVES, falling back to a dotdir in
// the user's home.
func defaultSaveDir() string {
	if dir := os.Getenv("NEONBOROUGHS_SAVES"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".neonboroughs", "saves")
}

// Run starts the Bubble Tea program.
func Run(s *engine.Session) error {
	m := New(s)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init returns the initial command that produces the intro text.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		s := m.session
		return gameOutputMsg{lines: []rawLine{
			{text: fmt.Sprintf("Welcome to the megacity. %s starts out at the %s in %s.",
				s.Character.Name, s.World.Place, s.World.District), kind: kindNarrative},
			{text: "Type an action, a /command, or /help.", kind: kindSystem},
		}}
	}
}

// Update handles messages (key presses, window resize, game output).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.reset()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case gameOutputMsg:
		m = m.appendOutput(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	m.history.push(input)
	m.history.reset()

	// Meta-commands.
	if strings.HasPrefix(input, "/") {
		lines, quit := m.handleMeta(input)
		m = m.appendOutput(gameOutputMsg{input: input, lines: lines})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	result := m.session.Step(input)
	m = m.appendOutput(gameOutputMsg{input: input, lines: resultLines(result)})
	return m, nil
}

// resultLines flattens a narration payload into classified output lines.
func resultLines(result types.Result) []rawLine {
	var lines []rawLine
	if result.Narrative != "" {
		lines = append(lines, rawLine{text: result.Narrative, kind: kindNarrative})
	}
	if result.Dialogue != "" {
		lines = append(lines, rawLine{text: result.Dialogue, kind: kindDialogue})
	}
	if result.System != "" {
		lines = append(lines, rawLine{text: result.System, kind: kindSystem})
	}
	for i, opt := range result.Options {
		lines = append(lines, rawLine{text: fmt.Sprintf("  %d. %s", i+1, opt), kind: kindOption})
	}
	for _, ev := range result.Events {
		lines = append(lines, rawLine{})
		if ev.Narrative != "" {
			lines = append(lines, rawLine{text: ev.Narrative, kind: kindEvent})
		}
		if ev.System != "" {
			lines = append(lines, rawLine{text: ev.System, kind: kindSystem})
		}
	}
	return lines
}

// appendOutput adds lines to the log and refreshes the viewport.
func (m Model) appendOutput(msg gameOutputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{text: msg.input, kind: kindInput})
	}
	m.rawLines = append(m.rawLines, msg.lines...)
	// Blank line separator between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()
	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current
// width and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}
		// System lines gain brackets when rendered; leave slack for them.
		wrapWidth := width
		if rl.kind == kindSystem {
			wrapWidth = width - 2
		}
		for _, wrapped := range strings.Split(wordWrap(rl.text, wrapWidth), "\n") {
			styled = append(styled, renderLineKind(wrapped, rl.kind))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wLen := len(word)

		if i == 0 {
			result.WriteString(word)
			lineLen = wLen
			continue
		}

		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}

	return result.String()
}

// View renders the full TUI layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// renderStatusBar builds the single-line status bar: location and clock
// on the left, vitals and turn counter on the right.
func (m Model) renderStatusBar() string {
	c := m.session.Character
	w := m.session.World

	left := fmt.Sprintf(" %s, %s | Day %d %02d:00",
		titleCase(w.Place), titleCase(w.District), w.Clock.Day, w.Clock.Hour)
	right := fmt.Sprintf("HP %d  NRG %d  %d cr | T:%d ",
		c.HP, c.Energy, c.Money, m.session.TurnCount)

	gap := m.width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}

// handleMeta dispatches meta-commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]rawLine, bool) {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		return []rawLine{{text: "Goodbye.", kind: kindSystem}}, true

	case "/save":
		return m.cmdSave(arg), false

	case "/load":
		return m.cmdLoad(arg), false

	case "/status":
		return m.cmdStatus(), false

	case "/help":
		return m.cmdHelp(), false

	default:
		return []rawLine{{
			text: fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd),
			kind: kindSystem,
		}}, false
	}
}

func (m *Model) cmdSave(name string) []rawLine {
	if name == "" {
		name = "quicksave"
	}

	data, err := save.Save(m.session)
	if err != nil {
		return []rawLine{{text: fmt.Sprintf("Save failed: %v", err), kind: kindSystem}}
	}

	if err := os.MkdirAll(m.saveDir, 0o755); err != nil {
		return []rawLine{{text: fmt.Sprintf("Save failed: %v", err), kind: kindSystem}}
	}

	path := filepath.Join(m.saveDir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return []rawLine{{text: fmt.Sprintf("Save failed: %v", err), kind: kindSystem}}
	}

	return []rawLine{{text: fmt.Sprintf("Game saved to %s.", name), kind: kindSystem}}
}

func (m *Model) cmdLoad(name string) []rawLine {
	if name == "" {
		name = "quicksave"
	}

	path := filepath.Join(m.saveDir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return []rawLine{{text: fmt.Sprintf("Load failed: %v", err), kind: kindSystem}}
	}

	sd, err := save.Load(data)
	if err != nil {
		return []rawLine{{text: fmt.Sprintf("Load failed: %v", err), kind: kindSystem}}
	}

	save.Apply(m.session, sd)
	return []rawLine{{
		text: fmt.Sprintf("Game loaded from %s (turn %d). The city comes back to life.", name, sd.Turn),
		kind: kindSystem,
	}}
}

func (m *Model) cmdStatus() []rawLine {
	var lines []rawLine
	for _, table := range m.session.StatusTables() {
		lines = append(lines, rawLine{text: table.Title, kind: kindTableTitle})
		for _, row := range table.Rows {
			lines = append(lines, rawLine{
				text: fmt.Sprintf("  %-16s %s", row[0], strings.Join(row[1:], " ")),
				kind: kindNarrative,
			})
		}
		lines = append(lines, rawLine{})
	}
	return lines
}

func (m *Model) cmdHelp() []rawLine {
	text := []string{
		"System:",
		"  /save [name]   — Save game (default: quicksave)",
		"  /load [name]   — Load game (default: quicksave)",
		"  /status        — Show stat tables",
		"  /quit          — Exit game",
		"",
		"Actions (one hour each):",
		"  go <district|place>, work, pickup, deliver, train,",
		"  talk, flirt, befriend, socialize, phone, shop, buy <item>,",
		"  wardrobe, wear <item>, remove <item>, eat, cook, hair,",
		"  map, look, people",
		"",
		"When a numbered menu is shown, answer with the number.",
		"Navigation: PgUp/PgDn to scroll, Up/Down for command history",
	}
	lines := make([]rawLine, 0, len(text))
	for _, t := range text {
		lines = append(lines, rawLine{text: t, kind: kindNarrative})
	}
	return lines
}

// titleCase upper-cases the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
