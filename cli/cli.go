// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the Neon Boroughs engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathoo/neonboroughs/engine"
	"github.com/nathoo/neonboroughs/engine/save"
	"github.com/nathoo/neonboroughs/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Session   *engine.Session
	In        io.Reader
	Out       io.Writer
	SaveDir   string
	EchoInput bool // echo each input line after the prompt (for script playback)
}

// New creates a CLI wired to the given session.
func New(s *engine.Session) *CLI {
	return &CLI{
		Session: s,
		In:      os.Stdin,
		Out:     os.Stdout,
		SaveDir: defaultSaveDir(),
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

// Run starts the game loop: prompt, input, dispatch, output.
func (c *CLI) Run() {
	c.printLine(fmt.Sprintf("Welcome to the megacity. %s starts out at the %s in %s.",
		c.Session.Character.Name, c.Session.World.Place, c.Session.World.District))
	c.printSystem("Type an action, a /command, or /help.")
	c.printLine("")

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		result := c.Session.Step(input)
		c.printResult(result)
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/save":
		c.cmdSave(arg)

	case "/load":
		c.cmdLoad(arg)

	case "/status":
		c.cmdStatus()

	case "/help":
		c.cmdHelp()

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdSave(name string) {
	if name == "" {
		name = "quicksave"
	}

	data, err := save.Save(c.Session)
	if err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}

	if err := os.MkdirAll(c.SaveDir, 0o755); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}

	path := filepath.Join(c.SaveDir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}

	c.printSystem(fmt.Sprintf("Game saved to %s.", name))
}

func (c *CLI) cmdLoad(name string) {
	if name == "" {
		name = "quicksave"
	}

	path := filepath.Join(c.SaveDir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}

	sd, err := save.Load(data)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}

	save.Apply(c.Session, sd)
	c.printSystem(fmt.Sprintf("Game loaded from %s (turn %d). The city comes back to life.", name, sd.Turn))
}

func (c *CLI) cmdStatus() {
	for _, table := range c.Session.StatusTables() {
		c.printTable(table)
	}
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /save [name]   — Save game (default: quicksave)",
		"  /load [name]   — Load game (default: quicksave)",
		"  /status        — Show stat tables",
		"  /quit          — Exit game",
		"",
		"Actions (one hour each):",
		"  go <district|place>   — Move around the city (see: map)",
		"  work                  — Do your job / start a courier shift",
		"  pickup / deliver      — Run the courier route",
		"  train                 — Work out",
		"  talk / flirt / befriend — Approach someone nearby",
		"  socialize             — Read the mood of the block",
		"  phone                 — Call a contact",
		"  shop / buy <item>     — Spend money",
		"  wardrobe / wear / remove — Manage your outfit",
		"  eat / cook            — Deal with hunger",
		"  hair                  — Visit the salon",
		"  map / look / people   — Get oriented",
		"",
		"When a numbered menu is shown, answer with the number.",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

// printResult renders a narration payload: narrative, dialogue, system
// line, menu options, then any ambient events.
func (c *CLI) printResult(result types.Result) {
	if result.Narrative != "" {
		c.printLine(result.Narrative)
	}
	if result.Dialogue != "" {
		c.printLine(result.Dialogue)
	}
	if result.System != "" {
		c.printSystem(result.System)
	}
	for i, opt := range result.Options {
		c.printLine(fmt.Sprintf("  %d. %s", i+1, opt))
	}
	for _, ev := range result.Events {
		c.printLine("")
		if ev.Narrative != "" {
			c.printLine(ev.Narrative)
		}
		if ev.System != "" {
			c.printSystem(ev.System)
		}
	}
}

// printTable renders a stat table as aligned plain text.
func (c *CLI) printTable(table types.Table) {
	c.printLine(table.Title)

	widths := make([]int, len(table.Headers))
	for i, h := range table.Headers {
		widths[i] = len(h)
	}
	for _, row := range table.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	formatRow := func(cells []string) string {
		var b strings.Builder
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if i < len(widths) {
				b.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
			}
		}
		return b.String()
	}

	c.printLine("  " + formatRow(table.Headers))
	for _, row := range table.Rows {
		c.printLine("  " + formatRow(row))
	}
	c.printLine("")
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
