package tui

import "github.com/charmbracelet/lipgloss"

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleDialogue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleOption = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117"))

	styleEvent = lipgloss.NewStyle().
			Foreground(lipgloss.Color("141"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205"))

	styleTableTitle = lipgloss.NewStyle().
			Bold(true)
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindDialogue
	kindSystem
	kindOption
	kindEvent
	kindInput
	kindTableTitle
)

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindDialogue:
		return styleDialogue.Render(line)
	case kindSystem:
		return styleSystem.Render("[" + line + "]")
	case kindOption:
		return styleOption.Render(line)
	case kindEvent:
		return styleEvent.Render(line)
	case kindInput:
		return stylePlayerInput.Render("> " + line)
	case kindTableTitle:
		return styleTableTitle.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}
