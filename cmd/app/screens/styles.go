package screens

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	menuKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// menuAction is one entry of a screen footer menu.
type menuAction struct {
	key   string
	label string
}

// printTitle renders a screen title with a blank line around it.
func printTitle(out io.Writer, title string) {
	fmt.Fprintf(out, "\n%s\n\n", titleStyle.Render(title))
}

// printMenu renders the available actions of a screen.
func printMenu(out io.Writer, actions []menuAction) {
	fmt.Fprintln(out, headerStyle.Render("Available actions"))
	for _, action := range actions {
		fmt.Fprintf(out, "  %s  %s\n", menuKeyStyle.Render(action.key), action.label)
	}
}

// printNotice renders a confirmation message.
func printNotice(out io.Writer, message string) {
	fmt.Fprintln(out, noticeStyle.Render(message))
}
