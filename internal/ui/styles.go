// Package ui renders terminal output: styled labels, the session banner,
// markdown replies, and the model documentation table. Formatting only, no
// decisions of consequence are made here.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	green  = lipgloss.Color("10")
	cyan   = lipgloss.Color("14")
	yellow = lipgloss.Color("11")
	red    = lipgloss.Color("9")
	dim    = lipgloss.Color("8")

	promptStyle = lipgloss.NewStyle().Foreground(cyan).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(green).Bold(true)
	infoStyle   = lipgloss.NewStyle().Foreground(yellow)
	errorStyle  = lipgloss.NewStyle().Foreground(red).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)

	headerStyle = lipgloss.NewStyle().Foreground(cyan).Bold(true)
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(green).
			Padding(0, 1)
)

func UserPrompt() string {
	return promptStyle.Render("You") + " > "
}

func AssistantLabel(elapsed time.Duration) string {
	return fmt.Sprintf("%s %s:",
		labelStyle.Render("Assistant"),
		dimStyle.Render(fmt.Sprintf("(%.2fs)", elapsed.Seconds())))
}

func ErrorLabel() string {
	return errorStyle.Render("Error:")
}

func Info(s string) string {
	return infoStyle.Render(s)
}

func OK(s string) string {
	return labelStyle.Render("✓") + " " + s
}

func Fail(s string) string {
	return errorStyle.Render("✗") + " " + s
}

// SessionBanner is the panel shown when a chat session starts.
func SessionBanner(officialName, deployment string) string {
	body := fmt.Sprintf("%s\nModel: %s (%s)\nType your messages and press Enter. Type 'exit', 'quit', or 'q' to end the conversation.",
		labelStyle.Render("Azure OpenAI Chat"),
		promptStyle.Render(officialName),
		deployment)
	return bannerStyle.Render(body)
}
