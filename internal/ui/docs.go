package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/madmaxieee/azchat/internal/registry"
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// RenderModelTable formats the model registry as a table. Pure: the same
// registry always renders the same output, and an empty registry renders an
// empty table.
func RenderModelTable(entries []registry.ModelEntry) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("DEPLOYMENT", "MODEL", "API VERSION", "CONTEXT", "MAX OUTPUT", "TOKEN PARAM", "VISION", "FUNCTIONS")

	for _, e := range entries {
		t.Row(
			e.Deployment,
			e.OfficialName,
			e.APIVersion,
			fmt.Sprintf("%d", e.ContextWindow),
			fmt.Sprintf("%d", e.MaxOutputTokens),
			string(e.TokenParam),
			yesNo(e.SupportsVision),
			yesNo(e.SupportsFunctions),
		)
	}

	return t.Render() + "\n" + dimStyle.Render("Docs: "+registry.ModelDocsURL) + "\n"
}
