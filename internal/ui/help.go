package ui

import "strings"

// renderHelp draws the full-screen help overlay.
func (m Model) renderHelp() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.styles.PageTitle.Render("  Key bindings"))
	b.WriteString("\n\n")

	for _, column := range m.keys.FullHelp() {
		for _, binding := range column {
			h := binding.Help()
			b.WriteString("  ")
			b.WriteString(m.styles.HelpKey.Render(padRight(h.Key, 8)))
			b.WriteString(m.styles.HelpText.Render(h.Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Status.Render("  Press any key to close"))
	return b.String()
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
