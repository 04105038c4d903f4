package deck

import (
	"fmt"
	"strings"
)

const maxRowTextWidth = 64

func (m model) View() string {
	if m.fatal != nil {
		return m.fatalView()
	}
	if m.state.Loading {
		return fmt.Sprintf("\n  %s Loading your prompts...\n", m.spin.View())
	}

	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(m.styles.title.Render("promptdeck"))
	b.WriteString("  ")
	b.WriteString(m.styles.meta.Render("user " + string(m.session.Identity.UserID)))
	b.WriteString("\n")

	b.WriteString(m.styles.inputArea.Render("  " + m.input.View()))
	b.WriteString("\n")

	if len(m.state.Prompts) == 0 {
		b.WriteString("  ")
		b.WriteString(m.styles.empty.Render("No prompts yet. Press a to add one."))
		b.WriteString("\n")
	}

	for i, prompt := range m.state.Prompts {
		marker := "  "
		if i == m.cursor && m.focus != focusInput {
			marker = m.styles.cursor.Render("> ")
		}

		if m.overlay.IsEditing(prompt.ID) {
			b.WriteString(fmt.Sprintf("  %s%s\n", marker, m.edit.View()))
			continue
		}

		text := firstLine(prompt.Text)
		row := m.styles.row.Render(text)
		if i == m.cursor && m.focus == focusList {
			row = m.styles.selected.Render(text)
		}

		stamp := m.styles.pending.Render("syncing...")
		if !prompt.CreatedAt.IsZero() {
			stamp = m.styles.stamp.Render(prompt.CreatedAt.Local().Format("2006-01-02 15:04"))
		}

		b.WriteString(fmt.Sprintf("  %s%s  %s\n", marker, row, stamp))
	}

	if m.banner != "" {
		b.WriteString("\n  ")
		b.WriteString(m.styles.banner.Render(m.banner))
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(m.styles.help.Render(m.helpLine()))
	b.WriteString("\n")

	return b.String()
}

func (m model) fatalView() string {
	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(m.styles.fatal.Render("The live connection to your library failed."))
	b.WriteString("\n  ")
	b.WriteString(m.styles.meta.Render("Restart pdeck to reconnect."))
	b.WriteString("\n\n  ")
	b.WriteString(m.styles.help.Render("q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m model) helpLine() string {
	switch m.focus {
	case focusInput:
		return "enter save · esc back"
	case focusEdit:
		return "enter save · esc cancel"
	default:
		return "a add · e edit · d delete · j/k move · q quit"
	}
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}

	runes := []rune(text)
	if len(runes) > maxRowTextWidth {
		return string(runes[:maxRowTextWidth-1]) + "…"
	}

	return text
}
