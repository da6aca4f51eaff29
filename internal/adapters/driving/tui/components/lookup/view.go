package lookup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/lookup/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/lookup/internal/core/domain"
)

// View renders the lookup.
func (m *Model) View() string {
	var b strings.Builder

	field := m.renderField()
	switch m.variant {
	case domain.VariantInline:
		field = lipgloss.JoinHorizontal(lipgloss.Center, m.renderLabel()+" ", field)
	case domain.VariantHidden:
	default:
		if label := m.renderLabel(); label != "" {
			b.WriteString(label)
			b.WriteString("\n")
		}
	}
	b.WriteString(field)

	if m.multiEntry && m.hasSelection() {
		b.WriteString("\n")
		b.WriteString(m.renderPills())
	}

	if m.DropdownOpen() {
		b.WriteString("\n")
		b.WriteString(m.renderDropdown())
	}

	for _, e := range m.errors {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(e.Message))
	}

	return b.String()
}

func (m *Model) renderLabel() string {
	if m.label == "" {
		return ""
	}
	label := m.styles.Label.Render(m.label)
	if m.required {
		label = m.styles.Required.Render("*") + " " + label
	}
	return label
}

func (m *Model) renderField() string {
	style := m.styles.InputField
	switch {
	case m.HasInputError():
		style = m.styles.InputError
	case m.hasFocus:
		style = m.styles.InputFocused
	}
	if m.disabled {
		style = style.Foreground(m.styles.Theme().Muted)
	}

	var content string
	if m.InputReadonly() {
		content = m.styles.Icon.Render(iconBadge(m.SelectedIcon())) + " " + m.InputValue()
	} else {
		content = m.input.View()
	}

	if m.loading {
		content += " " + m.spinner.View()
	}
	if m.ShowClearButton() && !m.disabled {
		content += " " + m.styles.Muted.Render("✕")
	}

	return style.Width(m.width - 2).Render(content)
}

func (m *Model) renderPills() string {
	pills := make([]string, 0, len(m.selection))
	for _, item := range m.selection {
		text := iconBadge(item.Icon) + " " + item.Title
		if !m.disabled {
			text += " ×"
		}
		pills = append(pills, m.styles.Pill.Render(text))
	}
	return lipgloss.NewStyle().Width(m.width).Render(strings.Join(pills, " "))
}

func (m *Model) renderDropdown() string {
	rows := m.Rows()
	results := make([]list.Row, 0, len(m.searchResults))
	actions := make([]list.Row, 0, len(m.newRecordOptions))
	for _, row := range rows {
		r := list.Row{Title: row.Title, Subtitle: row.Subtitle, Focused: row.Focused}
		if row.NewRecord {
			actions = append(actions, r)
			continue
		}
		r.Icon = iconBadge(row.Icon)
		results = append(results, r)
	}
	m.dropdown.SetRows(results, actions)
	return m.dropdown.View()
}

// iconBadge shortens an icon name like "standard:account" to "account".
func iconBadge(icon string) string {
	if i := strings.LastIndex(icon, ":"); i >= 0 {
		return icon[i+1:]
	}
	return icon
}
