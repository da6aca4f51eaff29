package lookup

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/lookup/internal/core/domain"
)

// SelectNewRecordOption runs the option's pre-navigation hook and, when it
// succeeds, emits NavigateMsg. A failing hook emits NavigationCancelledMsg.
func (m *Model) SelectNewRecordOption(value string) tea.Cmd {
	if m.disabled {
		return nil
	}

	var (
		option domain.NewRecordOption
		found  bool
	)
	for _, o := range m.newRecordOptions {
		if o.Value == value {
			option, found = o, true
			break
		}
	}
	if !found {
		return nil
	}

	ctx, id := m.ctx, m.id
	return func() tea.Msg {
		if option.PreNavigate != nil {
			if err := option.PreNavigate(ctx, option); err != nil {
				return NavigationCancelledMsg{
					LookupID: id,
					Option:   option,
					Err:      fmt.Errorf("%w: %w", domain.ErrNavigationCancelled, err),
				}
			}
		}
		return NavigateMsg{LookupID: id, Page: domain.NewRecordPage(option)}
	}
}

// navigationCancelled surfaces a rejected navigation as a field error.
func (m *Model) navigationCancelled(msg NavigationCancelledMsg) {
	errs := append(domain.CloneFieldErrors(m.errors), domain.FieldError{
		ID:      "navigation-" + msg.Option.Value,
		Message: fmt.Sprintf("Could not create a new %s: %v", msg.Option.Value, msg.Err),
	})
	m.SetErrors(errs)
}
