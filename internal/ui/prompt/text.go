package prompt

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/captainhook-go/installer/internal/ui/styles"
)

// TextResult holds the result of a text input prompt.
type TextResult struct {
	Value     string
	Cancelled bool
}

type textModel struct {
	prompt    string
	input     textinput.Model
	value     string
	done      bool
	cancelled bool
}

func newTextModel(prompt, placeholder string) textModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 156
	ti.SetWidth(40)

	st := ti.Styles()
	st.Cursor.Shape = tea.CursorBar
	st.Cursor.Blink = true
	ti.SetStyles(st)
	ti.Focus()

	return textModel{prompt: prompt, input: ti}
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			m.value = strings.TrimSpace(m.input.Value())
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	var b strings.Builder
	b.WriteString(m.prompt + "\n")
	b.WriteString(m.input.View() + "\n")
	b.WriteString(styles.Hint("enter confirm • esc cancel"))
	return tea.NewView(b.String())
}

// Text shows a single-line input prompt. An empty submission is
// returned as an empty Value so callers can apply their default.
func Text(prompt, placeholder string) (TextResult, error) {
	finalModel, err := run(newTextModel(prompt, placeholder))
	if err != nil {
		return TextResult{}, err
	}
	m := finalModel.(textModel)
	return TextResult{
		Value:     m.value,
		Cancelled: m.cancelled,
	}, nil
}
