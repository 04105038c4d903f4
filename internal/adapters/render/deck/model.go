// Package deck is the interactive presentation surface. It renders the
// reconciled collection state and forwards user intents to the dispatcher.
// It never mutates the prompt list itself; every change arrives back through
// the subscription.
package deck

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"promptdeck/internal/application"
	"promptdeck/internal/domain"
	"promptdeck/internal/ports"
)

const mutationErrorMessage = "That change didn't go through. Please try again."

type Deps struct {
	Session    domain.Session
	States     <-chan application.CollectionState
	Cancel     ports.CancelFunc
	Dispatcher *application.Dispatcher
}

// Run drives the interactive program until the user quits or the stream
// reaches a terminal state. The subscription is released on the way out.
func Run(ctx context.Context, deps Deps) error {
	p := tea.NewProgram(newModel(deps), tea.WithAltScreen(), tea.WithContext(ctx))

	_, err := p.Run()
	if deps.Cancel != nil {
		deps.Cancel()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	return nil
}

type focusArea int

const (
	focusList focusArea = iota
	focusInput
	focusEdit
)

type stateMsg application.CollectionState

type streamClosedMsg struct{}

type mutationKind int

const (
	mutationCreate mutationKind = iota
	mutationUpdate
	mutationDelete
)

type mutationDoneMsg struct {
	kind mutationKind
	id   domain.PromptID
	err  error
}

type model struct {
	session    domain.Session
	dispatcher *application.Dispatcher
	states     <-chan application.CollectionState

	state   application.CollectionState
	overlay domain.EditOverlay
	input   textinput.Model
	edit    textinput.Model
	spin    spinner.Model
	styles  styles

	focus  focusArea
	cursor int
	banner string
	fatal  error
}

func newModel(deps Deps) model {
	input := textinput.New()
	input.Placeholder = "new prompt text"
	input.Prompt = "+ "

	edit := textinput.New()
	edit.Prompt = "> "

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return model{
		session:    deps.Session,
		dispatcher: deps.Dispatcher,
		states:     deps.States,
		state:      application.CollectionState{Loading: true},
		input:      input,
		edit:       edit,
		spin:       spin,
		styles:     newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, waitForState(m.states))
}

func waitForState(states <-chan application.CollectionState) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-states
		if !ok {
			return streamClosedMsg{}
		}
		return stateMsg(state)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case stateMsg:
		return m.applyState(application.CollectionState(msg))
	case streamClosedMsg:
		if m.fatal != nil {
			// Keep showing the terminal error view until the user quits.
			return m, nil
		}
		return m, tea.Quit
	case mutationDoneMsg:
		return m.applyMutation(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m model) applyState(state application.CollectionState) (tea.Model, tea.Cmd) {
	m.state = state
	if state.Err != nil {
		m.fatal = state.Err
	}

	if m.cursor >= len(state.Prompts) {
		m.cursor = len(state.Prompts) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	// A prompt deleted remotely takes its edit overlay with it.
	if id, _, active := m.overlay.Editing(); active && !hasPrompt(state.Prompts, id) {
		m.overlay.Cancel()
		if m.focus == focusEdit {
			m.focus = focusList
		}
	}

	return m, waitForState(m.states)
}

func (m model) applyMutation(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Draft text and edit mode survive a failed write so the user can
		// retry; only a generic message surfaces.
		m.banner = mutationErrorMessage
		return m, nil
	}

	switch msg.kind {
	case mutationCreate:
		m.input.Reset()
	case mutationUpdate:
		m.overlay.Cancel()
		if m.focus == focusEdit {
			m.focus = focusList
		}
	case mutationDelete:
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	m.banner = ""

	if m.fatal != nil {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.focus {
	case focusInput:
		return m.handleInputKey(msg)
	case focusEdit:
		return m.handleEditKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "a", "n":
		m.focus = focusInput
		m.input.Focus()
		return m, textinput.Blink
	case "j", "down":
		if m.cursor < len(m.state.Prompts)-1 {
			m.cursor++
		}
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "e", "enter":
		prompt, ok := m.selectedPrompt()
		if !ok {
			return m, nil
		}
		m.overlay.Start(prompt.ID, prompt.Text)
		m.edit.SetValue(prompt.Text)
		m.edit.CursorEnd()
		m.edit.Focus()
		m.focus = focusEdit
		return m, textinput.Blink
	case "d", "x":
		prompt, ok := m.selectedPrompt()
		if !ok {
			return m, nil
		}
		return m, m.deleteCmd(prompt.ID)
	default:
		return m, nil
	}
}

func (m model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		text := m.input.Value()
		if domain.BlankText(text) {
			return m, nil
		}
		return m, m.createCmd(text)
	case tea.KeyEsc:
		m.input.Blur()
		m.focus = focusList
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		id, _, active := m.overlay.Editing()
		if !active {
			m.focus = focusList
			return m, nil
		}
		draft := m.edit.Value()
		if domain.BlankText(draft) {
			return m, nil
		}
		return m, m.updateCmd(id, draft)
	case tea.KeyEsc:
		m.overlay.Cancel()
		m.edit.Blur()
		m.focus = focusList
		return m, nil
	default:
		var cmd tea.Cmd
		m.edit, cmd = m.edit.Update(msg)
		m.overlay.SetDraft(m.edit.Value())
		return m, cmd
	}
}

func (m model) selectedPrompt() (domain.Prompt, bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.Prompts) {
		return domain.Prompt{}, false
	}
	return m.state.Prompts[m.cursor], true
}

func (m model) createCmd(text string) tea.Cmd {
	dispatcher := m.dispatcher
	return func() tea.Msg {
		return mutationDoneMsg{kind: mutationCreate, err: dispatcher.Create(context.Background(), text)}
	}
}

func (m model) updateCmd(id domain.PromptID, text string) tea.Cmd {
	dispatcher := m.dispatcher
	return func() tea.Msg {
		return mutationDoneMsg{kind: mutationUpdate, id: id, err: dispatcher.Update(context.Background(), id, text)}
	}
}

func (m model) deleteCmd(id domain.PromptID) tea.Cmd {
	dispatcher := m.dispatcher
	return func() tea.Msg {
		return mutationDoneMsg{kind: mutationDelete, id: id, err: dispatcher.Delete(context.Background(), id)}
	}
}

func hasPrompt(prompts []domain.Prompt, id domain.PromptID) bool {
	for _, prompt := range prompts {
		if prompt.ID == id {
			return true
		}
	}
	return false
}
