// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ziqni/ziqni-go-samples/internal/app"
	"github.com/ziqni/ziqni-go-samples/models"
)

const (
	fieldAPIKey = iota
	fieldSpace
	fieldMemberRefID
)

// CredentialsModel prompts for the API key, the space name and, for member
// runs, the member reference id. The API key is masked and must be at
// least models.MinAPIKeyLength characters long.
type CredentialsModel struct {
	kind   models.SampleKind
	inputs []textinput.Model
	focus  int
	errMsg string

	submitted bool
	cancelled bool
	quit      bool
}

// NewCredentialsModel returns the credential prompt of a kind run.
func NewCredentialsModel(kind models.SampleKind) *CredentialsModel {
	apiKey := textinput.New()
	apiKey.Placeholder = "api key"
	apiKey.CharLimit = 256
	apiKey.Width = 40
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.EchoCharacter = '*'
	apiKey.Focus()

	space := textinput.New()
	space.Placeholder = "space name"
	space.CharLimit = 128
	space.Width = 40

	inputs := []textinput.Model{apiKey, space}

	if kind == models.SampleMember {
		member := textinput.New()
		member.Placeholder = "member reference id"
		member.CharLimit = 128
		member.Width = 40
		inputs = append(inputs, member)
	}

	return &CredentialsModel{kind: kind, inputs: inputs}
}

// Credentials returns the entered values.
func (m *CredentialsModel) Credentials() models.Credentials {
	creds := models.Credentials{
		Sample: m.kind,
		APIKey: m.inputs[fieldAPIKey].Value(),
		Space:  strings.TrimSpace(m.inputs[fieldSpace].Value()),
	}
	if len(m.inputs) > fieldMemberRefID {
		creds.MemberRefID = strings.TrimSpace(m.inputs[fieldMemberRefID].Value())
	}
	return creds
}

func (m *CredentialsModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - ctrl+c: leaves the harness.
//   - esc: cancels the prompt.
//   - tab / shift+tab: moves focus.
//   - enter: moves to the next field, or validates and submits on the last.
//
// Other keys go to the focused input.
func (m *CredentialsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			return m, m.focusOn((m.focus + 1) % len(m.inputs))
		case key.Matches(keyMsg, keys.backtab):
			return m, m.focusOn((m.focus - 1 + len(m.inputs)) % len(m.inputs))
		case key.Matches(keyMsg, keys.enter):
			if m.focus < len(m.inputs)-1 {
				return m, m.focusOn(m.focus + 1)
			}
			if err := m.validate(); err != "" {
				m.errMsg = err
				return m, nil
			}
			m.errMsg = ""
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *CredentialsModel) validate() string {
	if len(m.inputs[fieldAPIKey].Value()) < models.MinAPIKeyLength {
		m.focusOn(fieldAPIKey)
		return app.MsgAPIKeyTooShort
	}
	if m.kind == models.SampleMember && strings.TrimSpace(m.inputs[fieldMemberRefID].Value()) == "" {
		return "member reference id is required"
	}
	return ""
}

func (m *CredentialsModel) focusOn(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m *CredentialsModel) View() string {
	labels := []string{"API key  ", "Space    ", "Member id"}

	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(" │ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	title := "ADMIN CREDENTIALS"
	if m.kind == models.SampleMember {
		title = "MEMBER CREDENTIALS"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: confirm")
}
