// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ziqni/ziqni-go-samples/internal/app"
)

// ContinueModel waits for one key after a sample run: esc or ctrl+c ends
// the harness, any other key returns to the menu.
type ContinueModel struct {
	proceed bool
	done    bool
}

// NewContinueModel returns the continue prompt.
func NewContinueModel() *ContinueModel {
	return &ContinueModel{}
}

// Proceed reports whether the user asked for another run.
func (m *ContinueModel) Proceed() bool {
	return m.proceed
}

func (m *ContinueModel) Init() tea.Cmd {
	return nil
}

func (m *ContinueModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.done = true
	m.proceed = !key.Matches(keyMsg, keys.esc, keys.quit)
	return m, tea.Quit
}

func (m *ContinueModel) View() string {
	if m.done {
		return ""
	}
	return promptStyle.Render(app.MsgContinuePrompt) + "\n"
}
