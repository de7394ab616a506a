// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ziqni/ziqni-go-samples/models"
)

type menuItem struct {
	label string
	kind  models.SampleKind
}

// MenuModel is the sample selection screen. Choosing a sample or Exit ends
// the program; the outcome is read from chosen and quit.
type MenuModel struct {
	items     []menuItem
	idx       int
	buildInfo models.AppBuildInfo

	showBuildInfo bool

	chosen models.SampleKind
	quit   bool
}

// NewMenuModel returns the menu {Admin Sample, Member Sample, Exit}.
func NewMenuModel(buildInfo models.AppBuildInfo) *MenuModel {
	return &MenuModel{
		items: []menuItem{
			{label: "Admin Sample", kind: models.SampleAdmin},
			{label: "Member Sample", kind: models.SampleMember},
			{label: "Exit"},
		},
		buildInfo: buildInfo,
	}
}

// Chosen returns the selected sample, empty until one is chosen.
func (m *MenuModel) Chosen() models.SampleKind {
	return m.chosen
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.quit) {
		m.quit = true
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		item := m.items[m.idx]
		if item.kind == "" {
			m.quit = true
		} else {
			m.chosen = item.kind
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m *MenuModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder
	idColWidth := lipgloss.Width("ID") + 2 // selection marker and space

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item.label); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		label := item.label
		if i == m.idx {
			cursor = ">"
			label = selectedStyle.Render(label)
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %s\n", idColWidth, idCell, label))
	}

	return renderPage("ZIQNI SAMPLES", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}
