// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// statusMsg replaces the status line of the shell
type statusMsg string

// ShellModel is the Bubble Tea state of the interactive shell
type ShellModel struct {
	workspace *Workspace
	styles    *Styles

	input  textinput.Model
	output viewport.Model

	glamourRenderer *glamour.TermRenderer

	log        []string
	history    []string
	historyPos int
	status     string
	quitting   bool

	width  int
	height int
	ready  bool
}

func NewShellModel(ws *Workspace, styles *Styles) ShellModel {
	ti := textinput.New()
	ti.Placeholder = "insert t 10 20 30"
	ti.Prompt = styles.Prompt.Render("avl> ")
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 60

	vp := viewport.New(0, 0)
	vp.SetContent("Type a statement and press Enter. F1 shows the statement reference.")

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	return ShellModel{
		workspace:       ws,
		styles:          styles,
		input:           ti,
		output:          vp,
		glamourRenderer: renderer,
		status:          "enter: run  up/down: history  f1: help  ctrl+y: copy DOT  esc: quit",
	}
}

func (m ShellModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			return m.execute(line)
		case "up":
			if m.historyPos > 0 {
				m.historyPos--
				m.input.SetValue(m.history[m.historyPos])
				m.input.CursorEnd()
			}
			return m, nil
		case "down":
			if m.historyPos < len(m.history)-1 {
				m.historyPos++
				m.input.SetValue(m.history[m.historyPos])
				m.input.CursorEnd()
			} else {
				m.historyPos = len(m.history)
				m.input.SetValue("")
			}
			return m, nil
		case "f1":
			m.output.SetContent(m.renderHelp())
			m.output.GotoTop()
			return m, nil
		case "ctrl+y":
			return m, m.copyDOT()
		case "pgup":
			m.output.LineUp(m.output.Height)
			return m, nil
		case "pgdown":
			m.output.LineDown(m.output.Height)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute runs one statement and appends it with its result to the log
func (m ShellModel) execute(line string) (tea.Model, tea.Cmd) {
	m.history = append(m.history, line)
	m.historyPos = len(m.history)

	switch strings.ToLower(line) {
	case "exit", "quit":
		m.quitting = true
		return m, tea.Quit
	case "clear":
		m.log = nil
		m.output.SetContent("")
		return m, nil
	}

	m.log = append(m.log, m.styles.Prompt.Render("> ")+line)
	result, err := m.workspace.Exec(line)
	if err != nil {
		m.log = append(m.log, m.styles.Error.Render("error: "+err.Error()))
	} else if result != "" {
		m.log = append(m.log, result)
	}

	m.output.SetContent(strings.Join(m.log, "\n"))
	m.output.GotoBottom()
	return m, nil
}

func (m ShellModel) renderHelp() string {
	if m.glamourRenderer != nil {
		if out, err := m.glamourRenderer.Render(scriptLanguageHelp); err == nil {
			return out
		}
	}
	return statementHelp()
}

// copyDOT copies the DOT text of the last used tree to the clipboard
func (m ShellModel) copyDOT() tea.Cmd {
	ws := m.workspace
	return func() tea.Msg {
		name := ws.Last()
		if name == "" {
			return statusMsg("no tree used yet")
		}
		tree, err := ws.Tree(name)
		if err != nil {
			return statusMsg(err.Error())
		}
		if err := clipboard.WriteAll(dotString(name, tree)); err != nil {
			return statusMsg(fmt.Sprintf("failed to copy: %v", err))
		}
		return statusMsg(fmt.Sprintf("copied DOT for %s", name))
	}
}

func (m *ShellModel) updateLayout() {
	// title + input + status + border
	const chrome = 6
	m.output.Width = max(m.width-4, 10)
	m.output.Height = max(m.height-chrome, 3)
	m.input.Width = max(m.width-10, 10)
}

func (m ShellModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("avlkit shell"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Border.Render(m.output.View()))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(m.status))
	return sb.String()
}

func runShell(ws *Workspace, styles *Styles) error {
	p := tea.NewProgram(NewShellModel(ws, styles), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
