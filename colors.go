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
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the styling for command output
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Prompt  lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Border  lipgloss.Style
}

// NewStyles creates the output styles. With color disabled every style
// renders its text unchanged.
func NewStyles(color bool) *Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return &Styles{
			Title:   plain,
			Label:   plain,
			Prompt:  plain,
			Muted:   plain,
			Success: plain,
			Error:   plain,
			Border:  plain,
		}
	}

	// darker shades for light terminals, brighter ones for dark terminals
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "39"}).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "244", Dark: "241"}),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "46"}).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "196"}).
			Bold(true),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
	}
}
