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
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/avlmap"
)

// Styles holds the lipgloss styling for the explorer.
type Styles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	StatusOK      lipgloss.Style
	StatusErr     lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		StatusOK: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		StatusErr: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
	}
}

// entryItem adapts one tree entry to the bubbles list.
type entryItem struct {
	key   string
	value string
}

func (i entryItem) Title() string       { return i.key }
func (i entryItem) Description() string { return i.value }
func (i entryItem) FilterValue() string { return i.key }

// explorerModel is the Bubble Tea state for the interactive browser:
// an ordered list of entries on the left, per-node metadata on the
// right rendered from markdown.
type explorerModel struct {
	tree  *avlmap.Tree[string, string]
	ready bool

	entryList  list.Model
	detailView viewport.Model

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	statusMsg string
	statusErr bool
	lastKey   string

	width  int
	height int
}

func newExplorer(tree *avlmap.Tree[string, string]) *explorerModel {
	items := make([]list.Item, 0, tree.Len())
	for k, v := range tree.All(avlmap.InOrder) {
		items = append(items, entryItem{key: k, value: v})
	}

	delegate := list.NewDefaultDelegate()
	entryList := list.New(items, delegate, 0, 0)
	entryList.Title = fmt.Sprintf("avlmap entries (%d)", tree.Len())
	entryList.SetShowStatusBar(false)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	return &explorerModel{
		tree:            tree,
		entryList:       entryList,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
}

func (m *explorerModel) Init() tea.Cmd {
	return nil
}

func (m *explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listWidth := m.width / 2
		detailWidth := m.width - listWidth - 6
		contentHeight := m.height - 6
		m.entryList.SetSize(listWidth, contentHeight)
		if !m.ready {
			m.detailView = viewport.New(detailWidth, contentHeight)
			m.ready = true
		} else {
			m.detailView.Width = detailWidth
			m.detailView.Height = contentHeight
		}
		m.refreshDetail()

	case tea.KeyMsg:
		if m.entryList.FilterState() != list.Filtering {
			switch msg.String() {
			case "ctrl+c", "q", "esc":
				return m, tea.Quit
			case "y":
				if item, ok := m.entryList.SelectedItem().(entryItem); ok {
					if err := clipboard.WriteAll(item.key); err != nil {
						m.statusMsg = fmt.Sprintf("copy failed: %v", err)
						m.statusErr = true
					} else {
						m.statusMsg = fmt.Sprintf("copied %q to clipboard", item.key)
						m.statusErr = false
					}
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.entryList, cmd = m.entryList.Update(msg)
	cmds = append(cmds, cmd)

	m.refreshDetail()

	m.detailView, cmd = m.detailView.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// refreshDetail re-renders the metadata pane when the selection moves.
func (m *explorerModel) refreshDetail() {
	if !m.ready {
		return
	}
	item, ok := m.entryList.SelectedItem().(entryItem)
	if !ok {
		m.detailView.SetContent("The tree is empty.")
		return
	}
	if item.key == m.lastKey {
		return
	}
	m.lastKey = item.key

	node := m.tree.SearchNode(item.key)
	if node == nil {
		m.detailView.SetContent("node vanished from the tree")
		return
	}
	m.detailView.SetContent(m.renderNodeDetail(node))
	m.detailView.GotoTop()
}

func (m *explorerModel) renderNodeDetail(n *avlmap.Node[string, string]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", n.Key())
	fmt.Fprintf(&b, "**Value:** `%s`\n\n", n.Value())
	fmt.Fprintf(&b, "## Position\n\n")
	fmt.Fprintf(&b, "* Depth: %d\n", n.Depth())
	fmt.Fprintf(&b, "* Subtree height: %d\n", n.Height())
	fmt.Fprintf(&b, "* Balance factor: %+d\n", n.Balance())
	if p := n.Parent(); p != nil {
		fmt.Fprintf(&b, "* Parent key: `%s`\n", p.Key())
	} else {
		fmt.Fprintf(&b, "* This node is the root\n")
	}
	if l := n.Left(); l != nil {
		fmt.Fprintf(&b, "* Left child: `%s`\n", l.Key())
	}
	if r := n.Right(); r != nil {
		fmt.Fprintf(&b, "* Right child: `%s`\n", r.Key())
	}
	fmt.Fprintf(&b, "\n## Neighbors\n\n")
	if prev := n.Prev(); prev != nil {
		fmt.Fprintf(&b, "* Previous key: `%s`\n", prev.Key())
	}
	if next := n.Next(); next != nil {
		fmt.Fprintf(&b, "* Next key: `%s`\n", next.Key())
	}

	if m.glamourRenderer == nil {
		return b.String()
	}
	rendered, err := m.glamourRenderer.Render(b.String())
	if err != nil {
		return b.String()
	}
	return rendered
}

func (m *explorerModel) View() string {
	if !m.ready {
		return "loading..."
	}

	listPane := m.styles.BorderFocused.Render(m.entryList.View())
	detailPane := m.styles.BorderBlurred.Render(m.detailView.View())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)

	status := "↑/↓ navigate · / filter · y yank key · q quit"
	if m.statusMsg != "" {
		if m.statusErr {
			status = m.styles.StatusErr.Render(m.statusMsg)
		} else {
			status = m.styles.StatusOK.Render(m.statusMsg)
		}
	}

	title := m.styles.Title.Render("avlctl explore")
	return lipgloss.JoinVertical(lipgloss.Left, title, panes, status)
}

// runExplorer loads the entries into the TUI and blocks until quit.
func runExplorer(tree *avlmap.Tree[string, string]) error {
	p := tea.NewProgram(newExplorer(tree), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
