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
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/patient-records/records"
)

// Focus targets, cycled with tab
const (
	focusInput = iota
	focusList
	focusDetail
	focusCount
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	commandInput   textinput.Model
	recordsList    list.Model
	detailViewport viewport.Model

	// Data
	store     *records.Store
	cardCache *cache.Cache
	config    *Config

	// State
	focusIndex int
	recs       []records.PatientRecord
	status     string
	statusErr  bool

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
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
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// recordItem represents a patient in the records list
type recordItem struct {
	rec records.PatientRecord
}

func (i recordItem) FilterValue() string { return i.rec.Name }
func (i recordItem) Title() string       { return fmt.Sprintf("#%d %s", i.rec.PatientID, i.rec.Name) }
func (i recordItem) Description() string {
	return fmt.Sprintf("%s · age %d", i.rec.Diagnosis, i.rec.Age)
}

// InitialModel creates the initial model
func InitialModel(store *records.Store, config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = `find 42 · del 42 · add 42 "Ann Lee" 30 Flu 120/80 72 98.6`
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	recordsList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	recordsList.SetShowTitle(false)
	recordsList.SetShowHelp(false)
	recordsList.SetFilteringEnabled(false)

	detailViewport := viewport.New(0, 0)
	detailViewport.SetContent("Select a patient to see the record...")

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(config.Display.WordWrap),
	)

	model := Model{
		commandInput:    ti,
		recordsList:     recordsList,
		detailViewport:  detailViewport,
		store:           store,
		cardCache:       NewRecordCardCache(time.Duration(config.Cache.TTLMinutes) * time.Minute),
		config:          config,
		focusIndex:      focusInput,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	model.refreshRecords(false, 0)

	return model
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.setFocus((m.focusIndex + 1) % focusCount)
		return m, nil
	case "enter":
		if m.focusIndex == focusInput {
			m.runCommand(m.commandInput.Value())
			return m, nil
		}
		if m.focusIndex == focusList {
			m.setFocus(focusDetail)
			return m, nil
		}
	case "ctrl+d":
		if rec, ok := m.selected(); ok {
			m.runCommand(fmt.Sprintf("del %d", rec.PatientID))
		}
		return m, nil
	case "ctrl+y":
		if rec, ok := m.selected(); ok {
			if err := clipboard.WriteAll(rec.String()); err != nil {
				m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
			} else {
				m.setStatus(fmt.Sprintf("📋 Copied patient %d to clipboard", rec.PatientID), false)
			}
		}
		return m, nil
	case "up", "k":
		if m.focusIndex == focusList {
			m.recordsList.CursorUp()
			m.updateDetail()
			return m, nil
		}
		if m.focusIndex == focusDetail {
			m.detailViewport.LineUp(1)
			return m, nil
		}
	case "down", "j":
		if m.focusIndex == focusList {
			m.recordsList.CursorDown()
			m.updateDetail()
			return m, nil
		}
		if m.focusIndex == focusDetail {
			m.detailViewport.LineDown(1)
			return m, nil
		}
	}

	switch m.focusIndex {
	case focusInput:
		m.commandInput, cmd = m.commandInput.Update(msg)
	case focusList:
		m.recordsList, cmd = m.recordsList.Update(msg)
		m.updateDetail()
	case focusDetail:
		m.detailViewport, cmd = m.detailViewport.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(target int) {
	m.focusIndex = target
	if target == focusInput {
		m.commandInput.Focus()
	} else {
		m.commandInput.Blur()
	}
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// runCommand executes a command bar line and refreshes the views
func (m *Model) runCommand(line string) {
	result, err := applyCommand(m.store, m.cardCache, line)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus(result.message, false)
	m.commandInput.SetValue("")
	m.refreshRecords(result.focus, result.focusID)
}

// refreshRecords reloads the list from the store. With focus set the record
// with focusID is selected.
func (m *Model) refreshRecords(focus bool, focusID int) {
	m.recs = m.store.ListAll()
	items := make([]list.Item, len(m.recs))
	selected := m.recordsList.Index()
	for i, rec := range m.recs {
		items[i] = recordItem{rec: rec}
		if focus && rec.PatientID == focusID {
			selected = i
		}
	}
	m.recordsList.SetItems(items)
	if selected >= len(items) {
		selected = len(items) - 1
	}
	if selected >= 0 {
		m.recordsList.Select(selected)
	}
	m.updateDetail()
}

func (m Model) selected() (records.PatientRecord, bool) {
	i := m.recordsList.Index()
	if i < 0 || i >= len(m.recs) {
		return records.PatientRecord{}, false
	}
	return m.recs[i], true
}

// updateDetail shows the selected record's card, rendering it at most once
// per cache lifetime
func (m *Model) updateDetail() {
	rec, ok := m.selected()
	if !ok {
		m.detailViewport.SetContent("No patient records. Add one from the command bar.")
		return
	}

	card := GetRecordCard(m.cardCache, rec.PatientID)
	if card == "" {
		card = rec.Markdown()
		if m.glamourRenderer != nil {
			if rendered, err := m.glamourRenderer.Render(card); err == nil {
				card = rendered
			}
		}
		CacheRecordCard(m.cardCache, rec.PatientID, card)
	}
	m.detailViewport.SetContent(card)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 7
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	box := func(focus int, title string, width, height int, content string) string {
		style := m.styles.BorderBlurred
		if m.focusIndex == focus {
			style = m.styles.BorderFocused
			title += "(Active) "
		}
		return style.
			Width(width).
			Height(height).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				m.styles.Title.Width(width-4).Render(title),
				content,
			))
	}

	inputBox := box(focusInput, " ⌨️  Command ", leftWidth, inputHeight, m.commandInput.View())
	listBox := box(focusList, fmt.Sprintf(" 🩺 Patients (%d) ", len(m.recs)), leftWidth, listHeight, m.recordsList.View())
	detailBox := box(focusDetail, " 📄 Record ", rightWidth, inputHeight+listHeight+2, m.detailViewport.View())

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, listBox),
		detailBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		body,
		m.renderStatus(),
		m.renderHelp(),
	)
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	style := m.styles.SuccessMessage
	if m.statusErr {
		style = m.styles.ErrorMessage
	}
	return lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(style.Render(m.status))
}

// renderHelp renders the key help footer
func (m Model) renderHelp() string {
	keys := []string{"enter", "tab", "ctrl+d", "ctrl+y", "esc"}
	descs := []string{"run / open", "switch focus", "delete selected", "copy record", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 7
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	m.commandInput.Width = leftWidth - 4
	m.recordsList.SetSize(leftWidth-2, listHeight-2)
	m.detailViewport.Width = rightWidth - 2
	m.detailViewport.Height = inputHeight + listHeight
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(store *records.Store, config *Config) error {
	model := InitialModel(store, config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
