// Package tui implements the notecalc terminal editor: a two-pane view
// with source on the left and live results on the right, re-evaluating
// the whole document after each edit.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/notecalc/notecalc"
	"github.com/notecalc/notecalc/cmd/notecalc/config"
	"github.com/notecalc/notecalc/currency"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
	lipgloss.SetHasDarkBackground(true)
	_, _ = config.Load()
}

// evalDebounceDelay matches the editor's perceived-instant threshold
// without re-evaluating on every single keystroke of a fast typist.
const evalDebounceDelay = 50 * time.Millisecond

type evalDebounceMsg struct{ snapshot string }

// mode is the editor's modal state, vi-flavored like the teacher's.
type mode int

const (
	modeNormal mode = iota
	modeEditing
	modeHelp
)

// Model is the bubbletea model for the notecalc editor.
type Model struct {
	lines    []string
	doc      *notecalc.DocumentResult
	settings notecalc.Settings
	rates    *currency.Rates

	filepath string
	modified bool

	mode       mode
	cursorLine int
	editBuf    string
	editCol    int

	width, height int
	quitting      bool
	statusMsg     string
	statusIsErr   bool

	styles config.Styles
	help   string
	keys   keyMap
	body   viewport.Model
}

// New creates an editor model seeded with source text.
func New(source string, settings notecalc.Settings, rates *currency.Rates) Model {
	m := Model{
		settings: settings,
		rates:    rates,
		styles:   config.GetStyles(),
		keys:     defaultKeyMap(),
		body:     viewport.New(80, 23),
		width:    80,
		height:   24,
	}
	m.setSource(source)
	m.help = renderHelp()
	return m
}

// NewWithFile seeds the model and remembers the originating path for
// Ctrl+S.
func NewWithFile(path, source string, settings notecalc.Settings, rates *currency.Rates) Model {
	m := New(source, settings, rates)
	m.filepath = path
	return m
}

func (m *Model) setSource(source string) {
	m.lines = strings.Split(source, "\n")
	if len(m.lines) == 0 {
		m.lines = []string{""}
	}
	m.reEvaluate()
}

func (m *Model) reEvaluate() {
	m.doc = notecalc.Calculate(strings.Join(m.lines, "\n"), m.settings, m.rates)
}

func renderHelp() string {
	const md = `# notecalc

**j/k** move  **i/e** edit line  **o** new line below  **Esc** exit edit
**Ctrl+S** save  **?** toggle this help  **Ctrl+C** quit
`
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(76))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.body.Width = msg.Width
		m.body.Height = msg.Height - 1
	case evalDebounceMsg:
		if m.mode == modeEditing && m.editBuf == msg.snapshot {
			m.commitEditBuf()
			m.reEvaluate()
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""
	m.statusIsErr = false

	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Save) {
		m.save()
		return m, nil
	}

	switch m.mode {
	case modeEditing:
		return m.handleEditKey(msg)
	case modeHelp:
		m.mode = modeNormal
		return m, nil
	default:
		return m.handleNormalKey(msg)
	}
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Edit):
		m.enterEditMode()
	case key.Matches(msg, m.keys.Insert):
		m.insertLineBelow()
		m.enterEditMode()
	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	m.cursorLine += delta
	if m.cursorLine < 0 {
		m.cursorLine = 0
	}
	if m.cursorLine >= len(m.lines) {
		m.cursorLine = len(m.lines) - 1
	}
}

func (m *Model) enterEditMode() {
	m.editBuf = m.lines[m.cursorLine]
	m.editCol = len(m.editBuf)
	m.mode = modeEditing
}

func (m *Model) commitEditBuf() {
	m.lines[m.cursorLine] = m.editBuf
	m.modified = true
}

func (m *Model) insertLineBelow() {
	at := m.cursorLine + 1
	m.lines = append(m.lines[:at], append([]string{""}, m.lines[at:]...)...)
	m.cursorLine = at
	m.modified = true
	m.reEvaluate()
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	changed := false

	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.commitEditBuf()
		m.reEvaluate()
		m.mode = modeNormal
		return m, nil
	case tea.KeyBackspace:
		if m.editCol > 0 {
			m.editBuf = m.editBuf[:m.editCol-1] + m.editBuf[m.editCol:]
			m.editCol--
			changed = true
		}
	case tea.KeyLeft:
		if m.editCol > 0 {
			m.editCol--
		}
	case tea.KeyRight:
		if m.editCol < len(m.editBuf) {
			m.editCol++
		}
	case tea.KeySpace:
		m.editBuf = m.editBuf[:m.editCol] + " " + m.editBuf[m.editCol:]
		m.editCol++
		changed = true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.editBuf = m.editBuf[:m.editCol] + string(r) + m.editBuf[m.editCol:]
			m.editCol++
		}
		changed = true
	}

	if changed {
		snapshot := m.editBuf
		return m, tea.Tick(evalDebounceDelay, func(time.Time) tea.Msg {
			return evalDebounceMsg{snapshot: snapshot}
		})
	}
	return m, nil
}

func (m *Model) save() {
	if m.filepath == "" {
		m.statusMsg = "no file to save to"
		m.statusIsErr = true
		return
	}
	content := strings.Join(m.lines, "\n")
	if err := os.WriteFile(m.filepath, []byte(content), 0644); err != nil {
		m.statusMsg = fmt.Sprintf("save failed: %v", err)
		m.statusIsErr = true
		return
	}
	m.modified = false
	m.statusMsg = "saved"
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeHelp {
		return m.help
	}

	sourceWidth := m.width * 3 / 5
	if sourceWidth < 10 {
		sourceWidth = 10
	}
	resultWidth := m.width - sourceWidth

	var b strings.Builder
	for i, line := range m.lines {
		source := line
		if m.mode == modeEditing && i == m.cursorLine {
			source = m.editBuf
		}

		sourceCell := lipgloss.NewStyle().Width(sourceWidth).Render(source)
		if i == m.cursorLine {
			sourceCell = m.styles.CurrentLine.Width(sourceWidth).Render(source)
		}

		resultCell := ""
		if i < len(m.doc.Results) {
			lr := m.doc.Results[i]
			switch {
			case lr.HasError:
				resultCell = m.styles.Error.Render("error")
			case lr.Result != nil:
				resultCell = m.styles.Output.Render(*lr.Result)
			}
		}

		b.WriteString(sourceCell)
		b.WriteString(lipgloss.NewStyle().Width(resultWidth).Render(resultCell))
		b.WriteString("\n")
	}

	status := fmt.Sprintf("line %d/%d", m.cursorLine+1, len(m.lines))
	if m.filepath != "" {
		status += " · " + m.filepath
	}
	if m.modified {
		status += " [modified]"
	}
	if m.statusMsg != "" {
		if m.statusIsErr {
			status = m.styles.Error.Render(m.statusMsg)
		} else {
			status = m.statusMsg
		}
	}
	m.body.SetContent(b.String())
	m.body.Width = m.width
	if m.body.Height == 0 {
		m.body.Height = m.height - 1
	}

	var out strings.Builder
	out.WriteString(m.body.View())
	out.WriteString("\n")
	out.WriteString(m.styles.StatusBar.Width(m.width).Render(status))
	return out.String()
}

// Quitting reports whether the editor is winding down.
func (m Model) Quitting() bool { return m.quitting }

// Source returns the current document text.
func (m Model) Source() string { return strings.Join(m.lines, "\n") }
