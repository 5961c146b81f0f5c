// Package tui provides the interactive recipe browser.
package tui

import (
	"strings"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"github.com/cockroachdb/errors"

	"github.com/sferrer-dev/petitsplats/internal/pipeline"
	"github.com/sferrer-dev/petitsplats/internal/tags"
)

var ErrCancelled = errors.New("browse cancelled")

// BrowseOptions configures Browse.
type BrowseOptions struct {
	UseAltScreen bool
}

type browserModel struct {
	pipeline *pipeline.Pipeline
	result   pipeline.Result

	input   textinput.Model
	narrow  map[tags.Category]string
	cursors map[Pane]int
	focus   Pane

	width        int
	height       int
	done         bool
	cancelled    bool
	useAltScreen bool
}

// Browse runs the browser over p until the user finishes or quits, and
// returns the last result. Quitting with Esc or Ctrl+C returns ErrCancelled.
func Browse(p *pipeline.Pipeline, opts BrowseOptions) (pipeline.Result, error) {
	program := tea.NewProgram(newBrowserModel(p, opts))
	result, err := program.Run()
	if err != nil {
		return pipeline.Result{}, errors.Wrap(err, "run browser")
	}

	final := result.(browserModel)
	if final.cancelled {
		return final.result, ErrCancelled
	}
	return final.result, nil
}

func newBrowserModel(p *pipeline.Pipeline, opts BrowseOptions) browserModel {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "tarte, coco, chocolat…"
	input.SetValue(p.Query())
	input.Focus()

	return browserModel{
		pipeline:     p,
		result:       p.Last(),
		input:        input,
		narrow:       map[tags.Category]string{},
		cursors:      map[Pane]int{},
		focus:        PaneQuery,
		useAltScreen: opts.UseAltScreen,
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.RequestBackgroundColor
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.BackgroundColorMsg:
		appStyles = newStyles()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(max(m.width-20, 10))
		return m, nil
	case tea.KeyPressMsg:
		key := msg.String()
		switch key {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "ctrl+d":
			m.done = true
			return m, tea.Quit
		case "ctrl+r":
			m.reset()
			return m, nil
		case "tab":
			m.cycleFocus(1)
			return m, nil
		case "shift+tab":
			m.cycleFocus(-1)
			return m, nil
		}

		if m.focus == PaneQuery {
			if key == "enter" {
				m.cycleFocus(1)
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			if m.input.Value() != m.pipeline.Query() {
				m.setQuery(m.input.Value())
			}
			return m, cmd
		}

		m.handleKey(key, msg.Text)
	}
	return m, nil
}

func (m browserModel) View() tea.View {
	v := tea.NewView("")
	v.SetContent(RenderBrowser(m.state()))
	v.AltScreen = m.useAltScreen
	v.WindowTitle = "Les petits plats"
	return v
}

func (m browserModel) state() BrowserState {
	return BrowserState{
		Query:     m.pipeline.Query(),
		QueryView: m.input.View(),
		Result:    m.result,
		Lists:     m.lists(),
		Narrow:    m.narrow,
		Cursors:   m.cursors,
		Focus:     m.focus,
		Width:     m.width,
		Height:    m.height,
	}
}

// handleKey processes a key on the tag lists and the chips row.
func (m *browserModel) handleKey(key, text string) {
	if c, ok := m.focus.Category(); ok {
		m.handleListKey(c, key, text)
		return
	}
	if m.focus == PaneTags {
		m.handleChipKey(key)
	}
}

func (m *browserModel) handleListKey(c tags.Category, key, text string) {
	values := m.lists().For(c)
	switch key {
	case "up":
		m.moveCursor(-1, len(values))
	case "down":
		m.moveCursor(1, len(values))
	case "enter", "space", " ":
		cursor := clampCursor(m.cursors[m.focus], len(values))
		if cursor < len(values) {
			m.addTag(tags.Selection{Category: c, Value: values[cursor]})
		}
	case "backspace":
		if n := m.narrow[c]; n != "" {
			_, size := utf8.DecodeLastRuneInString(n)
			m.narrow[c] = n[:len(n)-size]
			m.cursors[m.focus] = 0
		}
	default:
		if text != "" {
			m.narrow[c] += text
			m.cursors[m.focus] = 0
		}
	}
}

func (m *browserModel) handleChipKey(key string) {
	sels := m.result.Tags
	switch key {
	case "left", "h":
		m.moveCursor(-1, len(sels))
	case "right", "l":
		m.moveCursor(1, len(sels))
	case "enter", "backspace", "delete", "x":
		cursor := clampCursor(m.cursors[PaneTags], len(sels))
		if cursor < len(sels) {
			m.removeTag(sels[cursor])
		}
	}
}

func (m *browserModel) setQuery(q string) {
	m.result = m.pipeline.SetQuery(q)
	if m.input.Value() != q {
		m.input.SetValue(q)
	}
	m.clampCursors()
}

func (m *browserModel) addTag(sel tags.Selection) {
	m.result = m.pipeline.AddTag(sel)
	m.narrow[sel.Category] = ""
	m.clampCursors()
}

func (m *browserModel) removeTag(sel tags.Selection) {
	m.result = m.pipeline.RemoveTag(sel)
	m.clampCursors()
}

func (m *browserModel) reset() {
	m.result = m.pipeline.Reset()
	m.input.SetValue("")
	m.narrow = map[tags.Category]string{}
	m.cursors = map[Pane]int{}
}

func (m *browserModel) cycleFocus(step int) {
	idx := 0
	for i, p := range panes {
		if p == m.focus {
			idx = i
			break
		}
	}
	m.focus = panes[(idx+step+len(panes))%len(panes)]
	if m.focus == PaneQuery {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *browserModel) moveCursor(step, length int) {
	m.cursors[m.focus] = clampCursor(m.cursors[m.focus]+step, length)
}

func (m *browserModel) clampCursors() {
	lists := m.lists()
	for _, c := range tags.Categories() {
		p := paneFor(c)
		m.cursors[p] = clampCursor(m.cursors[p], len(lists.For(c)))
	}
	m.cursors[PaneTags] = clampCursor(m.cursors[PaneTags], len(m.result.Tags))
}

// lists applies each category's narrowing text to the current vocabulary.
func (m browserModel) lists() tags.Vocabulary {
	v := m.result.Vocabulary
	for c, text := range m.narrow {
		if strings.TrimSpace(text) != "" {
			v = v.Narrow(c, text)
		}
	}
	return v
}
