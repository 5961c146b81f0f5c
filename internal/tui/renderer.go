package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sferrer-dev/petitsplats/internal/filter"
	"github.com/sferrer-dev/petitsplats/internal/pipeline"
	"github.com/sferrer-dev/petitsplats/internal/tags"
)

const (
	defaultWidth      = 80
	defaultListHeight = 8
	defaultResults    = 10
)

// EmptyMessage is shown when no recipe matches the query and tags.
const EmptyMessage = "Aucune recette ne correspond à votre critère"

// Pane is a focusable area of the browser.
type Pane int

const (
	PaneQuery Pane = iota
	PaneIngredients
	PaneUtensils
	PaneAppliances
	PaneTags
)

var panes = []Pane{PaneQuery, PaneIngredients, PaneUtensils, PaneAppliances, PaneTags}

// Category returns the tag category listed in the pane, if any.
func (p Pane) Category() (tags.Category, bool) {
	switch p {
	case PaneIngredients:
		return tags.Ingredients, true
	case PaneUtensils:
		return tags.Utensils, true
	case PaneAppliances:
		return tags.Appliances, true
	}
	return "", false
}

func paneFor(c tags.Category) Pane {
	switch c {
	case tags.Ingredients:
		return PaneIngredients
	case tags.Utensils:
		return PaneUtensils
	default:
		return PaneAppliances
	}
}

// BrowserState is everything RenderBrowser needs. It holds no behaviour so
// rendering can be tested without a terminal.
type BrowserState struct {
	Query     string
	QueryView string
	Result    pipeline.Result
	// Lists is the vocabulary after each list's narrowing text is applied.
	Lists   tags.Vocabulary
	Narrow  map[tags.Category]string
	Cursors map[Pane]int
	Focus   Pane
	Width   int
	Height  int
}

func RenderBrowser(state BrowserState) string {
	width := state.Width
	if width <= 0 {
		width = defaultWidth
	}
	styles := getStyles()

	lines := []string{styles.HeaderStyle.Render("Les petits plats")}
	lines = append(lines, renderQuery(state, width))
	lines = append(lines, renderChips(state, width))
	lines = append(lines, renderTagColumns(state, width))
	lines = append(lines, renderResults(state, width)...)
	lines = append(lines, renderBrowserFooter(state.Focus, width))
	return strings.Join(lines, "\n")
}

func renderQuery(state BrowserState, width int) string {
	view := state.QueryView
	if view == "" {
		view = state.Query
	}
	line := "Rechercher : " + view
	if state.Focus == PaneQuery {
		line = getStyles().SelectedStyle.Render("> ") + line
	} else {
		line = "  " + line
	}
	if q := strings.TrimSpace(state.Query); q != "" && !filter.IsActiveQuery(q) {
		line += getStyles().SubtleStyle.Render(fmt.Sprintf("  (%d caractères minimum)", filter.MinQueryLength))
	}
	return getStyles().SearchInputStyle.Render(line)
}

func renderChips(state BrowserState, width int) string {
	sels := state.Result.Tags
	if len(sels) == 0 {
		return "  Tags : " + getStyles().SubtleStyle.Render("aucun")
	}

	cursor := clampCursor(state.Cursors[PaneTags], len(sels))
	chips := make([]string, 0, len(sels))
	for i, sel := range sels {
		label := truncateToWidth(sel.Value, width/2) + " ×"
		if state.Focus == PaneTags && i == cursor {
			chips = append(chips, getStyles().ActiveChipStyle.Render(label))
			continue
		}
		chips = append(chips, getStyles().ChipStyle.Render(label))
	}
	prefix := "  "
	if state.Focus == PaneTags {
		prefix = "> "
	}
	return prefix + "Tags : " + strings.Join(chips, " ")
}

func renderTagColumns(state BrowserState, width int) string {
	colWidth := width/3 - 2
	if colWidth < 12 {
		colWidth = 12
	}

	columns := make([]string, 0, 3)
	for _, c := range tags.Categories() {
		pane := paneFor(c)
		columns = append(columns, renderTagColumn(
			c,
			state.Lists.For(c),
			state.Narrow[c],
			state.Cursors[pane],
			state.Focus == pane,
			colWidth,
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func renderTagColumn(c tags.Category, values []string, narrow string, cursor int, focused bool, width int) string {
	styles := getStyles()
	inner := width - 2

	header := fmt.Sprintf("%s (%d)", c.Label(), len(values))
	lines := []string{styles.HeaderStyle.Render(truncateToWidth(header, inner))}
	if narrow != "" || focused {
		lines = append(lines, styles.SubtleStyle.Render(truncateToWidth("filtre : "+narrow, inner)))
	}

	cursor = clampCursor(cursor, len(values))
	start, end := listWindow(cursor, len(values), defaultListHeight)
	for i := start; i < end; i++ {
		mark := "  "
		if focused && i == cursor {
			mark = "> "
		}
		line := truncateToWidth(mark+values[i], inner)
		if focused && i == cursor {
			line = styles.SelectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	if len(values) == 0 {
		lines = append(lines, styles.EmptyStyle.Render("(vide)"))
	}

	box := styles.BorderStyle
	if focused {
		box = styles.FocusedBorderStyle
	}
	return box.Width(width).Render(strings.Join(lines, "\n"))
}

func renderResults(state BrowserState, width int) []string {
	visible := state.Result.Visible
	if len(visible) == 0 {
		return []string{getStyles().EmptyStyle.Render(EmptyMessage)}
	}

	limit := defaultResults
	if state.Height > 0 {
		// header, query, chips, columns with borders, count and footer
		limit = state.Height - (defaultListHeight + 9)
	}
	if limit < 3 {
		limit = 3
	}

	lines := []string{getStyles().HeaderStyle.Render(fmt.Sprintf("%d recette(s)", len(visible)))}
	for i, r := range visible {
		if i == limit {
			lines = append(lines, getStyles().SubtleStyle.Render(fmt.Sprintf("  … et %d autre(s)", len(visible)-limit)))
			break
		}
		line := fmt.Sprintf("  #%d %s · %d min", r.ID, r.Name, r.Time)
		lines = append(lines, truncateToWidth(line, width))
	}
	return lines
}

func renderBrowserFooter(focus Pane, width int) string {
	footer := "Tab panneau suivant • Ctrl+R réinitialiser • Ctrl+D terminer • Esc quitter"
	switch focus {
	case PaneIngredients, PaneUtensils, PaneAppliances:
		footer = "↑/↓ choisir • Entrée ajouter • saisir pour filtrer • " + footer
	case PaneTags:
		footer = "←/→ choisir • Entrée/Suppr retirer • " + footer
	}
	return getStyles().FooterStyle.Render(truncateToWidth(footer, width))
}

// listWindow returns the [start, end) slice of a list of n items that keeps
// cursor visible in at most height rows.
func listWindow(cursor, n, height int) (int, int) {
	if n <= height {
		return 0, n
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > n {
		start = n - height
	}
	return start, start + height
}

func truncateToWidth(text string, width int) string {
	runes := []rune(text)
	if width <= 0 || len(runes) <= width {
		return text
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

func clampCursor(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}
