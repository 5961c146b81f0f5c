// Package pipeline owns the search session: the current query and the
// active tag selections. Every change recomputes the visible recipes and
// the selectable vocabulary from the full catalog.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/sferrer-dev/petitsplats/internal/filter"
	"github.com/sferrer-dev/petitsplats/internal/logger"
	"github.com/sferrer-dev/petitsplats/internal/recipes"
	"github.com/sferrer-dev/petitsplats/internal/tags"
	"github.com/sferrer-dev/petitsplats/internal/text"
)

// Result is the state handed to the presentation layer after a change.
type Result struct {
	Query string           `json:"query" yaml:"query"`
	Tags  []tags.Selection `json:"tags" yaml:"tags"`
	// Visible is FilterByTags(Tags, SearchByText(Query, catalog)).
	Visible []*recipes.Recipe `json:"-" yaml:"-"`
	// Vocabulary is extracted from Visible, without the selected values,
	// sorted for display.
	Vocabulary tags.Vocabulary `json:"vocabulary" yaml:"vocabulary"`
}

// Empty reports whether no recipe matched.
func (r Result) Empty() bool {
	return len(r.Visible) == 0
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger receiving the per-step debug trace.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}

// WithSorter sets the collation used to sort the vocabulary.
func WithSorter(s *text.Sorter) Option {
	return func(p *Pipeline) {
		if s != nil {
			p.sorter = s
		}
	}
}

// Pipeline is not safe for concurrent use. A session is driven by one
// goroutine, one change at a time.
type Pipeline struct {
	catalog *recipes.Catalog
	log     *zap.SugaredLogger
	sorter  *text.Sorter

	query string
	tags  *tags.Selections
	last  Result
}

// New returns a pipeline over catalog with an empty query and no tags. The
// initial result shows the whole catalog.
func New(catalog *recipes.Catalog, opts ...Option) *Pipeline {
	p := &Pipeline{
		catalog: catalog,
		log:     logger.Nop(),
		sorter:  text.NewSorter(text.DefaultLocale),
		tags:    tags.NewSelections(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.Recompute()
	return p
}

// SetQuery replaces the current query.
func (p *Pipeline) SetQuery(q string) Result {
	p.query = q
	return p.Recompute()
}

// AddTag appends sel to the active selections. Adding a pair that is
// already active changes nothing.
func (p *Pipeline) AddTag(sel tags.Selection) Result {
	if !p.tags.Add(sel) {
		p.log.Debugw("tag already active", logger.FieldCategory, sel.Category, logger.FieldValue, sel.Value)
	}
	return p.Recompute()
}

// RemoveTag drops sel from the active selections. Removing a pair that is
// not active changes nothing.
func (p *Pipeline) RemoveTag(sel tags.Selection) Result {
	if !p.tags.Remove(sel) {
		p.log.Debugw("tag not active", logger.FieldCategory, sel.Category, logger.FieldValue, sel.Value)
	}
	return p.Recompute()
}

// ClearTags drops every active selection and keeps the query.
func (p *Pipeline) ClearTags() Result {
	p.tags.Clear()
	return p.Recompute()
}

// Reset clears both the query and the selections.
func (p *Pipeline) Reset() Result {
	p.query = ""
	p.tags.Clear()
	return p.Recompute()
}

// Recompute reapplies the text search then the tag filter to the full
// catalog and refreshes the vocabulary.
func (p *Pipeline) Recompute() Result {
	all := p.catalog.All()
	sels := p.tags.List()

	searched := filter.SearchByText(p.query, all)
	p.trace("search", len(all), len(searched), logger.FieldQuery, p.query)

	visible := filter.FilterByTags(sels, searched)
	p.trace("tags", len(searched), len(visible), logger.FieldTags, len(sels))

	p.last = Result{
		Query:      p.query,
		Tags:       sels,
		Visible:    visible,
		Vocabulary: tags.Extract(visible).Without(sels).Sorted(p.sorter),
	}
	return p.last
}

func (p *Pipeline) trace(step string, before, after int, kv ...any) {
	fields := append([]any{
		logger.FieldStep, step,
		logger.FieldBefore, before,
		logger.FieldAfter, after,
	}, kv...)
	p.log.Debugw("filter", fields...)
}

// Query returns the current query as set, untrimmed.
func (p *Pipeline) Query() string {
	return p.query
}

// Tags returns the active selections in the order they were added.
func (p *Pipeline) Tags() []tags.Selection {
	return p.tags.List()
}

// Last returns the result of the most recent recompute.
func (p *Pipeline) Last() Result {
	return p.last
}

// Catalog returns the catalog the pipeline filters.
func (p *Pipeline) Catalog() *recipes.Catalog {
	return p.catalog
}
