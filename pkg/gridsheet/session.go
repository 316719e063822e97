package gridsheet

import (
	"context"
	"fmt"
	"path/filepath"

	"go.alis.build/alog"

	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/engine"
	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"
	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/parser"
)

// Session is one editing session: a grid, the style declarations made
// against it and the workbook options used to load and save it.
// A Session is not safe for concurrent use.
type Session struct {
	grid      *models.Grid
	styles    *engine.StyleRegistry
	opts      Options
	bookName  string
	sheetName string
}

// NewSession returns a session holding a blank DefaultRows x DefaultCols grid.
func NewSession(opts Options) *Session {
	return &Session{
		grid:   models.NewGrid(DefaultRows, DefaultCols),
		styles: engine.NewStyleRegistry(),
		opts:   opts,
	}
}

// Reset replaces the grid with a blank rows x cols grid and drops every
// style declaration.
func (s *Session) Reset(ctx context.Context, rows, cols int) error {
	if rows < 1 || cols < 1 || cols > 26 {
		return fmt.Errorf("grid size %dx%d: need at least 1 row and 1 to 26 columns", rows, cols)
	}
	s.grid = models.NewGrid(rows, cols)
	s.styles = engine.NewStyleRegistry()
	s.bookName, s.sheetName = "", ""
	alog.Debugf(ctx, "reset to a blank %dx%d grid", rows, cols)
	return nil
}

// Grid returns the current grid. Callers must not modify it.
func (s *Session) Grid() *models.Grid { return s.grid }

// Styles returns the style registry.
func (s *Session) Styles() *engine.StyleRegistry { return s.styles }

// Options returns the session's workbook options.
func (s *Session) Options() Options { return s.opts }

// SetCell stores v at label.
func (s *Session) SetCell(label string, v models.Value) error {
	addr, err := engine.Resolve(label, s.grid)
	if err != nil {
		return err
	}
	return s.grid.Set(addr.Row(), addr.Col(), v)
}

// AppendRow adds a row at the bottom of the grid.
func (s *Session) AppendRow(values ...models.Value) error {
	return s.grid.AppendRow(values...)
}

// AddColumn adds an empty column and returns its label.
func (s *Session) AddColumn() string {
	return s.grid.AddColumn()
}

// Evaluate computes op over start..end of the current grid.
func (s *Session) Evaluate(ctx context.Context, op engine.Aggregate, start, end string) engine.Result {
	res := engine.Evaluate(s.grid, op, start, end)
	if !res.OK() {
		alog.Debugf(ctx, "evaluate %s %s:%s: %v", op, start, end, res.Err)
	}
	return res
}

// Transform replaces the grid with the result of op. Registered styles are
// kept; entries that no longer resolve are skipped by ResolveStyles.
func (s *Session) Transform(ctx context.Context, op engine.Transform, find, replace string) {
	before := s.grid.Rows()
	s.grid = engine.Apply(s.grid, op, find, replace)
	alog.Debugf(ctx, "transform %s: %d rows -> %d rows", op, before, s.grid.Rows())
}

// ApplyStyle registers style for the range start..end. Both labels must
// resolve against the current grid.
func (s *Session) ApplyStyle(ctx context.Context, start, end string, style models.Style) error {
	if err := style.Validate(); err != nil {
		return err
	}
	if _, err := engine.ResolveRange(start, end, s.grid); err != nil {
		return err
	}
	if prev, ok := s.styles.Lookup(start, end); ok {
		alog.Debugf(ctx, "style %s:%s replaces %+v", start, end, prev)
	}
	s.styles.Register(start, end, style)
	alog.Debugf(ctx, "style %s:%s registered (%d declarations)", start, end, s.styles.Len())
	return nil
}

// ResolveStyles returns the painted cells of the current grid.
func (s *Session) ResolveStyles(ctx context.Context) map[engine.CellAddress]models.Style {
	for _, key := range engine.Unresolved(s.grid, s.styles) {
		alog.Warnf(ctx, "style %s skipped: range no longer resolves against a %dx%d grid", key, s.grid.Rows(), s.grid.Cols())
	}
	return engine.ResolveAll(s.grid, s.styles)
}

// Load replaces the grid with a sheet read from path. On failure the
// current grid is left as it was.
func (s *Session) Load(ctx context.Context, path string) error {
	grid, sheetName, err := LoadGrid(path, s.opts)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	s.grid = grid
	s.bookName = filepath.Base(path)
	s.sheetName = sheetName
	alog.Infof(ctx, "loaded %s!%s: %d rows, %d columns", s.bookName, sheetName, grid.Rows(), grid.Cols())
	return nil
}

// Save writes the grid and its resolved styles to path.
func (s *Session) Save(ctx context.Context, path string) error {
	opts := s.opts
	if opts.Sheet == "" {
		opts.Sheet = s.sheetName
	}
	if err := SaveGrid(path, s.grid, s.ResolveStyles(ctx), opts); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	alog.Infof(ctx, "saved %s: %d rows, %d columns", filepath.Base(path), s.grid.Rows(), s.grid.Cols())
	return nil
}

// Summary describes the current grid.
func (s *Session) Summary() models.Summary {
	sum := models.Summary{
		BookName:  s.bookName,
		SheetName: s.sheetName,
		Rows:      s.grid.Rows(),
		Cols:      s.grid.Cols(),
		Labels:    s.grid.Labels(),
		Totals:    engine.ColumnTotals(s.grid),
	}
	if s.grid.HasCaptions() {
		sum.Captions = make([]string, s.grid.Cols())
		for c := range sum.Captions {
			sum.Captions[c] = s.grid.Caption(c)
		}
	}
	if area, nonEmpty, ok := parser.UsedRange(s.grid); ok {
		sum.UsedRange = area.String()
		sum.NonEmpty = nonEmpty
	}
	return sum
}
