package engine

import "github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"

// StyleKey is the literal label pair a style was registered under.
type StyleKey struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// String returns the key in A1:B2 form.
func (k StyleKey) String() string {
	return k.Start + ":" + k.End
}

// StyleEntry is one registered style declaration.
type StyleEntry struct {
	Key   StyleKey     `json:"range"`
	Style models.Style `json:"style"`
}

// StyleRegistry holds style declarations in insertion order.
// The zero value is an empty registry ready to use.
type StyleRegistry struct {
	order  []StyleKey
	styles map[StyleKey]models.Style
}

// NewStyleRegistry returns an empty registry.
func NewStyleRegistry() *StyleRegistry {
	return &StyleRegistry{styles: make(map[StyleKey]models.Style)}
}

// Register stores style under the literal (start, end) key. Registering an
// existing key replaces its style and keeps the key's original position, so
// two declarations of the same text collapse into one.
func (r *StyleRegistry) Register(start, end string, style models.Style) {
	if r.styles == nil {
		r.styles = make(map[StyleKey]models.Style)
	}
	key := StyleKey{Start: start, End: end}
	if _, exists := r.styles[key]; !exists {
		r.order = append(r.order, key)
	}
	r.styles[key] = style
}

// Lookup returns the style registered under (start, end).
func (r *StyleRegistry) Lookup(start, end string) (models.Style, bool) {
	if r == nil {
		return models.Style{}, false
	}
	s, ok := r.styles[StyleKey{Start: start, End: end}]
	return s, ok
}

// Len returns the number of registered declarations.
func (r *StyleRegistry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// Entries returns the declarations in overlay order.
func (r *StyleRegistry) Entries() []StyleEntry {
	if r == nil {
		return nil
	}
	out := make([]StyleEntry, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, StyleEntry{Key: key, Style: r.styles[key]})
	}
	return out
}

// ResolveAll paints the cells of each registered range with its style, in
// registry order, so later declarations win where ranges overlap. The result
// holds only painted cells. Declarations whose labels do not resolve against
// grid are skipped.
func ResolveAll(grid *models.Grid, reg *StyleRegistry) map[CellAddress]models.Style {
	out := make(map[CellAddress]models.Style)
	for _, entry := range reg.Entries() {
		rng, err := ResolveRange(entry.Key.Start, entry.Key.End, grid)
		if err != nil {
			continue
		}
		for addr := range rng.Cells() {
			out[addr] = entry.Style
		}
	}
	return out
}

// Unresolved returns the keys ResolveAll skips for grid.
func Unresolved(grid *models.Grid, reg *StyleRegistry) []StyleKey {
	var out []StyleKey
	for _, entry := range reg.Entries() {
		if _, err := ResolveRange(entry.Key.Start, entry.Key.End, grid); err != nil {
			out = append(out, entry.Key)
		}
	}
	return out
}

// StyleAt returns the resolved style of addr, or baseline for unpainted cells.
func StyleAt(resolved map[CellAddress]models.Style, addr CellAddress, baseline models.Style) models.Style {
	if s, ok := resolved[addr]; ok {
		return s
	}
	return baseline
}
