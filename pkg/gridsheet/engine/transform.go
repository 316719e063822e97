package engine

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"
)

// Transform is a whole-grid data quality operation.
type Transform string

const (
	Trim             Transform = "TRIM"
	Upper            Transform = "UPPER"
	Lower            Transform = "LOWER"
	RemoveDuplicates Transform = "REMOVE_DUPLICATES"
	FindAndReplace   Transform = "FIND_AND_REPLACE"
)

// Transforms lists the supported transforms in display order.
var Transforms = []Transform{Trim, Upper, Lower, RemoveDuplicates, FindAndReplace}

// ParseTransform parses a transform name, ignoring case.
func ParseTransform(s string) (Transform, bool) {
	op := Transform(strings.ToUpper(strings.TrimSpace(s)))
	for _, t := range Transforms {
		if op == t {
			return op, true
		}
	}
	return op, false
}

// Apply returns a new grid with op applied; grid itself is never modified.
//
// TRIM, UPPER and LOWER rewrite text cells and leave other cells alone.
// REMOVE_DUPLICATES keeps the first of each set of identical rows.
// FIND_AND_REPLACE treats find as a regular expression and replaces every
// match in every text cell. In replace, \1 and \g<name> refer to groups, \\
// is a backslash and everything else, $ included, is literal. It only runs
// when both find and replace are non-empty, find compiles and every group
// replace refers to exists.
// Any other op, or missing arguments, yields an unchanged copy.
func Apply(grid *models.Grid, op Transform, find, replace string) *models.Grid {
	out := grid.Clone()

	switch op {
	case Trim:
		mapText(out, strings.TrimSpace)
	case Upper:
		mapText(out, cases.Upper(language.Und).String)
	case Lower:
		mapText(out, cases.Lower(language.Und).String)
	case RemoveDuplicates:
		return removeDuplicates(out)
	case FindAndReplace:
		if find == "" || replace == "" {
			return out
		}
		re, err := regexp.Compile(find)
		if err != nil {
			return out
		}
		template, ok := replacementTemplate(re, replace)
		if !ok {
			return out
		}
		mapText(out, func(s string) string {
			return re.ReplaceAllString(s, template)
		})
	}

	return out
}

// replacementTemplate rewrites replace into regexp template syntax: $ is
// doubled, \N and \g<name> become ${N} and ${name}, \\ becomes a backslash.
// ok is false when a reference names a group re does not have.
func replacementTemplate(re *regexp.Regexp, replace string) (string, bool) {
	var b strings.Builder
	for i := 0; i < len(replace); i++ {
		c := replace[i]
		if c == '$' {
			b.WriteString("$$")
			continue
		}
		if c != '\\' || i+1 == len(replace) {
			b.WriteByte(c)
			continue
		}

		next := replace[i+1]
		switch {
		case next >= '1' && next <= '9':
			j := i + 2
			if j < len(replace) && replace[j] >= '0' && replace[j] <= '9' {
				j++
			}
			ref := replace[i+1 : j]
			if !hasGroup(re, ref) {
				return "", false
			}
			b.WriteString("${" + ref + "}")
			i = j - 1
		case next == 'g' && strings.HasPrefix(replace[i+2:], "<"):
			end := strings.IndexByte(replace[i+3:], '>')
			if end < 0 {
				b.WriteByte(c)
				continue
			}
			ref := replace[i+3 : i+3+end]
			if !hasGroup(re, ref) {
				return "", false
			}
			b.WriteString("${" + ref + "}")
			i += 3 + end
		case next == '\\':
			b.WriteByte('\\')
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), true
}

// hasGroup reports whether ref, a group number or name, is a group of re.
func hasGroup(re *regexp.Regexp, ref string) bool {
	if n, err := strconv.Atoi(ref); err == nil {
		return n >= 0 && n <= re.NumSubexp()
	}
	return ref != "" && re.SubexpIndex(ref) >= 0
}

func mapText(g *models.Grid, fn func(string) string) {
	g.MapCells(func(v models.Value) models.Value {
		if v.Kind != models.KindText {
			return v
		}
		return models.Text(fn(v.Text))
	})
}

func removeDuplicates(g *models.Grid) *models.Grid {
	seen := make(map[string]struct{}, g.Rows())
	keep := make([]int, 0, g.Rows())
	for r := 0; r < g.Rows(); r++ {
		key := rowKey(g.Row(r))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, r)
	}
	if len(keep) == g.Rows() {
		return g
	}
	return g.SelectRows(keep)
}

// rowKey encodes a row so that two rows share a key exactly when every value is Equal.
func rowKey(row []models.Value) string {
	var b strings.Builder
	for _, v := range row {
		b.WriteByte(byte('0' + v.Kind))
		switch v.Kind {
		case models.KindText:
			b.WriteString(strconv.Itoa(len(v.Text)))
			b.WriteByte(':')
			b.WriteString(v.Text)
		case models.KindNumber:
			n := v.Number
			if n == 0 {
				n = 0 // folds -0 into 0
			}
			if math.IsNaN(n) {
				n = math.NaN()
			}
			b.WriteString(strconv.FormatUint(math.Float64bits(n), 16))
		}
		b.WriteByte(';')
	}
	return b.String()
}
