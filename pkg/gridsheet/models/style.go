package models

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/image/colornames"
)

// FontStyle is the font style of a cell.
type FontStyle string

const (
	// FontNormal is the regular font.
	FontNormal FontStyle = "normal"
	// FontBold is the bold font weight.
	FontBold FontStyle = "bold"
	// FontItalic is the italic font style.
	FontItalic FontStyle = "italic"
)

// Font size bounds in pixels, and the defaults a new style starts from.
const (
	MinFontSizePx     = 8
	MaxFontSizePx     = 36
	DefaultFontSizePx = 12
	DefaultFontColor  = "#FFFFFF"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// ParseFontStyle parses a font style name, ignoring case.
func ParseFontStyle(s string) (FontStyle, bool) {
	switch fs := FontStyle(strings.ToLower(strings.TrimSpace(s))); fs {
	case FontNormal, FontBold, FontItalic:
		return fs, true
	}
	return "", false
}

// Style is the visual style attached to a range of cells.
type Style struct {
	// FontSizePx is the font size in pixels.
	FontSizePx int `json:"font_size_px"`
	// FontColor is a hex colour (#RGB or #RRGGBB) or a CSS colour name.
	FontColor string `json:"font_color"`
	// FontStyle is one of normal, bold or italic.
	FontStyle FontStyle `json:"font_style"`
}

// DefaultStyle returns a 12px white normal style.
func DefaultStyle() Style {
	return Style{
		FontSizePx: DefaultFontSizePx,
		FontColor:  DefaultFontColor,
		FontStyle:  FontNormal,
	}
}

// Validate checks the size bounds, the colour and the font style.
func (s Style) Validate() error {
	if s.FontSizePx < MinFontSizePx || s.FontSizePx > MaxFontSizePx {
		return fmt.Errorf("font size %dpx outside %d-%dpx", s.FontSizePx, MinFontSizePx, MaxFontSizePx)
	}
	if _, ok := s.HexColor(); !ok {
		return fmt.Errorf("unknown font color %q", s.FontColor)
	}
	switch s.FontStyle {
	case FontNormal, FontBold, FontItalic:
		return nil
	}
	return fmt.Errorf("unknown font style %q", s.FontStyle)
}

// HexColor returns the font colour as six uppercase hex digits without the leading #.
func (s Style) HexColor() (string, bool) {
	c := strings.TrimSpace(s.FontColor)
	if hexColorPattern.MatchString(c) {
		c = strings.ToUpper(c[1:])
		if len(c) == 3 {
			c = string([]byte{c[0], c[0], c[1], c[1], c[2], c[2]})
		}
		return c, true
	}
	if rgba, ok := colornames.Map[strings.ToLower(c)]; ok {
		return fmt.Sprintf("%02X%02X%02X", rgba.R, rgba.G, rgba.B), true
	}
	return "", false
}

// Bold reports whether the style renders with a bold weight.
func (s Style) Bold() bool {
	return s.FontStyle == FontBold
}

// Italic reports whether the style renders in italics.
func (s Style) Italic() bool {
	return s.FontStyle == FontItalic
}

// CSS renders the style as inline CSS declarations.
func (s Style) CSS() string {
	fontStyle, weight := "normal", "normal"
	if s.Italic() {
		fontStyle = "italic"
	}
	if s.Bold() {
		weight = "bold"
	}
	return fmt.Sprintf("color: %s; font-size: %dpx; font-style: %s; font-weight: %s;",
		s.FontColor, s.FontSizePx, fontStyle, weight)
}
