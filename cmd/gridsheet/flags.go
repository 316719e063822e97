package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"
	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/parser"
)

// styleDecl is one parsed --style flag.
type styleDecl struct {
	start string
	end   string
	style models.Style
}

func parseRange(ref string) (sheet, start, end string, err error) {
	sheet, start, end, err = parser.ParseRangeReference(ref)
	if err != nil {
		return "", "", "", fmt.Errorf("invalid range %q: %w", ref, err)
	}
	return sheet, start, end, nil
}

// parseStyleDecl parses "A1:B2,14,#FF0000,bold". The range may be a single
// label. Colour and font style default to the baseline defaults when omitted.
func parseStyleDecl(spec string) (styleDecl, error) {
	ref, rest, _ := strings.Cut(spec, ",")
	_, start, end, err := parseRange(ref)
	if err != nil {
		return styleDecl{}, fmt.Errorf("style %q: %w", spec, err)
	}
	style, err := parseStyle(rest)
	if err != nil {
		return styleDecl{}, fmt.Errorf("style %q: %w", spec, err)
	}
	return styleDecl{start: start, end: end, style: style}, nil
}

// parseBaseline parses "12,#FFFFFF,normal".
func parseBaseline(spec string) (models.Style, error) {
	style, err := parseStyle(spec)
	if err != nil {
		return models.Style{}, fmt.Errorf("baseline %q: %w", spec, err)
	}
	return style, nil
}

func parseStyle(spec string) (models.Style, error) {
	style := models.DefaultStyle()
	if strings.TrimSpace(spec) == "" {
		return style, nil
	}

	fields := strings.Split(spec, ",")
	if len(fields) > 3 {
		return models.Style{}, fmt.Errorf("expected SIZE_PX,COLOR,FONT_STYLE, got %d fields", len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	if fields[0] != "" {
		size, err := strconv.Atoi(strings.TrimSuffix(fields[0], "px"))
		if err != nil {
			return models.Style{}, fmt.Errorf("font size %q is not a whole number of pixels", fields[0])
		}
		style.FontSizePx = size
	}
	if len(fields) > 1 && fields[1] != "" {
		style.FontColor = fields[1]
	}
	if len(fields) > 2 && fields[2] != "" {
		fontStyle, ok := models.ParseFontStyle(fields[2])
		if !ok {
			return models.Style{}, fmt.Errorf("font style %q must be normal, bold or italic", fields[2])
		}
		style.FontStyle = fontStyle
	}

	if err := style.Validate(); err != nil {
		return models.Style{}, err
	}
	return style, nil
}
