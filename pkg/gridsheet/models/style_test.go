package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyle_Validate(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		ok    bool
	}{
		{"default", DefaultStyle(), true},
		{"short hex", Style{FontSizePx: 8, FontColor: "#abc", FontStyle: FontBold}, true},
		{"named color", Style{FontSizePx: 36, FontColor: "DarkOrchid", FontStyle: FontItalic}, true},
		{"too small", Style{FontSizePx: 7, FontColor: "#000000", FontStyle: FontNormal}, false},
		{"too large", Style{FontSizePx: 37, FontColor: "#000000", FontStyle: FontNormal}, false},
		{"bad hex", Style{FontSizePx: 12, FontColor: "#12345", FontStyle: FontNormal}, false},
		{"unknown name", Style{FontSizePx: 12, FontColor: "blurple", FontStyle: FontNormal}, false},
		{"bad font style", Style{FontSizePx: 12, FontColor: "#000", FontStyle: "oblique"}, false},
	}

	for _, tt := range tests {
		err := tt.style.Validate()
		if tt.ok {
			assert.NoError(t, err, tt.name)
		} else {
			assert.Error(t, err, tt.name)
		}
	}
}

func TestStyle_HexColor(t *testing.T) {
	tests := []struct {
		color string
		want  string
	}{
		{"#ff0000", "FF0000"},
		{"#0aF", "00AAFF"},
		{"red", "FF0000"},
		{"Navy", "000080"},
		{" white ", "FFFFFF"},
	}
	for _, tt := range tests {
		got, ok := Style{FontColor: tt.color}.HexColor()
		assert.True(t, ok, tt.color)
		assert.Equal(t, tt.want, got, tt.color)
	}
}

func TestStyle_CSS(t *testing.T) {
	bold := Style{FontSizePx: 14, FontColor: "#FF0000", FontStyle: FontBold}
	assert.Equal(t, "color: #FF0000; font-size: 14px; font-style: normal; font-weight: bold;", bold.CSS())

	italic := Style{FontSizePx: 10, FontColor: "blue", FontStyle: FontItalic}
	assert.Equal(t, "color: blue; font-size: 10px; font-style: italic; font-weight: normal;", italic.CSS())
}

func TestParseFontStyle(t *testing.T) {
	fs, ok := ParseFontStyle(" Bold ")
	assert.True(t, ok)
	assert.Equal(t, FontBold, fs)

	_, ok = ParseFontStyle("underline")
	assert.False(t, ok)
}

func TestParseChartKind(t *testing.T) {
	for in, want := range map[string]ChartKind{"": ChartNone, "none": ChartNone, "BAR": ChartBar, "line": ChartLine, "Area": ChartArea} {
		got, ok := ParseChartKind(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseChartKind("pie")
	assert.False(t, ok)
}

func TestArea_String(t *testing.T) {
	assert.Equal(t, "A1:D10", Area{R1: 1, C1: 1, R2: 10, C2: 4}.String())
	assert.Equal(t, "", Area{}.String())
}
