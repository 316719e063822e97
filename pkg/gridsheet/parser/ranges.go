package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyRange indicates a blank range reference.
var ErrEmptyRange = errors.New("empty range reference")

// ParseRangeReference parses a range reference string.
// Format: A1:B3, $A$1:$B$3, Sheet1!A1:B3 or 'My Sheet'!A1:B3.
// A single label such as B2 is a one-cell range. Labels are returned as
// written, minus $ anchors; resolving them is the engine's job.
func ParseRangeReference(ref string) (sheetName, start, end string, err error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", "", "", ErrEmptyRange
	}

	// Split by ! to separate sheet name and range
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheetName = strings.Trim(ref[:idx], "'")
		sheetName = strings.ReplaceAll(sheetName, "''", "'")
		ref = ref[idx+1:]
	}

	// Remove $ signs
	ref = strings.ReplaceAll(ref, "$", "")

	parts := strings.Split(ref, ":")
	switch len(parts) {
	case 1:
		start, end = parts[0], parts[0]
	case 2:
		start, end = parts[0], parts[1]
	default:
		return "", "", "", fmt.Errorf("range reference %q: too many ':' separators", ref)
	}

	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return "", "", "", fmt.Errorf("range reference %q: %w", ref, ErrEmptyRange)
	}
	return sheetName, start, end, nil
}

// quoteSheetName quotes a sheet name for use in a formula reference.
func quoteSheetName(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
