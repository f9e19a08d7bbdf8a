package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

const (
	// HeaderPrefix marks the first line of a file as a fixed-width banner.
	HeaderPrefix = "//===-"

	// HeaderWidth is the width a banner line must have.
	HeaderWidth = 80

	headerMarker = "--"
)

var (
	// ErrHeaderUnfixable is returned when a banner cannot be brought back to
	// HeaderWidth by growing or shrinking a dash run.
	ErrHeaderUnfixable = errors.New("header cannot be fitted to width")

	// ErrHeaderTooLong is the ErrHeaderUnfixable case of a line that is too
	// wide and holds no contiguous run of surplus dashes.
	ErrHeaderTooLong = fmt.Errorf("%w: too long", ErrHeaderUnfixable)

	// ErrHeaderTooShort is the ErrHeaderUnfixable case of a line that is too
	// narrow and holds no "--" marker to widen.
	ErrHeaderTooShort = fmt.Errorf("%w: too short", ErrHeaderUnfixable)
)

// FixHeader re-balances the dash run of a `//===-` banner on the first line
// of content so the line is exactly HeaderWidth characters wide.
//
// It returns the new content and true when the banner was adjusted, the
// unchanged content and false when there is nothing to do, and an error
// wrapping ErrHeaderUnfixable when neither adjustment applies.
func FixHeader(content string) (string, bool, error) {
	if !strings.HasPrefix(content, HeaderPrefix) {
		return content, false, nil
	}

	line := firstLine(content)
	width := uniseg.GraphemeClusterCount(line)

	diff := HeaderWidth - width
	if diff == 0 {
		return content, false, nil
	}

	var newLine string

	switch {
	case diff > 0:
		if !strings.Contains(line, headerMarker) {
			return content, false, ErrHeaderTooShort
		}

		newLine = strings.Replace(line, headerMarker, strings.Repeat("-", diff)+headerMarker, 1)
	default:
		surplus := strings.Repeat("-", -diff)
		if !strings.Contains(line, surplus) {
			return content, false, ErrHeaderTooLong
		}

		newLine = strings.Replace(line, surplus, "", 1)
	}

	return newLine + content[len(line):], true, nil
}

// firstLine returns the first line of content without its terminator.
func firstLine(content string) string {
	line := content
	if idx := strings.IndexByte(content, '\n'); idx >= 0 {
		line = content[:idx]
	}

	return strings.TrimSuffix(line, "\r")
}
