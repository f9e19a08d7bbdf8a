package adapter

import (
	"unicode/utf8"

	"github.com/src-d/enry/v2"

	m "mlirutils.dev/pkg/mlirutils/internal/model"
)

// TextFileAdapter decides whether raw file bytes can be treated as text so
// the domain layer never rewrites binary content.
type TextFileAdapter interface {
	// Decode returns the contents as a string and true, or false when the
	// bytes are not UTF-8 text.
	Decode(path m.Path, data []byte) (string, bool)

	// Language names the detected language of a file, or "" when unknown.
	Language(path m.Path, data []byte) string
}

// LocalTextFileAdapter detects binary content with enry.
type LocalTextFileAdapter struct{}

// NewLocalTextFileAdapter constructs a LocalTextFileAdapter.
func NewLocalTextFileAdapter() *LocalTextFileAdapter {
	return &LocalTextFileAdapter{}
}

// Decode rejects invalid UTF-8 and data enry classifies as binary.
func (a *LocalTextFileAdapter) Decode(_ m.Path, data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}

	if enry.IsBinary(data) {
		return "", false
	}

	return string(data), true
}

// Language returns enry's best guess for the file.
func (a *LocalTextFileAdapter) Language(path m.Path, data []byte) string {
	return enry.GetLanguage(path.Base(), data)
}
