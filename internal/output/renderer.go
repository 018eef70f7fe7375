package output

import (
	"io"

	"github.com/jokarl/nearacct/internal/types"
)

// Renderer defines the interface for output renderers
type Renderer interface {
	// RenderAccount writes the resolved new account
	RenderAccount(w io.Writer, account *types.NewAccount) error

	// RenderCheck writes the result of a one-shot check
	RenderCheck(w io.Writer, report *types.CheckReport) error
}

// Format represents an output format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ValidFormats returns the names of all supported formats
func ValidFormats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
}

// IsValidFormat reports whether format names a supported format
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats() {
		if f == format {
			return true
		}
	}
	return false
}

// NewRenderer creates a renderer for the given format
func NewRenderer(format Format, colorEnabled bool) Renderer {
	switch format {
	case FormatJSON:
		return &JSONRenderer{}
	case FormatYAML:
		return &YAMLRenderer{}
	default:
		return &TextRenderer{ColorEnabled: colorEnabled}
	}
}
