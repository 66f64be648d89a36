package dialog

import (
	"bytes"
	"strings"

	"charm.land/glamour/v2"
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mark3labs/stepform/internal/tui/theme"
)

// renderMarkdown renders markdown content using glamour. Falls back to
// the raw text if rendering fails.
func renderMarkdown(content string, width int) string {
	if width > 120 {
		width = 120
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	// Remove trailing newline that glamour adds.
	return strings.TrimSuffix(rendered, "\n")
}

// highlightYAML syntax-highlights a YAML snippet for the review step's
// value preview. Returns the input unchanged when highlighting fails.
func highlightYAML(src string) string {
	lexer := lexers.Get("yaml")
	if lexer == nil {
		return src
	}

	baseStyle := styles.Get("monokai")
	if baseStyle == nil {
		baseStyle = styles.Fallback
	}

	// Retint token backgrounds so the snippet sits on the modal's
	// surface color instead of monokai's own background.
	bgColour := chroma.MustParseColour(theme.Current().BgSurface0)
	style, err := baseStyle.Builder().Transform(func(entry chroma.StyleEntry) chroma.StyleEntry {
		entry.Background = bgColour
		return entry
	}).Build()
	if err != nil {
		style = baseStyle
	}

	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		return src
	}

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return src
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
