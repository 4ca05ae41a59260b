// Package render provides markdown rendering for terminal output.
package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Options configures the markdown renderer behavior.
type Options struct {
	// Width defines the maximum output width (default: 80)
	Width int

	// Style defines the theme: "dark", "light", "auto", or path to a
	// glamour JSON style file
	Style string
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Width: 80,
		Style: "dark",
	}
}

// WithWidth returns Options with the specified width.
func (o Options) WithWidth(width int) Options {
	o.Width = width
	return o
}

// WithStyle returns Options with the specified style.
func (o Options) WithStyle(style string) Options {
	o.Style = style
	return o
}

// Markdown renders markdown content for terminal display.
func Markdown(content string, opts Options) (string, error) {
	if opts.Width <= 0 {
		opts.Width = 80
	}

	termOpts := []glamour.TermRendererOption{
		glamour.WithWordWrap(opts.Width),
		glamour.WithEmoji(),
		glamour.WithPreservedNewLines(),
	}

	switch opts.Style {
	case "", "dark", "light", "auto", "ascii", "notty", "dracula", "tokyo-night", "pink":
		style := opts.Style
		if style == "" {
			style = "dark"
		}
		termOpts = append(termOpts, glamour.WithStandardStyle(style))
	default:
		// Anything else is a path to a JSON style file
		termOpts = append(termOpts, glamour.WithStylePath(opts.Style))
	}

	renderer, err := glamour.NewTermRenderer(termOpts...)
	if err != nil {
		return "", err
	}

	return renderer.Render(content)
}

// MarkdownWithWidth renders with default options at the given width and
// trims the trailing newlines glamour appends.
func MarkdownWithWidth(content string, width int) (string, error) {
	out, err := Markdown(content, DefaultOptions().WithWidth(width))
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}
