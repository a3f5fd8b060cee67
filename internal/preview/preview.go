// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preview renders Markdown for display in a terminal.
package preview

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// DefaultWidth is the word-wrap column used when Options.Width is not set.
const DefaultWidth = 80

// Options selects the rendering style.
type Options struct {
	// Style is a glamour standard style name ("dark", "light", "notty",
	// "ascii", ...). Empty or "auto" detects the terminal background.
	Style string

	// Width is the word-wrap column.
	Width int
}

// Render returns markdown formatted for a terminal.
func Render(markdown string, opts Options) (string, error) {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	style := glamour.WithAutoStyle()
	if opts.Style != "" && opts.Style != "auto" {
		style = glamour.WithStandardStyle(opts.Style)
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("creating %q renderer: %w", opts.Style, err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
