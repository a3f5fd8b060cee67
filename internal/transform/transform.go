// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transform rewrites a Markdown README into doxygen input.
//
// The transformation is a single pass over the input lines. The first line
// must be a level-1 heading; it is replaced by a table-of-contents marker.
// Every level-2-or-deeper heading loses one leading '#' and gains an
// explicit {#anchor} tag. An existing "## Table of contents" block is
// dropped up to the next heading. All other lines are copied unchanged.
package transform

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/doxme/pkg/types"
)

const (
	titlePrefix   = "# "
	headingPrefix = "##"
	tocHeading    = "## Table of contents"
)

// Options controls a transformation run. Zero values fall back to the
// defaults in package types.
type Options struct {
	AnchorStyle types.AnchorStyle
	TOCMarker   string
	LabelPrefix string

	// Echo receives every input line as it is read. Nil disables echoing.
	Echo io.Writer
}

// OptionsFromConfig builds run options from the transform settings.
func OptionsFromConfig(cfg types.TransformConfig) Options {
	return Options{
		AnchorStyle: cfg.AnchorStyle,
		TOCMarker:   cfg.TOCMarker,
		LabelPrefix: cfg.LabelPrefix,
	}
}

func (o Options) withDefaults() Options {
	if o.AnchorStyle == "" {
		o.AnchorStyle = types.AnchorSlug
	}
	if o.TOCMarker == "" {
		o.TOCMarker = types.DefaultTOCMarker
	}
	if o.LabelPrefix == "" {
		o.LabelPrefix = types.DefaultLabelPrefix
	}
	return o
}

// Heading is a rewritten heading together with the anchor it received.
type Heading struct {
	// Line is the 1-based input line number.
	Line int `json:"line" yaml:"line"`

	// Level is the number of leading '#' characters in the input.
	Level int `json:"level" yaml:"level"`

	// Text is the heading text without '#' markers or surrounding whitespace.
	Text string `json:"text" yaml:"text"`

	// Anchor is the id written into the {#...} tag.
	Anchor string `json:"anchor" yaml:"anchor"`
}

// Result summarizes a transformation run.
type Result struct {
	Lines    int
	Written  int
	Skipped  int
	Title    string
	Headings []Heading
}

type state int

const (
	stateNormal state = iota
	stateSkipping
)

// Transformer holds the state of one run. Use New for each document.
type Transformer struct {
	opts   Options
	first  bool
	state  state
	labels int
	result Result
}

// New returns a Transformer positioned before the first line.
func New(opts Options) *Transformer {
	return &Transformer{opts: opts.withDefaults(), first: true}
}

// Result returns the summary accumulated so far.
func (t *Transformer) Result() Result {
	return t.result
}

// Line processes one input line, given without its terminator, and returns
// the text to append to the output. The returned text is empty when the
// line is dropped and otherwise ends in a newline.
func (t *Transformer) Line(line string) (string, error) {
	t.result.Lines++
	if t.opts.Echo != nil {
		if _, err := fmt.Fprintln(t.opts.Echo, line); err != nil {
			return "", fmt.Errorf("echoing line %d: %w", t.result.Lines, err)
		}
	}

	if t.first {
		if !strings.HasPrefix(line, titlePrefix) {
			return "", &FormatError{Line: line}
		}
		t.first = false
		t.result.Title = strings.TrimSpace(line[len(titlePrefix):])
		return t.emit(t.opts.TOCMarker, ""), nil
	}

	if t.state == stateSkipping {
		if !strings.HasPrefix(line, headingPrefix) {
			t.result.Skipped++
			return "", nil
		}
		t.state = stateNormal
	}

	if strings.TrimSpace(line) == tocHeading {
		t.state = stateSkipping
		t.result.Skipped++
		return "", nil
	}

	if strings.HasPrefix(line, headingPrefix) {
		return t.emit(t.heading(line)), nil
	}
	return t.emit(line), nil
}

// heading rewrites a level-2-or-deeper heading line and records it.
func (t *Transformer) heading(line string) string {
	text := HeadingText(line)
	var anchor string
	switch t.opts.AnchorStyle {
	case types.AnchorLabel:
		anchor = fmt.Sprintf("%s%d", t.opts.LabelPrefix, t.labels)
		t.labels++
	default:
		anchor = Slug(text)
	}
	t.result.Headings = append(t.result.Headings, Heading{
		Line:   t.result.Lines,
		Level:  len(line) - len(strings.TrimLeft(line, "#")),
		Text:   text,
		Anchor: anchor,
	})
	return line[1:] + " {#" + anchor + "}"
}

func (t *Transformer) emit(lines ...string) string {
	t.result.Written += len(lines)
	return strings.Join(lines, "\n") + "\n"
}

// HeadingText strips every leading '#' and the surrounding whitespace.
func HeadingText(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "#"))
}

// Transform reads r line by line and writes the rewritten document to w.
// A *FormatError is returned when the first line is not a level-1 heading;
// nothing has been written to w in that case. Empty input produces empty
// output.
func Transform(r io.Reader, w io.Writer, opts Options) (Result, error) {
	t := New(opts)
	br := bufio.NewReader(r)
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return t.Result(), fmt.Errorf("reading input: %w", readErr)
		}
		if line != "" {
			out, err := t.Line(trimEOL(line))
			if err != nil {
				return t.Result(), err
			}
			if out != "" {
				if _, err := io.WriteString(w, out); err != nil {
					return t.Result(), fmt.Errorf("writing output: %w", err)
				}
			}
		}
		if readErr == io.EOF {
			return t.Result(), nil
		}
	}
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
