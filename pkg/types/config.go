package types

import (
	"errors"
	"fmt"
)

// AnchorStyle selects how rewritten headings name their anchors.
type AnchorStyle string

const (
	// AnchorSlug derives the anchor from the heading text (e.g. "getting-started").
	AnchorSlug AnchorStyle = "slug"

	// AnchorLabel numbers anchors in document order (e.g. "readme_label_0").
	AnchorLabel AnchorStyle = "label"
)

// Defaults applied when neither flags, environment nor config file set a value.
const (
	DefaultOutput      = "README.md"
	DefaultTOCMarker   = "[TOC]"
	DefaultLabelPrefix = "readme_label_"
	DefaultLogLevel    = "info"
)

// TransformConfig holds settings for the README transformation.
type TransformConfig struct {
	// Output is the path the transformed README is written to. It is created
	// or truncated on every run.
	Output string `json:"output" yaml:"output"`

	// AnchorStyle selects slug or label anchors (default slug).
	AnchorStyle AnchorStyle `json:"anchor_style" yaml:"anchor_style"`

	// TOCMarker is the placeholder line written in place of the title.
	TOCMarker string `json:"toc_marker" yaml:"toc_marker"`

	// LabelPrefix prefixes the counter in label anchors.
	LabelPrefix string `json:"label_prefix" yaml:"label_prefix"`

	// Echo copies every input line to stdout as it is read.
	Echo bool `json:"echo" yaml:"echo"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `json:"level" yaml:"level"`

	// JSON switches the log handler from text to JSON records.
	JSON bool `json:"json" yaml:"json"`
}

// Config groups all doxme settings.
type Config struct {
	Transform TransformConfig `json:"transform" yaml:"transform"`
	Log       LogConfig       `json:"log" yaml:"log"`
}

// DefaultConfig returns the configuration doxme runs with when nothing is set.
func DefaultConfig() Config {
	return Config{
		Transform: TransformConfig{
			Output:      DefaultOutput,
			AnchorStyle: AnchorSlug,
			TOCMarker:   DefaultTOCMarker,
			LabelPrefix: DefaultLabelPrefix,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// Validate reports settings the transformer cannot run with.
func (c Config) Validate() error {
	var errs []error
	switch c.Transform.AnchorStyle {
	case AnchorSlug, AnchorLabel:
	default:
		errs = append(errs, fmt.Errorf("unsupported anchor style %q: use %s or %s",
			c.Transform.AnchorStyle, AnchorSlug, AnchorLabel))
	}
	if c.Transform.Output == "" {
		errs = append(errs, errors.New("output path must not be empty"))
	}
	if c.Transform.TOCMarker == "" {
		errs = append(errs, errors.New("toc marker must not be empty"))
	}
	return errors.Join(errs...)
}
