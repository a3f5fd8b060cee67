// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/doxme/internal/transform"
	"github.com/pdiddy/doxme/pkg/types"
)

func newAnchorsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anchors <readme>",
		Short: "List the headings of a README and the anchors they receive",
		Long: `Anchors runs the transformation without writing any file and lists
every rewritten heading with its line number, level and anchor. Use it to
find the ids to link to from other doxygen pages. Duplicate anchors are
reported on stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return a.runAnchors(args[0], format)
		},
	}
	cmd.Flags().String("format", "table", "output format: table, yaml or json")
	return cmd
}

func (a *app) runAnchors(input, format string) error {
	switch format {
	case "table", "yaml", "json":
	default:
		return fmt.Errorf("unsupported format %q: use table, yaml or json", format)
	}

	cfg, err := a.config()
	if err != nil {
		return err
	}
	_, result, err := a.transformInMemory(input, cfg.Transform)
	if err != nil {
		return err
	}
	a.warnDuplicates(result.Headings)

	headings := result.Headings
	if headings == nil {
		headings = []transform.Heading{}
	}
	return formatAnchors(a.stdout, headings, format)
}

func formatAnchors(w io.Writer, headings []transform.Heading, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(headings)
	case "yaml":
		data, err := yaml.Marshal(headings)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	if len(headings) == 0 {
		_, err := fmt.Fprintln(w, "No headings found.")
		return err
	}
	fmt.Fprintf(w, "%-5s  %-5s  %-30s  %s\n", "Line", "Level", "Anchor", "Text")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for _, h := range headings {
		fmt.Fprintf(w, "%-5d  %-5d  %-30s  %s\n", h.Line, h.Level, h.Anchor, h.Text)
	}
	_, err := fmt.Fprintf(w, "\n%d headings\n", len(headings))
	return err
}

// transformInMemory transforms the file at input without touching the
// configured output path.
func (a *app) transformInMemory(input string, cfg types.TransformConfig) (string, transform.Result, error) {
	f, err := os.Open(a.path(input))
	if err != nil {
		return "", transform.Result{}, fmt.Errorf("opening input %s: %w", input, err)
	}
	defer f.Close()

	var out bytes.Buffer
	result, err := transform.Transform(f, &out, transform.OptionsFromConfig(cfg))
	if err != nil {
		return "", result, err
	}
	return out.String(), result, nil
}
