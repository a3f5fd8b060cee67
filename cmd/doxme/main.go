// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the doxme CLI, which rewrites a
// Markdown README into doxygen input.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/doxme/internal/logging"
	"github.com/pdiddy/doxme/internal/transform"
	"github.com/pdiddy/doxme/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// app carries the per-invocation state shared by all subcommands.
type app struct {
	wd     string
	v      *viper.Viper
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger
}

// newRootCmd builds the command tree for one invocation. wd is the
// directory relative paths resolve against.
func newRootCmd(wd string, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		wd:     wd,
		v:      viper.New(),
		stdout: stdout,
		stderr: stderr,
		log:    logging.New(stderr, types.LogConfig{Level: types.DefaultLogLevel}),
	}

	rootCmd := &cobra.Command{
		Use:   "doxme <readme>",
		Short: "Rewrite a Markdown README into doxygen input",
		Long: `doxme reads a Markdown README and writes a copy doxygen can build a
main page from. The level-1 title line is replaced by a [TOC] marker,
every level-2-or-deeper heading loses one '#' and gains an explicit
{#anchor} tag, and an existing "## Table of contents" block is dropped.

The result is written to README.md in the current directory unless
--output says otherwise.`,
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
		RunE:              a.runTransform,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./doxme.yaml or ~/.config/doxme/doxme.yaml)")
	pf.String("anchor-style", string(types.AnchorSlug), "anchor naming: slug or label")
	pf.String("toc-marker", types.DefaultTOCMarker, "line written in place of the title")
	pf.String("label-prefix", types.DefaultLabelPrefix, "prefix for label anchors")
	pf.String("log-level", types.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.Bool("log-json", false, "write log records as JSON")

	rootCmd.Flags().StringP("output", "o", types.DefaultOutput, "path of the transformed README")
	rootCmd.Flags().Bool("echo", false, "print every input line to stdout as it is read")

	a.bind("transform.anchor_style", pf.Lookup("anchor-style"))
	a.bind("transform.toc_marker", pf.Lookup("toc-marker"))
	a.bind("transform.label_prefix", pf.Lookup("label-prefix"))
	a.bind("log.level", pf.Lookup("log-level"))
	a.bind("log.json", pf.Lookup("log-json"))
	a.bind("transform.output", rootCmd.Flags().Lookup("output"))
	a.bind("transform.echo", rootCmd.Flags().Lookup("echo"))

	rootCmd.AddCommand(
		newAnchorsCmd(a),
		newPreviewCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

func (a *app) bind(key string, flag *pflag.Flag) {
	// BindPFlag only fails on a nil flag.
	_ = a.v.BindPFlag(key, flag)
}

// initConfig layers the config file and DOXME_* environment variables under
// the command-line flags, then configures logging.
func (a *app) initConfig(cmd *cobra.Command, args []string) error {
	defaults := types.DefaultConfig()
	a.v.SetDefault("transform.output", defaults.Transform.Output)
	a.v.SetDefault("transform.anchor_style", string(defaults.Transform.AnchorStyle))
	a.v.SetDefault("transform.toc_marker", defaults.Transform.TOCMarker)
	a.v.SetDefault("transform.label_prefix", defaults.Transform.LabelPrefix)
	a.v.SetDefault("log.level", defaults.Log.Level)

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		a.v.SetConfigFile(a.path(cfgFile))
	} else {
		a.v.SetConfigName("doxme")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(a.wd)

		home, err := os.UserHomeDir()
		if err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "doxme"))
		}
	}

	a.v.SetEnvPrefix("DOXME")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	cfg, err := a.config()
	if err != nil {
		return err
	}
	a.log = logging.New(a.stderr, cfg.Log)
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("using config file", "path", used)
	}
	return nil
}

// config returns the effective, validated configuration.
func (a *app) config() (types.Config, error) {
	cfg := types.Config{
		Transform: types.TransformConfig{
			Output:      a.v.GetString("transform.output"),
			AnchorStyle: types.AnchorStyle(a.v.GetString("transform.anchor_style")),
			TOCMarker:   a.v.GetString("transform.toc_marker"),
			LabelPrefix: a.v.GetString("transform.label_prefix"),
			Echo:        a.v.GetBool("transform.echo"),
		},
		Log: types.LogConfig{
			Level: a.v.GetString("log.level"),
			JSON:  a.v.GetBool("log.json"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// path resolves p against the working directory.
func (a *app) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.wd, p)
}

func (a *app) runTransform(cmd *cobra.Command, args []string) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}

	opts := transform.OptionsFromConfig(cfg.Transform)
	if cfg.Transform.Echo {
		opts.Echo = a.stdout
	}

	result, err := transform.File(a.path(args[0]), a.path(cfg.Transform.Output), opts)
	if err != nil {
		return err
	}

	a.warnDuplicates(result.Headings)
	a.log.Info("transformed README",
		"input", args[0],
		"output", cfg.Transform.Output,
		"headings", len(result.Headings),
		"skipped", result.Skipped,
	)
	return nil
}

func (a *app) warnDuplicates(headings []transform.Heading) {
	for _, anchor := range transform.DuplicateAnchors(headings) {
		var lines []int
		for _, h := range headings {
			if h.Anchor == anchor {
				lines = append(lines, h.Line)
			}
		}
		a.log.Warn("duplicate anchor", "anchor", anchor, "lines", lines)
	}
}

// run executes one invocation of the CLI.
func run(wd string, args []string, stdout, stderr io.Writer) error {
	rootCmd := newRootCmd(wd, stdout, stderr)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func main() {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := run(wd, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
