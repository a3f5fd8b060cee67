// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doxme/internal/preview"
)

func newPreviewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <readme>",
		Short: "Render the transformed README in the terminal",
		Long: `Preview transforms a README in memory and renders the result for the
terminal, so the rewritten headings can be checked before doxygen runs.
No file is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, _ := cmd.Flags().GetString("style")
			width, _ := cmd.Flags().GetInt("width")

			cfg, err := a.config()
			if err != nil {
				return err
			}
			md, _, err := a.transformInMemory(args[0], cfg.Transform)
			if err != nil {
				return err
			}
			out, err := preview.Render(md, preview.Options{Style: style, Width: width})
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(a.stdout, out)
			return err
		},
	}
	cmd.Flags().String("style", "auto", "glamour style: auto, dark, light, notty, ascii")
	cmd.Flags().Int("width", preview.DefaultWidth, "word-wrap column")
	return cmd
}
