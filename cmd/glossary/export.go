// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/glossary-engine/internal/glossary"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the normalized glossary to YAML or JSON",
	Long: `Export loads the glossary for --language and writes it as an ordered list
of acronyms (lower-cased) with all of their definitions. Useful to check how a
CSV or JSON source was grouped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")
		lang := languageFlag(cmd)

		svc, err := openService(cmd, lang)
		if err != nil {
			return err
		}
		g := svc.Glossary(string(lang))

		if out != "" {
			if err := glossary.ExportFile(out, format, g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d acronyms to %s\n", g.Len(), out)
			return nil
		}

		switch format {
		case "yaml", "":
			return glossary.ExportYAML(cmd.OutOrStdout(), g)
		case "json":
			return glossary.ExportJSON(cmd.OutOrStdout(), g)
		default:
			return fmt.Errorf("unsupported format %q: use yaml or json", format)
		}
	},
}

func init() {
	exportCmd.Flags().StringP("language", "l", "", "language: english or spanish (default: configured default)")
	exportCmd.Flags().String("format", "yaml", "output format: yaml or json")
	exportCmd.Flags().String("out", "", "write to this file instead of stdout")

	rootCmd.AddCommand(exportCmd)
}
