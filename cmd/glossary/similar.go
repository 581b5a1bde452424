// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/glossary-engine/internal/resolve"
	"github.com/pdiddy/glossary-engine/pkg/types"
)

var similarCmd = &cobra.Command{
	Use:   "similar <term>",
	Short: "List acronyms similar to a term",
	Long: `Similar scores the term against every acronym in the glossary and lists
those whose similarity exceeds --threshold, whether or not the term itself is
a known acronym.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		threshold, _ := cmd.Flags().GetFloat64("threshold")
		if threshold < 0 || threshold > 1 {
			return fmt.Errorf("threshold %v outside [0, 1]", threshold)
		}
		lang := languageFlag(cmd)

		svc, err := openService(cmd, lang)
		if err != nil {
			return err
		}

		res := svc.Similar(args[0], string(lang), threshold)
		if len(res.Suggestions) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No acronyms above %.2f similar to %q.\n", threshold, res.Query)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), resolve.RenderSimilar(res.Suggestions, lang))
		return nil
	},
}

func init() {
	similarCmd.Flags().StringP("language", "l", "", "language: english or spanish (default: configured default)")
	similarCmd.Flags().Float64P("threshold", "t", types.DefaultSuggestionThreshold, "match fraction [0.0-1.0] an acronym must exceed")

	rootCmd.AddCommand(similarCmd)
}
