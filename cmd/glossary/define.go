// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/pdiddy/glossary-engine/internal/lookup"
	"github.com/pdiddy/glossary-engine/pkg/types"
)

var defineCmd = &cobra.Command{
	Use:   "define [acronym...]",
	Short: "Print the definitions of one or more acronyms",
	Long: `Define looks each acronym up case-insensitively and prints one reply per
acronym. Unknown acronyms print a not-found phrase and, when a known acronym
is close enough, a "did you mean" line. With no acronyms, every acronym in
the glossary is printed.

With --similarity in [0, 1], every acronym whose similarity to the query
exceeds the value is listed, even when the query itself is found.

Use --file to resolve a saved YAML batch (language, queries) and --out to
save the structured results.`,
	RunE: runDefine,
}

func runDefine(cmd *cobra.Command, args []string) error {
	queries := args
	lang := languageFlag(cmd)

	if path, _ := cmd.Flags().GetString("file"); path != "" {
		bf, err := lookup.ReadBatchFile(path)
		if err != nil {
			return err
		}
		queries = append(queries, bf.Queries...)
		if bf.Language != "" && !cmd.Flags().Changed("language") {
			lang = types.ParseLanguage(bf.Language)
		}
	}

	svc, err := openService(cmd, lang)
	if err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := svc.WriteResultsFile(out, queries, string(lang)); err != nil {
			return err
		}
		log := loggerFor(cmd)
		log.Info().Str("path", out).Int("queries", len(queries)).Msg("results saved")
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		if len(queries) == 0 {
			queries = svc.Glossary(string(lang)).Keys()
			slices.Sort(queries)
		}
		results := make([]types.Resolution, len(queries))
		for i, q := range queries {
			results[i] = svc.Resolve(q, string(lang))
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Fprintln(cmd.OutOrStdout(), svc.ResolveBatch(queries, string(lang)))
	return nil
}

func init() {
	defineCmd.Flags().StringP("language", "l", "", "language: english or spanish (default: configured default)")
	defineCmd.Flags().Float64P("similarity", "s", types.DisabledSimilarity, "list similar acronyms above this match fraction [0.0-1.0]")
	defineCmd.Flags().String("file", "", "YAML batch file with queries to resolve")
	defineCmd.Flags().String("out", "", "save structured results to this YAML file")
	defineCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(defineCmd)
}
