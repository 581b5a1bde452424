// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/glossary-engine/internal/bot"
	"github.com/pdiddy/glossary-engine/internal/glossary"
	"github.com/pdiddy/glossary-engine/internal/logging"
	"github.com/pdiddy/glossary-engine/internal/lookup"
	"github.com/pdiddy/glossary-engine/internal/resolve"
	"github.com/pdiddy/glossary-engine/pkg/types"
)

func testCommand(t *testing.T) *cobra.Command {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringP("glossary", "g", "", "")
	cmd.Flags().String("file-type", "", "")
	cmd.Flags().Bool("preprocess", false, "")
	cmd.Flags().Float64P("similarity", "s", types.DisabledSimilarity, "")
	return cmd
}

func TestBotConfigFromGlossaryFlag(t *testing.T) {
	cmd := testCommand(t)
	require.NoError(t, cmd.Flags().Set("glossary", "/data/glosario.json"))
	require.NoError(t, cmd.Flags().Set("preprocess", "true"))
	require.NoError(t, cmd.Flags().Set("similarity", "0.6"))

	cfg, err := botConfig(cmd, types.Spanish)
	require.NoError(t, err)

	assert.Equal(t, types.GlossaryConfig{
		Path:       "/data/glosario.json",
		FileType:   types.FileTypeJSON,
		Preprocess: true,
	}, cfg.Languages[types.Spanish])
	assert.Equal(t, types.Spanish, cfg.DefaultLanguage)
	assert.InDelta(t, 0.6, cfg.Similarity, 1e-9)
}

func TestBotConfigFromViper(t *testing.T) {
	cmd := testCommand(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "glossary.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`similarity: -1
default_language: spanish
languages:
  english:
    path: glossary.csv
    file_type: csv
  spanish:
    path: glosario.json
    file_type: json
    preprocess: true
`), 0o644))
	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	cfg, err := botConfig(cmd, types.English)
	require.NoError(t, err)
	assert.Equal(t, types.Spanish, cfg.DefaultLanguage)
	assert.False(t, cfg.SimilarityEnabled())
	assert.Equal(t, types.GlossaryConfig{Path: "glossary.csv", FileType: types.FileTypeCSV}, cfg.Languages[types.English])
	assert.True(t, cfg.Languages[types.Spanish].Preprocess)
}

func TestBotConfigWithoutGlossary(t *testing.T) {
	_, err := botConfig(testCommand(t), types.English)
	assert.ErrorContains(t, err, "no glossary configured")
}

func TestFileTypeFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a/glossary.csv", "csv"},
		{"glossary.json", "json"},
		{"GLOSSARY.CSV", "csv"},
		{"Glosario.Json", "json"},
		{"glossary.xml", ".xml"},
		{"glossary.XML", ".xml"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, fileTypeFromPath(tt.path))
		})
	}
}

func TestRunChat(t *testing.T) {
	en := glossary.NewBuilder()
	en.Add("ESA", "European Space Agency")
	es := glossary.NewBuilder()
	es.Add("ESA", "Agencia Espacial Europea")
	svc, err := lookup.New(map[types.Language]lookup.Resolver{
		types.English: resolve.New(en.Build()),
		types.Spanish: resolve.New(es.Build()),
	})
	require.NoError(t, err)
	h := bot.NewHandler(svc, logging.Nop())

	in := strings.NewReader("translate\n/glossary ESA\ntranslate\n\n/define ESA\nESA\n")
	var out strings.Builder
	require.NoError(t, runChat(h, in, &out, false))

	assert.Equal(t, "nothing to translate yet\n"+
		"ESA => European Space Agency\n[Translate to Spanish :es:]\n"+
		"ESA => Agencia Espacial Europea\n[Translate to English :us:]\n"+
		"unknown command: /define\n"+
		"ESA => European Space Agency\n[Translate to Spanish :es:]\n",
		out.String())
}

func TestRunChatEnglishOnly(t *testing.T) {
	en := glossary.NewBuilder()
	en.Add("ESA", "European Space Agency")
	svc, err := lookup.New(map[types.Language]lookup.Resolver{
		types.English: resolve.New(en.Build()),
	})
	require.NoError(t, err)
	h := bot.NewHandler(svc, logging.Nop())

	in := strings.NewReader("/glosario ESA\ntranslate\n/glossary ESA\ntranslate\n")
	var out strings.Builder
	require.NoError(t, runChat(h, in, &out, false))

	assert.Equal(t, "ESA => European Space Agency\n"+
		"nothing to translate yet\n"+
		"ESA => European Space Agency\n[Translate to Spanish :es:]\n"+
		"ESA => European Space Agency\n",
		out.String())
}

const (
	englishCSV = `term,description
NASA,National Aeronautics and Space Administration
ESA,European Space Agency
NASA Ames,Ames Research Center
`
	spanishCSV = `término,descripción
ESA,Agencia Espacial Europea
NASA,Administración Nacional de Aeronáutica y el Espacio
`
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// execute runs the root command with args against an empty config file
// and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	resetFlags(rootCmd.PersistentFlags())
	for _, c := range rootCmd.Commands() {
		resetFlags(c.Flags())
	}
	cfg := writeFile(t, t.TempDir(), "glossary.yaml", "")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append(args, "--config", cfg))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		viper.Reset()
	})

	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestDefineCommand(t *testing.T) {
	dir := t.TempDir()
	en := writeFile(t, dir, "glossary.csv", englishCSV)
	es := writeFile(t, dir, "glosario.csv", spanishCSV)
	upper := writeFile(t, t.TempDir(), "GLOSSARY.CSV", englishCSV)
	xml := writeFile(t, dir, "glossary.xml", englishCSV)
	batch := writeFile(t, dir, "batch.yaml", "language: spanish\nqueries:\n  - ESA\n  - QWERTY\n")

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr string
	}{
		{
			name: "exact hit",
			args: []string{"define", "-g", en, "ESA"},
			want: "ESA => European Space Agency\n",
		},
		{
			name: "miss with suggestions",
			args: []string{"define", "-g", en, "NASAA"},
			want: "NASAA => Yet Another Unknown Acronym (YAUA)\nDid you mean: nasa, Nasa Ames?\n",
		},
		{
			name: "similarity listing",
			args: []string{"define", "-g", en, "-s", "0.7", "NASA"},
			want: "NASA => National Aeronautics and Space Administration\nSimilar acronyms: nasa, esa\n",
		},
		{
			name: "no acronyms lists the glossary",
			args: []string{"define", "-g", en},
			want: "esa => European Space Agency\n" +
				"nasa => National Aeronautics and Space Administration\n" +
				"nasa ames => Ames Research Center\n",
		},
		{
			name: "batch file language",
			args: []string{"define", "-g", es, "--file", batch},
			want: "ESA => Agencia Espacial Europea\nQWERTY => Otro Acrónimo Desconocido (OAD)\n",
		},
		{
			name: "language flag overrides batch file",
			args: []string{"define", "-g", en, "-l", "english", "--file", batch},
			want: "ESA => European Space Agency\nQWERTY => Yet Another Unknown Acronym (YAUA)\n",
		},
		{
			name: "upper-case extension",
			args: []string{"define", "-g", upper, "esa"},
			want: "esa => European Space Agency\n",
		},
		{
			name:    "unsupported extension",
			args:    []string{"define", "-g", xml, "esa"},
			wantErr: "unsupported glossary format",
		},
		{
			name:    "similarity out of range",
			args:    []string{"define", "-g", en, "-s", "2", "esa"},
			wantErr: "outside [-1, 1]",
		},
		{
			name:    "missing batch file",
			args:    []string{"define", "-g", en, "--file", filepath.Join(dir, "nope.yaml")},
			wantErr: "reading batch file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.args...)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefineUnsupportedFormatError(t *testing.T) {
	xml := writeFile(t, t.TempDir(), "glossary.xml", englishCSV)

	_, err := execute(t, "define", "-g", xml, "esa")
	assert.ErrorIs(t, err, glossary.ErrUnsupportedFormat)
}

func TestDefineJSON(t *testing.T) {
	en := writeFile(t, t.TempDir(), "glossary.csv", englishCSV)

	t.Run("queries", func(t *testing.T) {
		out, err := execute(t, "define", "-g", en, "--json", "esa", "NASAA")
		require.NoError(t, err)

		var got []types.Resolution
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, []types.Resolution{
			{Query: "esa", Mode: types.ModeFallback, Found: true, Definitions: []string{"European Space Agency"}},
			{Query: "NASAA", Mode: types.ModeFallback, Suggestions: []string{"nasa", "nasa ames"}},
		}, got)
	})

	t.Run("no queries lists every acronym", func(t *testing.T) {
		out, err := execute(t, "define", "-g", en, "--json")
		require.NoError(t, err)

		var got []types.Resolution
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got, 3)
		for i, want := range []string{"esa", "nasa", "nasa ames"} {
			assert.Equal(t, want, got[i].Query)
			assert.True(t, got[i].Found, want)
		}
	})
}

func TestDefineSavesResults(t *testing.T) {
	dir := t.TempDir()
	es := writeFile(t, dir, "glosario.csv", spanishCSV)
	batch := writeFile(t, dir, "batch.yaml", "language: spanish\nqueries: [ESA, QWERTY]\n")
	results := filepath.Join(dir, "results.yaml")

	out, err := execute(t, "define", "-g", es, "--file", batch, "--out", results)
	require.NoError(t, err)
	assert.Equal(t, "ESA => Agencia Espacial Europea\nQWERTY => Otro Acrónimo Desconocido (OAD)\n", out)

	data, err := os.ReadFile(results)
	require.NoError(t, err)
	var rf lookup.ResultsFile
	require.NoError(t, yaml.Unmarshal(data, &rf))

	assert.Equal(t, "spanish", rf.Language)
	assert.Equal(t, 2, rf.Summary.Total)
	assert.Equal(t, 1, rf.Summary.Found)
	assert.Equal(t, 1, rf.Summary.NotFound)
	require.Len(t, rf.Results, 2)
	assert.Equal(t, []string{"Agencia Espacial Europea"}, rf.Results[0].Definitions)
	assert.Equal(t, "QWERTY", rf.Results[1].Query)
	assert.False(t, rf.Results[1].Found)
}

func TestSimilarCommand(t *testing.T) {
	en := writeFile(t, t.TempDir(), "glossary.csv", englishCSV)

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr string
	}{
		{
			name: "lists keys above threshold",
			args: []string{"similar", "-g", en, "-t", "0.5", "nasa"},
			want: "Similar acronyms: nasa, esa, Nasa Ames\n",
		},
		{
			name: "default threshold",
			args: []string{"similar", "-g", en, "NASAA"},
			want: "Similar acronyms: nasa, Nasa Ames\n",
		},
		{
			name: "nothing above threshold",
			args: []string{"similar", "-g", en, "-t", "0.9", "qwerty"},
			want: "No acronyms above 0.90 similar to \"qwerty\".\n",
		},
		{
			name:    "threshold above one",
			args:    []string{"similar", "-g", en, "-t", "1.5", "nasa"},
			wantErr: "threshold 1.5 outside [0, 1]",
		},
		{
			name:    "negative threshold",
			args:    []string{"similar", "-g", en, "--threshold=-0.1", "nasa"},
			wantErr: "outside [0, 1]",
		},
		{
			name:    "term required",
			args:    []string{"similar", "-g", en},
			wantErr: "accepts 1 arg(s)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.args...)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	en := writeFile(t, dir, "glossary.csv", englishCSV)
	want := []glossary.ExportEntry{
		{Acronym: "nasa", Definitions: []string{"National Aeronautics and Space Administration"}},
		{Acronym: "esa", Definitions: []string{"European Space Agency"}},
		{Acronym: "nasa ames", Definitions: []string{"Ames Research Center"}},
	}

	t.Run("json to stdout", func(t *testing.T) {
		out, err := execute(t, "export", "-g", en, "--format", "json")
		require.NoError(t, err)

		var got []glossary.ExportEntry
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, want, got)
	})

	t.Run("yaml to stdout", func(t *testing.T) {
		out, err := execute(t, "export", "-g", en)
		require.NoError(t, err)

		var got []glossary.ExportEntry
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, want, got)
	})

	t.Run("yaml to file", func(t *testing.T) {
		path := filepath.Join(dir, "export.yaml")
		out, err := execute(t, "export", "-g", en, "--out", path)
		require.NoError(t, err)
		assert.Empty(t, out)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var got []glossary.ExportEntry
		require.NoError(t, yaml.Unmarshal(data, &got))
		assert.Equal(t, want, got)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, "export", "-g", en, "--format", "toml")
		assert.ErrorContains(t, err, `unsupported format "toml"`)
	})
}
