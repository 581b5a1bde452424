// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/glossary-engine/internal/bot"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Try the chat bot commands locally",
	Long: `Chat reads slash commands from stdin and prints the replies a chat
platform would post, without connecting to one. Each line is either a
command ("/glossary NASA", "/glosario NASA") or "translate" to press the
translate button of the previous reply. Use --json to print replies as
message blocks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService(cmd, languageFlag(cmd))
		if err != nil {
			return err
		}
		jsonOutput, _ := cmd.Flags().GetBool("json")
		h := bot.NewHandler(svc, loggerFor(cmd))
		return runChat(h, cmd.InOrStdin(), cmd.OutOrStdout(), jsonOutput)
	},
}

func runChat(h *bot.Handler, in io.Reader, out io.Writer, jsonOutput bool) error {
	var last *bot.Message
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var (
			msg bot.Message
			err error
		)
		switch {
		case line == "translate":
			if last == nil || last.Button.ActionID == "" {
				fmt.Fprintln(out, "nothing to translate yet")
				continue
			}
			msg, err = h.HandleAction(bot.Action{ActionID: last.Button.ActionID, Value: last.Button.Value})
		case strings.HasPrefix(line, "/"):
			name, text, _ := strings.Cut(line, " ")
			msg, err = h.HandleCommand(bot.Command{Name: name, Text: text})
		default:
			msg, err = h.HandleCommand(bot.Command{Name: bot.CommandGlossary, Text: line})
		}
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		last = &msg

		if jsonOutput {
			data, err := json.Marshal(msg)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			continue
		}
		fmt.Fprintln(out, msg.Text)
		if msg.Button.ActionID != "" {
			fmt.Fprintf(out, "[%s]\n", msg.Button.Text)
		}
	}
	return scanner.Err()
}

func init() {
	chatCmd.Flags().StringP("language", "l", "", "language used to pick the default glossary")
	chatCmd.Flags().Bool("json", false, "print replies as message blocks")

	rootCmd.AddCommand(chatCmd)
}
