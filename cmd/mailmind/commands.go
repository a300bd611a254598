package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mailmind-ai/mailmind/briefing"
	"github.com/mailmind-ai/mailmind/core"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the registered actions",
	RunE: func(cmd *cobra.Command, args []string) error {
		assistant, _, err := newAssistant(false)
		if err != nil {
			return err
		}
		for _, info := range assistant.Actions() {
			fmt.Printf("%-20s %s\n", info.Name, info.Description)
			if len(info.Tags) > 0 {
				fmt.Printf("%-20s tags: %s\n", "", strings.Join(info.Tags, ", "))
			}
		}
		return nil
	},
}

var runVars []string

var runCmd = &cobra.Command{
	Use:   "run <action>",
	Short: "Execute an action by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		assistant, _, err := newAssistant(false)
		if err != nil {
			return err
		}

		vars := map[string]string{}
		for _, pair := range runVars {
			key, value, ok := strings.Cut(pair, "=")
			if !ok || key == "" {
				return fmt.Errorf("invalid --var %q, expected key=value", pair)
			}
			vars[key] = value
		}

		result, err := assistant.RunAction(args[0], vars)
		if err != nil {
			return err
		}

		raw, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(raw))
		if result.Status == core.StatusFailed {
			os.Exit(1)
		}
		return nil
	},
}

var briefCmd = &cobra.Command{
	Use:   "brief",
	Short: "Print today's meeting briefing",
	RunE: func(cmd *cobra.Command, args []string) error {
		assistant, _, err := newAssistant(false)
		if err != nil {
			return err
		}

		result, err := assistant.RunAction("daily_briefing", nil)
		if err != nil {
			return err
		}
		if result.Status == core.StatusFailed {
			return fmt.Errorf("briefing failed: %s", result.Error)
		}

		doc, ok := result.Output.(briefing.Document)
		if !ok {
			return fmt.Errorf("unexpected briefing output type %T", result.Output)
		}
		if doc.Message != "" {
			fmt.Println(doc.Message)
			return nil
		}
		fmt.Println(doc.PrintReady)
		return nil
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat [query]",
	Short: "Chat with the assistant (interactive without a query)",
	Long: `Chat with the assistant. With a query argument the command answers once
and exits; without one it starts an interactive session. Queries of the form
"/run <action> [key=value ...]" execute an action directly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		assistant, _, err := newAssistant(true)
		if err != nil {
			return err
		}

		if len(args) > 0 {
			resp, err := assistant.Chat(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Println(resp.Text)
			return nil
		}

		fmt.Println(`Interactive chat. "/history" lists this session, "exit" quits.`)
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			switch {
			case line == "":
				continue
			case line == "exit", line == "quit":
				return nil
			case line == "/history":
				for _, rec := range assistant.History().List() {
					fmt.Printf("[%s] %s  tools=%s\n", rec.ID, rec.Query, strings.Join(rec.ToolsUsed, ","))
				}
				continue
			}

			resp, err := assistant.Chat(cmd.Context(), line)
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				continue
			}
			fmt.Println(resp.Text)
		}
	},
}

func init() {
	runCmd.Flags().StringArrayVar(&runVars, "var", nil, "Context variable as key=value (repeatable)")
}
