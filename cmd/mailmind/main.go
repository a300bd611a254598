package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mailmind",
	Short: "mailmind - personal assistant for email and calendar",
	Long: `mailmind is a personal assistant backend for Exchange-style email and
calendar data. It runs reusable multi-step actions (daily briefings, meeting
prep, inbox triage) over a local dataset and offers a model-driven chat
surface with tool calling.`,
	// No RunE - defaults to showing help when no subcommand is provided
}

var (
	configPath string
	dataFile   string
	logLevel   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "Path to the dataset JSON file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(actionsCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(briefCmd)
	rootCmd.AddCommand(chatCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
