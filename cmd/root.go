package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "genesis",
	Short: "Genesis - multi-agent backend generation",
	Long: `Genesis generates complete backend projects using a roster of
specialized LLM agents. An architect designs the API and data models,
framework generators produce the code, and the result is written to disk
as a ready-to-run project.`,
}

func Execute() error {
	return rootCmd.Execute()
}

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)
