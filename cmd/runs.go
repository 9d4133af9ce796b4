// Package cmd provides CLI commands for the Genesis application.
// This file implements the runs command that lists generation history.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/genesis-engine/genesis-backend/core/config"
	"github.com/genesis-engine/genesis-backend/core/history"
	"github.com/genesis-engine/genesis-backend/core/storage"
)

// =============================================================================
// Runs Command Flags
// =============================================================================

var (
	runsLimit   int
	runsProject string
	runsJSON    bool
)

// =============================================================================
// Runs Command
// =============================================================================

// runsCmd represents the runs command.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent generation runs",
	Long: `List recent backend generation runs from the local history database.

Examples:
  genesis runs
  genesis runs --limit 50
  genesis runs --project my-api
  genesis runs --json | jq '.[0]'`,
	RunE: runRuns,
}

func init() {
	rootCmd.AddCommand(runsCmd)

	runsCmd.Flags().IntVarP(&runsLimit, "limit", "l", 20, "Maximum number of runs")
	runsCmd.Flags().StringVarP(&runsProject, "project", "p", "", "Filter by project name")
	runsCmd.Flags().BoolVar(&runsJSON, "json", false, "Output as JSON")
}

// runRuns lists recorded generation runs.
func runRuns(cmd *cobra.Command, args []string) error {
	dirs, err := storage.ResolveDirs()
	if err != nil {
		return fmt.Errorf("resolving storage directories: %w", err)
	}

	manager := config.NewManager(dirs)
	if err := manager.Load(); err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	settings := manager.Get()

	store, err := history.NewStore(history.Config{
		DBPath:          historyDBPath(settings, dirs),
		RecentCacheSize: settings.History.RecentCacheSize,
	})
	if err != nil {
		return fmt.Errorf("opening history store: %w", err)
	}
	defer store.Close()

	var runs []*history.Run
	if runsProject != "" {
		runs, err = store.ListByProject(runsProject, runsLimit)
	} else {
		runs, err = store.List(runsLimit)
	}
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if runsJSON {
		return outputJSONRuns(cmd.OutOrStdout(), runs)
	}
	return outputRichRuns(cmd.OutOrStdout(), runs)
}

// =============================================================================
// Runs Output
// =============================================================================

// outputJSONRuns outputs runs as JSON.
func outputJSONRuns(w io.Writer, runs []*history.Run) error {
	if runs == nil {
		runs = []*history.Run{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(runs)
}

// outputRichRuns outputs runs with rich formatting.
func outputRichRuns(w io.Writer, runs []*history.Run) error {
	fmt.Fprintf(w, "%s%sGeneration Runs%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(w, "%s%s%s\n", colorGray, strings.Repeat("-", 72), colorReset)

	if len(runs) == 0 {
		fmt.Fprintf(w, "%sNo runs recorded.%s\n", colorGray, colorReset)
		return nil
	}

	for _, run := range runs {
		if run.Success {
			fmt.Fprintf(w, "%s✓%s %-20s %-10s %4d files  %-8s %s\n",
				colorGreen, colorReset,
				run.Project,
				run.Framework,
				run.FileCount,
				formatRunDuration(run.Duration()),
				run.StartedAt.Local().Format("2006-01-02 15:04"),
			)
		} else {
			fmt.Fprintf(w, "%s✗%s %-20s %-10s %sfailed:%s %s\n",
				colorRed, colorReset,
				run.Project,
				run.Framework,
				colorRed, colorReset,
				run.Error,
			)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s%d runs%s\n", colorGray, len(runs), colorReset)
	return nil
}

// formatRunDuration renders a run duration at a useful precision:
// sub-second runs keep milliseconds, longer runs round to seconds.
func formatRunDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(time.Second).String()
}
