// Package cmd provides CLI commands for the Genesis application.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/genesis-engine/genesis-backend/agents/registry"
)

// =============================================================================
// Agents Command Flags
// =============================================================================

var agentsJSON bool

// =============================================================================
// Agents Command
// =============================================================================

// agentsCmd represents the agents command.
var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List the agent roster",
	Long: `List every agent with its ID, type, and capabilities.

Examples:
  genesis agents
  genesis agents --json | jq '.[].id'`,
	RunE: runAgents,
}

func init() {
	rootCmd.AddCommand(agentsCmd)

	agentsCmd.Flags().BoolVar(&agentsJSON, "json", false, "Output as JSON")
}

// runAgents lists the agent roster.
func runAgents(cmd *cobra.Command, args []string) error {
	roster := registry.Roster()

	if agentsJSON {
		return outputJSONAgents(cmd.OutOrStdout(), roster)
	}
	return outputRichAgents(cmd.OutOrStdout(), roster)
}

// outputJSONAgents outputs the roster as JSON.
func outputJSONAgents(w io.Writer, roster []registry.Info) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(roster)
}

// outputRichAgents outputs the roster with rich formatting.
func outputRichAgents(w io.Writer, roster []registry.Info) error {
	fmt.Fprintf(w, "%s%sAgent Roster%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(w, "%s%s%s\n", colorGray, strings.Repeat("-", 40), colorReset)

	for _, info := range roster {
		fmt.Fprintf(w, "%s%s%s %s(%s)%s\n", colorBold, info.ID, colorReset, colorGray, info.Type, colorReset)
		fmt.Fprintf(w, "  %s\n", info.Name)
		fmt.Fprintf(w, "  %scapabilities:%s %s\n", colorGray, colorReset, strings.Join(info.Capabilities, ", "))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%s%d agents%s\n", colorGray, len(roster), colorReset)
	return nil
}
