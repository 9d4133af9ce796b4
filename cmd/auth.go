package cmd

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/genesis-engine/genesis-backend/core/credentials"
	"github.com/genesis-engine/genesis-backend/core/errors"
	"github.com/genesis-engine/genesis-backend/core/storage"
)

// =============================================================================
// Auth Command Flags
// =============================================================================

var (
	authAPIKey  string
	authProfile string
)

// =============================================================================
// Auth Command
// =============================================================================

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage provider authentication",
	Long:  `Configure API keys for LLM targets (claude, openai, deepseek, gemini).`,
}

var authSetCmd = &cobra.Command{
	Use:   "set <target>",
	Short: "Set the API key for a target",
	Long: `Set the API key for an LLM target.

The key is prompted without echo when --api-key is not provided, and is
stored encrypted in the platform config directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runAuthSet,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configured targets and their status",
	Long:  `Display which targets have credentials configured, in the store or the environment.`,
	RunE:  runAuthStatus,
}

var authRemoveCmd = &cobra.Command{
	Use:   "remove <target>",
	Short: "Remove credentials for a target",
	Long:  `Remove the stored API key for an LLM target.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAuthRemove,
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authRemoveCmd)

	authCmd.PersistentFlags().StringVar(&authProfile, "profile", credentials.DefaultProfile, "Credentials profile")
	authSetCmd.Flags().StringVar(&authAPIKey, "api-key", "", "API key (prompts without echo if not provided)")
}

func runAuthSet(cmd *cobra.Command, args []string) error {
	target := strings.ToLower(args[0])
	if !isValidTarget(target) {
		return fmt.Errorf("invalid target: %s (valid: %s)", target, strings.Join(validTargets(), ", "))
	}

	key := authAPIKey
	if key == "" {
		var err error
		key, err = readKeySecure(cmd, target)
		if err != nil {
			return err
		}
	}
	if key == "" {
		return fmt.Errorf("empty API key")
	}

	store, err := openCredentialsStore()
	if err != nil {
		return err
	}

	if err := store.Set(authProfile, target, key); err != nil {
		return fmt.Errorf("storing credential: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Credentials saved for %s\n", target)
	return nil
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	store, err := openCredentialsStore()
	if err != nil {
		return err
	}

	stored, err := store.ListKeys(authProfile)
	if err != nil {
		return fmt.Errorf("listing credentials: %w", err)
	}

	storedSet := make(map[string]bool, len(stored))
	for _, k := range stored {
		storedSet[k] = true
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Target Status:")
	fmt.Fprintln(w, "----------------")

	for _, target := range validTargets() {
		fmt.Fprintf(w, "  %-12s %s\n", target+":", targetStatus(target, storedSet))
	}

	return nil
}

func runAuthRemove(cmd *cobra.Command, args []string) error {
	target := strings.ToLower(args[0])
	if !isValidTarget(target) {
		return fmt.Errorf("invalid target: %s (valid: %s)", target, strings.Join(validTargets(), ", "))
	}

	store, err := openCredentialsStore()
	if err != nil {
		return err
	}

	if _, err := store.Get(authProfile, target); err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			fmt.Fprintf(cmd.OutOrStdout(), "No credentials found for %s\n", target)
			return nil
		}
		return fmt.Errorf("reading credential: %w", err)
	}

	if err := store.Delete(authProfile, target); err != nil {
		return fmt.Errorf("removing credential: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Credentials removed for %s\n", target)
	return nil
}

// validTargets returns the target names accepted by auth commands.
func validTargets() []string {
	return []string{"claude", "openai", "deepseek", "gemini"}
}

func isValidTarget(target string) bool {
	switch target {
	case "claude", "openai", "deepseek", "gemini":
		return true
	default:
		return false
	}
}

// targetStatus describes where a target's credential comes from: the
// store, the environment, or nowhere.
func targetStatus(target string, stored map[string]bool) string {
	if stored[target] {
		return "configured"
	}
	if os.Getenv(credentials.EnvKeyName(target)) != "" {
		return fmt.Sprintf("configured (env %s)", credentials.EnvKeyName(target))
	}
	return "not configured"
}

// readKeySecure prompts for an API key without echoing it. Non-terminal
// stdin (pipes, CI) falls back to a plain line read.
func readKeySecure(cmd *cobra.Command, target string) (string, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "Enter API key for %s: ", target)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		key, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return strings.TrimSpace(string(key)), nil
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	key, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(key), nil
}

// openCredentialsStore opens the encrypted store in the platform config
// directory.
func openCredentialsStore() (*credentials.Store, error) {
	dirs, err := storage.ResolveDirs()
	if err != nil {
		return nil, fmt.Errorf("resolving storage directories: %w", err)
	}

	store, err := credentials.NewStore(dirs.CredentialsDir())
	if err != nil {
		return nil, fmt.Errorf("opening credentials store: %w", err)
	}
	return store, nil
}
