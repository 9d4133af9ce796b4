// Package cmd provides CLI commands for the Genesis application.
// This file implements the generate command that builds backend projects.
package cmd

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/genesis-engine/genesis-backend/agents/architect"
	"github.com/genesis-engine/genesis-backend/agents/registry"
	"github.com/genesis-engine/genesis-backend/core/agent"
	"github.com/genesis-engine/genesis-backend/core/backend"
	"github.com/genesis-engine/genesis-backend/core/config"
	"github.com/genesis-engine/genesis-backend/core/credentials"
	"github.com/genesis-engine/genesis-backend/core/errors"
	"github.com/genesis-engine/genesis-backend/core/history"
	"github.com/genesis-engine/genesis-backend/core/protocol"
	"github.com/genesis-engine/genesis-backend/core/providers"
	"github.com/genesis-engine/genesis-backend/core/storage"
	"github.com/genesis-engine/genesis-backend/core/workspace"
	"github.com/genesis-engine/genesis-backend/generators"
)

// =============================================================================
// Generate Command Flags
// =============================================================================

var (
	generateConfigPath string
	generateOutputDir  string
	generateGit        bool
	generateNoGit      bool
	generateJSON       bool
	generateVerbose    bool
	generateProfile    string
)

// =============================================================================
// Generate Command
// =============================================================================

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a backend project",
	Long: `Generate a complete backend project from a YAML build configuration.

The build configuration describes the project: name, framework, features,
database, and authentication. The architect agent designs the API and data
models, the framework generators produce the code, and the result is
written to the output directory.

Examples:
  genesis generate --config backend.yaml
  genesis generate --config backend.yaml --output ./my-api
  genesis generate --config backend.yaml --no-git
  genesis generate --config backend.yaml --json | jq '.files_written'`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateConfigPath, "config", "c", "", "Path to the backend build configuration (YAML)")
	generateCmd.Flags().StringVarP(&generateOutputDir, "output", "o", "", "Output directory (default: <output_dir>/<project_name>)")
	generateCmd.Flags().BoolVar(&generateGit, "git", true, "Initialize a git repository with an initial commit")
	generateCmd.Flags().BoolVar(&generateNoGit, "no-git", false, "Skip git initialization")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Output as JSON")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Verbose output")
	generateCmd.Flags().StringVar(&generateProfile, "profile", credentials.DefaultProfile, "Credentials profile")

	generateCmd.MarkFlagRequired("config")
}

// =============================================================================
// Generate Flow
// =============================================================================

// generateOutput is the JSON output for generate.
type generateOutput struct {
	Project      string   `json:"project"`
	Framework    string   `json:"framework"`
	OutputPath   string   `json:"output_path"`
	FilesWritten int      `json:"files_written"`
	FilesSkipped int      `json:"files_skipped,omitempty"`
	Commit       string   `json:"commit,omitempty"`
	Duration     string   `json:"duration"`
	RunID        string   `json:"run_id,omitempty"`
	Features     []string `json:"features,omitempty"`
	NextSteps    []string `json:"next_steps,omitempty"`
}

// runGenerate drives the full generation pipeline: load the build
// configuration, design the architecture, generate the code, write the
// workspace, and record the run.
func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(cmd.OutOrStderr(), "\nInterrupted. Cleaning up...")
		cancel()
	}()

	logger := newCLILogger(generateVerbose)

	buildCfg, err := loadBuildConfig(generateConfigPath)
	if err != nil {
		return err
	}

	dirs, err := storage.ResolveDirs()
	if err != nil {
		return fmt.Errorf("resolving storage directories: %w", err)
	}
	if err := dirs.EnsureAll(); err != nil {
		return fmt.Errorf("preparing storage directories: %w", err)
	}

	manager := config.NewManager(dirs)
	if err := manager.Load(); err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	settings := manager.Get()

	store, err := credentials.NewStore(dirs.CredentialsDir())
	if err != nil {
		return fmt.Errorf("opening credentials store: %w", err)
	}

	providerRegistry, err := buildProviderRegistry(store, generateProfile, settings.LLM, logger)
	if err != nil {
		return err
	}

	cache, err := protocol.NewResponseCache(&protocol.CacheConfig{
		MaxCost: settings.Protocol.CacheMaxCost,
		TTL:     settings.Protocol.CacheTTL,
	})
	if err != nil {
		providerRegistry.Close()
		return fmt.Errorf("creating response cache: %w", err)
	}

	router, err := protocol.NewRouter(protocol.RouterConfig{
		Registry: providerRegistry,
		Cache:    cache,
		Logger:   logger,
	})
	if err != nil {
		cache.Close()
		providerRegistry.Close()
		return fmt.Errorf("creating router: %w", err)
	}
	defer router.Close()

	roster, err := registry.Build(router, registry.Config{Logger: logger})
	if err != nil {
		return fmt.Errorf("building agents: %w", err)
	}

	outputPath := resolveOutputPath(generateOutputDir, settings.Generator.OutputDir, buildCfg.ProjectName)

	if !generateJSON {
		fmt.Fprintf(cmd.OutOrStdout(), "%s%sGenerating Backend%s\n", colorBold, colorCyan, colorReset)
		fmt.Fprintf(cmd.OutOrStdout(), "%sProject:%s   %s\n", colorGray, colorReset, buildCfg.ProjectName)
		fmt.Fprintf(cmd.OutOrStdout(), "%sFramework:%s %s\n", colorGray, colorReset, buildCfg.Framework)
		fmt.Fprintf(cmd.OutOrStdout(), "%sOutput:%s    %s\n", colorGray, colorReset, outputPath)
		fmt.Fprintln(cmd.OutOrStdout())
	}

	started := time.Now().UTC()

	architecture, err := designArchitecture(ctx, roster.Architect, buildCfg)
	if err != nil {
		recordRun(settings, dirs, logger, &history.Run{
			Project:    buildCfg.ProjectName,
			Framework:  string(buildCfg.Framework),
			OutputPath: outputPath,
			Error:      err.Error(),
			StartedAt:  started,
			FinishedAt: time.Now().UTC(),
		})
		return err
	}

	generator := generators.NewBackendGenerator(router, generators.Config{Logger: logger})

	result, err := generator.Generate(ctx, buildCfg, architecture, outputPath)
	if err != nil {
		recordRun(settings, dirs, logger, &history.Run{
			Project:    buildCfg.ProjectName,
			Framework:  string(buildCfg.Framework),
			OutputPath: outputPath,
			Error:      err.Error(),
			StartedAt:  started,
			FinishedAt: time.Now().UTC(),
		})
		return err
	}

	writer, err := workspace.NewWriter(workspace.WriterConfig{
		Root:   outputPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("creating workspace writer: %w", err)
	}

	writeResult, err := writer.Write(result.Files)
	if err != nil {
		recordRun(settings, dirs, logger, &history.Run{
			Project:    buildCfg.ProjectName,
			Framework:  string(buildCfg.Framework),
			OutputPath: outputPath,
			Error:      err.Error(),
			StartedAt:  started,
			FinishedAt: time.Now().UTC(),
		})
		return fmt.Errorf("writing project files: %w", err)
	}

	var commit string
	if resolveGitInit(cmd.Flags().Changed("git"), generateGit, generateNoGit, settings.Generator.GitInit) {
		commit, err = writer.InitGit()
		if err != nil {
			logger.Warn("git initialization failed", "error", err)
			fmt.Fprintf(cmd.OutOrStderr(), "%sWarning: git initialization failed: %v%s\n", colorYellow, err, colorReset)
		}
	}

	run := &history.Run{
		Project:    buildCfg.ProjectName,
		Framework:  string(buildCfg.Framework),
		OutputPath: outputPath,
		FileCount:  len(writeResult.Written),
		Success:    true,
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
	}
	recordRun(settings, dirs, logger, run)

	output := &generateOutput{
		Project:      buildCfg.ProjectName,
		Framework:    string(result.Framework),
		OutputPath:   outputPath,
		FilesWritten: len(writeResult.Written),
		FilesSkipped: len(writeResult.Skipped),
		Commit:       commit,
		Duration:     run.Duration().Round(time.Millisecond).String(),
		RunID:        run.ID,
		Features:     result.FeaturesImplemented,
		NextSteps:    result.NextSteps,
	}

	if generateJSON {
		return outputJSONGenerate(cmd.OutOrStdout(), output)
	}
	return outputRichGenerate(cmd.OutOrStdout(), output)
}

// loadBuildConfig reads and validates the backend build configuration.
func loadBuildConfig(path string) (*backend.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading build configuration: %w", err)
	}

	cfg, err := backend.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("invalid build configuration %s: %w", path, err)
	}
	return cfg, nil
}

// buildProviderRegistry registers an adapter for every target that has a
// credential, from the store or the <TARGET>_API_KEY environment.
func buildProviderRegistry(store *credentials.Store, profile string, llm config.LLMConfig, logger *slog.Logger) (*providers.Registry, error) {
	builder := providers.NewRegistryBuilder(logger)
	registered := 0

	if key, err := resolveTargetSecret(store, profile, "claude"); err != nil {
		return nil, err
	} else if key != "" {
		cfg := providers.DefaultClaudeConfig()
		cfg.BaseConfig = applyLLMSettings(cfg.BaseConfig, llm, key)
		builder.WithClaude(cfg)
		registered++
	}

	if key, err := resolveTargetSecret(store, profile, "openai"); err != nil {
		return nil, err
	} else if key != "" {
		cfg := providers.DefaultOpenAIConfig()
		cfg.BaseConfig = applyLLMSettings(cfg.BaseConfig, llm, key)
		builder.WithOpenAI(cfg)
		registered++
	}

	if key, err := resolveTargetSecret(store, profile, "deepseek"); err != nil {
		return nil, err
	} else if key != "" {
		cfg := providers.DefaultDeepSeekConfig()
		cfg.BaseConfig = applyLLMSettings(cfg.BaseConfig, llm, key)
		builder.WithDeepSeek(cfg)
		registered++
	}

	if key, err := resolveTargetSecret(store, profile, "gemini"); err != nil {
		return nil, err
	} else if key != "" {
		cfg := providers.DefaultGeminiConfig()
		cfg.BaseConfig = applyLLMSettings(cfg.BaseConfig, llm, key)
		builder.WithGemini(cfg)
		registered++
	}

	if registered == 0 {
		return nil, fmt.Errorf("no provider credentials configured; run 'genesis auth set <target>' or set an API key environment variable")
	}

	return builder.Build()
}

// resolveTargetSecret looks up a credential, treating "not found" as an
// empty key rather than an error.
func resolveTargetSecret(store *credentials.Store, profile, target string) (string, error) {
	key, err := store.ResolveSecret(profile, target)
	if err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("resolving %s credential: %w", target, err)
	}
	return key, nil
}

// applyLLMSettings overlays the user's LLM settings onto a provider
// configuration.
func applyLLMSettings(base providers.BaseConfig, llm config.LLMConfig, key string) providers.BaseConfig {
	base.APIKey = key
	if llm.Timeout > 0 {
		base.Timeout = llm.Timeout
	}
	if llm.MaxRetries > 0 {
		base.MaxRetries = llm.MaxRetries
	}
	return base
}

// designArchitecture runs the architect pipeline: requirements analysis,
// API design, then data model design. Each step feeds the next.
func designArchitecture(ctx context.Context, arch *architect.Architect, cfg *backend.Config) (map[string]any, error) {
	analysis := arch.Execute(ctx, agent.NewTask(architect.TaskAnalyzeRequirements, map[string]any{
		"description": cfg.Description,
		"features":    cfg.Features,
	}))
	if !analysis.Success {
		return nil, fmt.Errorf("requirements analysis failed: %s", analysis.Error)
	}
	requirements, _ := analysis.Result["backend_requirements"].(map[string]any)

	design := arch.Execute(ctx, agent.NewTask(architect.TaskDesignAPI, map[string]any{
		"requirements": requirements,
	}))
	if !design.Success {
		return nil, fmt.Errorf("api design failed: %s", design.Error)
	}
	apiDesign, _ := design.Result["api_specification"].(map[string]any)

	models := arch.Execute(ctx, agent.NewTask(architect.TaskDesignDataModels, map[string]any{
		"requirements": requirements,
		"api_design":   apiDesign,
	}))
	if !models.Success {
		return nil, fmt.Errorf("data model design failed: %s", models.Error)
	}

	return map[string]any{
		"requirements": requirements,
		"api_design":   apiDesign,
		"data_models":  anySlice(models.Result["data_models"]),
	}, nil
}

// anySlice normalizes a slice value to []any. Typed map slices come out
// of the architect's parsers; generators consume the generic form.
func anySlice(v any) []any {
	switch vals := v.(type) {
	case []any:
		return vals
	case []map[string]any:
		out := make([]any, len(vals))
		for i, m := range vals {
			out[i] = m
		}
		return out
	}
	return nil
}

// resolveOutputPath picks the destination directory: the explicit flag
// wins, otherwise the configured output dir plus the project name.
func resolveOutputPath(flagValue, configuredDir, projectName string) string {
	if flagValue != "" {
		return flagValue
	}
	if configuredDir == "" {
		configuredDir = "generated"
	}
	return filepath.Join(configuredDir, projectName)
}

// resolveGitInit decides whether to initialize git: --no-git always wins,
// an explicit --git overrides the setting, otherwise the setting applies.
func resolveGitInit(gitChanged, gitFlag, noGit, settingDefault bool) bool {
	if noGit {
		return false
	}
	if gitChanged {
		return gitFlag
	}
	return settingDefault
}

// historyDBPath picks the run database location: the configured override
// or the platform data directory.
func historyDBPath(settings *config.Config, dirs *storage.Dirs) string {
	if settings.History.DBPath != "" {
		return settings.History.DBPath
	}
	return dirs.HistoryDBPath()
}

// recordRun stores a run in the history database. Recording failures are
// logged rather than surfaced: history must never break generation.
func recordRun(settings *config.Config, dirs *storage.Dirs, logger *slog.Logger, run *history.Run) {
	store, err := history.NewStore(history.Config{
		DBPath:          historyDBPath(settings, dirs),
		RecentCacheSize: settings.History.RecentCacheSize,
	})
	if err != nil {
		logger.Warn("opening history store failed", "error", err)
		return
	}
	defer store.Close()

	if err := store.Record(run); err != nil {
		logger.Warn("recording run failed", "error", err)
	}
}

// newCLILogger builds the logger shared by all pipeline components.
// Verbose enables debug logging; otherwise only warnings surface so
// command output stays clean.
func newCLILogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// =============================================================================
// Generate Output
// =============================================================================

// outputJSONGenerate outputs the generation summary as JSON.
func outputJSONGenerate(w io.Writer, output *generateOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// outputRichGenerate outputs the generation summary with rich formatting.
func outputRichGenerate(w io.Writer, output *generateOutput) error {
	fmt.Fprintf(w, "%s%sBackend Generated%s\n", colorBold, colorGreen, colorReset)
	fmt.Fprintf(w, "%s%s%s\n", colorGray, strings.Repeat("-", 40), colorReset)

	fmt.Fprintf(w, "%sProject:%s   %s\n", colorGray, colorReset, output.Project)
	fmt.Fprintf(w, "%sFramework:%s %s\n", colorGray, colorReset, output.Framework)
	fmt.Fprintf(w, "%sOutput:%s    %s\n", colorGray, colorReset, output.OutputPath)
	fmt.Fprintf(w, "%sFiles:%s     %d written", colorGray, colorReset, output.FilesWritten)
	if output.FilesSkipped > 0 {
		fmt.Fprintf(w, ", %d skipped", output.FilesSkipped)
	}
	fmt.Fprintln(w)

	if output.Commit != "" {
		fmt.Fprintf(w, "%sCommit:%s    %s\n", colorGray, colorReset, output.Commit)
	}
	fmt.Fprintf(w, "%sDuration:%s  %s\n", colorGray, colorReset, output.Duration)

	if len(output.NextSteps) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s%sNext Steps%s\n", colorBold, colorCyan, colorReset)
		for i, step := range output.NextSteps {
			fmt.Fprintf(w, "  %d. %s\n", i+1, step)
		}
	}

	return nil
}
