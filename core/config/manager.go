package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/genesis-engine/genesis-backend/core/storage"
	"gopkg.in/yaml.v3"
)

type Manager struct {
	configPtr unsafe.Pointer
	dirs      *storage.Dirs
	watchers  []func(*Config)
	watcherMu sync.RWMutex
	watching  atomic.Bool
	stopWatch chan struct{}
	closeOnce sync.Once
}

type Config struct {
	LLM       LLMConfig       `yaml:"llm"`
	Protocol  ProtocolConfig  `yaml:"protocol"`
	Generator GeneratorConfig `yaml:"generator"`
	History   HistoryConfig   `yaml:"history"`
}

type LLMConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	DefaultTarget string        `yaml:"default_target"`
	MaxRetries    int           `yaml:"max_retries"`
}

type ProtocolConfig struct {
	CacheTTL     time.Duration `yaml:"cache_ttl"`
	CacheMaxCost int64         `yaml:"cache_max_cost"`
}

type GeneratorConfig struct {
	OutputDir string `yaml:"output_dir"`
	GitInit   bool   `yaml:"git_init"`
}

type HistoryConfig struct {
	// DBPath overrides the default run database location. Empty means
	// the platform data dir is used.
	DBPath          string `yaml:"db_path"`
	RecentCacheSize int    `yaml:"recent_cache_size"`
}

func NewManager(dirs *storage.Dirs) *Manager {
	m := &Manager{
		dirs:      dirs,
		stopWatch: make(chan struct{}),
	}
	cfg := DefaultConfig()
	atomic.StorePointer(&m.configPtr, unsafe.Pointer(cfg))
	return m
}

func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Timeout:       2 * time.Minute,
			DefaultTarget: "claude",
			MaxRetries:    3,
		},
		Protocol: ProtocolConfig{
			CacheTTL:     5 * time.Minute,
			CacheMaxCost: 100 << 20,
		},
		Generator: GeneratorConfig{
			OutputDir: "generated",
			GitInit:   true,
		},
		History: HistoryConfig{
			RecentCacheSize: 128,
		},
	}
}

func (m *Manager) Get() *Config {
	return (*Config)(atomic.LoadPointer(&m.configPtr))
}

func (m *Manager) Load() error {
	cfg := DefaultConfig()

	if err := m.loadProjectConfig(cfg); err != nil {
		return fmt.Errorf("project config: %w", err)
	}

	if err := m.loadUserConfig(cfg); err != nil {
		return fmt.Errorf("user config: %w", err)
	}

	if err := m.loadLocalConfig(cfg); err != nil {
		return fmt.Errorf("local config: %w", err)
	}

	m.applyEnvironment(cfg)

	atomic.StorePointer(&m.configPtr, unsafe.Pointer(cfg))
	m.notifyWatchers(cfg)

	return nil
}

func (m *Manager) loadProjectConfig(cfg *Config) error {
	projectDirs := storage.ResolveProjectDirs(".")
	return m.loadYAMLFile(projectDirs.Config, cfg)
}

func (m *Manager) loadUserConfig(cfg *Config) error {
	userConfigPath := m.dirs.ConfigDir("config.yaml")
	return m.loadYAMLFile(userConfigPath, cfg)
}

func (m *Manager) loadLocalConfig(cfg *Config) error {
	projectDirs := storage.ResolveProjectDirs(".")
	localPath := filepath.Join(projectDirs.Local, "config.yaml")
	return m.loadYAMLFile(localPath, cfg)
}

func (m *Manager) loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

func (m *Manager) applyEnvironment(cfg *Config) {
	if v := os.Getenv("GENESIS_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.LLM.Timeout = d
		}
	}
	if v := os.Getenv("GENESIS_LLM_DEFAULT_TARGET"); v != "" {
		cfg.LLM.DefaultTarget = v
	}
	if v := os.Getenv("GENESIS_LLM_MAX_RETRIES"); v != "" {
		if n, err := parseInt(v); err == nil {
			cfg.LLM.MaxRetries = n
		}
	}
	if v := os.Getenv("GENESIS_PROTOCOL_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Protocol.CacheTTL = d
		}
	}
	if v := os.Getenv("GENESIS_PROTOCOL_CACHE_MAX_COST"); v != "" {
		if n, err := parseInt(v); err == nil {
			cfg.Protocol.CacheMaxCost = int64(n)
		}
	}
	if v := os.Getenv("GENESIS_GENERATOR_OUTPUT_DIR"); v != "" {
		cfg.Generator.OutputDir = v
	}
	if v := os.Getenv("GENESIS_GENERATOR_GIT_INIT"); v != "" {
		cfg.Generator.GitInit = strings.ToLower(v) == "true"
	}
	if v := os.Getenv("GENESIS_HISTORY_DB_PATH"); v != "" {
		cfg.History.DBPath = v
	}
}

func (m *Manager) OnChange(fn func(*Config)) {
	m.watcherMu.Lock()
	m.watchers = append(m.watchers, fn)
	m.watcherMu.Unlock()
}

func (m *Manager) notifyWatchers(cfg *Config) {
	m.watcherMu.RLock()
	watchers := m.watchers
	m.watcherMu.RUnlock()

	for _, fn := range watchers {
		fn(cfg)
	}
}

func (m *Manager) Reload() error {
	return m.Load()
}

func (m *Manager) Close() error {
	m.closeOnce.Do(func() {
		close(m.stopWatch)
	})
	return nil
}

func parseInt(s string) (int, error) {
	var n int
	_, err := fmt.Sscanf(s, "%d", &n)
	return n, err
}
