package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// AnalyzerConfig holds the tunable settings for a run
type AnalyzerConfig struct {
	MinNonAdjacentDays int    `json:"min_non_adjacent_days"` // temporal recurrence threshold
	MinPatternCount    int    `json:"min_pattern_count"`     // occurrence floor for pattern aliases
	MaxEntries         int    `json:"max_entries"`           // 0 = unlimited
	HistoryFile        string `json:"history_file"`          // empty = auto-detect
	HistoryFormat      string `json:"history_format"`        // bash, zsh, simple, or empty = detect
	HistoryDB          string `json:"history_db"`            // optional sqlite command log
	OutputDir          string `json:"output_dir"`            // where suggestion scripts are written
	TopAliases         int    `json:"top_aliases"`
	TopFunctions       int    `json:"top_functions"`
	TopEnvVars         int    `json:"top_env_vars"`
	PasteFilterEnabled bool   `json:"paste_filter_enabled"`
	OracleTimeoutMs    int    `json:"oracle_timeout_ms"`
	RulesFile          string `json:"rules_file"`
	UpdateRepository   string `json:"update_repository"`
}

// systemConfig is the on-disk envelope for the analyzer configuration
type systemConfig struct {
	ConfigVersion string         `json:"config_version"`
	LastUpdated   time.Time      `json:"last_updated"`
	Analyzer      AnalyzerConfig `json:"analyzer"`
}

// ConfigManager provides centralized configuration management
type ConfigManager struct {
	configDir  string
	configPath string
	mutex      sync.RWMutex
	config     AnalyzerConfig
	lastSaved  time.Time
}

// defaultAnalyzerConfig returns the built-in defaults
func defaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		MinNonAdjacentDays: 5,
		MinPatternCount:    3,
		MaxEntries:         0,
		TopAliases:         25,
		TopFunctions:       10,
		TopEnvVars:         15,
		PasteFilterEnabled: true,
		OracleTimeoutMs:    2000,
		UpdateRepository:   "tempo-cli/tempo",
	}
}

// NewConfigManager creates a new configuration manager instance
func NewConfigManager() (*ConfigManager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv("HOME")
	}

	configDir := filepath.Join(homeDir, ".config", "tempo")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %v", err)
	}

	return &ConfigManager{
		configDir:  configDir,
		configPath: filepath.Join(configDir, "config.json"),
		config:     defaultAnalyzerConfig(),
	}, nil
}

// Initialize loads the configuration from disk, writing defaults on first
// run, then applies environment overrides
func (cm *ConfigManager) Initialize() error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	if err := cm.loadConfig(); err != nil {
		if err := cm.saveConfig(); err != nil {
			return fmt.Errorf("failed to save initial configuration: %v", err)
		}
	}

	cm.applyEnvOverrides()
	return nil
}

// loadConfig loads the configuration from disk
func (cm *ConfigManager) loadConfig() error {
	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return err
	}

	var config systemConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return err
	}

	cm.config = config.Analyzer
	cm.lastSaved = config.LastUpdated
	return nil
}

// saveConfig saves the configuration to disk
func (cm *ConfigManager) saveConfig() error {
	config := systemConfig{
		ConfigVersion: "1.0",
		LastUpdated:   time.Now(),
		Analyzer:      cm.config,
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cm.configPath), 0755); err != nil {
		return err
	}

	if err := os.WriteFile(cm.configPath, data, 0644); err != nil {
		return err
	}

	cm.lastSaved = config.LastUpdated
	return nil
}

// applyEnvOverrides lets TEMPO_* environment variables override file settings
func (cm *ConfigManager) applyEnvOverrides() {
	cm.config.MinNonAdjacentDays = getEnvInt(envVarPrefix+"MIN_DAYS", cm.config.MinNonAdjacentDays)
	cm.config.MinPatternCount = getEnvInt(envVarPrefix+"MIN_COUNT", cm.config.MinPatternCount)
	cm.config.MaxEntries = getEnvInt(envVarPrefix+"MAX_ENTRIES", cm.config.MaxEntries)
	cm.config.HistoryFile = getEnvString(envVarPrefix+"HISTORY_FILE", cm.config.HistoryFile)
	cm.config.HistoryFormat = getEnvString(envVarPrefix+"HISTORY_FORMAT", cm.config.HistoryFormat)
	cm.config.HistoryDB = getEnvString(envVarPrefix+"HISTORY_DB", cm.config.HistoryDB)
	cm.config.OutputDir = getEnvString(envVarPrefix+"OUTPUT_DIR", cm.config.OutputDir)
	cm.config.PasteFilterEnabled = getEnvBool(envVarPrefix+"PASTE_FILTER", cm.config.PasteFilterEnabled)
	cm.config.OracleTimeoutMs = getEnvInt(envVarPrefix+"ORACLE_TIMEOUT_MS", cm.config.OracleTimeoutMs)
	cm.config.RulesFile = getEnvString(envVarPrefix+"RULES_FILE", cm.config.RulesFile)
}

// GetConfig returns a copy of the current analyzer configuration
func (cm *ConfigManager) GetConfig() AnalyzerConfig {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()
	return cm.config
}

// UpdateConfig replaces the analyzer configuration and persists it
func (cm *ConfigManager) UpdateConfig(config AnalyzerConfig) error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	cm.config = config
	return cm.saveConfig()
}
