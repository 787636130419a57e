// Package config reads and writes per-repository rivet settings, stored as
// a JSON file inside .git so they never land in the repository itself.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Commit message styles understood by the generation prompts.
const (
	StyleConventional = "conventional"
	StyleAngular      = "angular"
	StyleSimple       = "simple"
	StyleEmoji        = "emoji"
)

// DefaultCommitStyle is used when the config file does not set one.
const DefaultCommitStyle = StyleConventional

// ValidStyles lists the accepted commitStyle values.
var ValidStyles = []string{StyleConventional, StyleAngular, StyleSimple, StyleEmoji}

// RepoConfig mirrors the config file. Pointer fields distinguish unset from
// zero values, so writes only touch the fields they mean to.
type RepoConfig struct {
	CommitStyle        *string `json:"commitStyle,omitempty"`
	CommitSystemPrompt *string `json:"commitSystemPrompt,omitempty"`
	PRSystemPrompt     *string `json:"prSystemPrompt,omitempty"`
	Model              *string `json:"model,omitempty"`
	AutoPush           *bool   `json:"autoPush,omitempty"`
	BaseBranch         *string `json:"baseBranch,omitempty"`
}

func configPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", ".rivet_config")
}

// GetRepoConfig loads the config file, or an empty config when none exists.
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(configPath(repoRoot))
	if err != nil {
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// saveRepoConfig writes the configuration back to the repository.
func saveRepoConfig(repoRoot string, config *RepoConfig) error {
	// Validate repo root exists
	if _, err := os.Stat(repoRoot); err != nil {
		return fmt.Errorf("repository root does not exist: %w", err)
	}

	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath(repoRoot), configJSON, 0600)
}

// IsValidStyle checks whether name is an accepted commitStyle value
func IsValidStyle(name string) bool {
	for _, style := range ValidStyles {
		if style == name {
			return true
		}
	}
	return false
}

// IsInitialized checks if rivet has been initialized in this repository
func IsInitialized(repoRoot string) bool {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return false
	}
	return config.CommitStyle != nil && *config.CommitStyle != ""
}

// GetCommitStyle returns the configured commit style, or the default
func GetCommitStyle(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.CommitStyle != nil && *config.CommitStyle != "" {
		return *config.CommitStyle, nil
	}

	return DefaultCommitStyle, nil
}

// SetCommitStyle updates the commit style in the config
func SetCommitStyle(repoRoot string, style string) error {
	if !IsValidStyle(style) {
		return fmt.Errorf("invalid commit style %q (valid: %v)", style, ValidStyles)
	}

	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	config.CommitStyle = &style
	return saveRepoConfig(repoRoot, config)
}

// GetCommitSystemPrompt returns the custom commit system prompt, or empty
func GetCommitSystemPrompt(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.CommitSystemPrompt != nil {
		return *config.CommitSystemPrompt, nil
	}
	return "", nil
}

// SetCommitSystemPrompt updates the custom commit system prompt
func SetCommitSystemPrompt(repoRoot string, prompt string) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	config.CommitSystemPrompt = &prompt
	return saveRepoConfig(repoRoot, config)
}

// GetPRSystemPrompt returns the custom PR system prompt, or empty
func GetPRSystemPrompt(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.PRSystemPrompt != nil {
		return *config.PRSystemPrompt, nil
	}
	return "", nil
}

// SetPRSystemPrompt updates the custom PR system prompt
func SetPRSystemPrompt(repoRoot string, prompt string) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	config.PRSystemPrompt = &prompt
	return saveRepoConfig(repoRoot, config)
}

// GetModel returns the configured model name, or empty for the default
func GetModel(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.Model != nil {
		return *config.Model, nil
	}
	return "", nil
}

// SetModel updates the model name in the config
func SetModel(repoRoot string, model string) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	config.Model = &model
	return saveRepoConfig(repoRoot, config)
}

// GetAutoPush returns whether accepted commits are pushed automatically, or false by default
func GetAutoPush(repoRoot string) (bool, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return false, err
	}

	if config.AutoPush != nil {
		return *config.AutoPush, nil
	}
	return false, nil
}

// SetAutoPush updates the autoPush configuration
func SetAutoPush(repoRoot string, enabled bool) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	config.AutoPush = &enabled
	return saveRepoConfig(repoRoot, config)
}

// GetBaseBranch returns the configured PR base branch, or empty when the base
// should be detected from the remote
func GetBaseBranch(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.BaseBranch != nil {
		return *config.BaseBranch, nil
	}
	return "", nil
}

// SetBaseBranch updates the PR base branch in the config
func SetBaseBranch(repoRoot string, branch string) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	config.BaseBranch = &branch
	return saveRepoConfig(repoRoot, config)
}

// Get returns the string form of a configuration key, for 'rivet config get'
func Get(repoRoot string, key string) (string, error) {
	switch key {
	case "commitStyle":
		return GetCommitStyle(repoRoot)
	case "commitSystemPrompt":
		return GetCommitSystemPrompt(repoRoot)
	case "prSystemPrompt":
		return GetPRSystemPrompt(repoRoot)
	case "model":
		return GetModel(repoRoot)
	case "autoPush":
		enabled, err := GetAutoPush(repoRoot)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(enabled), nil
	case "baseBranch":
		return GetBaseBranch(repoRoot)
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}

// Set parses and stores a configuration key, for 'rivet config set'
func Set(repoRoot string, key string, value string) error {
	switch key {
	case "commitStyle":
		return SetCommitStyle(repoRoot, value)
	case "commitSystemPrompt":
		return SetCommitSystemPrompt(repoRoot, value)
	case "prSystemPrompt":
		return SetPRSystemPrompt(repoRoot, value)
	case "model":
		return SetModel(repoRoot, value)
	case "autoPush":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("autoPush expects true or false, got %q", value)
		}
		return SetAutoPush(repoRoot, enabled)
	case "baseBranch":
		return SetBaseBranch(repoRoot, value)
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
}

// Keys lists the configuration keys supported by Get and Set
func Keys() []string {
	return []string{"commitStyle", "commitSystemPrompt", "prSystemPrompt", "model", "autoPush", "baseBranch"}
}
