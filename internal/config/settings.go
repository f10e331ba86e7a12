// Package config handles settings loading for the writing-assistant SDK.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Environment variables recognized by LoadSettings. Explicit options always
// win over settings files, and settings files win over the environment.
const (
	EnvBaseURL   = "LETTA_BASE_URL"
	EnvToken     = "LETTA_API_KEY"
	EnvModel     = "SCRIBE_MODEL"
	EnvEmbedding = "SCRIBE_EMBEDDING"
)

// Settings holds merged configuration from the environment and settings
// files. Later sources override earlier ones (env < user < project).
type Settings struct {
	BaseURL   string   `json:"baseURL,omitempty"`
	Token     string   `json:"token,omitempty"`
	Model     string   `json:"model,omitempty"`
	Embedding string   `json:"embedding,omitempty"`
	Tools     []string `json:"tools,omitempty"`
	Style     string   `json:"style,omitempty"`
}

// LoadSettings merges settings from the environment and the given JSON file
// paths. Later paths override earlier ones. Missing files are silently
// skipped.
func LoadSettings(paths ...string) (*Settings, error) {
	merged := &Settings{
		BaseURL:   os.Getenv(EnvBaseURL),
		Token:     os.Getenv(EnvToken),
		Model:     os.Getenv(EnvModel),
		Embedding: os.Getenv(EnvEmbedding),
	}

	for _, path := range paths {
		s, err := loadSettingsFile(path)
		if err != nil {
			continue // Skip missing or invalid files
		}
		mergeSettings(merged, s)
	}

	return merged, nil
}

// DefaultSettingsPaths returns the standard settings file search paths.
func DefaultSettingsPaths(projectDir string) []string {
	home, _ := os.UserHomeDir()
	var paths []string

	// User-level settings
	if home != "" {
		paths = append(paths, filepath.Join(home, ".scribe", "settings.json"))
	}

	// Project-level settings
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".scribe", "settings.json"))
	}

	return paths
}

func loadSettingsFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func mergeSettings(dst, src *Settings) {
	if src.BaseURL != "" {
		dst.BaseURL = src.BaseURL
	}
	if src.Token != "" {
		dst.Token = src.Token
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.Embedding != "" {
		dst.Embedding = src.Embedding
	}
	if len(src.Tools) > 0 {
		dst.Tools = src.Tools
	}
	if src.Style != "" {
		dst.Style = src.Style
	}
}
