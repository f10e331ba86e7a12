package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")

	s := Settings{
		Model:     "deepseek/deepseek-chat",
		Embedding: "ollama/nomic-embed-text:latest",
		Tools:     []string{"web_search"},
	}
	data, _ := json.Marshal(s)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	result, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "deepseek/deepseek-chat", result.Model)
	assert.Equal(t, "ollama/nomic-embed-text:latest", result.Embedding)
	assert.Equal(t, []string{"web_search"}, result.Tools)
}

func TestLoadSettings_MergeOrder(t *testing.T) {
	dir := t.TempDir()

	// User settings (loaded first)
	userPath := filepath.Join(dir, "user.json")
	userData, _ := json.Marshal(Settings{Model: "openai/gpt-4o-mini", Style: "business"})
	require.NoError(t, os.WriteFile(userPath, userData, 0o644))

	// Project settings (loaded second, overrides user)
	projPath := filepath.Join(dir, "project.json")
	projData, _ := json.Marshal(Settings{Model: "deepseek/deepseek-chat", BaseURL: "http://10.0.0.5:8283"})
	require.NoError(t, os.WriteFile(projPath, projData, 0o644))

	result, err := LoadSettings(userPath, projPath)
	require.NoError(t, err)

	assert.Equal(t, "deepseek/deepseek-chat", result.Model, "project should override user")
	assert.Equal(t, "business", result.Style, "user value preserved when project doesn't set it")
	assert.Equal(t, "http://10.0.0.5:8283", result.BaseURL, "project value applied")
}

func TestLoadSettings_EnvironmentBase(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://env-server:8283")
	t.Setenv(EnvModel, "openai/gpt-4o-mini")

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	data, _ := json.Marshal(Settings{Model: "deepseek/deepseek-chat"})
	require.NoError(t, os.WriteFile(path, data, 0o644))

	result, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env-server:8283", result.BaseURL, "env applies when no file sets it")
	assert.Equal(t, "deepseek/deepseek-chat", result.Model, "file overrides env")
}

func TestLoadSettings_MissingFileSkipped(t *testing.T) {
	result, err := LoadSettings("/nonexistent/path.json")
	require.NoError(t, err)
	assert.Equal(t, "", result.Model)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	result, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "", result.Model) // Invalid file skipped
}

func TestDefaultSettingsPaths(t *testing.T) {
	paths := DefaultSettingsPaths("/myproject")
	assert.NotEmpty(t, paths)
	// Should include project-level path
	found := false
	for _, p := range paths {
		if strings.HasPrefix(p, "/myproject") {
			found = true
		}
	}
	assert.True(t, found, "should include project settings paths")
}
