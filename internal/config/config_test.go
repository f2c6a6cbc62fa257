package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeTempConfig(t, `{
		"job_url": "https://example.com/job",
		"api_key": "test-key",
		"use_browser": true,
		"port": 9090
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/job", cfg.JobURL)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.True(t, cfg.UseBrowser)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{not json`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_MutuallyExclusiveJobSources(t *testing.T) {
	jobFile := writeTempConfig(t, "posting text")
	cfg := &Config{Job: jobFile, JobURL: "https://example.com/job"}

	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingFilesRejected(t *testing.T) {
	cfg := &Config{Resume: "/nonexistent/resume.txt"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Job: "/nonexistent/job.txt"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_PortRange(t *testing.T) {
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.NoError(t, (&Config{Port: 8080}).Validate())
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := Config{JobURL: "https://flag.example/job"}
	defaults := Config{
		JobURL: "https://file.example/job",
		APIKey: "file-key",
		Model:  "gemini-2.5-flash",
		Port:   9000,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "https://flag.example/job", merged.JobURL)
	assert.Equal(t, "file-key", merged.APIKey)
	assert.Equal(t, "gemini-2.5-flash", merged.Model)
	assert.Equal(t, 9000, merged.Port)
}
