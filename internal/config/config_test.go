package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	t.Setenv("TEST_GETENV", "")
	assert.Equal(t, "default", getenv("TEST_GETENV", "default"))

	t.Setenv("TEST_GETENV", "test-value")
	assert.Equal(t, "test-value", getenv("TEST_GETENV", "default"))
}

func TestGetenvInt(t *testing.T) {
	testCases := []struct {
		value    string
		expected int
	}{
		{"", 42},
		{"100", 100},
		{" 7 ", 7},
		{"not-an-int", 42},
	}

	for _, tc := range testCases {
		t.Setenv("TEST_GETENV_INT", tc.value)
		assert.Equal(t, tc.expected, getenvInt("TEST_GETENV_INT", 42), tc.value)
	}
}

func TestGetenvBool(t *testing.T) {
	testCases := []struct {
		value    string
		def      bool
		expected bool
	}{
		{"", true, true},
		{"true", false, true},
		{"false", true, false},
		{"1", false, true},
		{"not-a-bool", true, true},
	}

	for _, tc := range testCases {
		t.Setenv("TEST_GETENV_BOOL", tc.value)
		assert.Equal(t, tc.expected, getenvBool("TEST_GETENV_BOOL", tc.def), tc.value)
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GITHUB_TOKEN", "COURSEGEN_CATALOG", "LOG_LEVEL", "LOG_FORMAT",
		"SFTP_HOST", "SFTP_PORT", "SFTP_USER", "SFTP_PASS", "SFTP_DIR",
		"SFTP_INSECURE_IGNORE_HOSTKEY", "SFTP_KNOWN_HOSTS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("COURSEGEN_CATALOG", "catalog.yaml")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SFTP_HOST", "sftp.test")
	t.Setenv("SFTP_PORT", "2222")
	t.Setenv("SFTP_USER", "sftp-user")
	t.Setenv("SFTP_PASS", "sftp-pass")
	t.Setenv("SFTP_DIR", "/test-upload")
	t.Setenv("SFTP_INSECURE_IGNORE_HOSTKEY", "false")

	cfg := Load()

	assert.Equal(t, "ghp_test", cfg.GitHubToken)
	assert.Equal(t, "catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "sftp.test", cfg.SFTPHost)
	assert.Equal(t, 2222, cfg.SFTPPort)
	assert.Equal(t, "/test-upload", cfg.SFTPDir)
	assert.False(t, cfg.SFTPInsecureIgnoreHostKey)
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Empty(t, cfg.GitHubToken)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 22, cfg.SFTPPort)
	assert.Equal(t, "/inbound", cfg.SFTPDir)
	assert.True(t, cfg.SFTPInsecureIgnoreHostKey)
}
