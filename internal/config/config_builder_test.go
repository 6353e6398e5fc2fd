package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that mergo only fills zero fields, so
// the first config holding a value keeps it.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env:1"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flag:2", UploadPath: "/flag"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://env:1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/flag", cfg.Adapter.UploadPath)
}

func TestBuild_RejectsNegativeTimeout(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Adapter: Adapter{RequestTimeout: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
}

func TestWithDotEnv_LoadsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ADAPTER_UPLOAD_PATH=/from-dotenv\n"), 0o600))
	t.Setenv("ADAPTER_UPLOAD_PATH", "")
	require.NoError(t, os.Unsetenv("ADAPTER_UPLOAD_PATH"))

	b := newConfigBuilder().withDotEnv(path).withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "/from-dotenv", b.configs[0].Adapter.UploadPath)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://decrypter:5000")
	t.Setenv("STORAGE_FILES_DOWNLOAD_DIR", "/tmp/downloads")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://decrypter:5000", b.configs[0].Adapter.HTTPAddress)
	assert.Equal(t, "/tmp/downloads", b.configs[0].Storage.Files.DownloadDir)
}

func TestWithEnv_BadDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-u", "http://flag:5000"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://flag:5000", b.configs[0].Adapter.HTTPAddress)
}

func TestWithFlags_UnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Adapter.UploadPath = "/json"
	payload.Adapter.RequestTimeout = Duration(5 * time.Second)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "/json", b.configs[1].Adapter.UploadPath)
	assert.Equal(t, 5*time.Second, b.configs[1].Adapter.RequestTimeout)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.LogFile = "last-wins.log"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins.log", b.configs[2].App.LogFile)
}

// ── defaults and views ────────────────────────────────────────────────────────

func TestWithDefaults_FillsOnlyZeroFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Adapter: Adapter{HTTPAddress: "http://custom:1"}})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "http://custom:1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultUploadPath, cfg.Adapter.UploadPath)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultServerAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, int64(DefaultMaxUploadSize), cfg.Server.MaxUploadSize)
}

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultUploadPath, cfg.Adapter.UploadPath)
	assert.Equal(t, DefaultDownloadDir, cfg.Storage.DownloadDir)
	assert.Equal(t, DefaultLogFile, cfg.App.LogFile)
}

func TestGetClientConfig_EnvOverridesFlags(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://env:5000")

	cfg, err := GetClientConfig([]string{"-u", "http://flag:5000", "-t", "3s"})
	require.NoError(t, err)
	assert.Equal(t, "http://env:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}

func TestNewClientConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{"empty address", func(c *StructuredConfig) { c.Adapter.HTTPAddress = " " }, ErrInvalidAdapterConfigs},
		{"relative upload path", func(c *StructuredConfig) { c.Adapter.UploadPath = "upload_pdf" }, ErrInvalidAdapterConfigs},
		{"no download dir", func(c *StructuredConfig) { c.Storage.Files.DownloadDir = "" }, ErrInvalidStorageConfigs},
		{"no log file", func(c *StructuredConfig) { c.App.LogFile = "" }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)
			_, err := newClientConfig(cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewServerConfig(t *testing.T) {
	cfg, err := newServerConfig(defaults())
	require.NoError(t, err)
	assert.Equal(t, DefaultServerAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultUploadDir, cfg.UploadDir)

	bad := defaults()
	bad.Server.MaxUploadSize = 0
	_, err = newServerConfig(bad)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)

	bad = defaults()
	bad.Server.HTTPAddress = ""
	_, err = newServerConfig(bad)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}
