package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/vk-validation/config"
	"github.com/wippyai/vk-validation/errors"
	"github.com/wippyai/vk-validation/layer"
)

func TestDefaultMatchesLayer(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	ls := cfg.Layer()
	want := layer.DefaultSettings()
	assert.Equal(t, want.ReportFlags, ls.ReportFlags)
	assert.Equal(t, want.DebugAction, ls.DebugAction)
	assert.Equal(t, want.MaxStringLength, ls.MaxStringLength)
	assert.Equal(t, want.HistorySize, ls.HistorySize)
	assert.Zero(t, ls.BlockOn)
}

func TestParse(t *testing.T) {
	cfg, err := config.Parse(`
report_flags = "error, info"
block_on = "warning,perf"
debug_action = "callback"
disabled_codes = ["failure_return_code", "DEVICE_LIMIT"]
max_string_length = 64
log_file = "stderr"
log_format = "JSON"
`)
	require.NoError(t, err)
	assert.Equal(t, errors.SeverityError|errors.SeverityInfo, cfg.ReportFlags)
	assert.Equal(t, errors.SeverityWarning|errors.SeverityPerformance, cfg.BlockOn)
	assert.Equal(t, layer.ActionCallback, cfg.DebugAction)
	assert.Equal(t, []errors.Code{errors.CodeFailureReturnCode, errors.CodeDeviceLimit}, cfg.DisabledCodes)
	assert.Equal(t, 64, cfg.MaxStringLength)
	assert.Equal(t, "stderr", cfg.LogFile)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel, "missing keys keep defaults")
	assert.Equal(t, 128, cfg.HistorySize)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"bad severity", `report_flags = "loud"`},
		{"bad action", `debug_action = "print"`},
		{"bad code", `disabled_codes = ["NOPE"]`},
		{"bad format", `log_format = "xml"`},
		{"zero length", `max_string_length = 0`},
		{"unknown key", `colour = true`},
		{"not toml", `report_flags =`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse(tt.text)
			assert.Error(t, err)
		})
	}
}

func writeSettings(t *testing.T, path, text string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
}

func TestLoadAppliesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vkv.toml")
	writeSettings(t, path, `block_on = "warning"`+"\n"+`log_file = "stdout"`)

	t.Setenv(config.EnvBlockOn, "none")
	t.Setenv(config.EnvDebugAction, "ignore")
	t.Setenv(config.EnvMaxStringLength, "32")
	t.Setenv(config.EnvLogFile, "stderr")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Zero(t, cfg.BlockOn)
	assert.Equal(t, layer.ActionIgnore, cfg.DebugAction)
	assert.Equal(t, 32, cfg.MaxStringLength)
	assert.Equal(t, "stderr", cfg.LogFile)
}

func TestLoadBadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vkv.toml")
	writeSettings(t, path, "")

	t.Setenv(config.EnvMaxStringLength, "many")
	_, err := config.Load(path)
	assert.ErrorContains(t, err, config.EnvMaxStringLength)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "vkv.log")
	cfg.LogFormat = "json"
	cfg.LogLevel = "debug"

	log, err := config.NewLogger(cfg)
	require.NoError(t, err)
	log.Info("hello")
	_ = log.Sync()

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)

	cfg.LogLevel = "chatty"
	_, err = config.NewLogger(cfg)
	assert.Error(t, err)
}

func TestWatchReloads(t *testing.T) {
	prev := config.ReloadDebounce
	config.ReloadDebounce = 10 * time.Millisecond
	t.Cleanup(func() { config.ReloadDebounce = prev })

	dir := t.TempDir()
	path := filepath.Join(dir, "vkv.toml")
	writeSettings(t, path, `block_on = "none"`)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan config.Settings, 16)
	require.NoError(t, config.Watch(ctx, path, func(s config.Settings) {
		select {
		case got <- s:
		default:
		}
	}))

	writeSettings(t, filepath.Join(dir, "other.toml"), `block_on = "error"`)
	writeSettings(t, path, `block_on = "not a severity"`)
	writeSettings(t, path, `block_on = "warning"`)

	// a truncated file can be seen between writes; wait for the final one
	deadline := time.After(5 * time.Second)
	for {
		select {
		case s := <-got:
			if s.BlockOn == errors.SeverityWarning {
				return
			}
		case <-deadline:
			t.Fatal("no reload with the final settings")
		}
	}
}
