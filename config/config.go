package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/wippyai/vk-validation/errors"
	"github.com/wippyai/vk-validation/layer"
)

const (
	EnvReportFlags     = "VKV_REPORT_FLAGS"
	EnvBlockOn         = "VKV_BLOCK_ON"
	EnvDebugAction     = "VKV_DEBUG_ACTION"
	EnvLogFile         = "VKV_LOG_FILE"
	EnvLogFormat       = "VKV_LOG_FORMAT"
	EnvLogLevel        = "VKV_LOG_LEVEL"
	EnvMaxStringLength = "VKV_MAX_STRING_LENGTH"
)

// Settings is the file form of the layer settings plus where the log goes.
type Settings struct {
	ReportFlags     errors.Severity
	BlockOn         errors.Severity
	DebugAction     layer.DebugAction
	DisabledCodes   []errors.Code
	MaxStringLength int
	HistorySize     int

	// LogFile is "stdout", "stderr" or a file path.
	LogFile string
	// LogFormat is "console" or "json".
	LogFormat string
	LogLevel  string
}

type fileConfig struct {
	ReportFlags     string   `toml:"report_flags"`
	BlockOn         string   `toml:"block_on"`
	DebugAction     string   `toml:"debug_action"`
	DisabledCodes   []string `toml:"disabled_codes"`
	MaxStringLength int      `toml:"max_string_length"`
	HistorySize     int      `toml:"history_size"`
	LogFile         string   `toml:"log_file"`
	LogFormat       string   `toml:"log_format"`
	LogLevel        string   `toml:"log_level"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	ls := layer.DefaultSettings()
	return Settings{
		ReportFlags:     ls.ReportFlags,
		BlockOn:         ls.BlockOn,
		DebugAction:     ls.DebugAction,
		MaxStringLength: ls.MaxStringLength,
		HistorySize:     ls.HistorySize,
		LogFile:         "stdout",
		LogFormat:       "console",
		LogLevel:        "info",
	}
}

// Load reads a TOML settings file and applies the environment overrides.
// Keys missing from the file keep their defaults.
func Load(path string) (Settings, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	cfg, err := fromFile(raw, meta)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings %s: %w", path, err)
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

// Parse decodes settings from TOML text without consulting the environment.
func Parse(text string) (Settings, error) {
	var raw fileConfig
	meta, err := toml.Decode(text, &raw)
	if err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return fromFile(raw, meta)
}

func fromFile(raw fileConfig, meta toml.MetaData) (Settings, error) {
	cfg := Default()

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Settings{}, fmt.Errorf("unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("report_flags") {
		s, err := errors.ParseSeverity(raw.ReportFlags)
		if err != nil {
			return Settings{}, fmt.Errorf("parse report_flags: %w", err)
		}
		cfg.ReportFlags = s
	}

	if meta.IsDefined("block_on") {
		s, err := errors.ParseSeverity(raw.BlockOn)
		if err != nil {
			return Settings{}, fmt.Errorf("parse block_on: %w", err)
		}
		cfg.BlockOn = s
	}

	if meta.IsDefined("debug_action") {
		a, err := layer.ParseDebugAction(raw.DebugAction)
		if err != nil {
			return Settings{}, fmt.Errorf("parse debug_action: %w", err)
		}
		cfg.DebugAction = a
	}

	if meta.IsDefined("disabled_codes") {
		codes, err := parseCodes(raw.DisabledCodes)
		if err != nil {
			return Settings{}, fmt.Errorf("parse disabled_codes: %w", err)
		}
		cfg.DisabledCodes = codes
	}

	if meta.IsDefined("max_string_length") {
		cfg.MaxStringLength = raw.MaxStringLength
	}

	if meta.IsDefined("history_size") {
		cfg.HistorySize = raw.HistorySize
	}

	if meta.IsDefined("log_file") {
		cfg.LogFile = strings.TrimSpace(raw.LogFile)
	}

	if meta.IsDefined("log_format") {
		cfg.LogFormat = strings.ToLower(strings.TrimSpace(raw.LogFormat))
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	}

	return cfg, cfg.Validate()
}

func parseCodes(in []string) ([]errors.Code, error) {
	known := errors.Codes()
	out := make([]errors.Code, 0, len(in))
	for _, s := range in {
		c := errors.Code(strings.ToUpper(strings.TrimSpace(s)))
		if c == "" {
			continue
		}
		if !slices.Contains(known, c) {
			return nil, fmt.Errorf("unknown code %q", s)
		}
		out = append(out, c)
	}
	return out, nil
}

// ApplyEnv overrides cfg with the VKV_* variables that are set.
func ApplyEnv(cfg *Settings) error {
	if v, ok := os.LookupEnv(EnvReportFlags); ok {
		s, err := errors.ParseSeverity(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvReportFlags, err)
		}
		cfg.ReportFlags = s
	}
	if v, ok := os.LookupEnv(EnvBlockOn); ok {
		s, err := errors.ParseSeverity(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBlockOn, err)
		}
		cfg.BlockOn = s
	}
	if v, ok := os.LookupEnv(EnvDebugAction); ok {
		a, err := layer.ParseDebugAction(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebugAction, err)
		}
		cfg.DebugAction = a
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok && strings.TrimSpace(v) != "" {
		cfg.LogFile = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok && strings.TrimSpace(v) != "" {
		cfg.LogFormat = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv(EnvMaxStringLength); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxStringLength, err)
		}
		cfg.MaxStringLength = n
	}
	return cfg.Validate()
}

// Validate rejects settings the layer cannot run with.
func (s Settings) Validate() error {
	if s.MaxStringLength <= 0 {
		return fmt.Errorf("max_string_length must be positive, got %d", s.MaxStringLength)
	}
	if s.HistorySize < 0 {
		return fmt.Errorf("history_size must not be negative, got %d", s.HistorySize)
	}
	switch s.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log_format must be console or json, got %q", s.LogFormat)
	}
	if s.LogFile == "" {
		return fmt.Errorf("log_file must not be empty")
	}
	return nil
}

// Layer returns the part of the settings the layer consumes.
func (s Settings) Layer() layer.Settings {
	return layer.Settings{
		ReportFlags:     s.ReportFlags,
		BlockOn:         s.BlockOn,
		DebugAction:     s.DebugAction,
		DisabledCodes:   slices.Clone(s.DisabledCodes),
		MaxStringLength: s.MaxStringLength,
		HistorySize:     s.HistorySize,
	}
}
