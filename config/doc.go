// Package config loads the validation layer's settings from a TOML file,
// applies VKV_* environment overrides, builds the zap logger the settings
// describe and reloads the file when it changes.
//
// A settings file:
//
//	report_flags = "error,warning,performance"
//	block_on = "warning"
//	debug_action = "log,callback"
//	disabled_codes = ["FAILURE_RETURN_CODE"]
//	log_file = "stderr"
//	log_format = "json"
package config
