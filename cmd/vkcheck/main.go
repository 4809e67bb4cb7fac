// Command vkcheck exercises the parameter validation layer: it runs
// scenario scripts against the null driver, steps through them
// interactively and inspects the enumerations the layer checks.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wippyai/vk-validation/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	settingsPath string
	logLevel     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "vkcheck",
		Short:        "Run and inspect the Vulkan parameter validation layer",
		SilenceUsage: true,
	}
	fs := cmd.PersistentFlags()
	fs.StringVar(&opts.settingsPath, "settings", "", "layer settings file (TOML)")
	fs.StringVar(&opts.logLevel, "log-level", "", "override the settings log_level")

	cmd.AddCommand(
		newRunCmd(opts),
		newEnumsCmd(),
		newFormatCmd(),
		newCodesCmd(),
	)
	return cmd
}

// settings loads the settings file if one was given. Without one the
// defaults apply, logging to stderr so it does not mix with results.
func (o *rootOptions) settings() (config.Settings, error) {
	var cfg config.Settings
	if o.settingsPath != "" {
		var err error
		if cfg, err = config.Load(o.settingsPath); err != nil {
			return cfg, err
		}
	} else {
		cfg = config.Default()
		cfg.LogFile = "stderr"
		if err := config.ApplyEnv(&cfg); err != nil {
			return cfg, err
		}
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("settings: %w", err)
	}
	return cfg, nil
}
