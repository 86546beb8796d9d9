package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Loader handles loading configuration from files and command-line arguments.
type Loader struct{}

// ErrHelpRequested is returned when the user requests help via --help flag.
var ErrHelpRequested = errors.New("help requested")

// NewLoader creates a new configuration Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses command-line arguments and the optional configuration file to
// produce a Config. Flag values override file values.
func (Loader) Load(args []string) (*Config, error) {
	cmd := newFlagCommand()
	if err := cmd.Flags().Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			displayHelp(cmd)
			return nil, ErrHelpRequested
		}
		return nil, err
	}

	flagSet := cmd.Flags()
	if helpFlag := flagSet.Lookup("help"); helpFlag != nil {
		if wantsHelp, err := strconv.ParseBool(helpFlag.Value.String()); err == nil && wantsHelp {
			displayHelp(cmd)
			return nil, ErrHelpRequested
		}
	}

	configPath := flagSet.Lookup("config").Value.String()
	cfgViper := viper.New()
	if configPath != "" {
		cfgViper.SetConfigFile(configPath)
		if err := cfgViper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	settings := cfgViper.AllSettings()

	cfg := &Config{
		ReportsDir: "reports",
		OutputDir:  "charts",
		Width:      8,
		Height:     5,
		ConfigFile: configPath,
	}

	if err := applyConfigSettings(cfg, settings); err != nil {
		return nil, err
	}

	if err := applyFlagOverrides(cfg, flagSet); err != nil {
		return nil, err
	}

	cfg.ReportsDir = strings.TrimSpace(cfg.ReportsDir)
	cfg.OutputDir = strings.TrimSpace(cfg.OutputDir)
	cfg.HTMLOutput = strings.TrimSpace(cfg.HTMLOutput)

	return cfg, nil
}

// applyConfigSettings applies settings from a config file to the Config struct.
func applyConfigSettings(cfg *Config, settings map[string]interface{}) error {
	if len(settings) == 0 {
		return nil
	}

	if raw, ok := lookupSetting(settings, "reports", "reports_dir", "reports-dir"); ok {
		val, err := asString(raw)
		if err != nil {
			return fmt.Errorf("reports: %w", err)
		}
		if strings.TrimSpace(val) != "" {
			cfg.ReportsDir = val
		}
	}

	if raw, ok := lookupSetting(settings, "out", "output", "out_dir", "out-dir"); ok {
		val, err := asString(raw)
		if err != nil {
			return fmt.Errorf("out: %w", err)
		}
		if strings.TrimSpace(val) != "" {
			cfg.OutputDir = val
		}
	}

	if raw, ok := lookupSetting(settings, "metrics", "metric"); ok {
		vals, err := asStringSlice(raw)
		if err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		cfg.Metrics = vals
	}

	if raw, ok := lookupSetting(settings, "width"); ok {
		val, err := asFloat64(raw)
		if err != nil {
			return fmt.Errorf("width: %w", err)
		}
		if val != 0 {
			cfg.Width = val
		}
	}

	if raw, ok := lookupSetting(settings, "height"); ok {
		val, err := asFloat64(raw)
		if err != nil {
			return fmt.Errorf("height: %w", err)
		}
		if val != 0 {
			cfg.Height = val
		}
	}

	if raw, ok := lookupSetting(settings, "jsonoutput", "json_output", "json-output"); ok {
		val, err := asBool(raw)
		if err != nil {
			return fmt.Errorf("jsonOutput: %w", err)
		}
		cfg.JSONOutput = val
	}

	if raw, ok := lookupSetting(settings, "htmloutput", "html_output", "html-output"); ok {
		val, err := asString(raw)
		if err != nil {
			return fmt.Errorf("htmlOutput: %w", err)
		}
		cfg.HTMLOutput = strings.TrimSpace(val)
	}

	return nil
}
