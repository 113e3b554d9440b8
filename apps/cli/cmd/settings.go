package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "GVTEST"

const (
	flagLogLevel   = "log-level"
	flagLogFormat  = "log-format"
	flagNoColor    = "no-color"
	flagConfigName = "config-name"

	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
)

// Settings are the CLI options shared by every command.
type Settings struct {
	LogLevel   string
	LogFormat  string
	NoColor    bool
	ConfigName string
}

// loadSettings resolves the persistent flags. An explicitly set flag wins
// over GVTEST_* environment variables, which win over flag defaults.
func loadSettings(flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return Settings{}, fmt.Errorf("binding flags: %w", err)
	}

	s := Settings{
		LogLevel:   v.GetString(flagLogLevel),
		LogFormat:  v.GetString(flagLogFormat),
		NoColor:    v.GetBool(flagNoColor),
		ConfigName: v.GetString(flagConfigName),
	}

	switch strings.ToLower(s.LogFormat) {
	case "text", "json":
	default:
		return Settings{}, fmt.Errorf("invalid log format %q (expected text or json)", s.LogFormat)
	}
	if filepath.Base(s.ConfigName) != s.ConfigName {
		return Settings{}, fmt.Errorf("invalid config name %q: must be a plain file name", s.ConfigName)
	}
	return s, nil
}
