package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/rose/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "ROSE"

	// Config keys.
	cfgKeyDays      = "days"
	cfgKeyFormat    = "format"
	cfgKeyInventory = "inventory"
	cfgKeyStrict    = "strict"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"
)

// loadConfig reads config.yaml from configDir into v and layers ROSE_*
// environment variables and defaults underneath any bound flags.
// A missing config.yaml is not an error.
func loadConfig(v *viper.Viper, configDir string) error {
	def := types.DefaultConfig()
	v.SetDefault(cfgKeyDays, def.Days)
	v.SetDefault(cfgKeyFormat, def.Format)
	v.SetDefault(cfgKeyInventory, "")
	v.SetDefault(cfgKeyStrict, false)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyLogFormat, def.LogFormat)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// runConfig decodes the effective configuration and validates it.
func runConfig(v *viper.Viper) (types.Config, error) {
	cfg := types.Config{
		Days:      v.GetInt(cfgKeyDays),
		Format:    v.GetString(cfgKeyFormat),
		Inventory: v.GetString(cfgKeyInventory),
		Strict:    v.GetBool(cfgKeyStrict),
		LogLevel:  v.GetString(cfgKeyLogLevel),
		LogFormat: v.GetString(cfgKeyLogFormat),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}
