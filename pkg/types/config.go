package types

import "fmt"

// Config holds the parameters of a simulation run.
type Config struct {
	Days      int    `json:"days" yaml:"days" mapstructure:"days"`
	Format    string `json:"format" yaml:"format" mapstructure:"format"`
	Inventory string `json:"inventory,omitempty" yaml:"inventory,omitempty" mapstructure:"inventory"`
	Strict    bool   `json:"strict" yaml:"strict" mapstructure:"strict"`
	LogLevel  string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format" mapstructure:"log_format"`
}

// Supported report formats.
const (
	FormatText  = "text"
	FormatJSONL = "jsonl"
	FormatTable = "table"
)

// Supported log output formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Defaults applied when a key is absent from config, env, and flags.
const (
	DefaultDays      = 30
	DefaultFormat    = FormatText
	DefaultLogLevel  = "warn"
	DefaultLogFormat = LogFormatConsole
)

// knownFormats lists the formats that Validate accepts.
var knownFormats = map[string]bool{
	FormatText:  true,
	FormatJSONL: true,
	FormatTable: true,
}

// knownLogLevels lists the log levels that Validate accepts.
var knownLogLevels = map[string]bool{
	"trace":    true,
	"debug":    true,
	"info":     true,
	"warn":     true,
	"error":    true,
	"fatal":    true,
	"panic":    true,
	"disabled": true,
}

// knownLogFormats lists the log formats that Validate accepts.
var knownLogFormats = map[string]bool{
	LogFormatConsole: true,
	LogFormatJSON:    true,
}

// DefaultConfig returns a Config populated with the default values.
func DefaultConfig() Config {
	return Config{
		Days:      DefaultDays,
		Format:    DefaultFormat,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package, wrapped with the offending value.
func (c Config) Validate() error {
	if c.Days < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDays, c.Days)
	}
	if !knownFormats[c.Format] {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	if c.LogLevel != "" && !knownLogLevels[c.LogLevel] {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	if c.LogFormat != "" && !knownLogFormats[c.LogFormat] {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	return nil
}
