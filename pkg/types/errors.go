package types

import "errors"

// Strict mode precondition errors. These are diagnostics for caller misuse;
// the update engine itself never returns them.
var (
	ErrQualityOutOfRange = errors.New("quality out of range")
	ErrLegendaryQuality  = errors.New("legendary quality must be 80")
)

// Input and configuration errors.
var (
	ErrUnknownFormat     = errors.New("unknown report format")
	ErrUnsupportedFormat = errors.New("unsupported inventory file format")
	ErrInvalidInventory  = errors.New("invalid inventory file")
	ErrInvalidDays       = errors.New("days must not be negative")
	ErrInvalidLogLevel   = errors.New("invalid log level")
	ErrInvalidLogFormat  = errors.New("invalid log format")
)
