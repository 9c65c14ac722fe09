// Package types defines the item and category types, quality bounds, the
// run configuration, and the standard error values for the rose inventory
// engine.
package types
