// Package store provides a named, file-backed node tree module for the Fx DI container.
package store

import "errors"

// DefaultPath is the default path of the document backing a store.
const DefaultPath = "config.yml"

// ErrEmptyPath is returned when the path is empty.
var ErrEmptyPath = errors.New("path must not be empty")

// ErrEmptyName is returned when the store name is empty.
var ErrEmptyName = errors.New("store name must not be empty")

// ErrLoadFailed is returned when the backing document cannot be read or parsed.
var ErrLoadFailed = errors.New("failed to load document")

// ErrSaveFailed is returned when the tree cannot be written to the backing document.
var ErrSaveFailed = errors.New("failed to save document")

// Config holds the configuration of a store.
type Config struct {
	Path string
	// Header is used for documents that carry no header of their own.
	Header           string
	GuessIndentation bool
	// CreateIfMissing starts with an empty tree when the document does not exist.
	CreateIfMissing bool
	// SaveOnStop writes the tree back when the application stops.
	SaveOnStop bool
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() {
	if c.Path == "" {
		c.Path = DefaultPath
	}
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Path == "" {
		return ErrEmptyPath
	}

	return nil
}
