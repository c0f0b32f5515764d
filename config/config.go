package config

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-yaml/config/node"
)

// NodeLoader parses a document into a node tree.
// See config/loader/yaml for the commented YAML loader.
type NodeLoader interface {
	Parse(data []byte) (*node.Node, error)
}

// NodeDecoder decodes part of a node tree into a target structure.
//
// The path parameter specifies a navigation path within the tree
// using colon (:) as the separator for nested keys. For example:
//   - "api:permissions" navigates to root["api"]["permissions"]
//   - "servers:0:host" navigates into the first list item
//   - "" (empty path) means decode the entire tree
//
// See config/parser/yaml for an implementation using goccy/go-yaml PathString.
type NodeDecoder interface {
	Decode(root *node.Node, target any, path string) error
}

// DataFetcher defines an interface for reading raw documents.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// NodeProvider returns a function that reads a document and loads it into a node tree.
func NodeProvider() func(NodeLoader, DataFetcher) (*node.Node, error) {
	return func(loader NodeLoader, dataSourcer DataFetcher) (*node.Node, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		root, err := loader.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("loading error: %w", err)
		}

		return root, nil
	}
}

// Provider returns a function that reads and loads a document, decodes the value at path,
// sets defaults, and validates it.
func Provider[T any](target *T, path string) func(NodeLoader, NodeDecoder, DataFetcher) (*T, error) {
	load := NodeProvider()

	return func(loader NodeLoader, decoder NodeDecoder, dataSourcer DataFetcher) (*T, error) {
		root, err := load(loader, dataSourcer)
		if err != nil {
			return nil, err
		}

		err = decoder.Decode(root, target, path)
		if err != nil {
			return nil, fmt.Errorf("decoding error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
