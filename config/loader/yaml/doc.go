// Package yaml loads and saves configuration node trees as commented YAML documents.
//
// The package is built from three parts:
//   - a tree converter that walks a parsed YAML tree into a node.Node tree and back
//   - a comment block codec that extracts the document header and renders it again
//   - an Engine that parses and prints YAML text; the default engine is backed by gopkg.in/yaml.v3
//
// Every scalar is read as a string. Coercion into other types is left to callers,
// for example config/parser/yaml.
//
// Usage:
//
//	loader := yaml.NewLoader(yaml.WithGuessIndentation(true))
//	root, err := loader.Load(reader)
//	root.Node("server", "port").SetComment("listen port").SetRaw("8080")
//	err = loader.Save(root, writer)
//
// Comments written directly above a mapping key or a sequence item are attached to
// that node. A comment block at the very top of the document, terminated by a blank
// line or a "---" line, is the header and is stored in the root node options instead.
package yaml
