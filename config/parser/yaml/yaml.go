package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/hjarta-yaml/config/node"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// Parser decodes YAML data into Go values.
// It uses goccy/go-yaml PathString for path navigation.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses YAML data and unmarshals it into the target.
// The path parameter specifies a navigation path using colon (:) as separator.
// Empty path parses the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		err := yaml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	yamlPath := convertToYAMLPath(path)

	pathObj, err := yaml.PathString(yamlPath)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	err = pathObj.Read(bytes.NewReader(data), target)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}

// Renderer prints a node tree as YAML without a header.
// *config/loader/yaml.Loader implements it.
type Renderer interface {
	Render(n *node.Node) ([]byte, error)
}

// Decoder decodes a loaded node tree into Go values.
//
// Node trees hold every scalar as a string. The tree is rendered back to YAML
// and decoded with the Parser, which resolves "8080" into an int or "true" into a bool
// from the plain presentation.
type Decoder struct {
	renderer Renderer
	parser   *Parser
}

// NewDecoder creates a Decoder rendering trees with r.
func NewDecoder(r Renderer) *Decoder {
	return &Decoder{
		renderer: r,
		parser:   NewParser(),
	}
}

// Decode unmarshals the value at path below root into target.
// The path uses colon (:) as separator; an empty path decodes the whole tree.
func (d *Decoder) Decode(root *node.Node, target any, path string) error {
	if root == nil || root.Empty() {
		return ErrEmptyData
	}

	data, err := d.renderer.Render(root)
	if err != nil {
		return fmt.Errorf("rendering tree: %w", err)
	}

	return d.parser.Parse(data, target, path)
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "api:permissions" -> "$.api.permissions"
//   - "servers:0:host" -> "$.servers[0].host"
func convertToYAMLPath(path string) string {
	var builder strings.Builder

	builder.WriteString("$")

	for part := range strings.SplitSeq(path, ":") {
		if isIndex(part) {
			builder.WriteString("[" + part + "]")

			continue
		}

		builder.WriteString("." + part)
	}

	return builder.String()
}

func isIndex(part string) bool {
	if part == "" {
		return false
	}

	for _, r := range part {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
