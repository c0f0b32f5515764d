package yaml

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	yamlv3 "gopkg.in/yaml.v3"
)

// DefaultIndent is the number of spaces per nesting level in printed documents.
const DefaultIndent = 2

const nullTag = "!!null"

// V3Engine is the Engine backed by gopkg.in/yaml.v3.
//
// Comments are read from head comments: a mapping entry comment is the head comment
// of its key, falling back to the head comment of its value, and a sequence item
// comment is the head comment of the item. Document head and foot comments belong
// to the header and footer and are not attached to any node. Aliases are read as
// the node they refer to.
type V3Engine struct {
	indent int
}

// NewV3Engine creates an engine printing with the given indentation.
// A non-positive indent uses DefaultIndent.
func NewV3Engine(indent int) *V3Engine {
	if indent <= 0 {
		indent = DefaultIndent
	}

	return &V3Engine{indent: indent}
}

type v3Tree struct {
	node    *yamlv3.Node
	comment string
}

func (t *v3Tree) Kind() TreeKind {
	switch t.node.Kind {
	case yamlv3.MappingNode:
		return KindMapping
	case yamlv3.SequenceNode:
		return KindSequence
	default:
		return KindScalar
	}
}

func (t *v3Tree) Comment() string {
	return t.comment
}

func (t *v3Tree) Pairs() []Pair {
	if t.node.Kind != yamlv3.MappingNode {
		return nil
	}

	pairs := make([]Pair, 0, len(t.node.Content)/2)

	for i := 0; i+1 < len(t.node.Content); i += 2 {
		key, value := t.node.Content[i], t.node.Content[i+1]

		comment := stripCommentMarkers(key.HeadComment)
		if comment == "" {
			comment = stripCommentMarkers(value.HeadComment)
		}

		pairs = append(pairs, Pair{
			Key:   &v3Tree{node: dereference(key)},
			Value: &v3Tree{node: dereference(value), comment: comment},
		})
	}

	return pairs
}

func (t *v3Tree) Values() []Tree {
	if t.node.Kind != yamlv3.SequenceNode {
		return nil
	}

	values := make([]Tree, 0, len(t.node.Content))
	for _, item := range t.node.Content {
		values = append(values, &v3Tree{node: dereference(item), comment: stripCommentMarkers(item.HeadComment)})
	}

	return values
}

func (t *v3Tree) Value() string {
	return t.node.Value
}

// Parse implements Engine.
func (e *V3Engine) Parse(text string, guessIndentation bool) (Tree, error) {
	if guessIndentation {
		text = GuessIndentation(text)
	}

	var document yamlv3.Node

	err := yamlv3.NewDecoder(strings.NewReader(text)).Decode(&document)
	if errors.Is(err, io.EOF) {
		return emptyMapping(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	root := &document
	if root.Kind == yamlv3.DocumentNode {
		if len(root.Content) == 0 {
			return emptyMapping(), nil
		}

		root = root.Content[0]
	}

	if root.Kind == yamlv3.ScalarNode && root.Tag == nullTag {
		return emptyMapping(), nil
	}

	if root.Kind != yamlv3.MappingNode {
		return nil, fmt.Errorf("%w, found line %d: %s", ErrRootNotMapping, root.Line, describeKind(root.Kind))
	}

	err = checkAliases(root, nil)
	if err != nil {
		return nil, err
	}

	return &v3Tree{node: root, comment: stripCommentMarkers(root.HeadComment)}, nil
}

// Print implements Engine.
//
// The comment of root itself is not printed: with no key to sit above, yaml.v3 would hand
// it to the first key on the next parse. Document level text belongs in the header.
func (e *V3Engine) Print(root Tree, w io.Writer) error {
	tree, ok := root.(*v3Tree)
	if !ok {
		return fmt.Errorf("%w: %T", ErrForeignTree, root)
	}

	top := *tree.node
	top.HeadComment = ""

	encoder := yamlv3.NewEncoder(w)
	encoder.SetIndent(e.indent)

	err := encoder.Encode(&top)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return fmt.Errorf("closing encoder: %w", err)
	}

	return nil
}

// Mapping implements Engine. Entry comments are moved onto the entry keys.
func (e *V3Engine) Mapping(entries []Entry, comment string) Tree {
	mapping := &yamlv3.Node{
		Kind:        yamlv3.MappingNode,
		HeadComment: addCommentMarkers(comment),
	}

	for _, entry := range entries {
		value := e.own(entry.Value)

		key := &yamlv3.Node{
			Kind:        yamlv3.ScalarNode,
			Value:       entry.Key,
			HeadComment: value.HeadComment,
		}
		value.HeadComment = ""

		mapping.Content = append(mapping.Content, key, value)
	}

	return &v3Tree{node: mapping, comment: comment}
}

// Sequence implements Engine.
func (e *V3Engine) Sequence(values []Tree, comment string) Tree {
	sequence := &yamlv3.Node{
		Kind:        yamlv3.SequenceNode,
		HeadComment: addCommentMarkers(comment),
	}

	for _, value := range values {
		sequence.Content = append(sequence.Content, e.own(value))
	}

	return &v3Tree{node: sequence, comment: comment}
}

// Scalar implements Engine. The scalar is untagged so it keeps its plain presentation
// whenever YAML allows it.
func (e *V3Engine) Scalar(value, comment, inlineComment string) Tree {
	return &v3Tree{
		node: &yamlv3.Node{
			Kind:        yamlv3.ScalarNode,
			Value:       value,
			HeadComment: addCommentMarkers(comment),
			LineComment: addCommentMarkers(inlineComment),
		},
		comment: comment,
	}
}

func (e *V3Engine) own(tree Tree) *yamlv3.Node {
	if t, ok := tree.(*v3Tree); ok {
		return t.node
	}

	// Trees from another engine are rebuilt through this one.
	switch tree.Kind() {
	case KindMapping:
		entries := make([]Entry, 0, len(tree.Pairs()))
		for _, pair := range tree.Pairs() {
			entries = append(entries, Entry{Key: pair.Key.Value(), Value: pair.Value})
		}

		return e.own(e.Mapping(entries, tree.Comment()))
	case KindSequence:
		return e.own(e.Sequence(tree.Values(), tree.Comment()))
	default:
		return e.own(e.Scalar(tree.Value(), tree.Comment(), ""))
	}
}

func emptyMapping() *v3Tree {
	return &v3Tree{node: &yamlv3.Node{Kind: yamlv3.MappingNode}}
}

func dereference(n *yamlv3.Node) *yamlv3.Node {
	for n.Kind == yamlv3.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	return n
}

// checkAliases rejects aliases that refer to one of their own ancestors.
func checkAliases(n *yamlv3.Node, ancestors []*yamlv3.Node) error {
	if n.Kind == yamlv3.AliasNode {
		target := dereference(n)
		if slices.Contains(ancestors, target) {
			return fmt.Errorf("%w *%s at line %d", ErrRecursiveAlias, n.Value, n.Line)
		}

		n = target
	}

	ancestors = append(ancestors, n)

	for _, child := range n.Content {
		err := checkAliases(child, ancestors)
		if err != nil {
			return err
		}
	}

	return nil
}

func describeKind(kind yamlv3.Kind) string {
	switch kind {
	case yamlv3.SequenceNode:
		return "sequence"
	case yamlv3.ScalarNode:
		return "scalar"
	case yamlv3.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// stripCommentMarkers removes the "#" marker and one following space from every line.
func stripCommentMarkers(comment string) string {
	if comment == "" {
		return ""
	}

	lines := strings.Split(strings.ReplaceAll(comment, "\r\n", "\n"), "\n")
	for i, line := range lines {
		line = strings.TrimLeft(line, " \t")
		if strings.HasPrefix(line, commentPrefix) {
			line = strings.TrimPrefix(line[len(commentPrefix):], " ")
		}

		lines[i] = line
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// addCommentMarkers prefixes every line of comment with "# ", the exact inverse of
// stripCommentMarkers. Lines may be separated by "\n" or "\r\n".
func addCommentMarkers(comment string) string {
	if comment == "" {
		return ""
	}

	lines := strings.Split(comment, "\n")
	for i, line := range lines {
		lines[i] = commentPrefix + " " + strings.TrimSuffix(line, "\r")
	}

	return strings.Join(lines, "\n")
}
