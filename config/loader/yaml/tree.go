package yaml

import (
	"io"
	"reflect"
)

// NativeTypes are the only scalar kinds the loader produces: every value is a string.
//
//nolint:gochecknoglobals // declared capability of the format.
var NativeTypes = []reflect.Kind{reflect.String}

// TreeKind is the kind of a parsed YAML node.
type TreeKind int

// YAML node kinds.
const (
	KindMapping TreeKind = iota + 1
	KindSequence
	KindScalar
)

func (k TreeKind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Tree gives read access to a YAML node and its comment.
type Tree interface {
	Kind() TreeKind
	// Comment returns the comment attached to the node without comment markers.
	Comment() string
	// Pairs returns the entries of a mapping in document order.
	Pairs() []Pair
	// Values returns the items of a sequence in document order.
	Values() []Tree
	// Value returns the text of a scalar.
	Value() string
}

// Pair is a mapping entry.
type Pair struct {
	Key   Tree
	Value Tree
}

// Entry is a mapping entry under construction.
type Entry struct {
	Key   string
	Value Tree
}

// Engine parses YAML text into trees and prints trees it has built.
type Engine interface {
	// Parse reads the first document of text, which must be a mapping.
	// With guessIndentation set, misplaced lines are re-indented instead of rejected.
	Parse(text string, guessIndentation bool) (Tree, error)
	Print(root Tree, w io.Writer) error

	Mapping(entries []Entry, comment string) Tree
	Sequence(values []Tree, comment string) Tree
	Scalar(value, comment, inlineComment string) Tree
}

// ConfigNode is the node access the tree converter needs. *node.Node satisfies ConfigNode[*node.Node].
type ConfigNode[N any] interface {
	PathNode

	Node(path ...any) N
	Key() any
	Comment() string
	SetComment(comment string) N
	IsMap() bool
	IsList() bool
	Virtual() bool
	ChildrenMap() []N
	ChildrenList() []N
	Raw() any
	RawScalar() any
	SetRaw(value any) N
}
