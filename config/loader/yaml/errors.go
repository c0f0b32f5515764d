package yaml

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse is the kind of every failure while loading a document.
var ErrParse = errors.New("parsing failed")

// ErrWrite is the kind of every failure while saving a document.
var ErrWrite = errors.New("write failed")

// ErrComplexKey is returned when a mapping key is a mapping or a sequence.
var ErrComplexKey = errors.New("complex keys not allowed")

// ErrNotMap is returned when saving a root node that holds a value but is not a map.
var ErrNotMap = errors.New("can only write nodes in map format")

// ErrRootNotMapping is returned when the document root is a sequence or a scalar.
var ErrRootNotMapping = errors.New("document root must be a mapping")

// ErrRecursiveAlias is returned when an alias refers to a node that contains it.
var ErrRecursiveAlias = errors.New("recursive alias")

// ErrForeignTree is returned when an Engine is given a Tree it did not build.
var ErrForeignTree = errors.New("tree was not built by this engine")

// PathNode is a node that can report its position in the tree.
type PathNode interface {
	Path() []any
}

// NodeError reports a load or save failure together with the node being processed.
// Kind is ErrParse or ErrWrite; errors.Is matches both Kind and the cause.
type NodeError struct {
	Node PathNode
	Kind error
	Err  error
}

func newNodeError(n PathNode, kind, err error) *NodeError {
	return &NodeError{Node: n, Kind: kind, Err: err}
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("%v at %s: %v", e.Kind, formatPath(e.Node), e.Err)
}

// Unwrap returns the error kind and its cause.
func (e *NodeError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func formatPath(n PathNode) string {
	if n == nil {
		return "(unknown)"
	}

	path := n.Path()
	if len(path) == 0 {
		return "(root)"
	}

	parts := make([]string, 0, len(path))
	for _, segment := range path {
		parts = append(parts, fmt.Sprint(segment))
	}

	return strings.Join(parts, ":")
}
