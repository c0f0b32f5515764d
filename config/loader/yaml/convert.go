package yaml

import (
	"fmt"
	"strings"

	"github.com/0xalexb/hjarta-yaml/config/node"
)

// ReadNode copies tree into target, recursing depth-first.
// A mapping key that is not a scalar aborts the walk; target is then partially populated.
func ReadNode[N ConfigNode[N]](tree Tree, target N) error {
	if comment := tree.Comment(); comment != "" {
		target.SetComment(strings.ReplaceAll(comment, "\r\n", node.LineSeparator))
	}

	switch tree.Kind() {
	case KindMapping:
		pairs := tree.Pairs()
		if len(pairs) == 0 {
			target.SetRaw(map[string]any{})

			return nil
		}

		for _, pair := range pairs {
			if pair.Key.Kind() != KindScalar {
				return newNodeError(target, ErrParse, ErrComplexKey)
			}

			err := ReadNode(pair.Value, target.Node(pair.Key.Value()))
			if err != nil {
				return err
			}
		}
	case KindSequence:
		values := tree.Values()
		if len(values) == 0 {
			target.SetRaw([]any{})

			return nil
		}

		for i, value := range values {
			err := ReadNode(value, target.Node(i))
			if err != nil {
				return err
			}
		}
	case KindScalar:
		target.SetRaw(tree.Value())
	}

	return nil
}

// WriteNode builds the YAML tree of n with the engine. It does not modify n.
func WriteNode[N ConfigNode[N]](engine Engine, n N) Tree {
	comment := ""
	if c := n.Comment(); c != "" {
		comment = toSystemSeparators(c)
	}

	switch {
	case n.IsMap():
		children := n.ChildrenMap()
		entries := make([]Entry, 0, len(children))

		for _, child := range children {
			entries = append(entries, Entry{
				Key:   fmt.Sprint(child.Key()),
				Value: WriteNode(engine, child),
			})
		}

		return engine.Mapping(entries, comment)
	case n.IsList():
		children := n.ChildrenList()
		values := make([]Tree, 0, len(children))

		for _, child := range children {
			values = append(values, WriteNode(engine, child))
		}

		return engine.Sequence(values, comment)
	default:
		// inline comments are not supported
		return engine.Scalar(scalarText(n.RawScalar()), comment, "")
	}
}

// scalarText returns the text written for a scalar. A nil scalar is written as an
// empty string rather than "null" so it reloads as the same string.
func scalarText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
