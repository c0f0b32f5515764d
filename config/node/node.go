package node

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Kind describes which value a node holds.
type Kind int

// Node kinds.
const (
	KindNothing Kind = iota
	KindScalar
	KindMap
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNothing:
		return "nothing"
	case KindScalar:
		return "scalar"
	case KindMap:
		return "map"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is a configuration value with an optional comment.
// Nodes are not safe for concurrent mutation.
type Node struct {
	parent   *Node
	key      any
	attached bool
	options  *Options

	kind     Kind
	scalar   any
	keys     []string
	children map[string]*Node
	list     []*Node

	comment string
}

// Root creates the root node of a new tree.
func Root(opts Options) *Node {
	return &Node{
		attached: true,
		options:  &opts,
	}
}

// Node returns the descendant addressed by path, or a virtual node if it does not exist.
// String segments select map children, integer segments select list children.
// Any other segment is converted to its string form.
func (n *Node) Node(path ...any) *Node {
	current := n

	for _, segment := range path {
		current = current.child(normalizeKey(segment))
	}

	return current
}

func (n *Node) child(key any) *Node {
	switch k := key.(type) {
	case string:
		if n.kind == KindMap {
			if existing, ok := n.children[k]; ok {
				return existing
			}
		}
	case int:
		if n.kind == KindList && k >= 0 && k < len(n.list) {
			return n.list[k]
		}
	}

	return &Node{
		parent:  n,
		key:     key,
		options: n.options,
	}
}

func normalizeKey(segment any) any {
	switch key := segment.(type) {
	case string:
		return key
	case int:
		return key
	case fmt.Stringer:
		return key.String()
	}

	value := reflect.ValueOf(segment)

	switch value.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(value.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(value.Uint()) //nolint:gosec // list indexes are small
	default:
		return fmt.Sprint(segment)
	}
}

// Key returns the key of the node in its parent: a string, an int, or nil for the root.
func (n *Node) Key() any {
	return n.key
}

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Path returns the keys leading from the root to this node.
func (n *Node) Path() []any {
	var path []any

	for current := n; current.parent != nil; current = current.parent {
		path = append(path, current.key)
	}

	slices.Reverse(path)

	return path
}

// Options returns the options shared by the tree.
func (n *Node) Options() Options {
	return *n.options
}

// SetOptions replaces the options of the whole tree.
func (n *Node) SetOptions(opts Options) *Node {
	*n.options = opts

	return n
}

// Kind returns the kind of value held by the node.
func (n *Node) Kind() Kind {
	return n.kind
}

// Virtual reports whether the node is not attached to the tree.
func (n *Node) Virtual() bool {
	return !n.attached
}

// IsMap reports whether the node holds a map, possibly empty.
func (n *Node) IsMap() bool {
	return n.kind == KindMap
}

// IsList reports whether the node holds a list, possibly empty.
func (n *Node) IsList() bool {
	return n.kind == KindList
}

// Empty reports whether the node holds nothing or an empty map or list.
func (n *Node) Empty() bool {
	switch n.kind {
	case KindMap:
		return len(n.keys) == 0
	case KindList:
		return len(n.list) == 0
	case KindScalar:
		return false
	default:
		return true
	}
}

// Comment returns the node comment. An empty string means no comment.
func (n *Node) Comment() string {
	return n.comment
}

// SetComment sets the node comment. It does not attach a virtual node.
func (n *Node) SetComment(comment string) *Node {
	n.comment = comment

	return n
}

// ChildrenMap returns the map children in insertion order.
func (n *Node) ChildrenMap() []*Node {
	if n.kind != KindMap {
		return nil
	}

	children := make([]*Node, 0, len(n.keys))
	for _, key := range n.keys {
		children = append(children, n.children[key])
	}

	return children
}

// ChildrenList returns the list children in index order.
func (n *Node) ChildrenList() []*Node {
	if n.kind != KindList {
		return nil
	}

	return slices.Clone(n.list)
}

// RawScalar returns the scalar value, or nil if the node is not a scalar.
func (n *Node) RawScalar() any {
	if n.kind != KindScalar {
		return nil
	}

	return n.scalar
}

// GetString returns the scalar value in string form, or def if the node holds no scalar.
func (n *Node) GetString(def string) string {
	if n.kind != KindScalar {
		return def
	}

	if s, ok := n.scalar.(string); ok {
		return s
	}

	return fmt.Sprint(n.scalar)
}

// Raw returns the node value as plain Go values:
// a scalar, map[string]any, []any, or nil when the node holds nothing.
func (n *Node) Raw() any {
	switch n.kind {
	case KindScalar:
		return n.scalar
	case KindMap:
		values := make(map[string]any, len(n.keys))
		for _, key := range n.keys {
			values[key] = n.children[key].Raw()
		}

		return values
	case KindList:
		values := make([]any, 0, len(n.list))
		for _, child := range n.list {
			values = append(values, child.Raw())
		}

		return values
	default:
		return nil
	}
}

// SetRaw replaces the node value and attaches the node.
//
// nil clears the value and detaches the node. map[string]any becomes map children
// in sorted key order, []any and []string become list children, anything else is
// stored as a scalar. Scalars of a kind the tree does not declare native are
// stored in string form.
func (n *Node) SetRaw(value any) *Node {
	if value == nil {
		n.clear()
		n.detach()

		return n
	}

	n.attach()
	n.clear()

	switch v := value.(type) {
	case map[string]any:
		n.setMap()

		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}

		slices.Sort(keys)

		for _, key := range keys {
			n.Node(key).SetRaw(v[key])
		}
	case []any:
		n.kind = KindList
		for i, item := range v {
			n.Node(i).SetRaw(item)
		}
	case []string:
		n.kind = KindList
		for i, item := range v {
			n.Node(i).SetRaw(item)
		}
	default:
		n.kind = KindScalar
		n.scalar = v

		if !n.options.AcceptsType(v) {
			n.scalar = fmt.Sprint(v)
		}
	}

	return n
}

// AppendListNode attaches a new empty child at the end of the list held by n.
// A node that does not hold a list is converted into an empty one first.
func (n *Node) AppendListNode() *Node {
	if n.kind != KindList {
		n.SetRaw([]any{})
	}

	child := n.Node(-1)
	child.attach()

	return child
}

// RemoveChild detaches the child stored under key and reports whether it existed.
func (n *Node) RemoveChild(key any) bool {
	child := n.child(normalizeKey(key))
	if child.Virtual() {
		return false
	}

	child.detach()

	return true
}

func (n *Node) setMap() {
	n.kind = KindMap
	n.children = make(map[string]*Node)
}

func (n *Node) clear() {
	for _, child := range n.children {
		child.attached = false
	}

	for _, child := range n.list {
		child.attached = false
	}

	n.kind = KindNothing
	n.scalar = nil
	n.keys = nil
	n.children = nil
	n.list = nil
}

func (n *Node) attach() {
	if n.attached {
		return
	}

	parent := n.parent
	parent.attach()

	switch key := n.key.(type) {
	case string:
		if parent.kind != KindMap {
			parent.clear()
			parent.setMap()
		}

		if existing, ok := parent.children[key]; ok {
			existing.attached = false
		} else {
			parent.keys = append(parent.keys, key)
		}

		parent.children[key] = n
	case int:
		if parent.kind != KindList {
			parent.clear()
			parent.kind = KindList
		}

		switch {
		case key < 0 || key == len(parent.list):
			n.key = len(parent.list)
			parent.list = append(parent.list, n)
		case key < len(parent.list):
			parent.list[key].attached = false
			parent.list[key] = n
		default:
			for len(parent.list) < key {
				parent.list = append(parent.list, &Node{
					parent:   parent,
					key:      len(parent.list),
					attached: true,
					options:  parent.options,
				})
			}

			parent.list = append(parent.list, n)
		}
	}

	n.attached = true
}

func (n *Node) detach() {
	if n.parent == nil || !n.attached {
		return
	}

	parent := n.parent

	switch key := n.key.(type) {
	case string:
		if parent.children[key] == n {
			delete(parent.children, key)
			parent.keys = slices.DeleteFunc(parent.keys, func(k string) bool { return k == key })
		}
	case int:
		if key < len(parent.list) && parent.list[key] == n {
			parent.list = slices.Delete(parent.list, key, key+1)
			for i := key; i < len(parent.list); i++ {
				parent.list[i].key = i
			}
		}
	}

	n.attached = false
}

// String renders the node path for diagnostics, e.g. "server:hosts:0".
func (n *Node) String() string {
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
