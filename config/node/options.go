package node

import (
	"reflect"
	"slices"
)

// LineSeparator is the canonical line separator of comments and headers.
const LineSeparator = "\n"

// Options are shared by every node of a tree.
type Options struct {
	// Header is a comment block attached to the whole document rather than to a node.
	Header string
	// NativeTypes lists the scalar kinds a tree stores as-is.
	// Scalars of any other kind are stringified when set. Empty means every kind is native.
	NativeTypes []reflect.Kind
}

// WithHeader returns a copy of the options with the given header.
func (o Options) WithHeader(header string) Options {
	o.Header = header

	return o
}

// WithNativeTypes returns a copy of the options declaring the given native scalar kinds.
func (o Options) WithNativeTypes(kinds ...reflect.Kind) Options {
	o.NativeTypes = slices.Clone(kinds)

	return o
}

// AcceptsType reports whether v can be stored without conversion.
func (o Options) AcceptsType(v any) bool {
	if len(o.NativeTypes) == 0 {
		return true
	}

	return slices.Contains(o.NativeTypes, reflect.ValueOf(v).Kind())
}
