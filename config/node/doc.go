// Package node provides the format-independent configuration tree used by the loaders.
//
// A Node holds exactly one of: nothing, a scalar, an ordered map of children keyed by
// string, or a list of children addressed by index. Every node may carry a comment.
//
// Children are addressed with path segments:
//   - string segments select map children
//   - int segments select list children (a negative index appends)
//
// Looking up a child that does not exist yields a virtual node. Virtual nodes are not
// part of the tree until a value is set on them; at that point the node and every
// virtual ancestor are attached, converting parents into maps or lists as needed.
//
//	root := node.Root(node.Options{Header: "generated file"})
//	root.Node("server", "port").SetComment("listen port").SetRaw("8080")
//	root.Node("server", "hosts", -1).SetRaw("a.example.com")
//
// Comments use LineSeparator between lines regardless of the platform.
package node
