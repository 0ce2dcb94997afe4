package router

import (
	"sort"
	"strings"

	"github.com/plumeframe/plume/core/handler"
)

// node is a single level of the routing tree. Literal children fan out
// through the children map; at most one dynamic child exists per level,
// stored separately so literal matches always win.
type node struct {
	children   map[string]*node
	paramChild *node
	paramName  string
	handlers   map[string][]handler.HandlerFunc
}

func newNode() *node {
	return &node{}
}

// child returns the literal child for seg, creating it when absent.
func (n *node) child(seg string) *node {
	if n.children == nil {
		n.children = make(map[string]*node)
	}
	c, ok := n.children[seg]
	if !ok {
		c = newNode()
		n.children[seg] = c
	}
	return c
}

// param returns the dynamic child, creating it with the given name when
// absent. The parameter name is fixed at first creation for the lifetime of
// the tree; a later registration with a different name reports false so the
// caller can flag it, but the original name stays in force.
func (n *node) param(name string) (*node, bool) {
	if n.paramChild == nil {
		n.paramChild = newNode()
		n.paramName = name
		return n.paramChild, true
	}
	return n.paramChild, n.paramName == name
}

// setHandlers stores the chain for method, overwriting any previous
// registration for the same method at this node. Last write wins.
func (n *node) setHandlers(method string, hs []handler.HandlerFunc) {
	if n.handlers == nil {
		n.handlers = make(map[string][]handler.HandlerFunc)
	}
	n.handlers[method] = hs
}

// isLeaf reports whether any method is registered at this node.
func (n *node) isLeaf() bool {
	return len(n.handlers) > 0
}

// walk visits every registered route depth-first, rebuilding patterns as it
// descends. Literal segments are reproduced verbatim; the dynamic child is
// rendered as ":<name>". Not used on the request hot path.
func (n *node) walk(prefix string, visit func(method, pattern string)) {
	if n.isLeaf() {
		pattern := prefix
		if pattern == "" {
			pattern = "/"
		}
		methods := make([]string, 0, len(n.handlers))
		for m := range n.handlers {
			methods = append(methods, m)
		}
		sort.Strings(methods)
		for _, m := range methods {
			visit(m, pattern)
		}
	}

	segs := make([]string, 0, len(n.children))
	for seg := range n.children {
		segs = append(segs, seg)
	}
	sort.Strings(segs)
	for _, seg := range segs {
		n.children[seg].walk(prefix+"/"+seg, visit)
	}

	if n.paramChild != nil {
		n.paramChild.walk(prefix+"/:"+n.paramName, visit)
	}
}

// splitPath breaks a path into its non-empty segments. Leading, trailing,
// and doubled slashes are all irrelevant: "/a//b/" and "a/b" split
// identically. Anything after a literal '?' is discarded.
func splitPath(path string) []string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	segs := make([]string, 0, 8)
	for path != "" {
		var seg string
		if idx := strings.IndexByte(path, '/'); idx != -1 {
			seg, path = path[:idx], path[idx+1:]
		} else {
			seg, path = path, ""
		}
		if seg != "" {
			segs = append(segs, seg)
		}
	}
	return segs
}
