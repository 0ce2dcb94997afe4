// Package router implements the segment trie that maps method+path pairs to
// handler chains.
//
// Paths are matched segment by segment. Each tree level holds an unbounded
// set of literal children plus at most one dynamic child declared with a
// ":name" segment; a literal child always wins over the dynamic child when
// both could match. Lookup cost is O(segment count).
//
// The tree is built at startup and read-only during dispatch, so it is
// shared across concurrent requests without synchronization.
package router
