// Package buildgraph is the seam to the host build graph. The engine never
// owns targets; it queries their exported metadata through the Graph
// interface and delegates generator-expression resolution back to the graph.
//
// The only implementation here is manifest-backed: it serves lookups from the
// `target` blocks the build graph exported into the configuration tree.
package buildgraph
