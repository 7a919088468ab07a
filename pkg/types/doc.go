// Package types defines the core data structures shared across docnav:
// the flat page records produced by scanning a documentation tree, the
// custom link entries supplied via configuration, and the node types of
// the navigation tree built from them.
package types
