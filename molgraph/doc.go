// Package molgraph is the molecular graph model shared by sugars,
// extractor and splitter: atoms and bonds addressed by stable handles,
// deep-copy primitives that never alias caller state, and connected-
// component partitioning.
//
// It deliberately knows nothing about sugar detection, boundary
// reconstruction, or SMARTS-like pattern matching; those live in the
// sugars, extractor and splitter packages respectively, all built on top
// of the API exposed here.
package molgraph
