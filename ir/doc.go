// Package ir provides the tree representation of rpy archive files.
//
// # Overview
//
// An archive file consists of a header line followed by one braced block.
// A [Tree] holds the [Header] and the root [Node], which is always a block
// tagged "root".  Every member of a block becomes a child node named by the
// member name.
//
// # Node Types
//
// The Type field tells which fields of a node are meaningful:
//
//   - ScalarType: Text holds the member text, untrimmed, excluding ';'.
//   - BlockType: Class holds the block type, Children hold the members.
//   - ElementsType: a wrapper tagged "elements" whose children are blocks
//     tagged "element", one per block of an elementList group.
//   - EmptyArrayType: a "size" group with a count of zero.
//
// A node has text or children but not both; an empty block has neither.
//
// # Arrays
//
// A "- size = N; - value = ..." group does not appear literally in the tree.
// Its items become N consecutive sibling children tagged "value", and the
// count is recovered from the length of the run when encoding.
//
// # Thread Safety
//
// Nodes are not safe for concurrent mutation.
//
// # Related Packages
//
//   - github.com/signadot/rpy-format/parse - parses text into trees
//   - github.com/signadot/rpy-format/encode - encodes trees to text
package ir
