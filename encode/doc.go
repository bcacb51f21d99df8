// Package encode encodes [ir.Tree] values to text.
//
// # Usage
//
//	// Encode in the archive layout
//	err := encode.Encode(tree, w)
//
//	// Export the tree as XML
//	err := encode.Encode(tree, w, encode.EncodeFormat(format.XMLFormat))
//
// The archive layout reproduces the conventions of the modeling tool:
// tab indentation, "{ Class " block openers, arrays as a "- size = N;"
// member followed by "- value = " and the items, and element lists as
// "- elementList = N;" followed by bare blocks.  For any tree produced by
// the parse package, parsing the encoded text yields an equal tree.
//
// # Related Packages
//
//   - github.com/signadot/rpy-format/ir - tree representation
//   - github.com/signadot/rpy-format/parse - parse text to trees
package encode
