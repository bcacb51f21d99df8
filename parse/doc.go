// Package parse parses rpy archive text into [ir.Tree] values.
//
// # Usage
//
//	tree, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// Parse a file; errors carry the file name and line
//	tree, err := parse.ParseFile("Project_rpy/Default.sbs")
//
// Every failure is reported as a *[Error] wrapping one of the sentinel
// errors of this package, and no partial tree is returned.
//
// # Related Packages
//
//   - github.com/signadot/rpy-format/ir - tree representation
//   - github.com/signadot/rpy-format/encode - encode trees to text
//   - github.com/signadot/rpy-format/token - scanning primitives
package parse
