package debug

import (
	"fmt"
	"os"

	"github.com/signadot/rpy-format/ir"
)

// Logf writes to stderr.  *ir.Node arguments are shown by path and
// *ir.Tree arguments by header.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			if x == nil {
				args[i] = "<nil node>"
				continue
			}
			args[i] = fmt.Sprintf("%s{%s}", x.Path(), x.Class)
		case *ir.Tree:
			if x == nil {
				args[i] = "<nil tree>"
				continue
			}
			args[i] = x.String()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
