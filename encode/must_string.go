package encode

import (
	"bytes"

	"github.com/signadot/rpy-format/ir"
)

func MustString(tree *ir.Tree, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(tree, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
