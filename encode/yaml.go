package encode

import (
	"github.com/goccy/go-yaml"

	"github.com/signadot/rpy-format/ir"
)

func encodeYAML(tree *ir.Tree, es *EncState) error {
	d, err := yaml.Marshal(toDoc(tree))
	if err != nil {
		return err
	}
	_, err = es.w.Write(d)
	return err
}
