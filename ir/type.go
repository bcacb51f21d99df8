package ir

import "fmt"

// Type is the structural kind of a node.
type Type int

const (
	// ScalarType nodes hold the text of a `- name = text;` member.
	ScalarType Type = iota
	// BlockType nodes hold a braced `{ Class ... }` group.
	BlockType
	// ElementsType nodes wrap the blocks introduced by `- elementList = N;`.
	ElementsType
	// EmptyArrayType marks a `- size = 0;` group.
	EmptyArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ScalarType:     "Scalar",
		BlockType:      "Block",
		ElementsType:   "Elements",
		EmptyArrayType: "EmptyArray",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Scalar":     ScalarType,
		"Block":      BlockType,
		"Elements":   ElementsType,
		"EmptyArray": EmptyArrayType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		ScalarType,
		BlockType,
		ElementsType,
		EmptyArrayType,
	}
}

func (t Type) IsLeaf() bool {
	return t == ScalarType
}
