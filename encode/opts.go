package encode

import "github.com/signadot/rpy-format/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeIndent sets the per level indentation of the archive layout.
// The modeling tool writes one tab per level.
func EncodeIndent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

// EncodePretty indents xml and json output.
func EncodePretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}
