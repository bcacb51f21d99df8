package parse

const DefaultMaxDepth = 512

type parseOpts struct {
	filename string
	maxDepth int
}

type ParseOption func(*parseOpts)

// ParseFilename names the input in error messages.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// ParseMaxDepth bounds block nesting.  n <= 0 selects DefaultMaxDepth.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
