package ir

// Reserved tags.
const (
	RootTag     = "root"
	ValueTag    = "value"
	ElementTag  = "element"
	ElementsTag = "elements"
	SizeTag     = "size"
	IDTag       = "_id"
)
