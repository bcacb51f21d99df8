package project

import "errors"

var (
	ErrInvalidProjectFile      = errors.New("invalid project file (expected .rpy)")
	ErrMissingProjectDirectory = errors.New("missing project directory")
	ErrNotLoaded               = errors.New("file not loaded in project")
)
