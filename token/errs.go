package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedQuote = errors.New("unterminated quote")
	ErrMissingTerminator = errors.New("missing ;")
	ErrBadOffset         = errors.New("invalid start offset")
)

// ScanErr records where a scan failed.
type ScanErr struct {
	Err error
	Off int
}

func NewScanErr(e error, off int) *ScanErr {
	return &ScanErr{Err: e, Off: off}
}

func (e *ScanErr) Unwrap() error {
	return e.Err
}

func (e *ScanErr) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err.Error(), e.Off)
}
