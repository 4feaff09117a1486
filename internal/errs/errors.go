package errs

import "errors"

var (
	ErrNoSpace     = errors.New("memalign: no space")
	ErrBadArgument = errors.New("memalign: bad argument")
	ErrClosed      = errors.New("memalign: closed")
	ErrCorrupt     = errors.New("memalign: corrupt")
)
