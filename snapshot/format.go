package snapshot

import (
	"errors"
	"fmt"
)

const (
	// MagicNumber identifies centrogo snapshot files (ASCII: "CEN1")
	MagicNumber = 0x43454E31
	// Version is the current snapshot format version (v1.0.0)
	Version = 0x00010000
)

var (
	ErrInvalidMagic   = errors.New("invalid magic number")
	ErrInvalidVersion = errors.New("unsupported snapshot version")
	ErrUnknownCodec   = errors.New("unknown codec")
	ErrTruncated      = errors.New("snapshot truncated")
)

// ChecksumMismatchError is returned when checksum verification fails.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}
