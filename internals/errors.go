package internals

import "github.com/pkg/errors"

var (
	// ErrCapacityExceeded is returned if a digest does not fit into a Multihash
	ErrCapacityExceeded = errors.New(`digest exceeds multihash capacity`)
	// ErrInsufficientData is returned if an encoded multihash ends before its digest does
	ErrInsufficientData = errors.New(`multihash is truncated`)
	// ErrTrailingData is returned if bytes follow an encoded multihash
	ErrTrailingData = errors.New(`trailing bytes after multihash`)
	// ErrUnsupportedCode is returned for codes outside of the code table
	ErrUnsupportedCode = errors.New(`unsupported multihash code`)
	// ErrUnknownFamily is returned for unknown XOF family names
	ErrUnknownFamily = errors.New(`unknown XOF family`)
)
