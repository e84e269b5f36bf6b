package v1

import "github.com/DougAnderson444/shake-multihash/internals"

// Multihash is a self-describing digest: multicodec, digest length and digest
type Multihash = internals.Multihash

// Code is a multihash code of the code table
type Code = internals.Code

// Family is an extendable-output function family
type Family = internals.Family

// Hasher is the incremental hashing interface returned by NewHasher
type Hasher = internals.StreamingHasher

// Shake128_48 is SHAKE-128 with 48 bytes of output. Its zero value is ready to use.
type Shake128_48 = internals.Shake128_48

// Shake256_48 is SHAKE-256 with 48 bytes of output. Its zero value is ready to use.
type Shake256_48 = internals.Shake256_48

const (
	// Shake128HashCode is the multicodec of SHAKE-128
	Shake128HashCode = internals.Shake128HashCode
	// Shake256HashCode is the multicodec of SHAKE-256
	Shake256HashCode = internals.Shake256HashCode
	// Shake128_48Len is the output size of Shake128_48
	Shake128_48Len = internals.Shake128_48Len
	// Shake256_48Len is the output size of Shake256_48
	Shake256_48Len = internals.Shake256_48Len
	// AllocSize is the maximum digest size of a Multihash
	AllocSize = internals.AllocSize
)

const (
	CodeShake128_48 = internals.CodeShake128_48
	CodeShake256_48 = internals.CodeShake256_48
)

const (
	Shake128 = internals.Shake128
	Shake256 = internals.Shake256
)

var (
	ErrCapacityExceeded = internals.ErrCapacityExceeded
	ErrInsufficientData = internals.ErrInsufficientData
	ErrTrailingData     = internals.ErrTrailingData
	ErrUnsupportedCode  = internals.ErrUnsupportedCode
	ErrUnknownFamily    = internals.ErrUnknownFamily
)
