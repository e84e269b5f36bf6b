// Package v1 is the public interface of shake-multihash.
//
// It produces multihashes, self-describing digests, from the SHAKE-128
// and SHAKE-256 extendable-output functions. DigestWithCode uses the
// fixed output sizes of the code table; Shake128Digest and Shake256Digest
// squeeze as many bytes as the caller provides, up to AllocSize.
package v1

import (
	"io"

	"github.com/DougAnderson444/shake-multihash/internals"
)

const VERSION_MAJOR = 0
const VERSION_MINOR = 3
const VERSION_PATCH = 0
const RELEASE_DATE = "2023-03-01"

// DigestWithCode hashes input with the hasher registered for code
// and returns the multihash. It panics if code is not in the code table;
// use CodeFromUint64 to validate untrusted codes.
func DigestWithCode(code Code, input []byte) Multihash {
	return code.Digest(input)
}

// DigestReader hashes everything read from r with the hasher registered for code
func DigestReader(code Code, r io.Reader) (Multihash, error) {
	return code.DigestReader(r)
}

// NewHasher returns a fresh streaming hasher for the multihash code c
func NewHasher(c uint64) (Hasher, error) {
	code, err := internals.CodeFromUint64(c)
	if err != nil {
		return nil, err
	}
	return code.Hasher(), nil
}

// Shake128Digest generates a SHAKE-128 multihash of len(out) bytes, up to AllocSize.
// The digest is written to out as well.
func Shake128Digest(input, out []byte) (Multihash, error) {
	return internals.Shake128Digest(input, out)
}

// Shake256Digest generates a SHAKE-256 multihash of len(out) bytes, up to AllocSize.
// The digest is written to out as well.
func Shake256Digest(input, out []byte) (Multihash, error) {
	return internals.Shake256Digest(input, out)
}

// Wrap tags digest with code
func Wrap(code uint64, digest []byte) (Multihash, error) {
	return internals.Wrap(code, digest)
}

// Parse decodes exactly one binary multihash
func Parse(data []byte) (Multihash, error) {
	return internals.Parse(data)
}

// ReadMultihash decodes one binary multihash from r
func ReadMultihash(r io.Reader) (Multihash, error) {
	return internals.ReadMultihash(r)
}

// Codes returns all supported multihash codes
func Codes() []Code {
	return internals.Codes()
}

// CodeFromUint64 validates a numeric multihash code
func CodeFromUint64(c uint64) (Code, error) {
	return internals.CodeFromUint64(c)
}

// CodeFromString returns the code for a name like `shake-128-48` or a number
func CodeFromString(s string) (Code, error) {
	return internals.CodeFromString(s)
}

// FamilyFromString returns the XOF family for a name like `shake-256`
func FamilyFromString(name string) (Family, error) {
	return internals.FamilyFromString(name)
}

// DefaultCode returns the code used when none is specified
func DefaultCode() Code {
	return internals.DefaultCode()
}
