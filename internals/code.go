package internals

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Code is an alias for uint64, but specifically can only
// be one of the multihash codes listed in the code table.
// Use CodeFromUint64 or CodeFromString to turn untrusted
// numbers or names into a Code.
type Code uint64

const (
	// CodeShake128_48 is SHAKE-128 with a fixed output of 48 bytes
	CodeShake128_48 Code = Code(Shake128HashCode)
	// CodeShake256_48 is SHAKE-256 with a fixed output of 48 bytes
	CodeShake256_48 Code = Code(Shake256HashCode)
)

const defaultCode = CodeShake256_48

type codeEntry struct {
	code      Code
	name      string
	variant   Variant
	newHasher func() StreamingHasher
}

// codeTable is the closed set of supported codes.
// Every variant must produce at most AllocSize bytes.
var codeTable = [...]codeEntry{
	{
		code:      CodeShake128_48,
		name:      `shake-128-48`,
		variant:   shake128Len48{},
		newHasher: func() StreamingHasher { return NewShake128_48() },
	},
	{
		code:      CodeShake256_48,
		name:      `shake-256-48`,
		variant:   shake256Len48{},
		newHasher: func() StreamingHasher { return NewShake256_48() },
	},
}

// Codes returns all codes of the code table
func Codes() []Code {
	codes := make([]Code, 0, len(codeTable))
	for _, e := range codeTable {
		codes = append(codes, e.code)
	}
	return codes
}

// DefaultCode returns the code used if none is specified
func DefaultCode() Code {
	return defaultCode
}

// CodeFromUint64 returns the Code for the multihash code c
func CodeFromUint64(c uint64) (Code, error) {
	code := Code(c)
	if !code.Available() {
		return 0, errors.Wrapf(ErrUnsupportedCode, `code %d`, c)
	}
	return code, nil
}

// CodeFromString returns the Code for a name like `shake-256-48`
// or a number in decimal or 0x-prefixed hexadecimal notation
func CodeFromString(s string) (Code, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, e := range codeTable {
		if s == e.name {
			return e.code, nil
		}
	}
	if n, err := strconv.ParseUint(s, 0, 64); err == nil {
		return CodeFromUint64(n)
	}
	return 0, errors.Wrapf(ErrUnsupportedCode, `%q`, s)
}

func (c Code) lookup() (*codeEntry, bool) {
	for i := range codeTable {
		if codeTable[i].code == c {
			return &codeTable[i], true
		}
	}
	return nil, false
}

func (c Code) mustLookup() *codeEntry {
	e, ok := c.lookup()
	if !ok {
		panic(fmt.Sprintf(`internals: multihash code %d is not in the code table`, uint64(c)))
	}
	return e
}

// Available tells whether c is in the code table
func (c Code) Available() bool {
	_, ok := c.lookup()
	return ok
}

// Uint64 returns the numeric multihash code
func (c Code) Uint64() uint64 {
	return uint64(c)
}

// Name returns the name of the code, e.g. `shake-128-48`
func (c Code) Name() string {
	return c.mustLookup().name
}

func (c Code) String() string {
	if e, ok := c.lookup(); ok {
		return e.name
	}
	return fmt.Sprintf(`Code(%d)`, uint64(c))
}

// Size returns the digest size in bytes
func (c Code) Size() int {
	return c.mustLookup().variant.Size()
}

// Family returns the XOF family behind c
func (c Code) Family() Family {
	return c.mustLookup().variant.Family()
}

// Hasher returns a fresh StreamingHasher for c.
// It panics if c is not in the code table.
func (c Code) Hasher() StreamingHasher {
	return c.mustLookup().newHasher()
}

// Digest hashes input and wraps the digest in a Multihash tagged with c.
// It panics if c is not in the code table.
func (c Code) Digest(input []byte) Multihash {
	h := c.Hasher()
	h.Update(input)
	return c.wrap(h)
}

// DigestReader hashes everything read from r until io.EOF
func (c Code) DigestReader(r io.Reader) (Multihash, error) {
	h := c.Hasher()
	if _, err := io.Copy(h, r); err != nil {
		return Multihash{}, errors.Wrapf(err, `hashing with %s`, c.Name())
	}
	return c.wrap(h), nil
}

func (c Code) wrap(h StreamingHasher) Multihash {
	m, err := Wrap(uint64(c), h.Finalize())
	if err != nil {
		// code table entries never exceed AllocSize
		panic(err)
	}
	return m
}
