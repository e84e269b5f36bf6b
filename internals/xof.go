package internals

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// Multicodec identifiers of the SHAKE family.
// See https://github.com/multiformats/multicodec/blob/master/table.csv
const (
	// Shake128HashCode is the multicodec of SHAKE-128 (0x18)
	Shake128HashCode uint64 = 24
	// Shake256HashCode is the multicodec of SHAKE-256 (0x19)
	Shake256HashCode uint64 = 25
)

// Family is an alias for uint8, but specifically can only
// be one of the extendable-output function families below.
type Family uint8

const (
	// Shake128 is SHAKE-128 as defined in FIPS-202
	Shake128 Family = iota + 1
	// Shake256 is SHAKE-256 as defined in FIPS-202
	Shake256
)

// Families returns all supported XOF families
func Families() []Family {
	return []Family{Shake128, Shake256}
}

// FamilyFromString returns a Family instance, given the family's name.
// Both `shake-128` and `shake128` are accepted.
func FamilyFromString(name string) (Family, error) {
	name = strings.ToLower(name)
	for _, f := range Families() {
		if name == f.Name() || name == strings.Replace(f.Name(), `-`, ``, 1) {
			return f, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownFamily, `%q`, name)
}

// Valid tells whether f is one of the supported families
func (f Family) Valid() bool {
	return f == Shake128 || f == Shake256
}

// Name returns the multicodec name of the family
func (f Family) Name() string {
	switch f {
	case Shake128:
		return `shake-128`
	case Shake256:
		return `shake-256`
	}
	return ``
}

func (f Family) String() string {
	if !f.Valid() {
		return fmt.Sprintf(`Family(%d)`, uint8(f))
	}
	return f.Name()
}

// Code returns the canonical multicodec of the family.
// Digests of any length produced by this family carry this code.
func (f Family) Code() uint64 {
	switch f {
	case Shake128:
		return Shake128HashCode
	case Shake256:
		return Shake256HashCode
	}
	panic(fmt.Sprintf(`internals: unknown XOF family %d`, uint8(f)))
}

// Rate returns the sponge rate in bytes
func (f Family) Rate() int {
	switch f {
	case Shake128:
		return 168
	case Shake256:
		return 136
	}
	panic(fmt.Sprintf(`internals: unknown XOF family %d`, uint8(f)))
}

// New returns a fresh XOF state of this family
func (f Family) New() sha3.ShakeHash {
	switch f {
	case Shake128:
		return sha3.NewShake128()
	case Shake256:
		return sha3.NewShake256()
	}
	panic(fmt.Sprintf(`internals: unknown XOF family %d`, uint8(f)))
}
