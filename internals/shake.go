package internals

import (
	"io"

	"github.com/pkg/errors"
)

// Digest squeezes len(out) bytes of f over input into out and wraps them
// in a Multihash tagged with f.Code(), independent of len(out).
// out is filled even if it exceeds AllocSize; in that case
// ErrCapacityExceeded is returned and no Multihash.
func (f Family) Digest(input, out []byte) (Multihash, error) {
	h := f.New()
	h.Write(input)
	h.Read(out)
	return Wrap(f.Code(), out)
}

// DigestReader squeezes len(out) bytes of f over everything read from r
// until io.EOF. Like Digest, it tags the result with f.Code().
func (f Family) DigestReader(r io.Reader, out []byte) (Multihash, error) {
	h := f.New()
	if _, err := io.Copy(h, r); err != nil {
		return Multihash{}, errors.Wrapf(err, `hashing with %s`, f)
	}
	h.Read(out)
	return Wrap(f.Code(), out)
}

// Shake128Digest generates a SHAKE-128 multihash with len(out) bytes of digest.
// The digest is also written to out. len(out) must not exceed AllocSize.
func Shake128Digest(input, out []byte) (Multihash, error) {
	return Shake128.Digest(input, out)
}

// Shake256Digest generates a SHAKE-256 multihash with len(out) bytes of digest.
// The digest is also written to out. len(out) must not exceed AllocSize.
func Shake256Digest(input, out []byte) (Multihash, error) {
	return Shake256.Digest(input, out)
}
