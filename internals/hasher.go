package internals

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// Output sizes in bytes of the fixed-length SHAKE hashers
const (
	Shake128_48Len = 48
	Shake256_48Len = 48
)

// Variant fixes the XOF family and the output size of a Hasher.
// Implementations are empty structs, so a Variant costs nothing at runtime.
type Variant interface {
	Family() Family
	Size() int
}

// StreamingHasher is the incremental hashing interface of the code table
type StreamingHasher interface {
	hash.Hash
	// Update absorbs p into the hash state
	Update(p []byte)
	// Finalize returns the digest of all bytes absorbed so far
	Finalize() []byte
}

// Hasher adapts an extendable-output function to a fixed-size
// hash function with update, finalize and reset semantics.
//
// Finalize squeezes a clone of the sponge. Thus a Hasher is never
// consumed: Update after Finalize continues the same input and the
// next Finalize covers everything written since the last Reset.
//
// The zero value is ready to use. A Hasher must not be used
// by multiple goroutines at the same time.
type Hasher[V Variant] struct {
	variant V
	state   sha3.ShakeHash
	digest  []byte
}

var (
	_ StreamingHasher = (*Shake128_48)(nil)
	_ StreamingHasher = (*Shake256_48)(nil)
)

// NewHasher returns an initialized Hasher for variant V
func NewHasher[V Variant]() *Hasher[V] {
	h := new(Hasher[V])
	h.init()
	return h
}

func (h *Hasher[V]) init() {
	if h.state != nil {
		return
	}
	h.state = h.variant.Family().New()
	h.digest = make([]byte, h.variant.Size())
}

// Update absorbs p. Call boundaries are insignificant,
// only the concatenation of all inputs matters.
func (h *Hasher[V]) Update(p []byte) {
	h.init()
	// the live state is never read, so Write cannot panic
	h.state.Write(p)
}

// Finalize returns the digest of the input absorbed so far.
// The returned slice is the Hasher's scratch buffer and is
// overwritten by the next call of Finalize or Reset.
func (h *Hasher[V]) Finalize() []byte {
	h.init()
	h.state.Clone().Read(h.digest)
	return h.digest
}

// Reset discards all absorbed input and the last digest
func (h *Hasher[V]) Reset() {
	h.init()
	h.state.Reset()
	for i := range h.digest {
		h.digest[i] = 0
	}
}

// Write implements io.Writer. It never returns an error.
func (h *Hasher[V]) Write(p []byte) (int, error) {
	h.Update(p)
	return len(p), nil
}

// Sum appends the current digest to b and returns the resulting slice.
// It does not change the underlying hash state.
func (h *Hasher[V]) Sum(b []byte) []byte {
	return append(b, h.Finalize()...)
}

// Size returns the number of bytes Finalize returns
func (h *Hasher[V]) Size() int {
	return h.variant.Size()
}

// BlockSize returns the sponge rate of the underlying XOF
func (h *Hasher[V]) BlockSize() int {
	return h.variant.Family().Rate()
}

// Family returns the XOF family the Hasher squeezes
func (h *Hasher[V]) Family() Family {
	return h.variant.Family()
}

type shake128Len48 struct{}

func (shake128Len48) Family() Family { return Shake128 }
func (shake128Len48) Size() int      { return Shake128_48Len }

type shake256Len48 struct{}

func (shake256Len48) Family() Family { return Shake256 }
func (shake256Len48) Size() int      { return Shake256_48Len }

// Shake128_48 is SHAKE-128 with 48 bytes of output
type Shake128_48 = Hasher[shake128Len48]

// Shake256_48 is SHAKE-256 with 48 bytes of output
type Shake256_48 = Hasher[shake256Len48]

// NewShake128_48 returns a SHAKE-128 hasher with 48 bytes of output
func NewShake128_48() *Shake128_48 {
	return NewHasher[shake128Len48]()
}

// NewShake256_48 returns a SHAKE-256 hasher with 48 bytes of output
func NewShake256_48() *Shake256_48 {
	return NewHasher[shake256Len48]()
}
