package internals

import (
	"bytes"
	"encoding/hex"
	"io"

	"github.com/multiformats/go-multihash"
	"github.com/multiformats/go-varint"
	"github.com/pkg/errors"
)

// AllocSize is the capacity of a Multihash in bytes.
// Digests longer than AllocSize cannot be wrapped.
const AllocSize = 64

// Multihash is a self-describing digest. Its binary representation is
//
//	varint(code) ‖ varint(size) ‖ digest
//
// A Multihash is a value; once constructed by Wrap (or one of the parsers)
// it is never modified and can be shared freely.
type Multihash struct {
	code   uint64
	size   uint8
	digest [AllocSize]byte
	// INVARIANT size ≤ AllocSize and digest[size:] is zero
}

// Wrap tags digest with code. It fails with ErrCapacityExceeded
// if digest is longer than AllocSize and with varint.ErrOverflow
// if code exceeds varint.MaxValueUvarint63. The digest bytes are copied.
func Wrap(code uint64, digest []byte) (Multihash, error) {
	if code > varint.MaxValueUvarint63 {
		return Multihash{}, errors.Wrapf(varint.ErrOverflow, `code %d`, code)
	}
	if len(digest) > AllocSize {
		return Multihash{}, errors.Wrapf(ErrCapacityExceeded, `digest of %d bytes, capacity is %d bytes`, len(digest), AllocSize)
	}
	m := Multihash{code: code, size: uint8(len(digest))}
	copy(m.digest[:], digest)
	return m, nil
}

// Code returns the multicodec of the hash function
func (m Multihash) Code() uint64 {
	return m.code
}

// Size returns the number of digest bytes
func (m Multihash) Size() uint8 {
	return m.size
}

// Digest returns the digest bytes
func (m Multihash) Digest() []byte {
	return m.digest[:m.size:m.size]
}

// HexDigest returns the digest bytes encoded in a hexadecimal string
func (m Multihash) HexDigest() string {
	return hex.EncodeToString(m.digest[:m.size])
}

// EncodedLen returns the number of bytes of the binary representation
func (m Multihash) EncodedLen() int {
	return varint.UvarintSize(m.code) + varint.UvarintSize(uint64(m.size)) + int(m.size)
}

// Bytes returns the binary representation of m
func (m Multihash) Bytes() []byte {
	buf := make([]byte, 0, m.EncodedLen())
	buf = append(buf, varint.ToUvarint(m.code)...)
	buf = append(buf, varint.ToUvarint(uint64(m.size))...)
	return append(buf, m.digest[:m.size]...)
}

// String returns the binary representation of m as hexadecimal string
func (m Multihash) String() string {
	return hex.EncodeToString(m.Bytes())
}

// Equal tells whether m and other carry the same code and digest
func (m Multihash) Equal(other Multihash) bool {
	return m.code == other.code && m.size == other.size && bytes.Equal(m.Digest(), other.Digest())
}

// Truncate returns a Multihash with the same code and the first size digest bytes.
// If size is not smaller than m.Size(), m is returned unchanged.
func (m Multihash) Truncate(size uint8) Multihash {
	if size >= m.size {
		return m
	}
	t := Multihash{code: m.code, size: size}
	copy(t.digest[:], m.digest[:size])
	return t
}

// WriteTo writes the binary representation of m to w
func (m Multihash) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(m.Bytes())
	return int64(n), err
}

// MarshalBinary implements encoding.BinaryMarshaler
func (m Multihash) MarshalBinary() ([]byte, error) {
	return m.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler
func (m *Multihash) UnmarshalBinary(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Cast converts m into the representation of the go-multihash library
func (m Multihash) Cast() multihash.Multihash {
	return multihash.Multihash(m.Bytes())
}

// FromMultihash converts a go-multihash value into a Multihash
func FromMultihash(mh multihash.Multihash) (Multihash, error) {
	decoded, err := multihash.Decode(mh)
	if err != nil {
		return Multihash{}, errors.Wrap(err, `decoding go-multihash value`)
	}
	return Wrap(decoded.Code, decoded.Digest)
}

// Parse decodes the binary representation of exactly one Multihash.
// Bytes after the digest are rejected with ErrTrailingData.
func Parse(data []byte) (Multihash, error) {
	m, n, err := parse(data)
	if err != nil {
		return Multihash{}, err
	}
	if n != len(data) {
		return Multihash{}, errors.Wrapf(ErrTrailingData, `%d bytes`, len(data)-n)
	}
	return m, nil
}

// parse decodes the Multihash at the start of data and
// returns the number of bytes consumed
func parse(data []byte) (Multihash, int, error) {
	code, n, err := varint.FromUvarint(data)
	if err != nil {
		return Multihash{}, 0, varintError(err, `code`)
	}
	size, k, err := varint.FromUvarint(data[n:])
	if err != nil {
		return Multihash{}, 0, varintError(err, `digest length`)
	}
	n += k

	if size > AllocSize {
		return Multihash{}, 0, errors.Wrapf(ErrCapacityExceeded, `declared digest length %d, capacity is %d bytes`, size, AllocSize)
	}
	if uint64(len(data)-n) < size {
		return Multihash{}, 0, errors.Wrapf(ErrInsufficientData, `declared digest length %d, got %d bytes`, size, len(data)-n)
	}

	m := Multihash{code: code, size: uint8(size)}
	n += copy(m.digest[:size], data[n:])
	return m, n, nil
}

// ReadMultihash reads one binary Multihash from r.
// If r is exhausted before the first byte, io.EOF is returned as is.
func ReadMultihash(r io.Reader) (Multihash, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = &byteReader{r: r}
	}

	code, err := varint.ReadUvarint(br)
	if err == io.EOF {
		return Multihash{}, err
	}
	if err != nil {
		return Multihash{}, varintError(err, `code`)
	}
	size, err := varint.ReadUvarint(br)
	if err != nil {
		return Multihash{}, varintError(err, `digest length`)
	}
	if size > AllocSize {
		return Multihash{}, errors.Wrapf(ErrCapacityExceeded, `declared digest length %d, capacity is %d bytes`, size, AllocSize)
	}

	m := Multihash{code: code, size: uint8(size)}
	if _, err := io.ReadFull(r, m.digest[:size]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Multihash{}, errors.Wrapf(ErrInsufficientData, `declared digest length %d`, size)
		}
		return Multihash{}, errors.Wrap(err, `reading digest`)
	}
	return m, nil
}

// varintError translates errors of the varint decoder
func varintError(err error, field string) error {
	if err == varint.ErrUnderflow || err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.Wrapf(ErrInsufficientData, `reading %s`, field)
	}
	return errors.Wrapf(err, `reading %s`, field)
}

// byteReader reads one byte at a time without buffering,
// so no bytes beyond the current multihash are consumed from r
type byteReader struct {
	r   io.Reader
	buf [1]byte
}

func (b *byteReader) ReadByte() (byte, error) {
	_, err := io.ReadFull(b.r, b.buf[:])
	return b.buf[0], err
}
