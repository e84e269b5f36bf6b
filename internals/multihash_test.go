package internals

import (
	"bufio"
	"bytes"
	"encoding"
	"io"
	"testing"
	"testing/iotest"

	"github.com/multiformats/go-multihash"
	"github.com/multiformats/go-varint"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ encoding.BinaryMarshaler   = Multihash{}
	_ encoding.BinaryUnmarshaler = (*Multihash)(nil)
	_ io.WriterTo                = Multihash{}
)

func TestWrap(t *testing.T) {
	digest := []byte{0xde, 0xad, 0xbe, 0xef}
	mh, err := Wrap(Shake128HashCode, digest)
	require.NoError(t, err)
	assert.Equal(t, Shake128HashCode, mh.Code())
	assert.Equal(t, uint8(4), mh.Size())
	assert.Equal(t, digest, mh.Digest())
	assert.Equal(t, []byte{0x18, 0x04, 0xde, 0xad, 0xbe, 0xef}, mh.Bytes())
	assert.Equal(t, `1804deadbeef`, mh.String())
	assert.Equal(t, 6, mh.EncodedLen())

	// the digest is copied
	digest[0] = 0
	assert.Equal(t, byte(0xde), mh.Digest()[0])
	mh.Digest()[1] = 0
	assert.Equal(t, `deadbeef`, mh.HexDigest())
}

// TestWrapCapacity checks the AllocSize boundary
func TestWrapCapacity(t *testing.T) {
	mh, err := Wrap(Shake256HashCode, make([]byte, AllocSize))
	require.NoError(t, err)
	assert.Equal(t, uint8(AllocSize), mh.Size())
	assert.Len(t, mh.Digest(), AllocSize)

	mh, err = Wrap(Shake256HashCode, make([]byte, AllocSize+1))
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
	assert.Equal(t, Multihash{}, mh)

	empty, err := Wrap(Shake256HashCode, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x19, 0x00}, empty.Bytes())
}

// TestWrapCodeRange checks that only codes with a parseable varint are wrapped
func TestWrapCodeRange(t *testing.T) {
	digest := []byte{1, 2, 3}

	mh, err := Wrap(varint.MaxValueUvarint63, digest)
	require.NoError(t, err)
	parsed, err := Parse(mh.Bytes())
	require.NoError(t, err)
	assert.Equal(t, mh, parsed)

	mh, err = Wrap(varint.MaxValueUvarint63+1, digest)
	assert.True(t, errors.Is(err, varint.ErrOverflow), `%v`, err)
	assert.Equal(t, Multihash{}, mh)
}

// TestLengthInvariant checks that the declared length always equals the digest length
func TestLengthInvariant(t *testing.T) {
	for n := 0; n <= AllocSize; n++ {
		mh, err := Shake256Digest(bootyInput, make([]byte, n))
		require.NoError(t, err)
		assert.Equal(t, int(mh.Size()), len(mh.Digest()))

		parsed, err := Parse(mh.Bytes())
		require.NoError(t, err)
		assert.Equal(t, int(parsed.Size()), len(parsed.Digest()))
		assert.Equal(t, mh, parsed)
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, code := range []uint64{0, 24, 25, 0x1e, 0xb220, 1 << 40, varint.MaxValueUvarint63} {
		for _, n := range []int{0, 1, 32, 48, 64} {
			digest := bytes.Repeat([]byte{0xa5}, n)
			mh, err := Wrap(code, digest)
			require.NoError(t, err)

			parsed, err := Parse(mh.Bytes())
			require.NoError(t, err)
			assert.Equal(t, code, parsed.Code())
			assert.Equal(t, digest, parsed.Digest())
			assert.True(t, mh.Equal(parsed))
		}
	}
}

func TestParseErrors(t *testing.T) {
	valid := CodeShake128_48.Digest(bootyInput).Bytes()
	tooLong := append([]byte{0x19, 0x41}, make([]byte, 65)...)
	notMinimal := append([]byte{0x98, 0x00, 0x01}, 0xff)

	tests := []struct {
		name     string
		input    []byte
		expected error
	}{
		{`empty`, []byte{}, ErrInsufficientData},
		{`code only`, []byte{0x19}, ErrInsufficientData},
		{`unterminated varint`, []byte{0x80}, ErrInsufficientData},
		{`truncated digest`, valid[:len(valid)-1], ErrInsufficientData},
		{`trailing bytes`, append(append([]byte(nil), valid...), 0x00), ErrTrailingData},
		{`capacity`, tooLong, ErrCapacityExceeded},
		{`non-minimal varint`, notMinimal, varint.ErrNotMinimal},
	}
	for _, test := range tests {
		mh, err := Parse(test.input)
		assert.True(t, errors.Is(err, test.expected), `%s: expected %v, got %v`, test.name, test.expected, err)
		assert.Equal(t, Multihash{}, mh, test.name)
	}
}

func TestReadMultihash(t *testing.T) {
	var stream bytes.Buffer
	expected := []Multihash{
		CodeShake128_48.Digest(bootyInput),
		CodeShake256_48.Digest(nil),
	}
	for _, mh := range expected {
		n, err := mh.WriteTo(&stream)
		require.NoError(t, err)
		assert.Equal(t, int64(mh.EncodedLen()), n)
	}
	short, err := Shake128Digest(bootyInput, make([]byte, 20))
	require.NoError(t, err)
	short.WriteTo(&stream)
	expected = append(expected, short)

	readers := map[string]func() io.Reader{
		`buffered`:   func() io.Reader { return bufio.NewReader(bytes.NewReader(stream.Bytes())) },
		`unbuffered`: func() io.Reader { return iotest.OneByteReader(bytes.NewReader(stream.Bytes())) },
	}
	for name, newReader := range readers {
		r := newReader()
		for i, exp := range expected {
			mh, err := ReadMultihash(r)
			require.NoError(t, err, `%s #%d`, name, i)
			assert.True(t, exp.Equal(mh), `%s #%d`, name, i)
		}
		_, err := ReadMultihash(r)
		assert.Equal(t, io.EOF, err, name)
	}

	_, err = ReadMultihash(bytes.NewReader([]byte{0x19, 0x30, 0x01}))
	assert.True(t, errors.Is(err, ErrInsufficientData))
	_, err = ReadMultihash(bytes.NewReader([]byte{0x19}))
	assert.True(t, errors.Is(err, ErrInsufficientData))
	_, err = ReadMultihash(bytes.NewReader([]byte{0x19, 0x41}))
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
}

func TestMarshalBinary(t *testing.T) {
	mh := CodeShake256_48.Digest(bootyInput)
	data, err := mh.MarshalBinary()
	require.NoError(t, err)

	var decoded Multihash
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, mh, decoded)

	assert.Error(t, decoded.UnmarshalBinary(data[:10]))
	assert.Equal(t, mh, decoded, `failed unmarshalling must not modify the receiver`)
}

func TestTruncate(t *testing.T) {
	mh := CodeShake256_48.Digest(bootyInput)
	assert.Equal(t, mh, mh.Truncate(48))
	assert.Equal(t, mh, mh.Truncate(200))

	tr := mh.Truncate(32)
	assert.Equal(t, uint8(32), tr.Size())
	assert.Equal(t, mh.Digest()[:32], tr.Digest())
	assert.Equal(t, mh.Code(), tr.Code())
}

// TestGoMultihashInterop cross-checks against the go-multihash implementation
func TestGoMultihashInterop(t *testing.T) {
	mh := CodeShake256_48.Digest(bootyInput)

	ref, err := multihash.Sum(bootyInput, multihash.SHAKE_256, Shake256_48Len)
	require.NoError(t, err)
	assert.Equal(t, []byte(ref), mh.Bytes())
	assert.Equal(t, ref, mh.Cast())

	decoded, err := multihash.Decode(mh.Cast())
	require.NoError(t, err)
	assert.Equal(t, Shake256HashCode, decoded.Code)
	assert.Equal(t, `shake-256`, decoded.Name)
	assert.Equal(t, Shake256_48Len, decoded.Length)
	assert.Equal(t, mh.Digest(), decoded.Digest)

	back, err := FromMultihash(ref)
	require.NoError(t, err)
	assert.Equal(t, mh, back)

	encoded, err := multihash.Encode(make([]byte, 20), multihash.SHAKE_128)
	require.NoError(t, err)
	fromEncoded, err := FromMultihash(encoded)
	require.NoError(t, err)
	assert.Equal(t, Shake128HashCode, fromEncoded.Code())

	_, err = FromMultihash(multihash.Multihash{0x19, 0x30, 0x00})
	assert.Error(t, err)
}
