package internals

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

// TestCIDEmbedding wraps a multihash into a CIDv1 and back
func TestCIDEmbedding(t *testing.T) {
	for _, code := range Codes() {
		mh := code.Digest(bootyInput)
		c := cid.NewCidV1(cid.Raw, mh.Cast())

		s, err := c.StringOfBase(multibase.Base36)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(s, `k`), s)

		decoded, err := cid.Decode(s)
		require.NoError(t, err)
		assert.True(t, c.Equals(decoded))
		assert.Equal(t, uint64(cid.Raw), decoded.Type())
		assert.Equal(t, code.Uint64(), decoded.Prefix().MhType)
		assert.Equal(t, code.Size(), decoded.Prefix().MhLength)

		back, err := FromMultihash(decoded.Hash())
		require.NoError(t, err)
		assert.Equal(t, mh, back)
	}
}

// TestFieldElementFromDigest maps the SHAKE-256 digest onto the
// BLS12-381 scalar field. The multihash digest and the raw SHAKE
// output must reduce to the same element.
func TestFieldElementFromDigest(t *testing.T) {
	mh := CodeShake256_48.Digest(bootyInput)

	raw := make([]byte, Shake256_48Len)
	sha3.ShakeSum256(raw, bootyInput)

	var fromMultihash, fromRaw fr.Element
	fromMultihash.SetBytes(mh.Digest())
	fromRaw.SetBytes(raw)
	assert.True(t, fromMultihash.Equal(&fromRaw))

	reduced := fromMultihash.Bytes()
	assert.Equal(t, `4cb0d9690db91b3959b8995d742ad6072338b5d86b6668011fb3fc9b2af0991c`, hex.EncodeToString(reduced[:]))

	out := make([]byte, Shake256_48Len)
	variable, err := Shake256Digest(bootyInput, out)
	require.NoError(t, err)
	var fromVariable fr.Element
	fromVariable.SetBytes(variable.Digest())
	assert.True(t, fromVariable.Equal(&fromRaw))
}
