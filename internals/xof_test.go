package internals

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func TestFamilyFromString(t *testing.T) {
	for name, expected := range map[string]Family{
		`shake-128`: Shake128,
		`shake128`:  Shake128,
		`SHAKE-256`: Shake256,
		`shake256`:  Shake256,
	} {
		f, err := FamilyFromString(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, f, name)
	}

	_, err := FamilyFromString(`shake-512`)
	assert.True(t, errors.Is(err, ErrUnknownFamily))
}

func TestFamilyCodes(t *testing.T) {
	assert.Equal(t, uint64(0x18), Shake128.Code())
	assert.Equal(t, uint64(0x19), Shake256.Code())
	assert.Equal(t, 168, Shake128.Rate())
	assert.Equal(t, 136, Shake256.Rate())
	assert.Equal(t, `shake-128`, Shake128.String())
	assert.Equal(t, `Family(9)`, Family(9).String())
	assert.False(t, Family(0).Valid())
	assert.Panics(t, func() { Family(0).New() })
	assert.Panics(t, func() { Family(3).Code() })
}

// TestFamilyNew checks that the families map to the right sha3 constructors
func TestFamilyNew(t *testing.T) {
	for _, f := range Families() {
		out := make([]byte, 32)
		h := f.New()
		h.Write(bootyInput)
		h.Read(out)

		expected := make([]byte, 32)
		switch f {
		case Shake128:
			sha3.ShakeSum128(expected, bootyInput)
		case Shake256:
			sha3.ShakeSum256(expected, bootyInput)
		}
		assert.Equal(t, expected, out, f.Name())
	}
}
