package internals

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

// bootyInput is the input used throughout the tests
var bootyInput = []byte("shake, shake, shake... shake shake shake... shake your booty!")

type testVector struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Family string `yaml:"family"`
	Length int    `yaml:"length"`
	Digest string `yaml:"digest"`
}

type testVectors struct {
	Vectors []testVector `yaml:"vectors"`
}

// loadVectors reads testdata/vectors.yaml
func loadVectors(t *testing.T) []testVector {
	t.Helper()

	src, err := os.ReadFile(filepath.Join("testdata", "vectors.yaml"))
	require.NoError(t, err)

	var vs testVectors
	require.NoError(t, yaml.Unmarshal(src, &vs))
	require.NotEmpty(t, vs.Vectors)
	return vs.Vectors
}

func (v testVector) family(t *testing.T) Family {
	t.Helper()
	f, err := FamilyFromString(v.Family)
	require.NoError(t, err)
	return f
}

func (v testVector) digest(t *testing.T) []byte {
	t.Helper()
	d, err := hex.DecodeString(v.Digest)
	require.NoError(t, err)
	require.Len(t, d, v.Length)
	return d
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
