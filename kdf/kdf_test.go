package kdf_test

import (
	"crypto/sha512"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/go-ecc/dhke"
	"github.com/brendoncarroll/go-ecc/kdf"
)

func TestDerive(t *testing.T) {
	sh := testShared(t)
	keys := kdf.Derive(sh)

	// Enc is the first half of the secret, verbatim.
	require.Equal(t, sh[:32], keys.Enc[:])
	// MAC is SHA-384 of the second half, truncated.
	sum := sha512.Sum384(sh[32:])
	require.Equal(t, sum[:32], keys.MAC[:])

	// deterministic
	keys2 := kdf.Derive(sh)
	require.Equal(t, keys, keys2)
}

func TestDeriveHKDF(t *testing.T) {
	sh := testShared(t)
	keys, err := kdf.DeriveHKDF(sh[:], []byte("test"))
	require.NoError(t, err)
	require.NotZero(t, keys.Enc)
	require.NotZero(t, keys.MAC)
	require.NotEqual(t, keys.Enc, keys.MAC)

	// HKDF output is unrelated to the wire construction.
	legacy := kdf.Derive(sh)
	require.NotEqual(t, legacy, keys)

	// distinct context strings give distinct keys
	keys2, err := kdf.DeriveHKDF(sh[:], []byte("other"))
	require.NoError(t, err)
	require.NotEqual(t, keys, keys2)
}

func TestWipe(t *testing.T) {
	keys := kdf.Derive(testShared(t))
	keys.Wipe()
	require.Zero(t, keys.Enc)
	require.Zero(t, keys.MAC)
}

func testShared(t *testing.T) *dhke.Shared {
	rng := mrand.New(mrand.NewSource(0))
	var sh dhke.Shared
	_, err := rng.Read(sh[:])
	require.NoError(t, err)
	return &sh
}
