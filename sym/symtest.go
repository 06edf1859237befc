package sym

import (
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/go-ecc"
	"github.com/brendoncarroll/go-ecc/kdf"
)

// TestScheme exercises the properties every Scheme must provide.
func TestScheme(t *testing.T, s Scheme) {
	keys := testKeys(0)
	t.Run("RoundTrip", func(t *testing.T) {
		for _, in := range []string{"", "a", "hello world", string(make([]byte, 4096))} {
			ct, err := s.Seal(nil, &keys, []byte(in))
			require.NoError(t, err)
			require.Len(t, ct, len(in)+s.Overhead())
			pt, err := s.Open(nil, &keys, ct)
			require.NoError(t, err)
			require.Equal(t, in, string(pt))
		}
	})
	t.Run("TamperEveryByte", func(t *testing.T) {
		ct, err := s.Seal(nil, &keys, []byte("hello world"))
		require.NoError(t, err)
		for i := range ct {
			ct[i] ^= 0x01
			_, err := s.Open(nil, &keys, ct)
			require.ErrorIs(t, err, ecc.ErrAuthentication)
			ct[i] ^= 0x01
		}
	})
	t.Run("WrongKey", func(t *testing.T) {
		ct, err := s.Seal(nil, &keys, []byte("hello world"))
		require.NoError(t, err)
		otherKeys := testKeys(1)
		_, err = s.Open(nil, &otherKeys, ct)
		require.ErrorIs(t, err, ecc.ErrAuthentication)
	})
	t.Run("ShortCiphertext", func(t *testing.T) {
		for n := 0; n < s.Overhead(); n++ {
			_, err := s.Open(nil, &keys, make([]byte, n))
			require.ErrorIs(t, err, ecc.ErrAuthentication)
		}
	})
	t.Run("FreshRandomness", func(t *testing.T) {
		ct1, err := s.Seal(nil, &keys, []byte("same input"))
		require.NoError(t, err)
		ct2, err := s.Seal(nil, &keys, []byte("same input"))
		require.NoError(t, err)
		require.NotEqual(t, ct1, ct2)
	})
}

func testKeys(i int) (keys kdf.DerivedKeys) {
	rng := mrand.New(mrand.NewSource(int64(i)))
	rng.Read(keys.Enc[:])
	rng.Read(keys.MAC[:])
	return keys
}
