package ecc

import (
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateExportImport(t *testing.T) {
	for _, kind := range Curves {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			kp := testKeyPair(t, kind, 0)
			pub := kp.Export()
			require.Len(t, pub, kind.PointSize())
			require.Equal(t, byte(0x04), pub[0])

			priv, err := kp.ExportPrivate()
			require.NoError(t, err)
			require.Len(t, priv, kind.ScalarSize())

			kp2, err := ImportPrivate(kind, priv)
			require.NoError(t, err)
			require.Equal(t, pub, kp2.Export())

			pub2, err := ImportPublic(kind, pub)
			require.NoError(t, err)
			require.Equal(t, pub, pub2.Export())
			require.Equal(t, kind, pub2.Kind())
		})
	}
}

func TestImportPrivateReject(t *testing.T) {
	for _, kind := range Curves {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			// zero scalar
			_, err := ImportPrivate(kind, make([]byte, kind.ScalarSize()))
			require.ErrorIs(t, err, ErrInvalidKey)
			// scalar == curve order
			order := leftPad(kind.Curve().Params().N.Bytes(), kind.ScalarSize())
			_, err = ImportPrivate(kind, order)
			require.ErrorIs(t, err, ErrInvalidKey)
			// wrong length
			_, err = ImportPrivate(kind, make([]byte, kind.ScalarSize()-1))
			require.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestImportPublicReject(t *testing.T) {
	for _, kind := range Curves {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			kp := testKeyPair(t, kind, 0)
			good := kp.Export()

			// not on the curve: corrupt one byte of Y
			bad := append([]byte{}, good...)
			bad[len(bad)-1] ^= 0xff
			_, err := ImportPublic(kind, bad)
			require.ErrorIs(t, err, ErrInvalidKey)

			// wrong length
			_, err = ImportPublic(kind, good[:len(good)-1])
			require.ErrorIs(t, err, ErrInvalidKey)

			// missing uncompressed tag
			bad = append([]byte{}, good...)
			bad[0] = 0x02
			_, err = ImportPublic(kind, bad)
			require.ErrorIs(t, err, ErrInvalidKey)

			// identity element
			_, err = ImportPublic(kind, make([]byte, kind.PointSize()))
			require.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestWipe(t *testing.T) {
	kp := testKeyPair(t, P256, 0)
	pub := kp.Export()
	kp.Wipe()
	kp.Wipe() // idempotent

	_, err := kp.ExportPrivate()
	require.ErrorIs(t, err, ErrNoPrivateKey)
	_, err = kp.Scalar()
	require.ErrorIs(t, err, ErrNoPrivateKey)
	// the public half survives
	require.Equal(t, pub, kp.Export())
}

func TestKindByPointSize(t *testing.T) {
	for _, kind := range Curves {
		k, ok := KindByPointSize(kind.PointSize())
		require.True(t, ok)
		require.Equal(t, kind, k)
	}
	_, ok := KindByPointSize(64)
	require.False(t, ok)
}

func testKeyPair(t *testing.T, kind CurveKind, i int) *KeyPair {
	rng := mrand.New(mrand.NewSource(int64(i)))
	kp, err := Generate(rng, kind)
	require.NoError(t, err)
	return kp
}
