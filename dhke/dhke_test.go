package dhke_test

import (
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/go-ecc"
	"github.com/brendoncarroll/go-ecc/dhke"
)

// Agreement must commute: both parties arrive at the same bits.
func TestCommutativity(t *testing.T) {
	for _, kind := range ecc.Curves {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			a := genKeyPair(t, kind, 0)
			b := genKeyPair(t, kind, 1)

			sh1, err := dhke.Agree(a, b.Public())
			require.NoError(t, err)
			sh2, err := dhke.Agree(b, a.Public())
			require.NoError(t, err)
			require.Equal(t, sh1, sh2)
			require.NotZero(t, *sh1)
		})
	}
}

func TestDistinctPeers(t *testing.T) {
	a := genKeyPair(t, ecc.P256, 0)
	b := genKeyPair(t, ecc.P256, 1)
	c := genKeyPair(t, ecc.P256, 2)

	shAB, err := dhke.Agree(a, b.Public())
	require.NoError(t, err)
	shAC, err := dhke.Agree(a, c.Public())
	require.NoError(t, err)
	require.NotEqual(t, shAB, shAC)
}

func TestCurveMismatch(t *testing.T) {
	a := genKeyPair(t, ecc.P256, 0)
	b := genKeyPair(t, ecc.P384, 0)
	_, err := dhke.Agree(a, b.Public())
	require.ErrorIs(t, err, ecc.ErrCurveMismatch)
	require.True(t, ecc.IsErrCurveMismatch(err))
}

func TestNoPrivateKey(t *testing.T) {
	a := genKeyPair(t, ecc.P256, 0)
	b := genKeyPair(t, ecc.P256, 1)
	a.Wipe()
	_, err := dhke.Agree(a, b.Public())
	require.ErrorIs(t, err, ecc.ErrNoPrivateKey)
}

func TestAgreeBytes(t *testing.T) {
	a := genKeyPair(t, ecc.P521, 0)
	b := genKeyPair(t, ecc.P521, 1)

	sh1, err := dhke.AgreeBytes(a, b.Export())
	require.NoError(t, err)
	sh2, err := dhke.AgreeBytes(b, a.Export())
	require.NoError(t, err)
	require.Equal(t, sh1, sh2)

	_, err = dhke.AgreeBytes(a, make([]byte, ecc.P521.PointSize()))
	require.ErrorIs(t, err, ecc.ErrInvalidKey)
}

func TestWipeShared(t *testing.T) {
	a := genKeyPair(t, ecc.P256, 0)
	b := genKeyPair(t, ecc.P256, 1)
	sh, err := dhke.Agree(a, b.Public())
	require.NoError(t, err)
	sh.Wipe()
	require.Zero(t, *sh)
}

func genKeyPair(t *testing.T, kind ecc.CurveKind, i int) *ecc.KeyPair {
	rng := mrand.New(mrand.NewSource(int64(i)))
	kp, err := ecc.Generate(rng, kind)
	require.NoError(t, err)
	return kp
}
