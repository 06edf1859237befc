// Package dhke implements Diffie-Hellman key agreement over the curves in
// package ecc.
//
// Agree(A, B.Public) and Agree(B, A.Public) produce the same Shared secret
// bit-for-bit for any two key pairs A, B on the same curve.
package dhke

import (
	"crypto/sha512"

	"github.com/pkg/errors"

	"github.com/brendoncarroll/go-ecc"
)

// SharedSize is the size in bytes of a Shared secret, for every curve.
const SharedSize = 64

// Shared is the secret both parties arrive at. It is uniformly distributed
// and must be wiped once the keys derived from it exist.
type Shared [SharedSize]byte

// Wipe erases the secret.
func (s *Shared) Wipe() {
	ecc.Zero(s[:])
}

// Agree computes the shared secret between kp's private scalar and peer.
// The shared point's coordinates are encoded fixed-width as X || Y and
// compressed to SharedSize bytes with SHA-512, so the secret has the same
// length on every curve.
//
// It fails with ecc.ErrCurveMismatch if the keys are on different curves,
// ecc.ErrNoPrivateKey if kp has been wiped, and ecc.ErrInvalidKey if the
// multiplication yields the identity element.
func Agree(kp *ecc.KeyPair, peer *ecc.PublicKey) (*Shared, error) {
	if kp.Kind() != peer.Kind() {
		return nil, errors.Wrapf(ecc.ErrCurveMismatch, "local key is %v, peer is %v", kp.Kind(), peer.Kind())
	}
	scalar, err := kp.Scalar()
	if err != nil {
		return nil, err
	}
	kind := kp.Kind()
	curve := kind.Curve()
	peerKey := peer.ECDSA()
	x, y := curve.ScalarMult(peerKey.X, peerKey.Y, scalar)
	defer ecc.ZeroInt(x)
	defer ecc.ZeroInt(y)
	if x.Sign() == 0 && y.Sign() == 0 {
		return nil, errors.Wrap(ecc.ErrInvalidKey, "agreement produced the identity element")
	}
	fieldSize := kind.FieldSize()
	buf := make([]byte, 2*fieldSize)
	defer ecc.Zero(buf)
	x.FillBytes(buf[:fieldSize])
	y.FillBytes(buf[fieldSize:])
	sh := Shared(sha512.Sum512(buf))
	return &sh, nil
}

// AgreeBytes imports peerPublic on kp's curve and calls Agree.
func AgreeBytes(kp *ecc.KeyPair, peerPublic []byte) (*Shared, error) {
	peer, err := ecc.ImportPublic(kp.Kind(), peerPublic)
	if err != nil {
		return nil, err
	}
	return Agree(kp, peer)
}
