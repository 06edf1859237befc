package ecc

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"io"
	"math/big"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// PublicKey is a validated point on one of the supported curves.
// It can verify signatures and act as an ECIES recipient, but cannot sign
// or decrypt. The zero value is not usable; construct via ImportPublic or
// KeyPair.Public.
type PublicKey struct {
	kind  CurveKind
	point []byte
}

// Kind returns the curve this key belongs to.
func (pk *PublicKey) Kind() CurveKind {
	return pk.kind
}

// Export returns the uncompressed point encoding (0x04 || X || Y).
// The result is PointSize bytes and is always derivable from the private
// scalar when one exists.
func (pk *PublicKey) Export() []byte {
	return slices.Clone(pk.point)
}

// ECDSA converts to the stdlib representation for use with crypto/ecdsa.
func (pk *PublicKey) ECDSA() *ecdsa.PublicKey {
	curve := pk.kind.Curve()
	x, y := elliptic.Unmarshal(curve, pk.point)
	if x == nil {
		// the point was validated at construction
		log.Errorf("stored point no longer parses on %v", pk.kind)
		panic("ecc: corrupt public key")
	}
	return &ecdsa.PublicKey{Curve: curve, X: x, Y: y}
}

// KeyPair is a PublicKey plus the matching private scalar.
// Wipe erases the scalar; private operations afterwards fail with
// ErrNoPrivateKey.
type KeyPair struct {
	PublicKey
	scalar []byte
}

// Generate creates a new key pair on kind, reading randomness from rng.
// Use crypto/rand.Reader outside of tests; rng must be safe for concurrent
// use when key pairs are generated concurrently.
func Generate(rng io.Reader, kind CurveKind) (*KeyPair, error) {
	curve := kind.Curve()
	d, x, y, err := elliptic.GenerateKey(curve, rng)
	if err != nil {
		return nil, errors.Wrap(ErrGeneration, err.Error())
	}
	return &KeyPair{
		PublicKey: PublicKey{kind: kind, point: elliptic.Marshal(curve, x, y)},
		scalar:    leftPad(d, kind.ScalarSize()),
	}, nil
}

// ImportPrivate builds a key pair from a serialized private scalar, deriving
// the public point. The scalar must be exactly ScalarSize bytes and lie in
// (0, N) where N is the curve order.
func ImportPrivate(kind CurveKind, data []byte) (*KeyPair, error) {
	if len(data) != kind.ScalarSize() {
		return nil, errors.Wrapf(ErrInvalidKey, "private scalar must be %d bytes, have %d", kind.ScalarSize(), len(data))
	}
	curve := kind.Curve()
	d := new(big.Int).SetBytes(data)
	if d.Sign() == 0 || d.Cmp(curve.Params().N) >= 0 {
		return nil, errors.Wrap(ErrInvalidKey, "private scalar out of range")
	}
	x, y := curve.ScalarBaseMult(data)
	return &KeyPair{
		PublicKey: PublicKey{kind: kind, point: elliptic.Marshal(curve, x, y)},
		scalar:    slices.Clone(data),
	}, nil
}

// ImportPublic builds a public-only key from an uncompressed point encoding.
// The point must be on the curve and must not be the identity element.
func ImportPublic(kind CurveKind, data []byte) (*PublicKey, error) {
	if len(data) != kind.PointSize() {
		return nil, errors.Wrapf(ErrInvalidKey, "public key must be %d bytes, have %d", kind.PointSize(), len(data))
	}
	curve := kind.Curve()
	x, y := elliptic.Unmarshal(curve, data)
	if x == nil {
		return nil, errors.Wrap(ErrInvalidKey, "point is not on the curve")
	}
	if x.Sign() == 0 && y.Sign() == 0 {
		return nil, errors.Wrap(ErrInvalidKey, "point is the identity element")
	}
	return &PublicKey{kind: kind, point: slices.Clone(data)}, nil
}

// Public returns the public half of the key pair.
func (kp *KeyPair) Public() *PublicKey {
	return &PublicKey{kind: kp.kind, point: slices.Clone(kp.point)}
}

// ExportPrivate returns the serialized private scalar, fixed-width
// big-endian. It fails with ErrNoPrivateKey after Wipe.
func (kp *KeyPair) ExportPrivate() ([]byte, error) {
	if kp.scalar == nil {
		return nil, ErrNoPrivateKey
	}
	return slices.Clone(kp.scalar), nil
}

// Scalar returns the private scalar without copying, for use by the sign
// and dhke packages. Callers must not retain or modify it.
func (kp *KeyPair) Scalar() ([]byte, error) {
	if kp.scalar == nil {
		return nil, ErrNoPrivateKey
	}
	return kp.scalar, nil
}

// Wipe erases the private scalar. The public half remains usable.
// Wipe is idempotent.
func (kp *KeyPair) Wipe() {
	Zero(kp.scalar)
	kp.scalar = nil
}

// leftPad returns x in exactly n bytes, big-endian.
func leftPad(x []byte, n int) []byte {
	if len(x) > n {
		panic("ecc: value wider than target")
	}
	out := make([]byte, n)
	copy(out[n-len(x):], x)
	return out
}
