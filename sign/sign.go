// Package sign implements ECDSA signatures over a SHA-512 message digest.
//
// Nonces are randomized, drawn from crypto/rand for every signature, so
// signing the same message twice yields different but equally valid
// signatures. Signatures are encoded as r || s, each fixed-width big-endian
// at the curve's scalar size.
package sign

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha512"
	"math/big"

	"github.com/pkg/errors"

	"github.com/brendoncarroll/go-ecc"
)

// Sign produces a signature for msg using kp's private scalar.
// It fails with ecc.ErrNoPrivateKey if the scalar has been wiped.
func Sign(kp *ecc.KeyPair, msg []byte) ([]byte, error) {
	scalar, err := kp.Scalar()
	if err != nil {
		return nil, err
	}
	priv := &ecdsa.PrivateKey{
		PublicKey: *kp.ECDSA(),
		D:         new(big.Int).SetBytes(scalar),
	}
	defer ecc.ZeroInt(priv.D)
	digest := sha512.Sum512(msg)
	r, s, err := ecdsa.Sign(rand.Reader, priv, digest[:])
	if err != nil {
		return nil, errors.Wrap(ecc.ErrGeneration, err.Error())
	}
	return encode(kp.Kind(), r, s), nil
}

// Verify imports pub on kind and reports whether sig is a valid signature
// for msg. A well-formed signature that does not verify yields (false, nil);
// malformed inputs yield an error and no verdict.
func Verify(kind ecc.CurveKind, pub, msg, sig []byte) (bool, error) {
	pubKey, err := ecc.ImportPublic(kind, pub)
	if err != nil {
		if other, ok := ecc.KindByPointSize(len(pub)); ok && other != kind {
			return false, errors.Wrapf(ecc.ErrCurveMismatch, "public key is %v, want %v", other, kind)
		}
		return false, err
	}
	return VerifyKey(pubKey, msg, sig)
}

// VerifyKey is Verify for an already-imported public key.
func VerifyKey(pub *ecc.PublicKey, msg, sig []byte) (bool, error) {
	kind := pub.Kind()
	if len(sig) != kind.SignatureSize() {
		if other, ok := kindBySignatureSize(len(sig)); ok && other != kind {
			return false, errors.Wrapf(ecc.ErrCurveMismatch, "signature is for %v, want %v", other, kind)
		}
		return false, errors.Wrapf(ecc.ErrInvalidSignatureFormat, "signature must be %d bytes, have %d", kind.SignatureSize(), len(sig))
	}
	half := kind.ScalarSize()
	r := new(big.Int).SetBytes(sig[:half])
	s := new(big.Int).SetBytes(sig[half:])
	digest := sha512.Sum512(msg)
	return ecdsa.Verify(pub.ECDSA(), digest[:], r, s), nil
}

func encode(kind ecc.CurveKind, r, s *big.Int) []byte {
	half := kind.ScalarSize()
	out := make([]byte, 2*half)
	r.FillBytes(out[:half])
	s.FillBytes(out[half:])
	return out
}

func kindBySignatureSize(n int) (ecc.CurveKind, bool) {
	for _, k := range ecc.Curves {
		if k.SignatureSize() == n {
			return k, true
		}
	}
	return 0, false
}
