// Package ecc provides elliptic curve key pairs over the NIST curves
// P-256, P-384, and P-521, for use with the sign, dhke, and ecies packages.
//
// Curve arithmetic is supplied by crypto/elliptic; this package never
// implements point or scalar math itself.
package ecc

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
)

// CurveKind selects one of the supported NIST curves.
// The zero value is not a valid curve.
type CurveKind uint8

const (
	P256 CurveKind = 1 + iota
	P384
	P521
)

// Curves lists all supported curves, useful for iterating in tests.
var Curves = []CurveKind{P256, P384, P521}

func (k CurveKind) String() string {
	switch k {
	case P256:
		return "P-256"
	case P384:
		return "P-384"
	case P521:
		return "P-521"
	default:
		return fmt.Sprintf("CurveKind(%d)", uint8(k))
	}
}

// Curve returns the underlying elliptic.Curve.
// Curve panics on an invalid CurveKind; kinds arriving from outside the
// process must be validated before use.
func (k CurveKind) Curve() elliptic.Curve {
	switch k {
	case P256:
		return elliptic.P256()
	case P384:
		return elliptic.P384()
	case P521:
		return elliptic.P521()
	default:
		panic(fmt.Sprintf("invalid curve kind %d", uint8(k)))
	}
}

// FieldSize returns the size in bytes of a field coordinate.
func (k CurveKind) FieldSize() int {
	return (k.Curve().Params().BitSize + 7) / 8
}

// ScalarSize returns the size in bytes of a serialized private scalar.
func (k CurveKind) ScalarSize() int {
	return (k.Curve().Params().N.BitLen() + 7) / 8
}

// PointSize returns the size in bytes of an uncompressed point encoding
// (0x04 || X || Y).
func (k CurveKind) PointSize() int {
	return 1 + 2*k.FieldSize()
}

// SignatureSize returns the size in bytes of a signature produced by the
// sign package for this curve: r and s, each fixed-width.
func (k CurveKind) SignatureSize() int {
	return 2 * k.ScalarSize()
}

// KindByPointSize returns the curve whose uncompressed point encoding is
// exactly n bytes, if any. Point sizes are distinct across the supported
// curves, so this identifies which curve a serialized key belongs to.
func KindByPointSize(n int) (CurveKind, bool) {
	for _, k := range Curves {
		if k.PointSize() == n {
			return k, true
		}
	}
	return 0, false
}

// ParseCurveKind maps a curve name, as printed by CurveKind.String, back to
// its CurveKind.
func ParseCurveKind(x string) (CurveKind, error) {
	switch x {
	case "P-256", "p256", "P256":
		return P256, nil
	case "P-384", "p384", "P384":
		return P384, nil
	case "P-521", "p521", "P521":
		return P521, nil
	default:
		return 0, fmt.Errorf("unknown curve %q", x)
	}
}

// Zero overwrites b with zeros. It is used to erase secret material
// (private scalars, shared secrets, derived keys) before releasing it.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ZeroInt overwrites the words backing x with zeros and sets x to 0.
// Setting a big.Int to zero does not clear the memory it used; ZeroInt does.
func ZeroInt(x *big.Int) {
	bits := x.Bits()
	for i := range bits {
		bits[i] = 0
	}
	x.SetInt64(0)
}
