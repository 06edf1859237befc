// Package ecies implements the Elliptic Curve Integrated Encryption Scheme:
// an ephemeral key pair is generated per message, a shared secret is agreed
// with the recipient's static public key (package dhke), symmetric keys are
// derived from it (package kdf), and the plaintext is sealed by an
// authenticated symmetric cipher (package sym).
//
// Every call is stateless. Ephemeral scalars, shared secrets, and derived
// keys exist only for the duration of one call and are wiped on every exit
// path.
package ecies

import (
	"io"

	"github.com/pkg/errors"

	"github.com/brendoncarroll/go-ecc"
	"github.com/brendoncarroll/go-ecc/dhke"
	"github.com/brendoncarroll/go-ecc/kdf"
	"github.com/brendoncarroll/go-ecc/sym"
	"github.com/brendoncarroll/go-ecc/sym/sym_ctrhmac"
)

// Scheme binds a curve to a symmetric cipher. Both ends of an exchange must
// agree on the Scheme out-of-band; nothing about it travels in the message.
type Scheme struct {
	Curve  ecc.CurveKind
	Cipher sym.Scheme
}

// New returns the default Scheme for kind: AES-256-CTR with HMAC-SHA-256.
func New(kind ecc.CurveKind) Scheme {
	return Scheme{Curve: kind, Cipher: sym_ctrhmac.New()}
}

// Encrypt encrypts ptext to the recipient public key given in uncompressed
// point encoding, reading ephemeral key randomness from rng.
// Use crypto/rand.Reader outside of tests.
func (s Scheme) Encrypt(rng io.Reader, recipientPublic []byte, ptext []byte) ([]byte, error) {
	recipient, err := ecc.ImportPublic(s.Curve, recipientPublic)
	if err != nil {
		return nil, err
	}
	return s.EncryptKey(rng, recipient, ptext)
}

// EncryptKey is Encrypt for an already-imported recipient key.
func (s Scheme) EncryptKey(rng io.Reader, recipient *ecc.PublicKey, ptext []byte) ([]byte, error) {
	if recipient.Kind() != s.Curve {
		return nil, errors.Wrapf(ecc.ErrCurveMismatch, "recipient key is %v, scheme is %v", recipient.Kind(), s.Curve)
	}
	if len(ptext) > s.Cipher.MaxPlaintext() {
		return nil, errors.Wrapf(ecc.ErrMessageTooLarge, "%d > %d", len(ptext), s.Cipher.MaxPlaintext())
	}
	ephemeral, err := ecc.Generate(rng, s.Curve)
	if err != nil {
		return nil, err
	}
	defer ephemeral.Wipe()
	shared, err := dhke.Agree(ephemeral, recipient)
	if err != nil {
		return nil, err
	}
	defer shared.Wipe()
	keys := kdf.Derive(shared)
	defer keys.Wipe()

	ephemeralPublic := ephemeral.Export()
	out := make([]byte, 0, 2+len(ephemeralPublic)+len(ptext)+s.Cipher.Overhead())
	out = appendUint16(out, uint16(len(ephemeralPublic)))
	out = append(out, ephemeralPublic...)
	return s.Cipher.Seal(out, &keys, ptext)
}

// Decrypt parses wire, agrees with the ephemeral public key it carries using
// kp's private scalar, and opens the ciphertext. On any failure no partial
// plaintext is returned; integrity failures surface uniformly as
// ecc.ErrAuthentication.
func (s Scheme) Decrypt(kp *ecc.KeyPair, wire []byte) ([]byte, error) {
	if kp.Kind() != s.Curve {
		return nil, errors.Wrapf(ecc.ErrCurveMismatch, "recipient key is %v, scheme is %v", kp.Kind(), s.Curve)
	}
	m, err := ParseMessage(wire)
	if err != nil {
		return nil, err
	}
	ephemeral, err := ecc.ImportPublic(s.Curve, m.EphemeralPublic)
	if err != nil {
		if other, ok := ecc.KindByPointSize(len(m.EphemeralPublic)); ok && other != s.Curve {
			return nil, errors.Wrapf(ecc.ErrCurveMismatch, "ephemeral key is %v, scheme is %v", other, s.Curve)
		}
		return nil, err
	}
	shared, err := dhke.Agree(kp, ephemeral)
	if err != nil {
		return nil, err
	}
	defer shared.Wipe()
	keys := kdf.Derive(shared)
	defer keys.Wipe()
	return s.Cipher.Open(nil, &keys, m.Ciphertext)
}
