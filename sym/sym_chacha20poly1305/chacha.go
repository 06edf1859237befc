// Package sym_chacha20poly1305 implements sym.Scheme with XChaCha20-Poly1305.
//
// Ciphertext layout: nonce (24 bytes) || AEAD ciphertext. Only the Enc key
// is used; Poly1305 supplies integrity, so the MAC key is ignored.
package sym_chacha20poly1305

import (
	"crypto/rand"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/brendoncarroll/go-ecc"
	"github.com/brendoncarroll/go-ecc/kdf"
	"github.com/brendoncarroll/go-ecc/sym"
)

const maxPlaintext = 1 << 30

var _ sym.Scheme = Scheme{}

type Scheme struct{}

func New() Scheme {
	return Scheme{}
}

func (s Scheme) Seal(out []byte, keys *kdf.DerivedKeys, ptext []byte) ([]byte, error) {
	if len(ptext) > maxPlaintext {
		return nil, errors.Wrapf(ecc.ErrMessageTooLarge, "%d > %d", len(ptext), maxPlaintext)
	}
	aead, err := chacha20poly1305.NewX(keys.Enc[:])
	if err != nil {
		panic(err)
	}
	var nonce [chacha20poly1305.NonceSizeX]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, errors.Wrap(ecc.ErrGeneration, err.Error())
	}
	out = append(out, nonce[:]...)
	return aead.Seal(out, nonce[:], ptext, nil), nil
}

func (s Scheme) Open(out []byte, keys *kdf.DerivedKeys, ctext []byte) ([]byte, error) {
	if len(ctext) < chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return nil, ecc.ErrAuthentication
	}
	aead, err := chacha20poly1305.NewX(keys.Enc[:])
	if err != nil {
		panic(err)
	}
	nonce := ctext[:chacha20poly1305.NonceSizeX]
	ptext, err := aead.Open(out, nonce, ctext[chacha20poly1305.NonceSizeX:], nil)
	if err != nil {
		return nil, ecc.ErrAuthentication
	}
	return ptext, nil
}

func (s Scheme) Overhead() int {
	return chacha20poly1305.NonceSizeX + chacha20poly1305.Overhead
}

func (s Scheme) MaxPlaintext() int {
	return maxPlaintext
}
