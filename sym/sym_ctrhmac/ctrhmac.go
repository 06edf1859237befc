// Package sym_ctrhmac implements sym.Scheme as AES-256-CTR with
// HMAC-SHA-256 in encrypt-then-MAC composition.
//
// Ciphertext layout: IV (16 bytes) || encrypted data || MAC (32 bytes),
// with the MAC computed over IV || encrypted data.
package sym_ctrhmac

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"

	"github.com/pkg/errors"

	"github.com/brendoncarroll/go-ecc"
	"github.com/brendoncarroll/go-ecc/kdf"
	"github.com/brendoncarroll/go-ecc/sym"
)

const (
	ivSize  = aes.BlockSize
	macSize = sha256.Size

	maxPlaintext = 1 << 30
)

var _ sym.Scheme = Scheme{}

type Scheme struct{}

func New() Scheme {
	return Scheme{}
}

func (s Scheme) Seal(out []byte, keys *kdf.DerivedKeys, ptext []byte) ([]byte, error) {
	if len(ptext) > maxPlaintext {
		return nil, errors.Wrapf(ecc.ErrMessageTooLarge, "%d > %d", len(ptext), maxPlaintext)
	}
	block, err := aes.NewCipher(keys.Enc[:])
	if err != nil {
		panic(err)
	}
	var iv [ivSize]byte
	if _, err := rand.Read(iv[:]); err != nil {
		return nil, errors.Wrap(ecc.ErrGeneration, err.Error())
	}
	initLen := len(out)
	out = append(out, iv[:]...)
	out = append(out, ptext...)
	cipher.NewCTR(block, iv[:]).XORKeyStream(out[initLen+ivSize:], out[initLen+ivSize:])
	mac := hmac.New(sha256.New, keys.MAC[:])
	mac.Write(out[initLen:])
	return mac.Sum(out), nil
}

func (s Scheme) Open(out []byte, keys *kdf.DerivedKeys, ctext []byte) ([]byte, error) {
	if len(ctext) < ivSize+macSize {
		return nil, ecc.ErrAuthentication
	}
	body := ctext[:len(ctext)-macSize]
	mac := hmac.New(sha256.New, keys.MAC[:])
	mac.Write(body)
	if subtle.ConstantTimeCompare(mac.Sum(nil), ctext[len(body):]) != 1 {
		return nil, ecc.ErrAuthentication
	}
	block, err := aes.NewCipher(keys.Enc[:])
	if err != nil {
		panic(err)
	}
	initLen := len(out)
	out = append(out, body[ivSize:]...)
	cipher.NewCTR(block, body[:ivSize]).XORKeyStream(out[initLen:], out[initLen:])
	return out, nil
}

func (s Scheme) Overhead() int {
	return ivSize + macSize
}

func (s Scheme) MaxPlaintext() int {
	return maxPlaintext
}
