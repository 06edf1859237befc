// Package sym defines the authenticated symmetric encryption interface the
// ecies package builds on. Implementations provide confidentiality and
// integrity together; the keys come from package kdf.
package sym

import (
	"github.com/brendoncarroll/go-ecc/kdf"
)

// Scheme is an authenticated symmetric cipher keyed by a kdf.DerivedKeys.
type Scheme interface {
	// Seal encrypts and authenticates ptext and appends the result to out.
	// It fails with ecc.ErrMessageTooLarge if len(ptext) > MaxPlaintext().
	Seal(out []byte, keys *kdf.DerivedKeys, ptext []byte) ([]byte, error)
	// Open authenticates and decrypts ctext and appends the plaintext to
	// out. Any integrity failure is reported as ecc.ErrAuthentication with
	// no further detail, and no partial plaintext is produced.
	Open(out []byte, keys *kdf.DerivedKeys, ctext []byte) ([]byte, error)
	// Overhead is ciphertext_size - plaintext_size.
	Overhead() int
	// MaxPlaintext is the largest plaintext Seal accepts.
	MaxPlaintext() int
}
