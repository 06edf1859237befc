// Package kdf expands a dhke.Shared secret into symmetric keys.
//
// Derive is the wire construction: the first half of the secret is the
// encryption key and SHA-384 of the second half, truncated, is the MAC key.
// It is not a general-purpose KDF; it is sound here only because its input
// is already uniformly random. DeriveHKDF is a standard alternative for
// callers that do not need wire compatibility with Derive.
package kdf

import (
	"crypto/sha512"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"

	"github.com/brendoncarroll/go-ecc"
	"github.com/brendoncarroll/go-ecc/dhke"
)

const (
	// EncKeySize is the size of the encryption key, suitable for AES-256.
	EncKeySize = 32
	// MACKeySize is the size of the MAC key, suitable for HMAC-SHA-256.
	MACKeySize = 32
)

// DerivedKeys holds the two keys the symmetric layer consumes.
// Wipe both keys as soon as the operation using them completes.
type DerivedKeys struct {
	Enc [EncKeySize]byte
	MAC [MACKeySize]byte
}

// Wipe erases both keys.
func (k *DerivedKeys) Wipe() {
	ecc.Zero(k.Enc[:])
	ecc.Zero(k.MAC[:])
}

// Derive splits sh into an encryption key and a MAC key.
// Enc = sh[:32], MAC = SHA-384(sh[32:])[:32]. The split boundary and hash
// are fixed; independently built peers interoperate only on this layout.
func Derive(sh *dhke.Shared) DerivedKeys {
	var keys DerivedKeys
	copy(keys.Enc[:], sh[:dhke.SharedSize/2])
	sum := sha512.Sum384(sh[dhke.SharedSize/2:])
	copy(keys.MAC[:], sum[:MACKeySize])
	ecc.Zero(sum[:])
	return keys
}

// DeriveHKDF expands secret with HKDF-SHA-384 using info as the context
// string. Its output is unrelated to Derive's; the two must not be mixed on
// one wire format.
func DeriveHKDF(secret, info []byte) (DerivedKeys, error) {
	var keys DerivedKeys
	r := hkdf.New(sha512.New384, secret, nil, info)
	if _, err := io.ReadFull(r, keys.Enc[:]); err != nil {
		return DerivedKeys{}, errors.Wrap(err, "hkdf expand")
	}
	if _, err := io.ReadFull(r, keys.MAC[:]); err != nil {
		return DerivedKeys{}, errors.Wrap(err, "hkdf expand")
	}
	return keys, nil
}
