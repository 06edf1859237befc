package ecc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey means key material failed validation: wrong length,
	// a scalar outside (0, N), or a point not on the curve.
	ErrInvalidKey = errors.New("key material is invalid")
	// ErrCurveMismatch means two keys from different curves were combined.
	ErrCurveMismatch = errors.New("curves do not match")
	// ErrNoPrivateKey means a private operation was attempted on a key pair
	// whose scalar was never set or has been wiped.
	ErrNoPrivateKey = errors.New("key pair has no private scalar")
	// ErrInvalidSignatureFormat means a signature could not be decoded.
	// It is distinct from a well-formed signature that fails verification.
	ErrInvalidSignatureFormat = fmt.Errorf("signature encoding is invalid")
	// ErrMalformedMessage means the wire framing of an ECIES message could
	// not be parsed.
	ErrMalformedMessage = errors.New("message framing is malformed")
	// ErrAuthentication means ciphertext integrity verification failed.
	// No further detail is reported.
	ErrAuthentication = errors.New("message authentication failed")
	// ErrGeneration means the random source failed while generating a key.
	ErrGeneration = errors.New("key generation failed")
	// ErrMessageTooLarge means a plaintext exceeds the symmetric layer's
	// size limit.
	ErrMessageTooLarge = errors.New("plaintext exceeds size limit")
)

func IsErrInvalidKey(err error) bool {
	return errors.Is(err, ErrInvalidKey)
}

func IsErrCurveMismatch(err error) bool {
	return errors.Is(err, ErrCurveMismatch)
}

func IsErrNoPrivateKey(err error) bool {
	return errors.Is(err, ErrNoPrivateKey)
}

func IsErrAuthentication(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

func IsErrMalformedMessage(err error) bool {
	return errors.Is(err, ErrMalformedMessage)
}
