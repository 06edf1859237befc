package ecies

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/brendoncarroll/go-ecc"
)

// Message is the parsed form of the wire format:
//
//	offset 0   : uint16 big-endian, length of EphemeralPublic (L)
//	offset 2   : L bytes, ephemeral public key (uncompressed point)
//	offset 2+L : remaining bytes, ciphertext (opaque to this layer)
//
// No curve identifier travels in the message.
type Message struct {
	EphemeralPublic []byte
	Ciphertext      []byte
}

// ParseMessage splits x into its fields. The fields alias x; they are not
// copied. It fails with ecc.ErrMalformedMessage if x is shorter than the
// length prefix, or if the declared length exceeds the remaining bytes.
func ParseMessage(x []byte) (*Message, error) {
	if len(x) < 2 {
		return nil, errors.Wrapf(ecc.ErrMalformedMessage, "too short to hold length prefix: %d bytes", len(x))
	}
	l := int(binary.BigEndian.Uint16(x))
	if l > len(x)-2 {
		return nil, errors.Wrapf(ecc.ErrMalformedMessage, "declared key length %d exceeds %d remaining bytes", l, len(x)-2)
	}
	return &Message{
		EphemeralPublic: x[2 : 2+l],
		Ciphertext:      x[2+l:],
	}, nil
}

// WireSize returns the encoded size of m.
func (m *Message) WireSize() int {
	return 2 + len(m.EphemeralPublic) + len(m.Ciphertext)
}

func appendUint16(out []byte, x uint16) []byte {
	return append(out, byte(x>>8), byte(x))
}
