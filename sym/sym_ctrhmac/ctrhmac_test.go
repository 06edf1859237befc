package sym_ctrhmac_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/go-ecc/sym"
	"github.com/brendoncarroll/go-ecc/sym/sym_ctrhmac"
)

func TestCTRHMAC(t *testing.T) {
	sym.TestScheme(t, sym_ctrhmac.New())
}

func TestOverhead(t *testing.T) {
	// IV + HMAC-SHA-256 tag
	require.Equal(t, 16+32, sym_ctrhmac.New().Overhead())
}
