package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brendoncarroll/go-ecc"
)

var log = ecc.Logger

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(pubCmd)
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.PersistentFlags().StringVar(&curveName, "curve", "P-256", "one of P-256, P-384, P-521")
}

var curveName string

var rootCmd = &cobra.Command{
	Use:   "eccutil",
	Short: "Key generation, ECDSA signatures, and ECIES encryption",
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a key pair, printing the private key as hex",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := ecc.ParseCurveKind(curveName)
		if err != nil {
			return err
		}
		kp, err := ecc.Generate(rand.Reader, kind)
		if err != nil {
			return err
		}
		defer kp.Wipe()
		priv, err := kp.ExportPrivate()
		if err != nil {
			return err
		}
		defer ecc.Zero(priv)
		cmd.Println(hex.EncodeToString(priv))
		return nil
	},
}

var pubCmd = &cobra.Command{
	Use:   "pub <private-key-file>",
	Short: "Print the public key for a private key, as hex",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kp, err := loadKeyPair(args[0])
		if err != nil {
			return err
		}
		defer kp.Wipe()
		cmd.Println(hex.EncodeToString(kp.Export()))
		return nil
	},
}

// loadKeyPair reads a hex private key from path and imports it on the curve
// selected by --curve.
func loadKeyPair(path string) (*ecc.KeyPair, error) {
	kind, err := ecc.ParseCurveKind(curveName)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	scalar, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("key file is not hex: %w", err)
	}
	defer ecc.Zero(scalar)
	return ecc.ImportPrivate(kind, scalar)
}

// loadPublicKey reads a hex public key from path and imports it on the curve
// selected by --curve.
func loadPublicKey(path string) (*ecc.PublicKey, error) {
	kind, err := ecc.ParseCurveKind(curveName)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	point, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("key file is not hex: %w", err)
	}
	return ecc.ImportPublic(kind, point)
}
