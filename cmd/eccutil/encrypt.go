package main

import (
	"crypto/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/brendoncarroll/go-ecc/ecies"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt <public-key-file> <in-file> <out-file>",
	Short: "Encrypt a file to a public key",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		pub, err := loadPublicKey(args[0])
		if err != nil {
			return err
		}
		ptext, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		scheme := ecies.New(pub.Kind())
		wire, err := scheme.EncryptKey(rand.Reader, pub, ptext)
		if err != nil {
			return err
		}
		return os.WriteFile(args[2], wire, 0o644)
	},
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt <private-key-file> <in-file> <out-file>",
	Short: "Decrypt a file with a private key",
	RunE: func(cmd *cobra.Command, args []string) error {
		kp, err := loadKeyPair(args[0])
		if err != nil {
			return err
		}
		defer kp.Wipe()
		wire, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		scheme := ecies.New(kp.Kind())
		ptext, err := scheme.Decrypt(kp, wire)
		if err != nil {
			return err
		}
		return os.WriteFile(args[2], ptext, 0o600)
	},
	Args: cobra.ExactArgs(3),
}
