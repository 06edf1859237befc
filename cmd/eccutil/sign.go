package main

import (
	"encoding/hex"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brendoncarroll/go-ecc/sign"
)

var signCmd = &cobra.Command{
	Use:   "sign <private-key-file> <message-file>",
	Short: "Sign a message, printing the signature as hex",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kp, err := loadKeyPair(args[0])
		if err != nil {
			return err
		}
		defer kp.Wipe()
		msg, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		sig, err := sign.Sign(kp, msg)
		if err != nil {
			return err
		}
		cmd.Println(hex.EncodeToString(sig))
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify <public-key-file> <message-file> <signature-hex>",
	Short: "Verify a signature",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		pub, err := loadPublicKey(args[0])
		if err != nil {
			return err
		}
		msg, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		sig, err := hex.DecodeString(strings.TrimSpace(args[2]))
		if err != nil {
			return err
		}
		ok, err := sign.VerifyKey(pub, msg, sig)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("signature is invalid")
		}
		cmd.Println("OK")
		return nil
	},
}
