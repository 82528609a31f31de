package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/vesting-panel/internal/config"
	"github.com/AlexZinkM/vesting-panel/vesting"

	"github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"
)

var walletFile string

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Manage the local key file",
}

var walletGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Create a new key and write it encrypted to the key file",
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := newPassword()
		if err != nil {
			return err
		}
		defer clear(password)

		address, err := vesting.GenerateWallet(walletFile, password)
		if err != nil {
			return err
		}
		fmt.Printf("Wallet generated: %s\n", address)
		return nil
	},
}

var walletImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Encrypt an existing hex private key into the key file",
	RunE: func(cmd *cobra.Command, args []string) error {
		hexKey, err := config.ReadPassword("Private key (hex): ")
		if err != nil {
			return err
		}
		defer clear(hexKey)

		password, err := newPassword()
		if err != nil {
			return err
		}
		defer clear(password)

		address, err := vesting.ImportWallet(walletFile, password, string(hexKey))
		if err != nil {
			return err
		}
		fmt.Printf("Wallet imported: %s\n", address)
		return nil
	},
}

var walletShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the key file address as text and QR code",
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := vesting.WalletInfo(walletFile)
		if err != nil {
			return err
		}

		qr, err := qrcode.New(info.Address, qrcode.Medium)
		if err != nil {
			return fmt.Errorf("failed to create QR code: %w", err)
		}
		fmt.Printf("%s (%s)\n%s", info.Address, info.Network, qr.ToString(false))
		return nil
	},
}

// newPassword asks for a password twice.
func newPassword() ([]byte, error) {
	first, err := config.ReadPassword("New wallet password: ")
	if err != nil {
		return nil, err
	}
	second, err := config.ReadPassword("Repeat password: ")
	if err != nil {
		clear(first)
		return nil, err
	}
	defer clear(second)

	if !bytes.Equal(first, second) {
		clear(first)
		return nil, errors.New("passwords do not match")
	}
	return first, nil
}

func init() {
	walletCmd.PersistentFlags().StringVar(&walletFile, "file", os.Getenv("WALLET_FILE_PATH"), "path to the .vkey key file")

	walletCmd.AddCommand(walletGenerateCmd)
	walletCmd.AddCommand(walletImportCmd)
	walletCmd.AddCommand(walletShowCmd)
}
