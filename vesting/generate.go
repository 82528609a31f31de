package vesting

import (
	"crypto/ecdsa"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AlexZinkM/vesting-panel/internal/crypto"
	"github.com/AlexZinkM/vesting-panel/internal/model"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/skip2/go-qrcode"
)

const (
	networkEthereum = "ethereum"
)

// FileExistsError is an error when file already exists and is not empty
type FileExistsError struct {
	Message string
}

func (e *FileExistsError) Error() string {
	return e.Message
}

// IsFileExistsError checks if error is FileExistsError
func IsFileExistsError(err error) bool {
	var fe *FileExistsError
	return errors.As(err, &fe)
}

// GenerateWallet generates a new secp256k1 key and saves it to a .vkey file.
// Returns the generated address on success.
// password must be []byte for security (caller should zero it after use)
func GenerateWallet(filePath string, password []byte) (address string, err error) {
	key, err := ethcrypto.GenerateKey()
	if err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}
	return saveWallet(filePath, key, password)
}

// ImportWallet encrypts an existing hex private key (with or without 0x) into a .vkey file.
func ImportWallet(filePath string, password []byte, hexKey string) (address string, err error) {
	key, err := ethcrypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return "", fmt.Errorf("invalid private key: %w", err)
	}
	return saveWallet(filePath, key, password)
}

// WalletInfo reads the address and QR code from the key file without decrypting it.
func WalletInfo(filePath string) (*model.WalletResponse, error) {
	keyFile, err := crypto.ReadKeyFile(filePath)
	if err != nil {
		if errors.Is(err, crypto.ErrNoKeyFile) || errors.Is(err, crypto.ErrEmptyKeyFile) {
			return nil, fmt.Errorf("%w: %v", ErrNotDetected, err)
		}
		return nil, err
	}
	return &model.WalletResponse{
		Network: keyFile.Network,
		Address: keyFile.Address,
		QR:      keyFile.QR,
	}, nil
}

func saveWallet(filePath string, key *ecdsa.PrivateKey, password []byte) (string, error) {
	if filepath.Ext(filePath) != crypto.KeyFileExt {
		return "", fmt.Errorf("file must have %s extension", crypto.KeyFileExt)
	}

	// Check file existence
	if fileInfo, err := os.Stat(filePath); err == nil && fileInfo.Size() > 0 {
		return "", &FileExistsError{Message: "file is not empty"}
	}

	privateKey := ethcrypto.FromECDSA(key)
	defer clear(privateKey)

	address := ethcrypto.PubkeyToAddress(key.PublicKey).Hex()

	qrCode, err := generateQRCode(address)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}

	walletData := &model.WalletData{
		PrivateKey: privateKey,
		CreatedAt:  time.Now().Format(time.RFC3339),
	}

	if err := crypto.EncryptWallet(filePath, networkEthereum, address, qrCode, walletData, password); err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", &FileExistsError{Message: err.Error()}
		}
		return "", fmt.Errorf("failed to encrypt wallet: %w", err)
	}

	return address, nil
}

// generateQRCode generates QR code of address in base64
func generateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
