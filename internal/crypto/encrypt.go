package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AlexZinkM/vesting-panel/internal/model"

	"golang.org/x/crypto/scrypt"
)

// KeyFileExt is the required extension of encrypted key files.
const KeyFileExt = ".vkey"

// scrypt parameters for the local key file.
// N=2^18 needs ~256MB RAM and 0.5-2s per unlock.
var (
	scryptN = 1 << 18
	scryptR = 8
	scryptP = 1
)

const (
	scryptKeyLen = 32
	saltLen      = 32
	nonceLen     = 12
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SetScryptN overrides the scrypt cost parameter N (a power of two).
// Lower values are only for tests and constrained devices.
func SetScryptN(n int) {
	scryptN = n
}

// ErrFileNotEmpty is returned when writing would overwrite an existing key file.
var ErrFileNotEmpty = fmt.Errorf("file is not empty: %w", os.ErrExist)

// EncryptWallet encrypts wallet data and writes it to .vkey
// password must be []byte for security (caller should zero it after use)
func EncryptWallet(filePath string, network, address, qrCode string, walletData *model.WalletData, password []byte) error {
	if filepath.Ext(filePath) != KeyFileExt {
		return fmt.Errorf("file must have %s extension", KeyFileExt)
	}
	if len(password) == 0 {
		return errors.New("password cannot be empty")
	}

	// Refuse to overwrite a non-empty file
	if fileInfo, err := os.Stat(filePath); err == nil && fileInfo.Size() > 0 {
		return ErrFileNotEmpty
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	aesGCM, err := newGCM(password, salt)
	if err != nil {
		return err
	}

	plaintext, err := json.Marshal(walletData)
	if err != nil {
		return fmt.Errorf("failed to marshal wallet data: %w", err)
	}
	defer clear(plaintext) // wipe plaintext bytes from memory

	ciphertext := aesGCM.Seal(nil, nonce, plaintext, nil)

	keyFile := model.KeyFile{
		Network:    network,
		Address:    address,
		QR:         qrCode,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
	}

	fileData, err := json.MarshalIndent(keyFile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal key file: %w", err)
	}

	// Add UTF-8 BOM for proper display in Windows
	fileDataWithBOM := append(append([]byte{}, utf8BOM...), fileData...)

	if err := os.WriteFile(filePath, fileDataWithBOM, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// newGCM derives the file key from password and salt.
func newGCM(password, salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key(password, salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
