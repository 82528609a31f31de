package crypto

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AlexZinkM/vesting-panel/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// keep scrypt cheap in tests
	SetScryptN(1 << 10)
}

func TestEncryptDecryptWallet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.vkey")
	data := &model.WalletData{PrivateKey: []byte{1, 2, 3, 4}, CreatedAt: "2026-01-01T00:00:00Z"}

	require.NoError(t, EncryptWallet(path, "ethereum", "0xabc", "qr", data, []byte("dev")))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, utf8BOM, raw[:3])

	keyFile, got, err := DecryptWallet(path, []byte("dev"))
	require.NoError(t, err)
	assert.Equal(t, "ethereum", keyFile.Network)
	assert.Equal(t, "0xabc", keyFile.Address)
	assert.Equal(t, data.PrivateKey, got.PrivateKey)

	plain, err := ReadKeyFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", plain.Address)
}

func TestDecryptWrongPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.vkey")
	require.NoError(t, EncryptWallet(path, "ethereum", "0xabc", "", &model.WalletData{PrivateKey: []byte{9}}, []byte("dev")))

	_, _, err := DecryptWallet(path, []byte("nope"))
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestEncryptRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.vkey")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0600))

	err := EncryptWallet(path, "ethereum", "0xabc", "", &model.WalletData{}, []byte("dev"))
	assert.ErrorIs(t, err, os.ErrExist)
}

func TestEncryptRequiresExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	err := EncryptWallet(path, "ethereum", "0xabc", "", &model.WalletData{}, []byte("dev"))
	assert.ErrorContains(t, err, KeyFileExt)
}

func TestReadKeyFileMissingAndEmpty(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadKeyFile(filepath.Join(dir, "missing.vkey"))
	assert.ErrorIs(t, err, ErrNoKeyFile)

	empty := filepath.Join(dir, "empty.vkey")
	require.NoError(t, os.WriteFile(empty, nil, 0600))
	_, err = ReadKeyFile(empty)
	assert.ErrorIs(t, err, ErrEmptyKeyFile)
}
