package vesting

import (
	"context"
	"errors"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/AlexZinkM/vesting-panel/internal/client"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passwordOf(s string) func() ([]byte, error) {
	return func() ([]byte, error) { return []byte(s), nil }
}

func testVestingClient(t *testing.T) *client.VestingClient {
	t.Helper()
	vc, err := client.NewVestingClient(ethcommon.HexToAddress("0x51642fc9c056a12ea7fc2ea25ecadceaebcb7424"), nil)
	require.NoError(t, err)
	return vc
}

func TestKeyfileProviderConnects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.vkey")
	address, err := GenerateWallet(path, []byte("dev"))
	require.NoError(t, err)

	chainID := big.NewInt(11155111)
	provider := NewKeyfileProvider(path, passwordOf("dev"), &fakeNode{chainID: big.NewInt(11155111)}, chainID, testVestingClient(t))

	sess, err := provider.RequestAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, address, sess.Address.Hex())
	assert.Equal(t, int64(11155111), sess.ChainID.Int64())
	assert.NotNil(t, sess.Writer)
}

func TestKeyfileProviderNotDetected(t *testing.T) {
	vc := testVestingClient(t)
	node := &fakeNode{chainID: big.NewInt(1)}

	_, err := NewKeyfileProvider("", passwordOf("dev"), node, big.NewInt(1), vc).RequestAccount(context.Background())
	assert.ErrorIs(t, err, ErrNotDetected)

	missing := filepath.Join(t.TempDir(), "missing.vkey")
	_, err = NewKeyfileProvider(missing, passwordOf("dev"), node, big.NewInt(1), vc).RequestAccount(context.Background())
	assert.ErrorIs(t, err, ErrNotDetected)
}

func TestKeyfileProviderRejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.vkey")
	_, err := GenerateWallet(path, []byte("dev"))
	require.NoError(t, err)
	vc := testVestingClient(t)
	one := big.NewInt(1)

	t.Run("wrong password", func(t *testing.T) {
		_, err := NewKeyfileProvider(path, passwordOf("nope"), &fakeNode{chainID: one}, one, vc).RequestAccount(context.Background())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotDetected)
		assert.ErrorContains(t, err, "invalid password")
	})

	t.Run("locked", func(t *testing.T) {
		locked := func() ([]byte, error) { return nil, errors.New("password not set") }
		_, err := NewKeyfileProvider(path, locked, &fakeNode{chainID: one}, one, vc).RequestAccount(context.Background())
		assert.ErrorContains(t, err, "wallet locked")
	})

	t.Run("wrong network", func(t *testing.T) {
		_, err := NewKeyfileProvider(path, passwordOf("dev"), &fakeNode{chainID: big.NewInt(5)}, one, vc).RequestAccount(context.Background())
		assert.ErrorIs(t, err, ErrWrongNetwork)
	})

	t.Run("node down", func(t *testing.T) {
		_, err := NewKeyfileProvider(path, passwordOf("dev"), &fakeNode{err: errBoom}, one, vc).RequestAccount(context.Background())
		assert.ErrorIs(t, err, errBoom)
	})
}
