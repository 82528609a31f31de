package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testContract = "0x51642fc9c056a12ea7fc2ea25ecadceaebcb7424"

func setRequired(t *testing.T) {
	t.Setenv("VESTING_RPC_URL", "http://127.0.0.1:8545")
	t.Setenv("VESTING_CHAIN_ID", "11155111")
	t.Setenv("VESTING_CONTRACT_ADDRESS", testContract)
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, int64(11155111), c.ChainID)
	assert.Equal(t, 30*time.Second, c.CallTimeout)
	assert.Equal(t, 5*time.Minute, c.ConfirmTimeout)
	assert.Empty(t, c.WalletFilePath)
}

func TestLoadMissingContract(t *testing.T) {
	setRequired(t)
	t.Setenv("VESTING_CONTRACT_ADDRESS", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{
		ChainID:         1,
		ContractAddress: testContract,
		CallTimeout:     time.Second,
		ConfirmTimeout:  time.Second,
	}
	require.NoError(t, base.Validate())

	t.Run("bad address", func(t *testing.T) {
		c := base
		c.ContractAddress = "0xnothex"
		assert.ErrorContains(t, c.Validate(), "VESTING_CONTRACT_ADDRESS")
	})

	t.Run("zero chain id", func(t *testing.T) {
		c := base
		c.ChainID = 0
		assert.ErrorContains(t, c.Validate(), "VESTING_CHAIN_ID")
	})

	t.Run("zero timeout", func(t *testing.T) {
		c := base
		c.ConfirmTimeout = 0
		assert.Error(t, c.Validate())
	})
}

func TestPasswordCopy(t *testing.T) {
	t.Cleanup(func() { passwordBytes = nil })

	_, err := GetWalletPasswordBytes()
	assert.Error(t, err)

	SetPassword([]byte("dev"))
	got, err := GetWalletPasswordBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("dev"), got)

	clear(got)
	again, err := GetWalletPasswordBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("dev"), again)
}
