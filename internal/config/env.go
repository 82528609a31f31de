package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: Password is prompted at runtime and stored in memory - use GetWalletPasswordBytes()
type Config struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	RPCURL          string        `envconfig:"VESTING_RPC_URL" required:"true"`
	ChainID         int64         `envconfig:"VESTING_CHAIN_ID" required:"true"`
	ContractAddress string        `envconfig:"VESTING_CONTRACT_ADDRESS" required:"true"`
	WalletFilePath  string        `envconfig:"WALLET_FILE_PATH"`
	CallTimeout     time.Duration `envconfig:"CALL_TIMEOUT" default:"30s"`
	ConfirmTimeout  time.Duration `envconfig:"CONFIRM_TIMEOUT" default:"5m"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"console"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
// A .env file in the working directory is applied first if present;
// variables already set in the environment win.
func Init() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	c, err := Load()
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// Load reads and validates configuration without touching the global instance.
func Load() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks values envconfig cannot express.
func (c *Config) Validate() error {
	if c.ChainID <= 0 {
		return fmt.Errorf("VESTING_CHAIN_ID must be positive, got %d", c.ChainID)
	}
	if !common.IsHexAddress(c.ContractAddress) {
		return fmt.Errorf("VESTING_CONTRACT_ADDRESS is not a hex address: %q", c.ContractAddress)
	}
	if c.CallTimeout <= 0 || c.ConfirmTimeout <= 0 {
		return errors.New("CALL_TIMEOUT and CONFIRM_TIMEOUT must be positive")
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetWalletFilePath returns path to the .vkey file from configuration
func GetWalletFilePath() string {
	return Get().WalletFilePath
}

// GetContractAddress returns the configured vesting contract address
func GetContractAddress() common.Address {
	return common.HexToAddress(Get().ContractAddress)
}

var passwordBytes []byte

// PromptForPassword prompts the user for the wallet password in the terminal.
// The password is read without echoing (hidden input) and stored in memory.
// Call this at startup before the server begins handling requests.
func PromptForPassword() error {
	raw, err := ReadPassword("Enter wallet password: ")
	if err != nil {
		return err
	}
	SetPassword(raw)
	clear(raw)
	return nil
}

// ReadPassword reads one hidden line from the terminal.
func ReadPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}
	return raw, nil
}

// SetPassword stores a copy of password in memory.
func SetPassword(password []byte) {
	clear(passwordBytes)
	passwordBytes = make([]byte, len(password))
	copy(passwordBytes, password)
}

// GetWalletPasswordBytes returns the password stored in memory (from PromptForPassword).
// Returns an error if the password was not set.
// Caller must zero the returned slice after use for security.
func GetWalletPasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}
