package vesting

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/AlexZinkM/vesting-panel/internal/client"
	"github.com/AlexZinkM/vesting-panel/internal/crypto"
	"github.com/AlexZinkM/vesting-panel/internal/model"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// Connect requests the wallet account and keeps its signing handle.
// The request, including the node's chain id check, is bounded by CallTimeout.
// On failure the previous connection, if any, stays in place.
func (p *Panel) Connect(ctx context.Context) model.ActionResult {
	return p.run(ctx, model.ActionConnect, func(ctx context.Context) (model.ActionResult, error) {
		const op = "connect"
		if p.provider == nil {
			return model.ActionResult{}, actionErr(model.KindProviderAbsent, op, ErrNotDetected)
		}

		ctx, cancel := context.WithTimeout(ctx, p.opts.CallTimeout)
		defer cancel()

		sess, err := p.provider.RequestAccount(ctx)
		if err != nil {
			if errors.Is(err, ErrNotDetected) {
				return model.ActionResult{}, actionErr(model.KindProviderAbsent, op, err)
			}
			return model.ActionResult{}, actionErr(model.KindProviderRejected, op, err)
		}

		p.mu.Lock()
		p.session = sess
		p.mu.Unlock()

		conn := &model.Connection{
			Address:   sess.Address.Hex(),
			Connected: true,
		}
		if sess.ChainID != nil {
			conn.ChainID = sess.ChainID.Int64()
		}
		return model.ActionResult{
			Message:    "Wallet connected",
			Connection: conn,
		}, nil
	})
}

// ChainIDReader reports the chain id served by a node. *ethclient.Client satisfies it.
type ChainIDReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
}

// KeyfileProvider is a wallet backed by an encrypted .vkey file on disk.
type KeyfileProvider struct {
	filePath string
	password func() ([]byte, error)
	node     ChainIDReader
	chainID  *big.Int
	vesting  *client.VestingClient
}

// NewKeyfileProvider creates a provider. password is called on every connect;
// the returned slice is zeroed after use.
func NewKeyfileProvider(filePath string, password func() ([]byte, error), node ChainIDReader, chainID *big.Int, vesting *client.VestingClient) *KeyfileProvider {
	return &KeyfileProvider{
		filePath: filePath,
		password: password,
		node:     node,
		chainID:  chainID,
		vesting:  vesting,
	}
}

// RequestAccount unlocks the key file, checks the node's network and returns
// a signing session bound to the vesting contract.
func (p *KeyfileProvider) RequestAccount(ctx context.Context) (*Session, error) {
	if p.filePath == "" {
		return nil, fmt.Errorf("%w: WALLET_FILE_PATH not set", ErrNotDetected)
	}

	keyFile, err := crypto.ReadKeyFile(p.filePath)
	if err != nil {
		if errors.Is(err, crypto.ErrNoKeyFile) || errors.Is(err, crypto.ErrEmptyKeyFile) {
			return nil, fmt.Errorf("%w: %s: %v", ErrNotDetected, p.filePath, err)
		}
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	password, err := p.password()
	if err != nil {
		return nil, fmt.Errorf("wallet locked: %w", err)
	}
	defer clear(password) // Always clear password from memory

	_, walletData, err := crypto.DecryptWallet(p.filePath, password)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt wallet: %w", err)
	}
	defer clear(walletData.PrivateKey)

	key, err := ethcrypto.ToECDSA(walletData.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	address := ethcrypto.PubkeyToAddress(key.PublicKey)
	if keyFile.Address != "" && !strings.EqualFold(keyFile.Address, address.Hex()) {
		return nil, errors.New("private key does not match address")
	}

	nodeChainID, err := p.node.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reach node: %w", err)
	}
	if nodeChainID.Cmp(p.chainID) != 0 {
		return nil, fmt.Errorf("%w: node serves chain %s, expected %s", ErrWrongNetwork, nodeChainID, p.chainID)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, p.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	return &Session{
		Address: address,
		ChainID: new(big.Int).Set(p.chainID),
		Writer:  p.vesting.Transactor(opts),
	}, nil
}
