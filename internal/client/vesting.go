package client

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const (
	methodAddBeneficiary = "addBeneficiary"
	methodClaimTokens    = "claimTokens"
	methodStartVesting   = "startVesting"
	methodGetDetails     = "getBeneficiaryDetails"
	methodStartTimestamp = "startTimestamp"
	methodVestingStarted = "vestingStarted"
)

// ErrReverted is returned when a transaction was mined with a failed status.
var ErrReverted = errors.New("transaction reverted")

// ErrNotConfirmed is returned when a sent transaction was not mined before ctx ended.
// It may still be mined later.
var ErrNotConfirmed = errors.New("transaction sent but not confirmed")

// Backend is what the vesting client needs from a node connection.
// *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// BeneficiaryDetails is the raw getBeneficiaryDetails result.
type BeneficiaryDetails struct {
	Allocation *big.Int
	Claimed    *big.Int
	Role       uint8
}

// VestingClient is a client for the vesting contract. It serves read calls
// directly; writes go through a VestingTransactor bound to a signer.
type VestingClient struct {
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
	backend  Backend
}

// NewVestingClient binds the vesting ABI to the contract at address.
func NewVestingClient(address common.Address, backend Backend) (*VestingClient, error) {
	parsed, err := abi.JSON(strings.NewReader(vestingABI))
	if err != nil {
		return nil, fmt.Errorf("invalid vesting ABI: %w", err)
	}

	return &VestingClient{
		address:  address,
		abi:      parsed,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
		backend:  backend,
	}, nil
}

// Address returns the contract address.
func (c *VestingClient) Address() common.Address {
	return c.address
}

// GetBeneficiaryDetails calls getBeneficiaryDetails(who).
func (c *VestingClient) GetBeneficiaryDetails(ctx context.Context, who common.Address) (*BeneficiaryDetails, error) {
	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, methodGetDetails, who); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGetDetails, err)
	}
	if len(out) != 3 {
		return nil, fmt.Errorf("%s: expected 3 outputs, got %d", methodGetDetails, len(out))
	}

	allocation, ok1 := out[0].(*big.Int)
	claimed, ok2 := out[1].(*big.Int)
	role, ok3 := out[2].(uint8)
	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("%s: unexpected output types %T, %T, %T", methodGetDetails, out[0], out[1], out[2])
	}

	return &BeneficiaryDetails{
		Allocation: allocation,
		Claimed:    claimed,
		Role:       role,
	}, nil
}

// StartTimestamp calls startTimestamp().
func (c *VestingClient) StartTimestamp(ctx context.Context) (*big.Int, error) {
	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, methodStartTimestamp); err != nil {
		return nil, fmt.Errorf("%s: %w", methodStartTimestamp, err)
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("%s: expected 1 output, got %d", methodStartTimestamp, len(out))
	}
	ts, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected output type %T", methodStartTimestamp, out[0])
	}
	return ts, nil
}

// VestingStarted calls vestingStarted().
func (c *VestingClient) VestingStarted(ctx context.Context) (bool, error) {
	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, methodVestingStarted); err != nil {
		return false, fmt.Errorf("%s: %w", methodVestingStarted, err)
	}
	if len(out) != 1 {
		return false, fmt.Errorf("%s: expected 1 output, got %d", methodVestingStarted, len(out))
	}
	started, ok := out[0].(bool)
	if !ok {
		return false, fmt.Errorf("%s: unexpected output type %T", methodVestingStarted, out[0])
	}
	return started, nil
}

// Transactor returns a write handle that signs with opts.
func (c *VestingClient) Transactor(opts *bind.TransactOpts) *VestingTransactor {
	return &VestingTransactor{client: c, opts: opts}
}

// VestingTransactor submits state-changing calls and waits for their receipts.
type VestingTransactor struct {
	client *VestingClient
	opts   *bind.TransactOpts
}

// AddBeneficiary submits addBeneficiary(who, role, allocation).
func (t *VestingTransactor) AddBeneficiary(ctx context.Context, who common.Address, role uint8, allocation *big.Int) (*types.Receipt, error) {
	return t.transact(ctx, methodAddBeneficiary, who, role, allocation)
}

// ClaimTokens submits claimTokens().
func (t *VestingTransactor) ClaimTokens(ctx context.Context) (*types.Receipt, error) {
	return t.transact(ctx, methodClaimTokens)
}

// StartVesting submits startVesting().
func (t *VestingTransactor) StartVesting(ctx context.Context) (*types.Receipt, error) {
	return t.transact(ctx, methodStartVesting)
}

// transact sends the call and blocks until it is mined or ctx ends.
// A mined-but-reverted receipt is returned together with ErrReverted.
// If waiting fails the returned receipt carries only the tx hash.
func (t *VestingTransactor) transact(ctx context.Context, method string, params ...interface{}) (*types.Receipt, error) {
	opts := *t.opts
	opts.Context = ctx

	tx, err := t.client.contract.Transact(&opts, method, params...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to send transaction: %w", method, err)
	}

	receipt, err := bind.WaitMined(ctx, t.client.backend, tx)
	if err != nil {
		return &types.Receipt{TxHash: tx.Hash()}, fmt.Errorf("%s: tx %s: %w: %v", method, tx.Hash().Hex(), ErrNotConfirmed, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%s: tx %s: %w", method, tx.Hash().Hex(), ErrReverted)
	}
	return receipt, nil
}
