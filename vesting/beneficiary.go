package vesting

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlexZinkM/vesting-panel/internal/common"
	"github.com/AlexZinkM/vesting-panel/internal/model"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var errMalformedAddress = errors.New("malformed beneficiary address")

// AddBeneficiary converts the form input and submits addBeneficiary,
// reporting success only after the transaction is mined.
func (p *Panel) AddBeneficiary(ctx context.Context, in model.BeneficiaryInput) model.ActionResult {
	return p.run(ctx, model.ActionAddBeneficiary, func(ctx context.Context) (model.ActionResult, error) {
		const op = "add beneficiary"
		p.SetInput(in)

		w, err := p.writer()
		if err != nil {
			return model.ActionResult{}, actionErr(model.KindPrecondition, op, err)
		}

		if !in.Role.Valid() {
			return model.ActionResult{}, actionErr(model.KindConversion, op, fmt.Errorf("role %d out of range", uint8(in.Role)))
		}

		who, err := parseAddress(in.Address)
		if err != nil {
			return model.ActionResult{}, actionErr(model.KindCallFailed, op, err)
		}

		allocation, err := common.ToTokenUnits(in.Amount)
		if err != nil {
			return model.ActionResult{}, actionErr(model.KindConversion, op, fmt.Errorf("invalid amount %q: %w", in.Amount, err))
		}

		ctx, cancel := context.WithTimeout(ctx, p.opts.ConfirmTimeout)
		defer cancel()

		receipt, err := w.AddBeneficiary(ctx, who, uint8(in.Role), allocation)
		res := model.ActionResult{TxHash: txHash(receipt)}
		if err != nil {
			return res, actionErr(model.KindCallFailed, op, err)
		}

		res.Message = fmt.Sprintf("Beneficiary %s added as %s with %s tokens", who.Hex(), in.Role, common.FromTokenUnits(allocation))
		return res, nil
	})
}

// GetBeneficiaryDetails reads the allocation of address through the read-only
// handle. A connected wallet is not required.
func (p *Panel) GetBeneficiaryDetails(ctx context.Context, address string) model.ActionResult {
	return p.run(ctx, model.ActionGetDetails, func(ctx context.Context) (model.ActionResult, error) {
		const op = "get beneficiary details"

		if p.reader == nil {
			return model.ActionResult{}, actionErr(model.KindPrecondition, op, errors.New("no contract reader configured"))
		}

		who, err := parseAddress(address)
		if err != nil {
			return model.ActionResult{}, actionErr(model.KindCallFailed, op, err)
		}

		ctx, cancel := context.WithTimeout(ctx, p.opts.CallTimeout)
		defer cancel()

		raw, err := p.reader.GetBeneficiaryDetails(ctx, who)
		if err != nil {
			return model.ActionResult{}, actionErr(model.KindCallFailed, op, err)
		}

		role := model.Role(raw.Role)
		return model.ActionResult{
			Message: "Beneficiary details fetched",
			Details: &model.BeneficiaryDetails{
				Address:    who.Hex(),
				Allocation: common.FromTokenUnits(raw.Allocation),
				Claimed:    common.FromTokenUnits(raw.Claimed),
				Role:       role,
				RoleName:   role.String(),
			},
		}, nil
	})
}

func parseAddress(s string) (ethcommon.Address, error) {
	s = strings.TrimSpace(s)
	if !ethcommon.IsHexAddress(s) {
		return ethcommon.Address{}, fmt.Errorf("%w: %q", errMalformedAddress, s)
	}
	return ethcommon.HexToAddress(s), nil
}

func txHash(receipt *types.Receipt) string {
	if receipt == nil {
		return ""
	}
	return receipt.TxHash.Hex()
}
