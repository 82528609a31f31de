package vesting

import (
	"context"

	"github.com/AlexZinkM/vesting-panel/internal/model"
)

// ClaimTokens submits claimTokens for the connected account.
func (p *Panel) ClaimTokens(ctx context.Context) model.ActionResult {
	return p.run(ctx, model.ActionClaimTokens, func(ctx context.Context) (model.ActionResult, error) {
		const op = "claim tokens"

		w, err := p.writer()
		if err != nil {
			return model.ActionResult{}, actionErr(model.KindPrecondition, op, err)
		}

		ctx, cancel := context.WithTimeout(ctx, p.opts.ConfirmTimeout)
		defer cancel()

		receipt, err := w.ClaimTokens(ctx)
		res := model.ActionResult{TxHash: txHash(receipt)}
		if err != nil {
			return res, actionErr(model.KindCallFailed, op, err)
		}

		res.Message = "Tokens claimed"
		return res, nil
	})
}
