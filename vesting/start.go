package vesting

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/vesting-panel/internal/model"
)

// StartVesting submits startVesting and then reads back the vesting status.
// Once the transaction is mined the action succeeds; a failed status read is
// reported as a warning and the status keeps Started=true with no timestamp.
func (p *Panel) StartVesting(ctx context.Context) model.ActionResult {
	return p.run(ctx, model.ActionStartVesting, func(ctx context.Context) (model.ActionResult, error) {
		const op = "start vesting"

		w, err := p.writer()
		if err != nil {
			return model.ActionResult{}, actionErr(model.KindPrecondition, op, err)
		}

		confirmCtx, cancel := context.WithTimeout(ctx, p.opts.ConfirmTimeout)
		receipt, err := w.StartVesting(confirmCtx)
		cancel()

		res := model.ActionResult{TxHash: txHash(receipt)}
		if err != nil {
			return res, actionErr(model.KindCallFailed, op, err)
		}
		res.Message = "Vesting started"

		status, err := p.readStatus(ctx)
		if err != nil {
			res.Warning = fmt.Sprintf("transaction confirmed but vesting status could not be read: %v", err)
			res.Status = &model.VestingStatus{Started: true}
			return res, nil
		}
		res.Status = status
		return res, nil
	})
}

// RefreshStatus reads startTimestamp and vestingStarted and computes the
// time elapsed since the start.
func (p *Panel) RefreshStatus(ctx context.Context) model.ActionResult {
	return p.run(ctx, model.ActionRefreshStatus, func(ctx context.Context) (model.ActionResult, error) {
		status, err := p.readStatus(ctx)
		if err != nil {
			return model.ActionResult{}, err
		}
		return model.ActionResult{Message: "Vesting status fetched", Status: status}, nil
	})
}

func (p *Panel) readStatus(ctx context.Context) (*model.VestingStatus, error) {
	const op = "read vesting status"
	if p.reader == nil {
		return nil, actionErr(model.KindPrecondition, op, fmt.Errorf("no contract reader configured"))
	}

	ctx, cancel := context.WithTimeout(ctx, p.opts.CallTimeout)
	defer cancel()

	ts, err := p.reader.StartTimestamp(ctx)
	if err != nil {
		return nil, actionErr(model.KindCallFailed, op, err)
	}
	started, err := p.reader.VestingStarted(ctx)
	if err != nil {
		return nil, actionErr(model.KindCallFailed, op, err)
	}

	status := &model.VestingStatus{Started: started}
	if ts != nil && ts.IsInt64() {
		status.StartTimestamp = ts.Int64()
	}
	if started && status.StartTimestamp > 0 {
		if elapsed := p.opts.Now().Unix() - status.StartTimestamp; elapsed > 0 {
			status.ElapsedSeconds = elapsed
		}
	}
	return status, nil
}
