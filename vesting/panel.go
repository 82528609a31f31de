package vesting

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/AlexZinkM/vesting-panel/internal/client"
	"github.com/AlexZinkM/vesting-panel/internal/metrics"
	"github.com/AlexZinkM/vesting-panel/internal/model"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reader is the read-only handle on the vesting contract. It needs no signer.
type Reader interface {
	GetBeneficiaryDetails(ctx context.Context, who ethcommon.Address) (*client.BeneficiaryDetails, error)
	StartTimestamp(ctx context.Context) (*big.Int, error)
	VestingStarted(ctx context.Context) (bool, error)
}

// Writer is the signing handle. Each call returns once the transaction is mined.
type Writer interface {
	AddBeneficiary(ctx context.Context, who ethcommon.Address, role uint8, allocation *big.Int) (*types.Receipt, error)
	ClaimTokens(ctx context.Context) (*types.Receipt, error)
	StartVesting(ctx context.Context) (*types.Receipt, error)
}

// Session is the result of a successful wallet connection.
type Session struct {
	Address ethcommon.Address
	ChainID *big.Int
	Writer  Writer
}

// Provider grants access to a wallet account.
type Provider interface {
	RequestAccount(ctx context.Context) (*Session, error)
}

// Options tune the panel. Zero values get defaults.
type Options struct {
	CallTimeout    time.Duration
	ConfirmTimeout time.Duration
	Now            func() time.Time
}

// Panel runs the contract actions and owns the page state.
//
// Different actions may run concurrently and do not coordinate. A second
// call of an action that is still running fails with kind busy.
type Panel struct {
	provider Provider
	reader   Reader
	log      *zap.Logger
	opts     Options

	mu       sync.Mutex
	state    model.PanelState
	session  *Session
	inflight map[model.Action]bool
}

// NewPanel creates a panel. provider may be nil when no wallet is configured.
func NewPanel(provider Provider, reader Reader, log *zap.Logger, opts Options) *Panel {
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = 30 * time.Second
	}
	if opts.ConfirmTimeout <= 0 {
		opts.ConfirmTimeout = 5 * time.Minute
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Panel{
		provider: provider,
		reader:   reader,
		log:      log.Named("panel"),
		opts:     opts,
		inflight: make(map[model.Action]bool),
	}
}

// State returns a snapshot of the page state.
func (p *Panel) State() model.PanelState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// SetInput records the form fields without running an action.
func (p *Panel) SetInput(in model.BeneficiaryInput) {
	p.mu.Lock()
	p.state = p.state.WithInput(in)
	p.mu.Unlock()
}

func (p *Panel) writer() (Writer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session == nil || p.session.Writer == nil {
		return nil, ErrNotConnected
	}
	return p.session.Writer, nil
}

func (p *Panel) acquire(action model.Action) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.inflight[action] {
		return false
	}
	p.inflight[action] = true
	return true
}

func (p *Panel) release(action model.Action) {
	p.mu.Lock()
	delete(p.inflight, action)
	p.mu.Unlock()
}

// run wraps one action: in-flight guard, logging, metrics and the state update.
// fn may return a partially filled result together with an error; the
// partial fields (e.g. the hash of a reverted tx) are kept.
// A call rejected as busy leaves the state untouched.
func (p *Panel) run(ctx context.Context, action model.Action, fn func(ctx context.Context) (model.ActionResult, error)) model.ActionResult {
	id := uuid.NewString()
	log := p.log.With(zap.String("action", string(action)), zap.String("id", id))

	if !p.acquire(action) {
		err := actionErr(model.KindBusy, string(action), ErrInFlight)
		log.Warn("action rejected", zap.Error(err))
		metrics.ActionsTotal.WithLabelValues(string(action), string(model.KindBusy)).Inc()
		return model.ActionResult{
			ID:         id,
			Action:     action,
			Kind:       model.KindBusy,
			Message:    err.Error(),
			FinishedAt: p.opts.Now(),
		}
	}

	metrics.ActionsInFlight.WithLabelValues(string(action)).Inc()
	start := time.Now()
	log.Debug("action started")

	res, err := fn(ctx)

	metrics.ActionDuration.WithLabelValues(string(action)).Observe(time.Since(start).Seconds())
	metrics.ActionsInFlight.WithLabelValues(string(action)).Dec()
	p.release(action)

	res.ID = id
	res.Action = action
	res.FinishedAt = p.opts.Now()
	if err != nil {
		res.OK = false
		res.Kind = KindOf(err)
		res.Message = err.Error()
		log.Warn("action failed", zap.String("kind", string(res.Kind)), zap.String("tx", res.TxHash), zap.Error(err))
	} else {
		res.OK = true
		res.Kind = model.KindNone
		fields := []zap.Field{zap.String("tx", res.TxHash)}
		if res.Warning != "" {
			fields = append(fields, zap.String("warning", res.Warning))
		}
		log.Info(res.Message, fields...)
	}

	outcome := string(res.Kind)
	if res.OK {
		outcome = "ok"
	}
	metrics.ActionsTotal.WithLabelValues(string(action), outcome).Inc()

	p.mu.Lock()
	p.state = p.state.Apply(res)
	p.mu.Unlock()

	return res
}
