package swapui

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fleshka4/v4-swap-quoter/internal/apperrors"
	"github.com/fleshka4/v4-swap-quoter/internal/config"
	"github.com/fleshka4/v4-swap-quoter/internal/dexmath"
	"github.com/fleshka4/v4-swap-quoter/internal/service"
	"github.com/fleshka4/v4-swap-quoter/internal/service/dto"
	"github.com/fleshka4/v4-swap-quoter/internal/service/validate"
)

//go:generate mockgen -source=form.go -destination=mock/notifier.go -package=mock

// Messages shown to the user when a quote fails.
const (
	MsgInsufficientLiquidity = "Pool doesn't have enough liquidity for this trade"
	msgQuoteFailedPrefix     = "Failed to get quote: "
	msgUnknownError          = "Unknown error"
)

// ErrBusy is returned when a quote is requested while another one is in flight.
var ErrBusy = errors.New("quote request already in flight")

// Notifier shows a message to the user and returns once it is dismissed.
type Notifier interface {
	Notify(msg string)
}

// State is the form state rendered by a front end.
type State struct {
	Amount         string
	Quote          string
	IsLoadingQuote bool
}

// Option configures a Form.
type Option func(*Form)

// WithLogger sets the logger used for failure traces.
func WithLogger(l *zap.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithObserver registers fn to be called with a snapshot after every state change.
func WithObserver(fn func(State)) Option {
	return func(f *Form) {
		f.observer = fn
	}
}

// Form is a swap form for one pay/receive pair. It is safe for concurrent
// use and lets at most one quote request run at a time.
type Form struct {
	svc      service.Service
	notifier Notifier
	observer func(State)
	logger   *zap.Logger

	payDecimals uint8
	slippageBps uint32

	mu    sync.Mutex
	state State
}

// NewForm creates an empty form quoting through svc.
func NewForm(svc service.Service, cfg config.Config, notifier Notifier, opts ...Option) *Form {
	f := &Form{
		svc:         svc,
		notifier:    notifier,
		logger:      zap.NewNop(),
		payDecimals: cfg.PayToken.Decimals,
		slippageBps: cfg.SlippageBps,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetAmount replaces the pay amount. The current quote is kept.
func (f *Form) SetAmount(amount string) {
	f.mu.Lock()
	f.state.Amount = amount
	s := f.state
	f.mu.Unlock()

	f.notify(s)
}

// Snapshot returns a copy of the current state.
func (f *Form) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// CanRequestQuote reports whether the amount is quotable and no request is running.
func (f *Form) CanRequestQuote() bool {
	s := f.Snapshot()
	return !s.IsLoadingQuote && validate.IsQuotable(s.Amount, f.payDecimals)
}

// CanSwap reports whether a quote is present.
func (f *Form) CanSwap() bool {
	return f.Snapshot().Quote != ""
}

// Swap always fails: submitting transactions is not supported.
func (f *Form) Swap(context.Context) error {
	return apperrors.ErrSwapUnsupported
}

// MinimumReceived returns the quote less slippage, or "--" without a quote.
func (f *Form) MinimumReceived() string {
	return dexmath.MinimumReceived(f.Snapshot().Quote, f.slippageBps)
}

// RequestQuote fetches a quote for the current amount and stores its display
// string.
//
// An invalid amount is a no-op. A quoter failure is shown through the
// Notifier, leaves the previous quote in place and is returned.
func (f *Form) RequestQuote(ctx context.Context) (string, error) {
	f.mu.Lock()
	if f.state.IsLoadingQuote {
		f.mu.Unlock()
		return "", ErrBusy
	}
	amount := f.state.Amount
	if !validate.IsQuotable(amount, f.payDecimals) {
		quote := f.state.Quote
		f.mu.Unlock()
		return quote, nil
	}
	f.state.IsLoadingQuote = true
	s := f.state
	f.mu.Unlock()

	f.notify(s)

	q, err := f.svc.Quote(ctx, dto.QuoteRequest{Amount: amount})

	f.mu.Lock()
	f.state.IsLoadingQuote = false
	if err == nil {
		f.state.Quote = q.Display
	}
	s = f.state
	f.mu.Unlock()

	f.notify(s)

	if errors.Is(err, apperrors.ErrInvalidArgument) {
		return s.Quote, nil
	}
	if err != nil {
		f.logger.Debug("error getting quote", zap.String("amount", amount), zap.Error(err))
		if f.notifier != nil {
			f.notifier.Notify(Message(err))
		}
		return s.Quote, err
	}
	return s.Quote, nil
}

func (f *Form) notify(s State) {
	if f.observer != nil {
		f.observer(s)
	}
}

// Message turns a quote error into the text shown to the user.
func Message(err error) string {
	if errors.Is(err, apperrors.ErrInsufficientLiquidity) {
		return MsgInsufficientLiquidity
	}
	msg := err.Error()
	if msg == "" {
		msg = msgUnknownError
	}
	return msgQuoteFailedPrefix + msg
}
