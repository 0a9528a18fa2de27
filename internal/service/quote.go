package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fleshka4/v4-swap-quoter/internal/apperrors"
	"github.com/fleshka4/v4-swap-quoter/internal/dexmath"
	"github.com/fleshka4/v4-swap-quoter/internal/infra/uniswapv4"
	"github.com/fleshka4/v4-swap-quoter/internal/metrics"
	"github.com/fleshka4/v4-swap-quoter/internal/service/dto"
	"github.com/fleshka4/v4-swap-quoter/internal/service/validate"
	"github.com/fleshka4/v4-swap-quoter/internal/units"
)

// Quote asks the v4 Quoter how much of the receive token req.Amount of the
// pay token buys.
//
// An invalid amount returns ErrInvalidArgument before any RPC is made. Quoter
// failures come back as *apperrors.QuoteError carrying either
// ErrInsufficientLiquidity or ErrQuoteFailed.
func (s *QuoterService) Quote(ctx context.Context, req dto.QuoteRequest) (*dto.Quote, error) {
	amountIn, err := validate.QuoteRequestValidate(req, s.cfg.PayToken.Decimals)
	if err != nil {
		metrics.ObserveQuote(err, 0)
		return nil, err
	}

	key, zeroForOne := uniswapv4.NewPoolKey(
		s.cfg.PayToken.Addr(),
		s.cfg.ReceiveToken.Addr(),
		s.cfg.Pool.FeeTier,
		s.cfg.Pool.TickSpacing,
		common.Address{},
	)

	start := time.Now()
	res, err := s.uniswapClient.QuoteExactInputSingle(ctx, s.cfg.Quoter(), uniswapv4.QuoteExactSingleParams{
		PoolKey:     key,
		ZeroForOne:  zeroForOne,
		ExactAmount: amountIn,
		HookData:    []byte{},
	})
	if err == nil && (res == nil || res.AmountOut == nil) {
		err = errors.New("quoter returned no amount")
	}
	if err != nil && !isQuoteFailure(err) {
		err = apperrors.NewQuoteError(apperrors.ErrQuoteFailed, err)
	}
	metrics.ObserveQuote(err, time.Since(start))

	if err != nil {
		s.logger.Debug("error getting quote",
			zap.String("amount", req.Amount),
			zap.Stringer("pool_id", key.ID()),
			zap.Bool("zero_for_one", zeroForOne),
			zap.Error(err),
		)
		return nil, err
	}

	quote := &dto.Quote{
		AmountIn:      units.FormatUnits(amountIn, s.cfg.PayToken.Decimals),
		AmountInBase:  amountIn,
		AmountOutBase: res.AmountOut,
		GasEstimate:   res.GasEstimate,
		Display:       dexmath.DisplayQuote(res.AmountOut, s.cfg.ReceiveToken.Decimals),
		ZeroForOne:    zeroForOne,
		PoolKey:       key,
	}
	quote.MinimumReceived = dexmath.MinimumReceived(quote.Display, s.cfg.SlippageBps)

	s.logger.Debug("quote received",
		zap.String("amount_in", quote.AmountIn),
		zap.Stringer("amount_out", res.AmountOut),
		zap.String("display", quote.Display),
	)

	return quote, nil
}

func isQuoteFailure(err error) bool {
	return errors.Is(err, apperrors.ErrInsufficientLiquidity) ||
		errors.Is(err, apperrors.ErrQuoteFailed) ||
		errors.Is(err, apperrors.ErrInvalidArgument)
}
