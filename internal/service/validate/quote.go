package validate

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/fleshka4/v4-swap-quoter/internal/apperrors"
	"github.com/fleshka4/v4-swap-quoter/internal/infra/uniswapv4"
	"github.com/fleshka4/v4-swap-quoter/internal/service/dto"
	"github.com/fleshka4/v4-swap-quoter/internal/units"
)

// QuoteRequestValidate validates business logic request and returns the
// amount scaled to base units of a token with the given decimals.
func QuoteRequestValidate(req dto.QuoteRequest, decimals uint8) (*big.Int, error) {
	if strings.TrimSpace(req.Amount) == "" {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "amount cannot be empty")
	}

	amount, err := units.ParseUnits(req.Amount, decimals)
	if err != nil {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, err.Error())
	}

	if amount.Sign() <= 0 {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "amount must be positive")
	}

	if amount.Cmp(uniswapv4.MaxExactAmount) > 0 {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "amount is too large")
	}

	return amount, nil
}

// IsQuotable reports whether amount would pass QuoteRequestValidate. The swap
// form uses it to enable the quote action.
func IsQuotable(amount string, decimals uint8) bool {
	_, err := QuoteRequestValidate(dto.QuoteRequest{Amount: amount}, decimals)
	return err == nil
}
