package uniswapv4

import (
	"bytes"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"

	"github.com/fleshka4/v4-swap-quoter/internal/apperrors"
)

// NotEnoughLiquidityMarker is the revert name the quoter uses when the pool
// cannot fill the trade.
const NotEnoughLiquidityMarker = "NotEnoughLiquidity"

// classify maps a failed quoter call to ErrInsufficientLiquidity or ErrQuoteFailed.
// The error selector may be nested inside UnexpectedRevertBytes, so the
// revert data is searched rather than prefix-matched.
func (c *ethClientImpl) classify(err error) error {
	if strings.Contains(err.Error(), NotEnoughLiquidityMarker) {
		return apperrors.ErrInsufficientLiquidity
	}

	abiErr, ok := c.quoterABI.Errors[NotEnoughLiquidityMarker]
	if !ok {
		return apperrors.ErrQuoteFailed
	}

	data := revertData(err)
	if len(data) >= len(abiErr.ID[:4]) && bytes.Contains(data, abiErr.ID[:4]) {
		return apperrors.ErrInsufficientLiquidity
	}
	return apperrors.ErrQuoteFailed
}

func revertData(err error) []byte {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return nil
	}

	switch v := dataErr.ErrorData().(type) {
	case string:
		b, decErr := hexutil.Decode(v)
		if decErr != nil {
			return nil
		}
		return b
	case []byte:
		return v
	default:
		return nil
	}
}
