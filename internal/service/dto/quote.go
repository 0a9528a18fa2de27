package dto

import (
	"math/big"

	"github.com/fleshka4/v4-swap-quoter/internal/infra/uniswapv4"
)

// QuoteRequest represents a request to quote selling Amount of the pay token.
type QuoteRequest struct {
	// Amount is a decimal string in pay-token units, e.g. "10" or "0.5".
	Amount string
}

// Quote is the outcome of a successful quoter call.
type Quote struct {
	AmountIn        string
	AmountInBase    *big.Int
	AmountOutBase   *big.Int
	GasEstimate     *big.Int
	Display         string
	MinimumReceived string
	ZeroForOne      bool
	PoolKey         uniswapv4.PoolKey
}
