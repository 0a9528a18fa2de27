package dto

import (
	"math/big"

	servicedto "github.com/fleshka4/v4-swap-quoter/internal/service/dto"
)

// PoolKey is the JSON form of the quoted pool key.
type PoolKey struct {
	ID          string `json:"id"`
	Currency0   string `json:"currency0"`
	Currency1   string `json:"currency1"`
	Fee         uint32 `json:"fee"`
	TickSpacing int32  `json:"tick_spacing"`
	Hooks       string `json:"hooks"`
}

// QuoteResponse is the body of a successful /quote request.
type QuoteResponse struct {
	AmountIn           string  `json:"amount_in"`
	AmountInBaseUnits  string  `json:"amount_in_base_units"`
	AmountOutBaseUnits string  `json:"amount_out_base_units"`
	Quote              string  `json:"quote"`
	MinimumReceived    string  `json:"minimum_received"`
	GasEstimate        string  `json:"gas_estimate"`
	ZeroForOne         bool    `json:"zero_for_one"`
	PoolKey            PoolKey `json:"pool_key"`
}

// NewQuoteResponse converts a service quote to its JSON form.
func NewQuoteResponse(q *servicedto.Quote) QuoteResponse {
	return QuoteResponse{
		AmountIn:           q.AmountIn,
		AmountInBaseUnits:  bigString(q.AmountInBase),
		AmountOutBaseUnits: bigString(q.AmountOutBase),
		Quote:              q.Display,
		MinimumReceived:    q.MinimumReceived,
		GasEstimate:        bigString(q.GasEstimate),
		ZeroForOne:         q.ZeroForOne,
		PoolKey: PoolKey{
			ID:          q.PoolKey.ID().Hex(),
			Currency0:   q.PoolKey.Currency0.Hex(),
			Currency1:   q.PoolKey.Currency1.Hex(),
			Fee:         q.PoolKey.Fee,
			TickSpacing: q.PoolKey.TickSpacing,
			Hooks:       q.PoolKey.Hooks.Hex(),
		},
	}
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
