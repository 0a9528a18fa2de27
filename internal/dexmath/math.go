package dexmath

import (
	"math/big"
	"sync"

	"github.com/fleshka4/v4-swap-quoter/internal/units"
)

// DisplayDecimals is the number of fraction digits a quote is shown with.
const DisplayDecimals = 2

// NoQuote is shown in place of amounts derived from a missing quote.
const NoQuote = "--"

var (
	bpsDen  = big.NewInt(10_000)
	halfBps = big.NewInt(5_000)

	defaultMath = newMathService()
)

type mathTmp struct {
	a *big.Int
	b *big.Int
}

type mathService struct {
	pool *sync.Pool
}

func newMathService() *mathService {
	return &mathService{
		pool: &sync.Pool{
			New: func() any {
				return &mathTmp{
					a: new(big.Int),
					b: new(big.Int),
				}
			},
		},
	}
}

func (m *mathService) minAmountOutInto(out, amount *big.Int, slippageBps uint32) bool {
	if out == nil {
		return false
	}
	if amount == nil || amount.Sign() < 0 || int64(slippageBps) >= bpsDen.Int64() {
		out.SetInt64(0)
		return false
	}

	t := m.pool.Get().(*mathTmp)
	defer m.pool.Put(t)

	// keep := 10000 - slippage.
	t.a.SetInt64(bpsDen.Int64() - int64(slippageBps))

	// num := amount * keep + 5000, so the division rounds half-up.
	t.b.Mul(amount, t.a)
	t.b.Add(t.b, halfBps)

	out.Quo(t.b, bpsDen)
	return true
}

// MinAmountOutInto writes amount * (1 - slippageBps/10000) into out, rounded
// half-up to a whole base unit. It returns false for a negative amount or a
// slippage of 100% or more.
func MinAmountOutInto(out, amount *big.Int, slippageBps uint32) bool {
	return defaultMath.minAmountOutInto(out, amount, slippageBps)
}

// MinAmountOut is the allocating form of MinAmountOutInto.
func MinAmountOut(amount *big.Int, slippageBps uint32) (*big.Int, bool) {
	out := new(big.Int)
	ok := defaultMath.minAmountOutInto(out, amount, slippageBps)
	return out, ok
}

// MinimumReceived derives the minimum-received display string from a
// displayed quote such as "2500.00". It returns NoQuote when quote is empty
// or unreadable.
func MinimumReceived(quote string, slippageBps uint32) string {
	if quote == "" {
		return NoQuote
	}
	hundredths, err := units.ParseUnits(quote, DisplayDecimals)
	if err != nil {
		return NoQuote
	}
	minOut, ok := MinAmountOut(hundredths, slippageBps)
	if !ok {
		return NoQuote
	}
	return units.FormatFixed(minOut, DisplayDecimals, DisplayDecimals)
}

// DisplayQuote renders a base-unit output amount of a token with the given
// decimals using the fixed two-digit display convention, truncating.
func DisplayQuote(amountOut *big.Int, decimals uint8) string {
	return units.FormatFixed(amountOut, decimals, DisplayDecimals)
}
