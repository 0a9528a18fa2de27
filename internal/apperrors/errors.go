package apperrors

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when the request parameters are invalid.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientLiquidity is returned when the quoter reports that the pool
	// cannot fill the requested trade.
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")

	// ErrQuoteFailed is returned for any other failure of the quoter call,
	// including RPC and ABI errors.
	ErrQuoteFailed = errors.New("quote failed")

	// ErrSwapUnsupported is returned by the swap action, which only quotes.
	ErrSwapUnsupported = errors.New("swap execution is not supported")
)

// QuoteError ties a quote failure kind (ErrInsufficientLiquidity or
// ErrQuoteFailed) to the error that caused it. Its message is the cause's.
type QuoteError struct {
	Kind  error
	Cause error
}

// NewQuoteError wraps cause with the given failure kind.
func NewQuoteError(kind, cause error) *QuoteError {
	return &QuoteError{Kind: kind, Cause: cause}
}

func (e *QuoteError) Error() string {
	if e.Cause == nil {
		return e.Kind.Error()
	}
	return e.Cause.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *QuoteError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}
