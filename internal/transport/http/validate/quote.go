package validate

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/fleshka4/v4-swap-quoter/internal/service/dto"
)

// QuoteRequestValidate validates /quote request and returns dto.
// The amount itself is checked by the service against the token decimals.
func QuoteRequestValidate(r *http.Request) (dto.QuoteRequest, int, error) {
	if r.Method != http.MethodGet {
		return dto.QuoteRequest{}, http.StatusMethodNotAllowed, errors.New("method not allowed")
	}

	amount := strings.TrimSpace(r.URL.Query().Get("amount"))
	if amount == "" {
		return dto.QuoteRequest{}, http.StatusBadRequest, errors.New("missing amount")
	}

	return dto.QuoteRequest{Amount: amount}, 0, nil
}
