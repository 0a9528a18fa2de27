package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fleshka4/v4-swap-quoter/internal/apperrors"
	"github.com/fleshka4/v4-swap-quoter/internal/swapui"
	"github.com/fleshka4/v4-swap-quoter/internal/transport/http/dto"
	"github.com/fleshka4/v4-swap-quoter/internal/transport/http/validate"
)

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.QuoteRequestValidate(r)
	if err != nil {
		if code == 0 {
			code = http.StatusBadRequest
		}
		http.Error(w, err.Error(), code)
		return
	}

	ctx := r.Context()
	if s.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}

	out, err := s.quoter.Quote(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidArgument):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, apperrors.ErrInsufficientLiquidity):
			http.Error(w, swapui.MsgInsufficientLiquidity, http.StatusBadRequest)
		case errors.Is(err, apperrors.ErrQuoteFailed):
			http.Error(w, swapui.Message(err), http.StatusBadGateway)
		default:
			s.logger.Error("quote failed", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.NewQuoteResponse(out)); err != nil {
		s.logger.Warn("quote write error", zap.Error(err))
	}
}
