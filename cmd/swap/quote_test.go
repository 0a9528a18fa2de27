package main

import (
	"bytes"
	"context"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fleshka4/v4-swap-quoter/internal/apperrors"
	"github.com/fleshka4/v4-swap-quoter/internal/config"
	"github.com/fleshka4/v4-swap-quoter/internal/service/dto"
	"github.com/fleshka4/v4-swap-quoter/internal/service/mock"
	httpdto "github.com/fleshka4/v4-swap-quoter/internal/transport/http/dto"
)

func testCmd() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetContext(context.Background())
	return cmd, &out
}

func TestQuoteOnce(t *testing.T) {
	color.NoColor = true

	cfg := config.Config{
		PayToken:     config.Token{Symbol: "CELO", Decimals: 18},
		ReceiveToken: config.Token{Symbol: "BTK", Decimals: 2},
	}
	quote := &dto.Quote{
		AmountIn:        "10",
		AmountOutBase:   big.NewInt(250000),
		Display:         "2500.00",
		MinimumReceived: "2487.50",
	}

	t.Run("text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Quote(gomock.Any(), dto.QuoteRequest{Amount: "10"}).Return(quote, nil)

		cmd, out := testCmd()
		require.NoError(t, quoteOnce(cmd, svc, cfg, "10", false))
		require.Contains(t, out.String(), "You receive (estimated):  2500.00 BTK")
		require.Contains(t, out.String(), "Minimum Received:         2487.50 BTK")
	})

	t.Run("json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(quote, nil)

		cmd, out := testCmd()
		require.NoError(t, quoteOnce(cmd, svc, cfg, "10", true))

		var got httpdto.QuoteResponse
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		require.Equal(t, "2500.00", got.Quote)
		require.Equal(t, "2487.50", got.MinimumReceived)
		require.Equal(t, "250000", got.AmountOutBaseUnits)
	})

	t.Run("liquidity error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewQuoteError(apperrors.ErrInsufficientLiquidity, errors.New("NotEnoughLiquidity")))

		cmd, _ := testCmd()
		err := quoteOnce(cmd, svc, cfg, "10", false)
		require.EqualError(t, err, "Pool doesn't have enough liquidity for this trade")
	})
}
