package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fleshka4/v4-swap-quoter/internal/apperrors"
	"github.com/fleshka4/v4-swap-quoter/internal/config"
	"github.com/fleshka4/v4-swap-quoter/internal/service/dto"
	"github.com/fleshka4/v4-swap-quoter/internal/service/mock"
	"github.com/fleshka4/v4-swap-quoter/internal/swapui"
)

func init() {
	color.NoColor = true
}

func testConfig() config.Config {
	return config.Config{
		PayToken:     config.Token{Symbol: "CELO", Decimals: 18},
		ReceiveToken: config.Token{Symbol: "BTK", Decimals: 2},
		SlippageBps:  50,
	}
}

func TestConsole_Notify(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := NewConsole(strings.NewReader("\nnext\n"), &out)

	c.Notify("Pool doesn't have enough liquidity for this trade")
	require.Contains(t, out.String(), "! Pool doesn't have enough liquidity for this trade")
	require.Contains(t, out.String(), "Press Enter to continue...")

	line, ok := c.ReadLine("> ")
	require.True(t, ok)
	require.Equal(t, "next", line)

	_, ok = c.ReadLine("> ")
	require.False(t, ok)
}

func TestConsole_Run(t *testing.T) {
	t.Parallel()

	t.Run("quote then quit", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mock.NewMockService(ctrl)
		svc.EXPECT().
			Quote(gomock.Any(), dto.QuoteRequest{Amount: "10"}).
			Return(&dto.Quote{Display: "2500.00"}, nil)

		var out bytes.Buffer
		cfg := testConfig()
		console := NewConsole(strings.NewReader("10\nq\n"), &out)
		renderer := NewRenderer(&out, cfg)
		form := swapui.NewForm(svc, cfg, console, swapui.WithObserver(renderer.Observe))

		require.NoError(t, console.Run(context.Background(), form, renderer, "CELO"))
		require.Contains(t, out.String(), "You receive (estimated):  2500.00 BTK")
		require.Contains(t, out.String(), "Minimum Received:         2487.50 BTK")
	})

	t.Run("liquidity alert blocks until enter", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mock.NewMockService(ctrl)
		svc.EXPECT().
			Quote(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewQuoteError(apperrors.ErrInsufficientLiquidity, errors.New("NotEnoughLiquidity")))

		var out bytes.Buffer
		cfg := testConfig()
		// The blank line after the amount dismisses the alert; the next one quits.
		console := NewConsole(strings.NewReader("99999\n\n\n"), &out)
		renderer := NewRenderer(&out, cfg)
		form := swapui.NewForm(svc, cfg, console)

		require.NoError(t, console.Run(context.Background(), form, renderer, "CELO"))
		require.Contains(t, out.String(), "Pool doesn't have enough liquidity for this trade")
		require.Equal(t, "", form.Snapshot().Quote)
	})

	t.Run("invalid amount makes no call", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mock.NewMockService(ctrl)

		var out bytes.Buffer
		cfg := testConfig()
		console := NewConsole(strings.NewReader("-5\n0\n"), &out)
		form := swapui.NewForm(svc, cfg, console)

		require.NoError(t, console.Run(context.Background(), form, NewRenderer(&out, cfg), "CELO"))
		require.Equal(t, "0", form.Snapshot().Amount)
	})

	t.Run("swap without quote", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var out bytes.Buffer
		cfg := testConfig()
		console := NewConsole(strings.NewReader("s\n"), &out)
		form := swapui.NewForm(mock.NewMockService(ctrl), cfg, console)

		require.NoError(t, console.Run(context.Background(), form, NewRenderer(&out, cfg), "CELO"))
		require.Contains(t, out.String(), "Get a quote first")
	})
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg := testConfig()
	r := NewRenderer(&out, cfg)
	form := swapui.NewForm(nil, cfg, nil)

	r.Render(form)
	s := out.String()
	require.Contains(t, s, "Swap CELO for BTK using Uniswap v4")
	require.Contains(t, s, "You pay:                  0.0 CELO")
	require.Contains(t, s, "Quote from:               Uniswap Quoter")
	require.Contains(t, s, "Minimum Received:         -- BTK")
	require.Contains(t, s, "[ Get Quote ]")
	require.Contains(t, s, "[ Swap ]")
}
