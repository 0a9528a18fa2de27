package terminal

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/fleshka4/v4-swap-quoter/internal/config"
	"github.com/fleshka4/v4-swap-quoter/internal/swapui"
)

const (
	cardWidth       = 60
	placeholder     = "0.0"
	quoteSource     = "Uniswap Quoter"
	calculatingText = "Calculating..."
)

// Renderer draws the swap form as a text card.
type Renderer struct {
	out     io.Writer
	pay     string
	receive string
	spin    *spinner.Spinner
}

// NewRenderer creates a Renderer writing to out.
func NewRenderer(out io.Writer, cfg config.Config) *Renderer {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.Suffix = " " + calculatingText

	return &Renderer{
		out:     out,
		pay:     cfg.PayToken.Symbol,
		receive: cfg.ReceiveToken.Symbol,
		spin:    s,
	}
}

// Observe runs the spinner while a quote is loading. Pass it to swapui.WithObserver.
func (r *Renderer) Observe(s swapui.State) {
	if s.IsLoadingQuote {
		r.spin.Start()
		return
	}
	r.spin.Stop()
}

// Render prints the whole card for the current form state.
func (r *Renderer) Render(f *swapui.Form) {
	s := f.Snapshot()
	rule := strings.Repeat("=", cardWidth)

	pay := s.Amount
	if pay == "" {
		pay = placeholder
	}
	receive := s.Quote
	if receive == "" {
		receive = placeholder
	}

	quoteBtn := "Get Quote"
	if s.IsLoadingQuote {
		quoteBtn = calculatingText
	}

	fmt.Fprintln(r.out, "\n"+rule)
	fmt.Fprintln(r.out, color.GreenString("                       SWAP TOKENS"))
	fmt.Fprintf(r.out, "  Swap %s for %s using Uniswap v4\n", r.pay, r.receive)
	fmt.Fprintln(r.out, rule)

	fmt.Fprintf(r.out, "\n  You pay:                  %s %s\n", pay, color.YellowString(r.pay))
	fmt.Fprintf(r.out, "  You receive (estimated):  %s %s\n", receive, color.YellowString(r.receive))
	fmt.Fprintf(r.out, "  Quote from:               %s\n", quoteSource)
	fmt.Fprintf(r.out, "  Minimum Received:         %s %s\n", f.MinimumReceived(), r.receive)

	fmt.Fprintf(r.out, "\n  %s  %s\n", button(quoteBtn, f.CanRequestQuote()), button("Swap", f.CanSwap()))
	fmt.Fprintln(r.out, "\n"+rule)
}

func button(label string, enabled bool) string {
	text := "[ " + label + " ]"
	if !enabled {
		return color.New(color.Faint).Sprint(text)
	}
	return color.CyanString(text)
}
