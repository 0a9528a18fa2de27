package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/fleshka4/v4-swap-quoter/internal/apperrors"
	"github.com/fleshka4/v4-swap-quoter/internal/swapui"
)

// Console reads user input and shows blocking alerts. It implements
// swapui.Notifier.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a Console over in and out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Notify prints msg and waits for Enter.
func (c *Console) Notify(msg string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, color.RedString("  ! %s", msg))
	fmt.Fprint(c.out, "  Press Enter to continue...")
	_, _ = c.in.ReadString('\n')
}

// ReadLine prints prompt and returns the trimmed line. ok is false at end of input.
func (c *Console) ReadLine(prompt string) (line string, ok bool) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// Run drives the form until the user enters an empty line or "q", input ends
// or ctx is done. "s" presses the swap button.
func (c *Console) Run(ctx context.Context, form *swapui.Form, r *Renderer, payToken string) error {
	for {
		r.Render(form)

		if err := ctx.Err(); err != nil {
			return nil
		}

		line, ok := c.ReadLine(fmt.Sprintf("\nAmount of %s (s to swap, empty or q to quit): ", payToken))
		if !ok || line == "" || strings.EqualFold(line, "q") {
			return nil
		}

		if strings.EqualFold(line, "s") {
			c.swap(ctx, form)
			continue
		}

		form.SetAmount(line)
		if _, err := form.RequestQuote(ctx); errors.Is(err, swapui.ErrBusy) {
			color.New(color.FgYellow).Fprintln(c.out, "  A quote is already being calculated")
		}
	}
}

func (c *Console) swap(ctx context.Context, form *swapui.Form) {
	if !form.CanSwap() {
		color.New(color.FgYellow).Fprintln(c.out, "  Get a quote first")
		return
	}
	if err := form.Swap(ctx); errors.Is(err, apperrors.ErrSwapUnsupported) {
		c.Notify("Swapping is not available yet")
	} else if err != nil {
		c.Notify(err.Error())
	}
}
