package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fleshka4/v4-swap-quoter/internal/apperrors"
	"github.com/fleshka4/v4-swap-quoter/internal/config"
	"github.com/fleshka4/v4-swap-quoter/internal/service"
	"github.com/fleshka4/v4-swap-quoter/internal/service/dto"
	"github.com/fleshka4/v4-swap-quoter/internal/swapui"
	httpdto "github.com/fleshka4/v4-swap-quoter/internal/transport/http/dto"
)

var jsonOutput bool

var quoteCmd = &cobra.Command{
	Use:   "quote <amount>",
	Short: "Print a single quote and exit",
	Long: `Quote how much of the receive token <amount> of the pay token buys.

Examples:
  swap quote 10
  swap quote 10 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg, svc, l, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	return quoteOnce(cmd, svc, cfg, args[0], jsonOutput)
}

func quoteOnce(cmd *cobra.Command, svc service.Service, cfg config.Config, amount string, asJSON bool) error {
	out := cmd.OutOrStdout()

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
	if !asJSON {
		s.Suffix = " Calculating..."
		s.Start()
	}

	q, err := svc.Quote(cmd.Context(), dto.QuoteRequest{Amount: amount})
	s.Stop()

	if errors.Is(err, apperrors.ErrInvalidArgument) {
		return err
	}
	if err != nil {
		return errors.New(swapui.Message(err))
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(httpdto.NewQuoteResponse(q)), "enc.Encode")
	}

	printQuote(out, q, cfg)
	return nil
}

func printQuote(w io.Writer, q *dto.Quote, cfg config.Config) {
	fmt.Fprintf(w, "\n  You pay:                  %s %s\n", q.AmountIn, color.YellowString(cfg.PayToken.Symbol))
	fmt.Fprintf(w, "  You receive (estimated):  %s %s\n", color.GreenString(q.Display), color.YellowString(cfg.ReceiveToken.Symbol))
	fmt.Fprintf(w, "  Minimum Received:         %s %s\n", q.MinimumReceived, cfg.ReceiveToken.Symbol)
	fmt.Fprintf(w, "  Pool:                     %s\n\n", q.PoolKey.ID().Hex())
}
