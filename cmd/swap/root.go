package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/fleshka4/v4-swap-quoter/internal/config"
	"github.com/fleshka4/v4-swap-quoter/internal/infra/uniswapv4"
	"github.com/fleshka4/v4-swap-quoter/internal/logger"
	"github.com/fleshka4/v4-swap-quoter/internal/service"
	"github.com/fleshka4/v4-swap-quoter/internal/swapui"
	"github.com/fleshka4/v4-swap-quoter/internal/terminal"
)

const (
	defaultConfigPath = "cfg/config.yaml"

	keyConfig  = "config"
	keyVerbose = "verbose"
)

var rootCmd = &cobra.Command{
	Use:   "swap",
	Short: "Quote token swaps on a Uniswap v4 pool",
	Long: `swap is an interactive swap form backed by the Uniswap v4 Quoter.
Enter an amount of the pay token to see the estimated amount received.

Examples:
  swap
  swap quote 10
  swap quote 0.5 --json`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInteractive,
}

func init() {
	rootCmd.PersistentFlags().StringP(keyConfig, "c", "", "Path to config file (default $CONFIG_PATH or "+defaultConfigPath+")")
	rootCmd.PersistentFlags().BoolP(keyVerbose, "v", false, "Log quote failures to stderr")

	// Flag beats CONFIG_PATH beats the default.
	viper.SetDefault(keyConfig, defaultConfigPath)
	_ = viper.BindEnv(keyConfig, "CONFIG_PATH")
	_ = viper.BindPFlag(keyConfig, rootCmd.PersistentFlags().Lookup(keyConfig))
	_ = viper.BindPFlag(keyVerbose, rootCmd.PersistentFlags().Lookup(keyVerbose))
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	cfg, svc, l, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	console := terminal.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	renderer := terminal.NewRenderer(cmd.OutOrStdout(), cfg)
	form := swapui.NewForm(svc, cfg, console,
		swapui.WithLogger(l),
		swapui.WithObserver(renderer.Observe),
	)

	return console.Run(cmd.Context(), form, renderer, cfg.PayToken.Symbol)
}

// setup loads the config and wires the quote service.
func setup() (config.Config, service.Service, *zap.Logger, error) {
	cfg, err := config.Read(viper.GetString(keyConfig))
	if err != nil {
		return config.Config{}, nil, nil, errors.Wrap(err, "config.Read")
	}

	level := "warn"
	if viper.GetBool(keyVerbose) {
		level = "debug"
	}
	l, err := logger.New(level, true)
	if err != nil {
		return config.Config{}, nil, nil, errors.Wrap(err, "logger.New")
	}

	client, err := uniswapv4.NewClient(cfg.RPCURL, cfg.RequestTimeout)
	if err != nil {
		return config.Config{}, nil, nil, errors.Wrap(err, "uniswapv4.NewClient")
	}

	return cfg, service.NewQuoterService(client, cfg, l), l, nil
}
