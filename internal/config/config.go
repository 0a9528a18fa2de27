package config

import (
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Defaults for the pool and tokens when neither file nor environment set them.
const (
	DefaultFeeTier         = 3000
	DefaultTickSpacing     = 60
	DefaultSlippageBps     = 50
	DefaultPayDecimals     = 18
	DefaultReceiveDecimals = 2

	defaultTimeout    = 5 * time.Second
	defaultListenAddr = ":1337"
	defaultLogLevel   = "info"

	maxFeeTier     = 1_000_000
	maxTickSpacing = 32767
	bpsDenominator = 10_000
)

// Environment variables that override values from the config file.
const (
	EnvRPCURL         = "RPC_URL"
	EnvQuoterAddress  = "QUOTER_ADDRESS"
	EnvPayToken       = "PAY_TOKEN_ADDRESS"
	EnvReceiveToken   = "RECEIVE_TOKEN_ADDRESS"
	EnvPoolFeeTier    = "POOL_FEE_TIER"
	EnvPoolTickSpaces = "POOL_TICK_SPACING"
)

// Token describes one side of the traded pair.
type Token struct {
	Symbol   string `yaml:"symbol"`
	Address  string `yaml:"address"`
	Decimals uint8  `yaml:"decimals"`
}

// Addr returns the token address. Call it only on a validated config.
func (t Token) Addr() common.Address {
	return common.HexToAddress(t.Address)
}

// Pool holds the static parameters of the v4 pool being quoted.
type Pool struct {
	FeeTier     uint32 `yaml:"fee_tier"`
	TickSpacing int32  `yaml:"tick_spacing"`
}

// Config holds application configuration loaded from file.
type Config struct {
	RPCURL        string `yaml:"rpc_url"`
	QuoterAddress string `yaml:"quoter_address"`
	PayToken      Token  `yaml:"pay_token"`
	ReceiveToken  Token  `yaml:"receive_token"`
	Pool          Pool   `yaml:"pool"`
	SlippageBps   uint32 `yaml:"slippage_bps"`
	LogLevel      string `yaml:"log_level"`

	ListenAddr        string        `yaml:"listen_addr"`
	GraceTimeout      time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
}

// Quoter returns the quoter contract address. Call it only on a validated config.
func (c Config) Quoter() common.Address {
	return common.HexToAddress(c.QuoterAddress)
}

// Load reads the config from a YAML file path.
// Fails fatally if config is invalid or file is missing.
func Load(path string) Config {
	cfg, err := Read(path)
	if err != nil {
		log.Fatalf("failed to load config: config.Read: %v", err)
	}
	return cfg
}

// Read opens the YAML file at path and parses it with environment overrides.
func Read(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "os.Open")
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			log.Printf("failed to close config file: f.Close: %v", err)
		}
	}(f)

	return Parse(f, os.LookupEnv)
}

// Parse decodes YAML from r, applies overrides from lookupEnv and fills in
// fallbacks. An empty document is allowed so the whole config can come from
// the environment.
func Parse(r io.Reader, lookupEnv func(string) (string, bool)) (Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decoder.Decode")
	}

	cfg.applyEnv(lookupEnv)
	cfg.applyFallbacks()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookupEnv func(string) (string, bool)) {
	if lookupEnv == nil {
		return
	}

	str := func(key string, dst *string) {
		if v, ok := lookupEnv(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str(EnvRPCURL, &c.RPCURL)
	str(EnvQuoterAddress, &c.QuoterAddress)
	str(EnvPayToken, &c.PayToken.Address)
	str(EnvReceiveToken, &c.ReceiveToken.Address)

	// A non-numeric or zero value is ignored and the fallback stays in effect.
	if v, ok := lookupEnv(EnvPoolFeeTier); ok {
		if n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32); err == nil && n != 0 {
			c.Pool.FeeTier = uint32(n)
		}
	}
	if v, ok := lookupEnv(EnvPoolTickSpaces); ok {
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32); err == nil && n != 0 {
			c.Pool.TickSpacing = int32(n)
		}
	}
}

func (c *Config) applyFallbacks() {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}
	if c.GraceTimeout == 0 {
		c.GraceTimeout = defaultTimeout
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = defaultTimeout
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = defaultTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	if c.Pool.FeeTier == 0 {
		c.Pool.FeeTier = DefaultFeeTier
	}
	if c.Pool.TickSpacing == 0 {
		c.Pool.TickSpacing = DefaultTickSpacing
	}
	if c.SlippageBps == 0 {
		c.SlippageBps = DefaultSlippageBps
	}

	if c.PayToken.Symbol == "" {
		c.PayToken.Symbol = "CELO"
	}
	if c.PayToken.Decimals == 0 {
		c.PayToken.Decimals = DefaultPayDecimals
	}
	if c.ReceiveToken.Symbol == "" {
		c.ReceiveToken.Symbol = "BTK"
	}
	if c.ReceiveToken.Decimals == 0 {
		c.ReceiveToken.Decimals = DefaultReceiveDecimals
	}
}

// Validate reports every problem with the config at once.
func (c Config) Validate() error {
	var err error

	if c.RPCURL == "" {
		err = multierr.Append(err, errors.New("rpc_url is required"))
	}
	if !common.IsHexAddress(c.QuoterAddress) {
		err = multierr.Append(err, errors.Errorf("quoter_address %q is not a hex address", c.QuoterAddress))
	}
	if !common.IsHexAddress(c.PayToken.Address) {
		err = multierr.Append(err, errors.Errorf("pay_token.address %q is not a hex address", c.PayToken.Address))
	}
	if !common.IsHexAddress(c.ReceiveToken.Address) {
		err = multierr.Append(err, errors.Errorf("receive_token.address %q is not a hex address", c.ReceiveToken.Address))
	}
	if c.PayToken.Address != "" && strings.EqualFold(c.PayToken.Address, c.ReceiveToken.Address) {
		err = multierr.Append(err, errors.New("pay_token and receive_token must differ"))
	}
	if c.Pool.FeeTier > maxFeeTier {
		err = multierr.Append(err, errors.Errorf("pool.fee_tier %d exceeds %d", c.Pool.FeeTier, maxFeeTier))
	}
	if c.Pool.TickSpacing < 1 || c.Pool.TickSpacing > maxTickSpacing {
		err = multierr.Append(err, errors.Errorf("pool.tick_spacing %d is out of range [1, %d]", c.Pool.TickSpacing, maxTickSpacing))
	}
	if c.SlippageBps >= bpsDenominator {
		err = multierr.Append(err, errors.Errorf("slippage_bps %d must be below %d", c.SlippageBps, bpsDenominator))
	}
	if _, lvlErr := zapcore.ParseLevel(c.LogLevel); lvlErr != nil {
		err = multierr.Append(err, errors.Wrap(lvlErr, "log_level"))
	}

	return err
}
