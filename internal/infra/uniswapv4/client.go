package uniswapv4

import (
	"context"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"

	"github.com/fleshka4/v4-swap-quoter/internal/apperrors"
)

//go:generate mockgen -source=client.go -destination=mock/client.go -package=mock -exclude_interfaces=EthCaller
//go:generate mockgen -source=client.go -destination=mock_caller_test.go -package=uniswapv4 -exclude_interfaces=Client

const quoteExactInputSingle = "quoteExactInputSingle"

// V4Quoter entry point plus the errors it can revert with.
const quoterABIJSON = `[
	{"inputs":[{"components":[
		{"components":[
			{"internalType":"Currency","name":"currency0","type":"address"},
			{"internalType":"Currency","name":"currency1","type":"address"},
			{"internalType":"uint24","name":"fee","type":"uint24"},
			{"internalType":"int24","name":"tickSpacing","type":"int24"},
			{"internalType":"contract IHooks","name":"hooks","type":"address"}
		],"internalType":"struct PoolKey","name":"poolKey","type":"tuple"},
		{"internalType":"bool","name":"zeroForOne","type":"bool"},
		{"internalType":"uint128","name":"exactAmount","type":"uint128"},
		{"internalType":"bytes","name":"hookData","type":"bytes"}
	],"internalType":"struct IV4Quoter.QuoteExactSingleParams","name":"params","type":"tuple"}],
	"name":"quoteExactInputSingle",
	"outputs":[
		{"internalType":"uint256","name":"amountOut","type":"uint256"},
		{"internalType":"uint256","name":"gasEstimate","type":"uint256"}
	],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"internalType":"PoolId","name":"poolId","type":"bytes32"}],"name":"NotEnoughLiquidity","type":"error"},
	{"inputs":[{"internalType":"bytes","name":"revertData","type":"bytes"}],"name":"UnexpectedRevertBytes","type":"error"}
]`

// MaxExactAmount is the largest amount the quoter accepts (uint128).
var MaxExactAmount = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// QuoteExactSingleParams is the argument of quoteExactInputSingle.
type QuoteExactSingleParams struct {
	PoolKey     PoolKey
	ZeroForOne  bool
	ExactAmount *big.Int
	HookData    []byte
}

// QuoteResult is the decoded return tuple of quoteExactInputSingle.
type QuoteResult struct {
	AmountOut   *big.Int
	GasEstimate *big.Int
}

// Client defines an abstraction for reading quotes from a Uniswap v4 Quoter contract.
type Client interface {
	// QuoteExactInputSingle simulates an exact-input swap through one pool.
	// Failures are *apperrors.QuoteError values.
	QuoteExactInputSingle(ctx context.Context, quoter common.Address, params QuoteExactSingleParams) (*QuoteResult, error)
}

// EthCaller represents interface for calling contracts.
type EthCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

type ethClientImpl struct {
	caller    EthCaller
	quoterABI abi.ABI

	callTimeout time.Duration
}

// NewClient creates a new quoter Client backed by an Ethereum RPC connection.
func NewClient(rpcURL string, callTimeout time.Duration) (Client, error) {
	caller, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, errors.Wrap(err, "ethclient.Dial")
	}

	c, err := newClientWithCaller(caller, callTimeout)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func newClientWithCaller(caller EthCaller, callTimeout time.Duration) (*ethClientImpl, error) {
	quoterABI, err := abi.JSON(strings.NewReader(quoterABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON")
	}

	return &ethClientImpl{
		caller:    caller,
		quoterABI: quoterABI,

		callTimeout: callTimeout,
	}, nil
}

func (c *ethClientImpl) call(ctx context.Context, to common.Address, method string, args ...interface{}) ([]interface{}, error) {
	data, err := c.quoterABI.Pack(method, args...)
	if err != nil {
		return nil, errors.Wrap(err, "c.quoterABI.Pack")
	}

	if c.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
	}

	res, err := c.caller.CallContract(
		ctx,
		ethereum.CallMsg{
			To:   &to,
			Data: data,
		},
		nil,
	)
	if err != nil {
		return nil, errors.Wrap(err, "c.caller.CallContract")
	}

	out, err := c.quoterABI.Unpack(method, res)
	if err != nil {
		return nil, errors.Wrap(err, "c.quoterABI.Unpack")
	}

	return out, nil
}

// QuoteExactInputSingle calls quoteExactInputSingle with eth_call on the latest block.
func (c *ethClientImpl) QuoteExactInputSingle(ctx context.Context, quoter common.Address, params QuoteExactSingleParams) (*QuoteResult, error) {
	if params.ExactAmount == nil || params.ExactAmount.Sign() <= 0 || params.ExactAmount.Cmp(MaxExactAmount) > 0 {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "exact amount must be in (0, 2^128)")
	}

	hookData := params.HookData
	if hookData == nil {
		hookData = []byte{}
	}

	arg := struct {
		PoolKey     abiPoolKey
		ZeroForOne  bool
		ExactAmount *big.Int
		HookData    []byte
	}{
		PoolKey:     params.PoolKey.toABI(),
		ZeroForOne:  params.ZeroForOne,
		ExactAmount: params.ExactAmount,
		HookData:    hookData,
	}

	out, err := c.call(ctx, quoter, quoteExactInputSingle, arg)
	if err != nil {
		return nil, apperrors.NewQuoteError(c.classify(err), err)
	}

	const requiredSize = 2
	if len(out) < requiredSize {
		err := errors.Errorf("insufficient outputs from %s call: expected %d, got %d", quoteExactInputSingle, requiredSize, len(out))
		return nil, apperrors.NewQuoteError(apperrors.ErrQuoteFailed, err)
	}

	values := make([]*big.Int, requiredSize)
	names := []string{"amountOut", "gasEstimate"}

	for i := 0; i < requiredSize; i++ {
		v, ok := out[i].(*big.Int)
		if !ok {
			err := errors.Errorf("failed to cast %s to *big.Int", names[i])
			return nil, apperrors.NewQuoteError(apperrors.ErrQuoteFailed, err)
		}
		values[i] = v
	}

	return &QuoteResult{AmountOut: values[0], GasEstimate: values[1]}, nil
}
