package uniswapv4

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// PoolKey identifies a Uniswap v4 pool. Currency0 is always the address that
// sorts first.
type PoolKey struct {
	Currency0   common.Address
	Currency1   common.Address
	Fee         uint32
	TickSpacing int32
	Hooks       common.Address
}

// NewPoolKey orders the pair canonically and reports whether a swap paying
// with pay goes from currency0 to currency1.
func NewPoolKey(pay, receive common.Address, fee uint32, tickSpacing int32, hooks common.Address) (PoolKey, bool) {
	zeroForOne := Less(pay, receive)

	key := PoolKey{
		Currency0:   receive,
		Currency1:   pay,
		Fee:         fee,
		TickSpacing: tickSpacing,
		Hooks:       hooks,
	}
	if zeroForOne {
		key.Currency0, key.Currency1 = pay, receive
	}
	return key, zeroForOne
}

// Less compares two addresses by their lower-case hex form.
func Less(a, b common.Address) bool {
	return strings.ToLower(a.Hex()) < strings.ToLower(b.Hex())
}

var poolKeyArgs = abi.Arguments{
	{Type: mustType("address")},
	{Type: mustType("address")},
	{Type: mustType("uint24")},
	{Type: mustType("int24")},
	{Type: mustType("address")},
}

// ID returns the pool id, keccak256(abi.encode(key)), as the PoolManager
// computes it.
func (k PoolKey) ID() common.Hash {
	packed, err := poolKeyArgs.Pack(k.Currency0, k.Currency1, big.NewInt(int64(k.Fee)), big.NewInt(int64(k.TickSpacing)), k.Hooks)
	if err != nil {
		return common.Hash{}
	}
	return crypto.Keccak256Hash(packed)
}

// abiPoolKey mirrors the PoolKey tuple with the Go types go-ethereum packs
// uint24 and int24 from.
type abiPoolKey struct {
	Currency0   common.Address
	Currency1   common.Address
	Fee         *big.Int
	TickSpacing *big.Int
	Hooks       common.Address
}

func (k PoolKey) toABI() abiPoolKey {
	return abiPoolKey{
		Currency0:   k.Currency0,
		Currency1:   k.Currency1,
		Fee:         big.NewInt(int64(k.Fee)),
		TickSpacing: big.NewInt(int64(k.TickSpacing)),
		Hooks:       k.Hooks,
	}
}

func mustType(t string) abi.Type {
	ty, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return ty
}
