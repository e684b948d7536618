package core

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"token-balance-reporter/core/model"

	"github.com/ethereum/go-ethereum/common"
)

type tokenWallet struct {
	token  common.Address
	wallet common.Address
}

// fakeChain is an in-memory ChainQuerier that counts calls.
type fakeChain struct {
	mu sync.Mutex

	decimals map[common.Address]uint8
	tokens   map[tokenWallet]*big.Int
	native   map[common.Address]*big.Int

	failToken  map[tokenWallet]bool
	failNative map[common.Address]bool

	decimalsCalls map[common.Address]int
	tokenCalls    int
	nativeCalls   int
	calls         int
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		decimals:      make(map[common.Address]uint8),
		tokens:        make(map[tokenWallet]*big.Int),
		native:        make(map[common.Address]*big.Int),
		failToken:     make(map[tokenWallet]bool),
		failNative:    make(map[common.Address]bool),
		decimalsCalls: make(map[common.Address]int),
	}
}

func (f *fakeChain) GetDecimals(ctx context.Context, token common.Address) (uint8, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.decimalsCalls[token]++
	d, ok := f.decimals[token]
	if !ok {
		return 0, fmt.Errorf("%w: decimals of %s", model.ErrorQueryFailure, token.Hex())
	}
	return d, nil
}

func (f *fakeChain) GetTokenBalance(ctx context.Context, token, wallet common.Address) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.tokenCalls++
	key := tokenWallet{token, wallet}
	if f.failToken[key] {
		return nil, fmt.Errorf("%w: balanceOf %s on %s", model.ErrorQueryFailure, wallet.Hex(), token.Hex())
	}
	if b, ok := f.tokens[key]; ok {
		return new(big.Int).Set(b), nil
	}
	return new(big.Int), nil
}

func (f *fakeChain) GetNativeBalance(ctx context.Context, wallet common.Address) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.nativeCalls++
	if f.failNative[wallet] {
		return nil, fmt.Errorf("%w: native balance of %s", model.ErrorQueryFailure, wallet.Hex())
	}
	if b, ok := f.native[wallet]; ok {
		return new(big.Int).Set(b), nil
	}
	return new(big.Int), nil
}

type fakeWriter struct {
	tables []*model.Table
}

func (w *fakeWriter) Write(ctx context.Context, table *model.Table) error {
	w.tables = append(w.tables, table)
	return nil
}

func bigFromString(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad big int " + s)
	}
	return n
}

func addr(n int) common.Address {
	return common.BigToAddress(big.NewInt(int64(n)))
}
