package core

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
)

// ChainQuerier is the remote chain capability the reporter depends on.
type ChainQuerier interface {
	GetDecimals(ctx context.Context, token common.Address) (uint8, error)
	GetTokenBalance(ctx context.Context, token, wallet common.Address) (*big.Int, error)
	GetNativeBalance(ctx context.Context, wallet common.Address) (*big.Int, error)
}

// DecimalsResolver memoizes token decimals for the lifetime of one run.
// It is not safe for concurrent use; resolve before fanning out.
type DecimalsResolver struct {
	querier  ChainQuerier
	decimals map[common.Address]uint8
}

func NewDecimalsResolver(querier ChainQuerier) *DecimalsResolver {
	return &DecimalsResolver{
		querier:  querier,
		decimals: make(map[common.Address]uint8),
	}
}

func (r *DecimalsResolver) Resolve(ctx context.Context, token common.Address) (uint8, error) {
	if d, ok := r.decimals[token]; ok {
		return d, nil
	}
	d, err := r.querier.GetDecimals(ctx, token)
	if err != nil {
		return 0, err
	}
	logrus.Infof("token %s decimals %d", token.Hex(), d)
	r.decimals[token] = d
	return d, nil
}

// ResolveAll resolves tokens one at a time, in order.
func (r *DecimalsResolver) ResolveAll(ctx context.Context, tokens []common.Address) error {
	for _, token := range tokens {
		if _, err := r.Resolve(ctx, token); err != nil {
			return err
		}
	}
	return nil
}

func (r *DecimalsResolver) Decimals(token common.Address) (uint8, bool) {
	d, ok := r.decimals[token]
	return d, ok
}
