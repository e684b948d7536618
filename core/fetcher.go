package core

import (
	"context"
	"fmt"
	"token-balance-reporter/core/model"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
)

// BalanceFetcher queries balances one asset at a time, all wallets of an asset
// in parallel.
type BalanceFetcher struct {
	querier        ChainQuerier
	resolver       *DecimalsResolver
	policy         FailurePolicy
	nativeDecimals uint8
}

func NewBalanceFetcher(querier ChainQuerier, resolver *DecimalsResolver, policy FailurePolicy, nativeDecimals uint8) *BalanceFetcher {
	return &BalanceFetcher{
		querier:        querier,
		resolver:       resolver,
		policy:         policy,
		nativeDecimals: nativeDecimals,
	}
}

// FetchToken returns one record per wallet for token. The token's decimals
// must already be resolved.
func (f *BalanceFetcher) FetchToken(ctx context.Context, token common.Address, wallets []common.Address) ([]model.BalanceRecord, error) {
	decimals, ok := f.resolver.Decimals(token)
	if !ok {
		return nil, fmt.Errorf("decimals of %s not resolved", token.Hex())
	}
	asset := model.TokenAsset(token)

	records, err := RunBatch(ctx, f.policy, wallets, func(ctx context.Context, wallet common.Address) (model.BalanceRecord, error) {
		raw, err := f.querier.GetTokenBalance(ctx, token, wallet)
		if err != nil {
			return model.BalanceRecord{}, err
		}
		return model.BalanceRecord{
			Wallet:    wallet,
			Asset:     asset,
			Raw:       raw,
			Formatted: model.FormatUnits(raw, decimals),
		}, nil
	})
	if err != nil {
		logrus.Errorf("fetch token %s balances err: %v", token.Hex(), err)
		return nil, err
	}
	return records, nil
}

func (f *BalanceFetcher) FetchNative(ctx context.Context, wallets []common.Address) ([]model.BalanceRecord, error) {
	records, err := RunBatch(ctx, f.policy, wallets, func(ctx context.Context, wallet common.Address) (model.BalanceRecord, error) {
		raw, err := f.querier.GetNativeBalance(ctx, wallet)
		if err != nil {
			return model.BalanceRecord{}, err
		}
		return model.BalanceRecord{
			Wallet:    wallet,
			Asset:     model.NativeAsset(),
			Raw:       raw,
			Formatted: model.FormatUnits(raw, f.nativeDecimals),
		}, nil
	})
	if err != nil {
		logrus.Errorf("fetch native balances err: %v", err)
		return nil, err
	}
	return records, nil
}
