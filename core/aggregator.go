package core

import (
	"fmt"
	"math/big"
	"token-balance-reporter/core/model"

	"github.com/ethereum/go-ethereum/common"
)

// Aggregator accumulates balance records into wallet rows and per-token raw
// totals. Callers must add records from a single goroutine.
type Aggregator struct {
	rows   map[common.Address]*model.WalletRow
	totals map[common.Address]*big.Int
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		rows:   make(map[common.Address]*model.WalletRow),
		totals: make(map[common.Address]*big.Int),
	}
}

func (a *Aggregator) Add(record model.BalanceRecord) {
	row, ok := a.rows[record.Wallet]
	if !ok {
		row = &model.WalletRow{Wallet: record.Wallet, Cells: make(map[model.Asset]string)}
		a.rows[record.Wallet] = row
	}
	row.Cells[record.Asset] = record.Formatted

	if record.Asset.IsNative() || record.Raw == nil {
		return
	}
	total, ok := a.totals[record.Asset.Token]
	if !ok {
		total = new(big.Int)
		a.totals[record.Asset.Token] = total
	}
	total.Add(total, record.Raw)
}

func (a *Aggregator) AddAll(records []model.BalanceRecord) {
	for _, r := range records {
		a.Add(r)
	}
}

// Rows returns one row per wallet in the given order. Wallets without any
// record get an empty row.
func (a *Aggregator) Rows(wallets []common.Address) []*model.WalletRow {
	out := make([]*model.WalletRow, 0, len(wallets))
	for _, w := range wallets {
		row, ok := a.rows[w]
		if !ok {
			row = &model.WalletRow{Wallet: w, Cells: make(map[model.Asset]string)}
		}
		out = append(out, row)
	}
	return out
}

// Totals formats the running totals with each token's resolved decimals.
// Every token gets an entry, zero if nothing was added for it.
func (a *Aggregator) Totals(tokens []common.Address, resolver *DecimalsResolver) (*model.TotalsRow, error) {
	totals := &model.TotalsRow{
		Raw:   make(map[common.Address]*big.Int, len(tokens)),
		Cells: make(map[common.Address]string, len(tokens)),
	}
	for _, token := range tokens {
		decimals, ok := resolver.Decimals(token)
		if !ok {
			return nil, fmt.Errorf("decimals of %s not resolved", token.Hex())
		}
		raw := new(big.Int)
		if t, ok := a.totals[token]; ok {
			raw.Set(t)
		}
		totals.Raw[token] = raw
		totals.Cells[token] = model.FormatUnits(raw, decimals)
	}
	return totals, nil
}
