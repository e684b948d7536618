package model

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// BalanceRecord is the result of one balance lookup.
type BalanceRecord struct {
	Wallet    common.Address
	Asset     Asset
	Raw       *big.Int
	Formatted string
}

// WalletRow holds the formatted balances of one wallet, keyed by column.
type WalletRow struct {
	Wallet common.Address
	Cells  map[Asset]string
}

// TotalsRow holds per-token sums across all wallets. There is no native total.
type TotalsRow struct {
	Raw   map[common.Address]*big.Int
	Cells map[common.Address]string
}

type TotalsFormat string

const (
	TotalsFormatRaw       TotalsFormat = "raw"
	TotalsFormatFormatted TotalsFormat = "formatted"
)

// Table is the exported report: a header list and rows of the same width.
type Table struct {
	Headers []string
	Rows    [][]string
}
