package core

import (
	"token-balance-reporter/core/model"

	"github.com/ethereum/go-ethereum/common"
)

const (
	WalletColumn = "WalletAddress"
	TotalLabel   = "Total"
)

type ReportOptions struct {
	NativeSymbol string
	TotalsFormat model.TotalsFormat
}

func NativeColumn(symbol string) string {
	if symbol == "" {
		symbol = "ETH"
	}
	return symbol + "Balance"
}

// BuildReport lays out the wallet rows and the totals row. Columns are the
// wallet address, the native balance, then one per token in the given order.
// Missing cells are left blank.
func BuildReport(tokens []common.Address, rows []*model.WalletRow, totals *model.TotalsRow, opts ReportOptions) *model.Table {
	headers := make([]string, 0, len(tokens)+2)
	headers = append(headers, WalletColumn, NativeColumn(opts.NativeSymbol))
	for _, token := range tokens {
		headers = append(headers, token.Hex())
	}

	table := &model.Table{Headers: headers}
	for _, row := range rows {
		line := make([]string, 0, len(headers))
		line = append(line, row.Wallet.Hex(), row.Cells[model.NativeAsset()])
		for _, token := range tokens {
			line = append(line, row.Cells[model.TokenAsset(token)])
		}
		table.Rows = append(table.Rows, line)
	}

	line := make([]string, 0, len(headers))
	line = append(line, "", TotalLabel)
	for _, token := range tokens {
		var cell string
		if totals != nil {
			if opts.TotalsFormat == model.TotalsFormatFormatted {
				cell = totals.Cells[token]
			} else if raw, ok := totals.Raw[token]; ok {
				cell = raw.String()
			}
		}
		line = append(line, cell)
	}
	table.Rows = append(table.Rows, line)

	return table
}
