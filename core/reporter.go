package core

import (
	"context"
	"errors"
	"fmt"
	"time"
	"token-balance-reporter/core/model"

	"github.com/sirupsen/logrus"
)

var (
	ErrorUnknownTotalsFormat = errors.New("unknown totals format")
)

// TableWriter persists the finished report.
type TableWriter interface {
	Write(ctx context.Context, table *model.Table) error
}

type Options struct {
	NativeSymbol   string
	NativeDecimals uint8
	Policy         FailurePolicy
	TotalsFormat   model.TotalsFormat
}

func ParseTotalsFormat(s string) (model.TotalsFormat, error) {
	switch f := model.TotalsFormat(s); f {
	case model.TotalsFormatRaw, model.TotalsFormatFormatted:
		return f, nil
	case "":
		return model.TotalsFormatRaw, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrorUnknownTotalsFormat, s)
	}
}

type Reporter struct {
	querier ChainQuerier
	writer  TableWriter
	opts    Options
}

func NewReporter(querier ChainQuerier, writer TableWriter, opts Options) *Reporter {
	if opts.Policy == "" {
		opts.Policy = FailFast
	}
	if opts.TotalsFormat == "" {
		opts.TotalsFormat = model.TotalsFormatRaw
	}
	return &Reporter{querier: querier, writer: writer, opts: opts}
}

// Run queries every balance, aggregates them and writes one table. Any error
// aborts the run before anything is written.
func (r *Reporter) Run(ctx context.Context, walletInputs, tokenInputs []string) error {
	wallets, dup, err := model.NormalizeAddresses(walletInputs)
	if err != nil {
		return fmt.Errorf("wallet: %w", err)
	}
	if len(dup) > 0 {
		logrus.Warnf("dropping duplicate wallets: %v", dup)
	}
	tokens, dup, err := model.NormalizeAddresses(tokenInputs)
	if err != nil {
		return fmt.Errorf("token: %w", err)
	}
	if len(dup) > 0 {
		logrus.Warnf("dropping duplicate tokens: %v", dup)
	}

	logrus.Infof("querying %d tokens for %d wallets", len(tokens), len(wallets))
	start := time.Now()

	resolver := NewDecimalsResolver(r.querier)
	if err := resolver.ResolveAll(ctx, tokens); err != nil {
		return fmt.Errorf("resolve decimals: %w", err)
	}

	fetcher := NewBalanceFetcher(r.querier, resolver, r.opts.Policy, r.opts.NativeDecimals)
	agg := NewAggregator()

	for _, token := range tokens {
		records, err := fetcher.FetchToken(ctx, token, wallets)
		if err != nil {
			return fmt.Errorf("token %s balances: %w", token.Hex(), err)
		}
		agg.AddAll(records)
		logrus.Infof("token %s: %d balances", token.Hex(), len(records))
	}

	records, err := fetcher.FetchNative(ctx, wallets)
	if err != nil {
		return fmt.Errorf("native balances: %w", err)
	}
	agg.AddAll(records)

	logrus.Infof("querying done in %v", time.Since(start))

	totals, err := agg.Totals(tokens, resolver)
	if err != nil {
		return err
	}
	table := BuildReport(tokens, agg.Rows(wallets), totals, ReportOptions{
		NativeSymbol: r.opts.NativeSymbol,
		TotalsFormat: r.opts.TotalsFormat,
	})

	if err := r.writer.Write(ctx, table); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
