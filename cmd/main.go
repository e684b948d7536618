package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"token-balance-reporter/chain"
	"token-balance-reporter/config"
	"token-balance-reporter/core"
	"token-balance-reporter/export"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "token-balance-reporter",
		Usage: "Query token and native balances of a set of wallets and export them as a table",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "config.yaml", Usage: "YAML config file"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output file (.csv, .db, .sqlite, .pdf), overrides config"},
			&cli.StringFlag{Name: "chain-url", Usage: "JSON-RPC endpoint, overrides config and " + config.EnvChainUrl},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "logrus level"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatalf("run err: %v", err)
	}
}

func run(c *cli.Context) error {
	level, err := logrus.ParseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if v := c.String("output"); v != "" {
		cfg.Output = v
	}
	if v := c.String("chain-url"); v != "" {
		cfg.ChainUrl = v
	}

	policy, err := core.ParseFailurePolicy(cfg.FailurePolicy)
	if err != nil {
		return err
	}
	totalsFormat, err := core.ParseTotalsFormat(cfg.TotalsFormat)
	if err != nil {
		return err
	}
	writer, err := export.NewWriter(cfg.Output)
	if err != nil {
		return err
	}

	bc, err := chain.NewBlockchainClient(cfg.ChainUrl, cfg.Timeout())
	if err != nil {
		logrus.Errorf("Failed to create client: %v", err)
		return err
	}
	defer bc.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reporter := core.NewReporter(bc, writer, core.Options{
		NativeSymbol:   cfg.NativeSymbol,
		NativeDecimals: cfg.Decimals(),
		Policy:         policy,
		TotalsFormat:   totalsFormat,
	})
	return reporter.Run(ctx, cfg.Wallets, cfg.Tokens)
}
