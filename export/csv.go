package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"token-balance-reporter/core/model"
)

type CSVWriter struct {
	Path string
}

func (w *CSVWriter) Write(ctx context.Context, table *model.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return writeAtomic(w.Path, func(tmp string) error {
		f, err := os.Create(tmp)
		if err != nil {
			return fmt.Errorf("create csv: %w", err)
		}
		defer f.Close()

		cw := csv.NewWriter(f)
		if err := cw.Write(table.Headers); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
		if err := cw.WriteAll(table.Rows); err != nil {
			return fmt.Errorf("write csv rows: %w", err)
		}
		return f.Close()
	})
}
