// Package export writes the finished balance table to a single file.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"token-balance-reporter/core/model"

	"github.com/sirupsen/logrus"
)

var (
	ErrorUnsupportedFormat = errors.New("unsupported output format")
)

type Writer interface {
	Write(ctx context.Context, table *model.Table) error
}

// NewWriter picks a writer from the extension of path.
func NewWriter(path string) (Writer, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return &CSVWriter{Path: path}, nil
	case ".db", ".sqlite", ".sqlite3":
		return &SQLiteWriter{Path: path}, nil
	case ".pdf":
		return &PDFWriter{Path: path}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrorUnsupportedFormat, path)
	}
}

// writeAtomic lets write fill a temporary file next to path and moves it into
// place only if write succeeded.
func writeAtomic(path string, write func(tmp string) error) error {
	tmp := path + ".tmp"
	if err := os.Remove(tmp); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove stale %s: %w", tmp, err)
	}
	if err := write(tmp); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	logrus.Infof("Save results in file! %s", path)
	return nil
}
