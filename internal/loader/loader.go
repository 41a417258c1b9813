// Package loader reads the order-line dataset from a directory of CSV
// files and concatenates it into a single in-memory slice.
package loader

import (
	"context"
	"crypto/sha256"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cartlens/cartlens/internal/common"
	"github.com/cartlens/cartlens/internal/model"
)

// ProgressFunc reports per-file load progress. done counts files fully
// read out of total.
type ProgressFunc func(done, total int)

// Discover enumerates the CSV files in dir, sorted by name. A path to a
// single CSV file is accepted as a one-file dataset. A missing
// directory or a directory without CSV files is a fatal configuration
// error for the whole session.
func Discover(dir string) ([]string, error) {
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		if strings.EqualFold(filepath.Ext(dir), ".csv") {
			return []string{dir}, nil
		}
		return nil, fmt.Errorf("%w in %s", common.ErrNoCSVFiles, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", common.ErrNoDataDir, dir)
		}
		return nil, fmt.Errorf("failed to read data directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", common.ErrNoCSVFiles, dir)
	}

	return files, nil
}

// Load discovers and reads every CSV file in dir.
func Load(ctx context.Context, dir string) ([]model.OrderLine, error) {
	files, err := Discover(dir)
	if err != nil {
		return nil, err
	}
	return LoadFiles(ctx, files, nil)
}

// LoadFiles reads the given CSV files in order and concatenates their
// rows, preserving file order then in-file order. No deduplication is
// performed. progress may be nil.
func LoadFiles(ctx context.Context, files []string, progress ProgressFunc) ([]model.OrderLine, error) {
	var lines []model.OrderLine
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fileLines, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fileLines...)

		if progress != nil {
			progress(i+1, len(files))
		}
	}
	return lines, nil
}

// Signature returns a stable digest of the resolved file list: path,
// size and modification time of each file. It is the cache key for the
// memoized load result; the dataset is otherwise treated as static.
func Signature(files []string) (string, error) {
	h := sha256.New()
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", path, err)
		}
		fmt.Fprintf(h, "%s:%d:%d\n", path, info.Size(), info.ModTime().UnixNano())
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

func loadFile(path string) ([]model.OrderLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true
	r.FieldsPerRecord = -1

	headerRow, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	header, err := model.ResolveHeader(headerRow)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var lines []model.OrderLine
	lineNo := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		lineNo++

		line, err := parseRecord(header, record)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, lineNo, err)
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func parseRecord(header model.Header, record []string) (model.OrderLine, error) {
	line := model.OrderLine{DaysSincePriorOrder: math.NaN()}

	var err error
	if line.UserID, err = intField(header, record, model.ColUserID); err != nil {
		return line, err
	}
	if line.OrderID, err = intField(header, record, model.ColOrderID); err != nil {
		return line, err
	}
	line.ProductName = stringField(header, record, model.ColProductName)
	line.Department = stringField(header, record, model.ColDepartment)
	line.Aisle = stringField(header, record, model.ColAisle)
	line.DayOfWeek = stringField(header, record, model.ColDayOfWeek)

	reordered, err := intField(header, record, model.ColReordered)
	if err != nil {
		return line, err
	}
	line.Reordered = int(reordered)

	cartOrder, err := intField(header, record, model.ColAddToCartOrder)
	if err != nil {
		return line, err
	}
	line.AddToCartOrder = int(cartOrder)

	orderNumber, err := intField(header, record, model.ColOrderNumber)
	if err != nil {
		return line, err
	}
	line.OrderNumber = int(orderNumber)

	hour, err := intField(header, record, model.ColHourOfDay)
	if err != nil {
		return line, err
	}
	line.HourOfDay = int(hour)

	if raw := stringField(header, record, model.ColDaysSincePriorOrder); raw != "" {
		days, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr != nil {
			return line, fmt.Errorf("invalid %s value %q", model.ColDaysSincePriorOrder, raw)
		}
		line.DaysSincePriorOrder = days
	}

	if err := line.Validate(); err != nil {
		return line, err
	}

	return line, nil
}

func stringField(header model.Header, record []string, col string) string {
	i := header.Index(col)
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func intField(header model.Header, record []string, col string) (int64, error) {
	raw := stringField(header, record, col)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Some exports write integral columns as floats ("9.0").
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != math.Trunc(f) {
			return 0, fmt.Errorf("invalid %s value %q", col, raw)
		}
		return int64(f), nil
	}
	return v, nil
}
