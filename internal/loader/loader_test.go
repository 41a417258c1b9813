package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartlens/cartlens/internal/common"
	"github.com/cartlens/cartlens/internal/testutil"
)

func TestDiscover(t *testing.T) {
	t.Run("missing directory is a config error", func(t *testing.T) {
		_, err := Discover(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrNoDataDir)
	})

	t.Run("directory without CSV files is a config error", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0o600))

		_, err := Discover(dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrNoCSVFiles)
	})

	t.Run("single CSV file path is a one-file dataset", func(t *testing.T) {
		dir := t.TempDir()
		path := testutil.WriteCSV(t, dir, "orders.csv", testutil.StandardHeader, nil)

		files, err := Discover(path)
		require.NoError(t, err)
		assert.Equal(t, []string{path}, files)
	})

	t.Run("non-CSV file path is a config error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "orders.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

		_, err := Discover(path)
		assert.ErrorIs(t, err, common.ErrNoCSVFiles)
	})

	t.Run("CSV files are returned sorted by name", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"b.csv", "a.CSV", "c.csv", "skip.json"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
		}

		files, err := Discover(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.CSV"),
			filepath.Join(dir, "b.csv"),
			filepath.Join(dir, "c.csv"),
		}, files)
	})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("concatenates files preserving order", func(t *testing.T) {
		dir := t.TempDir()
		testutil.WriteCSV(t, dir, "01_first.csv", testutil.StandardHeader, [][]string{
			{"1", "100", "Milk", "dairy", "fresh milk", "1", "1", "3", "7", "9", "Monday"},
			{"1", "100", "Eggs", "dairy", "eggs", "2", "0", "3", "7", "9", "Monday"},
		})
		testutil.WriteCSV(t, dir, "02_second.csv", testutil.StandardHeader, [][]string{
			{"2", "200", "Bananas", "produce", "fresh fruits", "1", "1", "5", "", "14", "Friday"},
		})

		lines, err := Load(ctx, dir)
		require.NoError(t, err)
		require.Len(t, lines, 3)

		assert.Equal(t, "Milk", lines[0].ProductName)
		assert.Equal(t, "Eggs", lines[1].ProductName)
		assert.Equal(t, "Bananas", lines[2].ProductName)

		assert.Equal(t, int64(1), lines[0].UserID)
		assert.Equal(t, int64(100), lines[0].OrderID)
		assert.Equal(t, 1, lines[0].Reordered)
		assert.Equal(t, 9, lines[0].HourOfDay)
		assert.Equal(t, "Monday", lines[0].DayOfWeek)
		assert.Equal(t, 7.0, lines[0].DaysSincePriorOrder)

		// Blank days_since_prior_order loads as NaN.
		assert.False(t, lines[2].HasDaysSincePrior())
	})

	t.Run("variant column names resolve to the canonical schema", func(t *testing.T) {
		dir := t.TempDir()
		header := []string{"user_id", "order_id", "product_name", "department", "aisle", "reordered", "Hour", "Day"}
		testutil.WriteCSV(t, dir, "variant.csv", header, [][]string{
			{"3", "300", "Limes", "produce", "fresh fruits", "0", "17", "Sunday"},
		})

		lines, err := Load(ctx, dir)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 17, lines[0].HourOfDay)
		assert.Equal(t, "Sunday", lines[0].DayOfWeek)
	})

	t.Run("missing required column names the column", func(t *testing.T) {
		dir := t.TempDir()
		testutil.WriteCSV(t, dir, "bad.csv",
			[]string{"user_id", "order_id", "product_name", "department", "aisle"},
			[][]string{{"1", "1", "Milk", "dairy", "fresh milk"}})

		_, err := Load(ctx, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reordered")
		assert.Contains(t, err.Error(), "bad.csv")
	})

	t.Run("malformed numeric cell names file and line", func(t *testing.T) {
		dir := t.TempDir()
		testutil.WriteCSV(t, dir, "rows.csv", testutil.StandardHeader, [][]string{
			{"1", "100", "Milk", "dairy", "fresh milk", "1", "1", "3", "7", "9", "Monday"},
			{"oops", "101", "Eggs", "dairy", "eggs", "1", "0", "3", "7", "9", "Monday"},
		})

		_, err := Load(ctx, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 3")
		assert.Contains(t, err.Error(), "user_id")
	})

	t.Run("reordered outside 0 1 is rejected", func(t *testing.T) {
		dir := t.TempDir()
		testutil.WriteCSV(t, dir, "rows.csv", testutil.StandardHeader, [][]string{
			{"1", "100", "Milk", "dairy", "fresh milk", "1", "2", "3", "7", "9", "Monday"},
		})

		_, err := Load(ctx, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reordered")
	})

	t.Run("integral float cells are accepted", func(t *testing.T) {
		dir := t.TempDir()
		testutil.WriteCSV(t, dir, "rows.csv", testutil.StandardHeader, [][]string{
			{"1", "100", "Milk", "dairy", "fresh milk", "1", "1.0", "3", "7.0", "9.0", "Monday"},
		})

		lines, err := Load(ctx, dir)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].Reordered)
		assert.Equal(t, 9, lines[0].HourOfDay)
	})
}

func TestLoadFiles_Progress(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for _, name := range []string{"a.csv", "b.csv"} {
		files = append(files, testutil.WriteCSV(t, dir, name, testutil.StandardHeader, [][]string{
			{"1", "100", "Milk", "dairy", "fresh milk", "1", "1", "3", "7", "9", "Monday"},
		}))
	}

	var calls [][2]int
	_, err := LoadFiles(context.Background(), files, func(done, total int) {
		calls = append(calls, [2]int{done, total})
	})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 2}, {2, 2}}, calls)
}

func TestLoadFiles_ContextCancellation(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteCSV(t, dir, "a.csv", testutil.StandardHeader, [][]string{
		{"1", "100", "Milk", "dairy", "fresh milk", "1", "1", "3", "7", "9", "Monday"},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadFiles(ctx, []string{path}, nil)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSignature(t *testing.T) {
	dir := t.TempDir()
	a := testutil.WriteCSV(t, dir, "a.csv", testutil.StandardHeader, nil)
	b := testutil.WriteCSV(t, dir, "b.csv", testutil.StandardHeader, nil)

	sig1, err := Signature([]string{a, b})
	require.NoError(t, err)

	sig2, err := Signature([]string{a, b})
	require.NoError(t, err)
	assert.Equal(t, sig1, sig2, "same files should produce the same signature")

	// Touching a file changes the signature.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(a, future, future))

	sig3, err := Signature([]string{a, b})
	require.NoError(t, err)
	assert.NotEqual(t, sig1, sig3, "modified file should change the signature")

	// File order matters.
	sig4, err := Signature([]string{b, a})
	require.NoError(t, err)
	assert.NotEqual(t, sig3, sig4)

	_, err = Signature([]string{filepath.Join(dir, "missing.csv")})
	assert.Error(t, err)
}
