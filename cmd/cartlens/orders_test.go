package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartlens/cartlens/internal/model"
	"github.com/cartlens/cartlens/internal/testutil"
)

func TestParseRowCount(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "10", want: 10},
		{in: "50", want: 50},
		{in: "1000", want: 1000},
		{in: "all", want: -1},
		{in: "7", wantErr: true},
		{in: "", wantErr: true},
		{in: "ALL", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseRowCount(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSliceRows(t *testing.T) {
	lines := []model.OrderLine{
		testutil.Line(1, 1, "A", "dairy", 0),
		testutil.Line(1, 2, "B", "dairy", 0),
		testutil.Line(1, 3, "C", "dairy", 0),
		testutil.Line(1, 4, "D", "dairy", 0),
	}

	t.Run("from top", func(t *testing.T) {
		got := sliceRows(lines, 2, false)
		require.Len(t, got, 2)
		assert.Equal(t, "A", got[0].ProductName)
		assert.Equal(t, "B", got[1].ProductName)
	})

	t.Run("from bottom", func(t *testing.T) {
		got := sliceRows(lines, 2, true)
		require.Len(t, got, 2)
		assert.Equal(t, "C", got[0].ProductName)
		assert.Equal(t, "D", got[1].ProductName)
	})

	t.Run("all rows", func(t *testing.T) {
		assert.Len(t, sliceRows(lines, -1, false), 4)
	})

	t.Run("n larger than dataset", func(t *testing.T) {
		assert.Len(t, sliceRows(lines, 1000, true), 4)
	})

	t.Run("empty dataset", func(t *testing.T) {
		assert.Empty(t, sliceRows(nil, 10, false))
	})
}
