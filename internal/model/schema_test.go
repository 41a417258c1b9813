package model

import (
	"strings"
	"testing"
)

func TestResolveHeader(t *testing.T) {
	tests := []struct {
		name    string
		want    map[string]int
		header  []string
		wantErr string
	}{
		{
			name: "canonical names resolve directly",
			header: []string{
				"user_id", "order_id", "product_name", "department",
				"aisle", "reordered", "order_hour_of_day", "day_of_week",
			},
			want: map[string]int{
				ColUserID: 0, ColOrderID: 1, ColProductName: 2,
				ColDepartment: 3, ColAisle: 4, ColReordered: 5,
				ColHourOfDay: 6, ColDayOfWeek: 7,
			},
		},
		{
			name: "variant hour and day columns map to canonical",
			header: []string{
				"user_id", "order_id", "product_name", "department",
				"aisle", "reordered", "Hour", "Day",
			},
			want: map[string]int{
				ColHourOfDay: 6, ColDayOfWeek: 7,
			},
		},
		{
			name: "order_hour_bins maps to canonical hour",
			header: []string{
				"user_id", "order_id", "product_name", "department",
				"aisle", "reordered", "order_hour_bins",
			},
			want: map[string]int{ColHourOfDay: 6},
		},
		{
			name: "header cells are trimmed and case-insensitive",
			header: []string{
				" User_ID ", "ORDER_ID", "Product_Name", "Department",
				"Aisle", "Reordered",
			},
			want: map[string]int{ColUserID: 0, ColOrderID: 1},
		},
		{
			name:    "missing required columns are all reported",
			header:  []string{"user_id", "product_name", "aisle"},
			wantErr: "missing required columns: department, order_id, reordered",
		},
		{
			name:    "empty header fails",
			header:  []string{},
			wantErr: "missing required columns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := ResolveHeader(tt.header)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ResolveHeader() expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ResolveHeader() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveHeader() unexpected error: %v", err)
			}
			for col, idx := range tt.want {
				if got := h.Index(col); got != idx {
					t.Errorf("Index(%q) = %d, want %d", col, got, idx)
				}
			}
		})
	}
}

func TestHeader_IndexMissing(t *testing.T) {
	h := Header{ColUserID: 0}
	if got := h.Index(ColDayOfWeek); got != -1 {
		t.Errorf("Index of absent column = %d, want -1", got)
	}
}
