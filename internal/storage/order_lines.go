package storage

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/cartlens/cartlens/internal/common"
	"github.com/cartlens/cartlens/internal/model"
)

// ReplaceDataset replaces the cached dataset wholesale inside a single
// transaction. Insertion order preserves the load order of the lines.
func (s *SQLiteStorage) ReplaceDataset(ctx context.Context, signature string, lines []model.OrderLine) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(signature, "signature"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, "DELETE FROM order_lines"); err != nil {
		return fmt.Errorf("failed to clear order lines: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO order_lines (
			user_id, order_id, product_name, department, aisle,
			add_to_cart_order, reordered, order_number,
			days_since_prior_order, order_hour_of_day, day_of_week
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, line := range lines {
		var days any
		if line.HasDaysSincePrior() {
			days = line.DaysSincePriorOrder
		}
		if _, err = stmt.ExecContext(ctx,
			line.UserID, line.OrderID, line.ProductName, line.Department,
			line.Aisle, line.AddToCartOrder, line.Reordered,
			line.OrderNumber, days, line.HourOfDay, line.DayOfWeek,
		); err != nil {
			return fmt.Errorf("failed to insert order line: %w", err)
		}
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO datasets (id, signature, line_count, imported_at)
		VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			signature = excluded.signature,
			line_count = excluded.line_count,
			imported_at = CURRENT_TIMESTAMP
	`, signature, len(lines)); err != nil {
		return fmt.Errorf("failed to record dataset signature: %w", err)
	}

	return tx.Commit()
}

// Dataset returns every cached order line in insertion order.
func (s *SQLiteStorage) Dataset(ctx context.Context) ([]model.OrderLine, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, order_id, product_name, department, aisle,
			add_to_cart_order, reordered, order_number,
			days_since_prior_order, order_hour_of_day, day_of_week
		FROM order_lines
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query order lines: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var lines []model.OrderLine
	for rows.Next() {
		var line model.OrderLine
		var days sql.NullFloat64
		if err := rows.Scan(
			&line.UserID, &line.OrderID, &line.ProductName,
			&line.Department, &line.Aisle, &line.AddToCartOrder,
			&line.Reordered, &line.OrderNumber, &days,
			&line.HourOfDay, &line.DayOfWeek,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		if days.Valid {
			line.DaysSincePriorOrder = days.Float64
		} else {
			line.DaysSincePriorOrder = math.NaN()
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order lines: %w", err)
	}

	return lines, nil
}

// Signature returns the signature the cached dataset was built from, or
// common.ErrNotFound when nothing has been cached yet.
func (s *SQLiteStorage) Signature(ctx context.Context) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}

	var signature string
	err := s.db.QueryRowContext(ctx, "SELECT signature FROM datasets WHERE id = 1").Scan(&signature)
	if err == sql.ErrNoRows {
		return "", common.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query dataset signature: %w", err)
	}
	return signature, nil
}
