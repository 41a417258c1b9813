// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/cartlens/cartlens/internal/model"
)

// Storage defines the contract for the dataset cache. The cache holds
// one dataset at a time, keyed by the signature of the CSV files it was
// loaded from; a signature mismatch means the cache is stale and the
// CSVs must be re-read.
type Storage interface {
	// Migrate brings the schema up to the expected version.
	Migrate(ctx context.Context) error

	// ReplaceDataset replaces the cached dataset wholesale.
	ReplaceDataset(ctx context.Context, signature string, lines []model.OrderLine) error

	// Dataset returns every cached order line in insertion order.
	Dataset(ctx context.Context) ([]model.OrderLine, error)

	// Signature returns the signature the cache was built from, or
	// common.ErrNotFound when nothing has been cached yet.
	Signature(ctx context.Context) (string, error)

	Close() error
}
