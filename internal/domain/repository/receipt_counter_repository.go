package repository

import "context"

// ReceiptCounterRepository defines atomic counters for receipt series
type ReceiptCounterRepository interface {
	// Increment bumps the series counter and returns the new value.
	// found is false when the series has no counter row yet.
	Increment(ctx context.Context, series string) (serial int64, found bool, err error)
	// Seed creates the series counter at lastSerial unless it already exists
	Seed(ctx context.Context, series string, lastSerial int64) error
}
