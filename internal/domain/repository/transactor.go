package repository

import "context"

// Transactor runs a unit of work atomically. Repositories called with the
// context passed to fn take part in the same transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	// WithinSerializableTransaction is WithinTransaction at serializable
	// isolation where the database supports choosing it.
	WithinSerializableTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
