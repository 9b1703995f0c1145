package repositories

import "context"

// UnitOfWork runs a function inside a single database transaction. Used for
// multi-row writes that must land together (e.g. a shop order and its lines).
type UnitOfWork interface {
	Do(ctx context.Context, f func(ctx context.Context) error) error
}
