package repositories

import "context"

// UnitOfWork runs fn inside one database transaction. Repositories called
// with the ctx passed to fn join that transaction; a returned error rolls it back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(txCtx context.Context) error) error
}
