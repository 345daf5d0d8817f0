package ports

import "context"

// TxManager runs fn inside one storage transaction; repository calls made
// with the ctx it passes to fn join that transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
