package memory

import "context"

// TxManager satisfies the port without real transactional semantics; the
// repos lock the store per call, which is enough for tests.
type TxManager struct{}

func NewTxManager() TxManager {
	return TxManager{}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
