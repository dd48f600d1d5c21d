package repository

import (
	"context"
	"errors"
)

// ErrMsgTxClosed is reported when a finished transaction is used again.
const ErrMsgTxClosed = "transaction already closed"

// ErrTxClosed is returned by Commit or Rollback on a transaction that already ended.
var ErrTxClosed = errors.New(ErrMsgTxClosed)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
