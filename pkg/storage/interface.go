// Package storage defines the persistence interfaces for user options,
// notifications and queued jobs, together with transaction management.
// pkg/storage/postgres is the only backend.
//
//go:generate mockgen -destination=mock/mockstorage.go -package mockstorage recap/pkg/storage AllStorage,TxStorage,Storage,OptionStorage,NotificationStorage,JobStorage
package storage

import "context"

// AllStorage is everything the tracker, the notifier and the API read or
// write. Both the root handle and a transactional handle satisfy it.
type AllStorage interface {
	OptionStorage
	NotificationStorage
	JobStorage
}

// TxStorage is an AllStorage bound to one open transaction. It must not be
// used after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root handle returned by a backend constructor. It owns the
// connection pool.
type Storage interface {
	AllStorage

	Close() error

	// Begin starts a transaction; nested transactions are rejected with
	// ErrAlreadyInTx.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction, committing on nil and rolling back
	// otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
