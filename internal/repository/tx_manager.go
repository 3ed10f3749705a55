package repository

import "context"

// Repositories bound to one transaction.
type TxRepos interface {
	Users() UserRepository
	Profiles() ProfileRepository
}

// TransactionManager hides begin/commit/rollback from usecases.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
