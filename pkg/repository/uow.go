package repository

import (
	"context"

	recordrepo "github.com/c2ccalc/c2ccalc/pkg/repository/record"
	userrepo "github.com/c2ccalc/c2ccalc/pkg/repository/user"
)

// UnitOfWork defines the contract for transactional work and typed
// repository access. All repositories obtained inside Do share the same
// transaction; if the function returns an error the transaction is rolled
// back.
type UnitOfWork interface {
	// Do executes the given function within a transaction boundary.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// UserRepository returns the user repository bound to the current
	// session or transaction.
	UserRepository() (userrepo.Repository, error)

	// RecordRepository returns the record repository bound to the current
	// session or transaction.
	RecordRepository() (recordrepo.Repository, error)
}
