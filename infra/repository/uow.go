// Package repository provides the gorm-backed unit of work.
package repository

import (
	"context"

	infrarecord "github.com/c2ccalc/c2ccalc/infra/repository/record"
	infrauser "github.com/c2ccalc/c2ccalc/infra/repository/user"
	"github.com/c2ccalc/c2ccalc/pkg/repository"
	recordrepo "github.com/c2ccalc/c2ccalc/pkg/repository/record"
	userrepo "github.com/c2ccalc/c2ccalc/pkg/repository/user"
	"gorm.io/gorm"
)

type uow struct {
	db *gorm.DB
}

// NewUoW creates a unit of work over the given gorm session.
func NewUoW(db *gorm.DB) repository.UnitOfWork {
	return &uow{db: db}
}

// Do runs fn inside a database transaction. Repositories obtained from the
// unit of work passed to fn share that transaction; returning an error
// rolls it back.
func (u *uow) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&uow{db: tx})
	})
}

func (u *uow) UserRepository() (userrepo.Repository, error) {
	return infrauser.New(u.db), nil
}

func (u *uow) RecordRepository() (recordrepo.Repository, error) {
	return infrarecord.New(u.db), nil
}

var _ repository.UnitOfWork = (*uow)(nil)
