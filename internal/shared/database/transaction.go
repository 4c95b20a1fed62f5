package database

import (
	"context"
	"errors"
	"time"

	"github.com/changhyeonkim/jpashop/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

var errNilTransactionFunc = errors.New("database: transaction function is nil")

// WithTransaction runs fn in a transaction bound to ctx.
// fn이 error를 반환하면 rollback, nil이면 commit 된다.
// Repositories still take the *gorm.DB explicitly, so the same method runs
// against the pool or against tx.
//
// Usage:
//
//	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    affected, err := repo.UpdateName(ctx, tx, memberID, name, &updatedBy)
//	    if err != nil {
//	        return err // rollback
//	    }
//	    if affected == 0 {
//	        return ErrMemberNotFound // rollback
//	    }
//	    return nil // commit
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return errNilTransactionFunc
	}
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	err := db.WithContext(ctx).Transaction(fn)
	if err != nil {
		logger.FromContext(ctx).Debug("트랜잭션 롤백",
			"elapsed", time.Since(start).String(),
			"error", err,
		)
	}
	return err
}
