package data

import (
	"context"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// dummyTransactionManager only tags the context with a transaction id.
// Nothing is rolled back when f fails.
type dummyTransactionManager struct {
}

func NewDummyTransactionManager() TransactionManager {
	return &dummyTransactionManager{}
}

type dummyTransactionKey struct{}

func (d *dummyTransactionManager) Do(ctx context.Context, f func(ctx context.Context) error) error {
	if _, ok := ctx.Value(dummyTransactionKey{}).(uuid.UUID); ok {
		return f(ctx)
	}
	transactionID := uuid.New()
	logrus.Debugf("DummyTransactionManager.Do: transaction [%s]", transactionID)
	return f(context.WithValue(ctx, dummyTransactionKey{}, transactionID))
}

func (d *dummyTransactionManager) Get(ctx context.Context) any {
	tx, ok := ctx.Value(dummyTransactionKey{}).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return tx
}
