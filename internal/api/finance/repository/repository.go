package financeRepository

import (
	"StudentPlanner/internal/entity"
	"StudentPlanner/pkg/kv"
	"context"

	"github.com/sirupsen/logrus"
)

// Repository is the write-through gateway for the cash ledger. Missing or
// corrupt records degrade to an empty collection, never an error.
type Repository interface {
	LoadTransactions(ctx context.Context) ([]entity.CashTransaction, error)
	SaveTransactions(ctx context.Context, transactions []entity.CashTransaction) error
}

func New(store kv.Store, log *logrus.Logger) Repository {
	return &transactionRepository{
		store: store,
		log:   log,
	}
}

type transactionRepository struct {
	store kv.Store
	log   *logrus.Logger
}
