package financeRepository

import (
	"StudentPlanner/internal/entity"
	contextPkg "StudentPlanner/pkg/context"
	"StudentPlanner/pkg/kv"
	"context"
	"errors"

	jsoniter "github.com/json-iterator/go"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

const keyCashData = "cashData"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// transactionRecord tolerates the numeric ids and Indonesian type values older
// planner data carries on the wire.
type transactionRecord struct {
	ID     jsoniter.RawMessage `json:"id"`
	Date   string              `json:"date"`
	Desc   string              `json:"desc"`
	Amount float64             `json:"amount"`
	Type   string              `json:"type"`
}

func (r *transactionRepository) LoadTransactions(ctx context.Context) ([]entity.CashTransaction, error) {
	sessionID := contextPkg.GetSessionID(ctx)

	data, err := r.store.Get(ctx, keyCashData)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return []entity.CashTransaction{}, nil
		}
		r.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to read cash record")
		return nil, err
	}

	var records []transactionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		r.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Cash record unparseable, starting with empty collection")
		return []entity.CashTransaction{}, nil
	}

	transactions := make([]entity.CashTransaction, 0, len(records))
	for _, record := range records {
		transactions = append(transactions, r.makeCashTransaction(record))
	}

	return transactions, nil
}

func (r *transactionRepository) SaveTransactions(ctx context.Context, transactions []entity.CashTransaction) error {
	sessionID := contextPkg.GetSessionID(ctx)

	if transactions == nil {
		transactions = []entity.CashTransaction{}
	}

	data, err := json.Marshal(transactions)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to serialize cash record")
		return err
	}

	if err := r.store.Set(ctx, keyCashData, data); err != nil {
		r.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to write cash record")
		return err
	}

	return nil
}

func (r *transactionRepository) makeCashTransaction(record transactionRecord) entity.CashTransaction {
	id := string(record.ID)
	if len(id) >= 2 && id[0] == '"' && id[len(id)-1] == '"' {
		id = id[1 : len(id)-1]
	}
	if id == "" || id == "null" {
		id = ulid.Make().String()
	}

	transactionType := entity.TransactionType(record.Type)
	if parsed, err := entity.ParseTransactionType(record.Type); err == nil {
		transactionType = parsed
	}

	return entity.CashTransaction{
		ID:     id,
		Date:   record.Date,
		Desc:   record.Desc,
		Amount: record.Amount,
		Type:   transactionType,
	}
}
