package entity

import (
	"StudentPlanner/internal/api/finance"
	"strings"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// transactionTypeAliases accepts the Indonesian wire values written by older
// planner data.
var transactionTypeAliases = map[string]TransactionType{
	"masuk":  TransactionTypeIncome,
	"keluar": TransactionTypeExpense,
}

func IsValidTransactionType(transactionType string) bool {
	switch TransactionType(transactionType) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

func ParseTransactionType(transactionType string) (TransactionType, error) {
	normalized := strings.ToLower(strings.TrimSpace(transactionType))

	if IsValidTransactionType(normalized) {
		return TransactionType(normalized), nil
	}

	if canonical, ok := transactionTypeAliases[normalized]; ok {
		return canonical, nil
	}

	return "", finance.ErrInvalidTransactionType
}

type CashTransaction struct {
	ID     string          `json:"id"`
	Date   string          `json:"date"`
	Desc   string          `json:"desc"`
	Amount float64         `json:"amount"`
	Type   TransactionType `json:"type"`
}

func (t *CashTransaction) Validate() error {
	if strings.TrimSpace(t.Date) == "" {
		return finance.ErrTransactionDateRequired
	}

	if strings.TrimSpace(t.Desc) == "" {
		return finance.ErrTransactionDescRequired
	}

	// Direction is carried by the type, never by a signed amount.
	if t.Amount <= 0 {
		return finance.ErrInvalidAmount
	}

	if !IsValidTransactionType(string(t.Type)) {
		return finance.ErrInvalidTransactionType
	}

	return nil
}
