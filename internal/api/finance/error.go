package finance

import "StudentPlanner/pkg/response"

var (
	ErrTransactionDateRequired = response.NewError(400, "transaction date is required")
	ErrTransactionDescRequired = response.NewError(400, "transaction description is required")
	ErrInvalidAmount           = response.NewError(400, "invalid transaction amount")
	ErrInvalidTransactionType  = response.NewError(400, "invalid transaction type")
	ErrSaveTransactions        = response.NewError(500, "failed to persist transactions")
)
