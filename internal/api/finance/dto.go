package finance

type CreateTransactionRequest struct {
	Date   string  `json:"date" validate:"required"`
	Desc   string  `json:"desc" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Type   string  `json:"type" validate:"required"`
}

type TransactionResponse struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	Desc            string  `json:"desc"`
	Amount          float64 `json:"amount"`
	Type            string  `json:"type"`
	FormattedDate   string  `json:"formatted_date"`
	FormattedAmount string  `json:"formatted_amount"`
}

type SummaryResponse struct {
	TotalIncome      float64 `json:"total_income"`
	TotalExpense     float64 `json:"total_expense"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transaction_count"`
}
