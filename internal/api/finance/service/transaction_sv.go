package financeService

import (
	"StudentPlanner/internal/api/finance"
	"StudentPlanner/internal/entity"
	contextPkg "StudentPlanner/pkg/context"
	"StudentPlanner/pkg/datetime"
	"StudentPlanner/pkg/notifier"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *financeService) CreateTransaction(ctx context.Context, req finance.CreateTransactionRequest) (finance.TransactionResponse, error) {
	sessionID := contextPkg.GetSessionID(ctx)

	if err := s.validator.Struct(req); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Invalid create transaction request")
		return finance.TransactionResponse{}, err
	}

	transactionType, err := entity.ParseTransactionType(req.Type)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"type":       req.Type,
		}).Warn("Invalid transaction type")
		return finance.TransactionResponse{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(s.now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return finance.TransactionResponse{}, err
	}

	transaction := entity.CashTransaction{
		ID:     ULID,
		Date:   strings.TrimSpace(req.Date),
		Desc:   strings.TrimSpace(req.Desc),
		Amount: req.Amount,
		Type:   transactionType,
	}

	if err := transaction.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return finance.TransactionResponse{}, err
	}

	transactions, err := s.financeRepository.LoadTransactions(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load transactions")
		return finance.TransactionResponse{}, err
	}

	transactions = append(transactions, transaction)

	if err := s.financeRepository.SaveTransactions(ctx, transactions); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to save transactions")
		return finance.TransactionResponse{}, finance.ErrSaveTransactions
	}

	s.notifier.Notify(notifier.LevelSuccess, "Transaksi berhasil disimpan!")

	return s.makeTransactionResponse(transaction), nil
}

func (s *financeService) GetTransactions(ctx context.Context) ([]finance.TransactionResponse, error) {
	sessionID := contextPkg.GetSessionID(ctx)

	transactions, err := s.financeRepository.LoadTransactions(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load transactions")
		return nil, err
	}

	// Newest first; ISO dates compare lexicographically, ties keep ledger order.
	sorted := make([]entity.CashTransaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Date > sorted[b].Date
	})

	result := make([]finance.TransactionResponse, 0, len(sorted))
	for _, transaction := range sorted {
		result = append(result, s.makeTransactionResponse(transaction))
	}

	return result, nil
}

func (s *financeService) Summary(ctx context.Context) (finance.SummaryResponse, error) {
	sessionID := contextPkg.GetSessionID(ctx)

	transactions, err := s.financeRepository.LoadTransactions(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load transactions")
		return finance.SummaryResponse{}, err
	}

	summary := finance.SummaryResponse{
		TransactionCount: len(transactions),
	}

	for _, transaction := range transactions {
		switch transaction.Type {
		case entity.TransactionTypeIncome:
			summary.TotalIncome += transaction.Amount
		case entity.TransactionTypeExpense:
			summary.TotalExpense += transaction.Amount
		}
	}

	// The balance is always derived, never stored.
	summary.Balance = summary.TotalIncome - summary.TotalExpense

	return summary, nil
}

func (s *financeService) makeTransactionResponse(transaction entity.CashTransaction) finance.TransactionResponse {
	response := finance.TransactionResponse{
		ID:              transaction.ID,
		Date:            transaction.Date,
		Desc:            transaction.Desc,
		Amount:          transaction.Amount,
		Type:            string(transaction.Type),
		FormattedAmount: s.utils.FormatRupiah(transaction.Amount),
	}

	if date, err := time.ParseInLocation("2006-01-02", transaction.Date, time.Local); err == nil {
		response.FormattedDate = datetime.FormatDate(date)
	}

	return response
}
