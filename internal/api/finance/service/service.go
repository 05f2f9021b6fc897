package financeService

import (
	"StudentPlanner/internal/api/finance"
	financeRepository "StudentPlanner/internal/api/finance/repository"
	"StudentPlanner/pkg/notifier"
	"StudentPlanner/pkg/utils"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IFinanceService interface {
	CreateTransaction(ctx context.Context, req finance.CreateTransactionRequest) (finance.TransactionResponse, error)
	GetTransactions(ctx context.Context) ([]finance.TransactionResponse, error)
	Summary(ctx context.Context) (finance.SummaryResponse, error)
}

type financeService struct {
	log               *logrus.Logger
	validator         *validator.Validate
	financeRepository financeRepository.Repository
	notifier          notifier.INotifier
	utils             utils.IUtils
	now               func() time.Time
}

func NewFinanceService(
	log *logrus.Logger,
	validate *validator.Validate,
	fr financeRepository.Repository,
	n notifier.INotifier,
	u utils.IUtils,
	now func() time.Time,
) IFinanceService {
	if now == nil {
		now = time.Now
	}

	return &financeService{
		log:               log,
		validator:         validate,
		financeRepository: fr,
		notifier:          n,
		utils:             u,
		now:               now,
	}
}
