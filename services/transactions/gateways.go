package transactions

import (
	"context"

	"github.com/waumini/sadaka/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/waumini/sadaka/services/transactions TransactionGW

// TransactionGW wraps the transaction endpoints of the finance API.
type TransactionGW interface {
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error)
	CompleteTransaction(ctx context.Context, id int64) error
}
