package gateway_http

import (
	"context"
	"fmt"

	httpclient "github.com/waumini/sadaka/internal/pkg/http"
	"github.com/waumini/sadaka/internal/pkg/models"
)

// TransactionGateway implements the transaction endpoints of the finance API.
type TransactionGateway struct {
	client *httpclient.Client
}

// NewTransactionGateway creates a new transaction gateway.
func NewTransactionGateway(client *httpclient.Client) *TransactionGateway {
	return &TransactionGateway{client: client}
}

// ListTransactions fetches the filtered list. The whole filter set is
// encoded on every call; empty fields are omitted.
func (g *TransactionGateway) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	var list []models.Transaction
	if err := g.client.Get(ctx, "/api/transactions/", filter.Values(), &list); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return list, nil
}

// CreateTransaction records a new transaction and returns the server's copy.
func (g *TransactionGateway) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	var created models.Transaction
	if err := g.client.Post(ctx, "/api/transactions/", req, &created); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return &created, nil
}

// CompleteTransaction triggers the PENDING -> COMPLETED transition.
func (g *TransactionGateway) CompleteTransaction(ctx context.Context, id int64) error {
	endpoint := fmt.Sprintf("/api/transactions/%d/complete/", id)
	if err := g.client.Post(ctx, endpoint, nil, nil); err != nil {
		return fmt.Errorf("failed to complete transaction %d: %w", id, err)
	}
	return nil
}
