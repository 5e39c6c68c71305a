package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cinevo/cinevo-cli/pkg/model"
)

// CreateTransaction posts a payment and returns the server-assigned
// transaction id.
func (c *Client) CreateTransaction(ctx context.Context, req model.TransactionRequest) (string, error) {
	env, err := c.do(ctx, http.MethodPost, "/transactions", nil, req)
	if err != nil {
		return "", fmt.Errorf("create transaction: %w", err)
	}
	if env.TransactionID == "" {
		return "", fmt.Errorf("create transaction: response missing transactionId")
	}
	return env.TransactionID, nil
}

// Transactions lists the authenticated account's purchase history.
func (c *Client) Transactions(ctx context.Context) ([]model.Transaction, error) {
	env, err := c.do(ctx, http.MethodGet, "/transactions", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	var txns []model.Transaction
	if err := results(env, &txns); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txns, nil
}
