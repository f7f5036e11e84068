package finance

import "context"

type TransactionRepository interface {
	Create(ctx context.Context, t Transaction) (Transaction, error)
	ListByCategory(ctx context.Context, category string, limit int) ([]Transaction, error)
}
