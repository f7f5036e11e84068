package finance

import "context"

// FinanceService defines business logic for the shop ledger
type FinanceService interface {
	RecordTransaction(ctx context.Context, req RecordTransactionRequest) (TransactionResponse, error)
	ListByCategory(ctx context.Context, category string, limit int) ([]TransactionResponse, error)
}
