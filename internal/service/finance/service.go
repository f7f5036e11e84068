package finance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/autodazzle/detailing-backend-go/internal/domain/finance"
)

type FinanceServiceImpl struct {
	transactionRepo finance.TransactionRepository

	now func() time.Time
}

func NewFinanceService(transactionRepo finance.TransactionRepository) finance.FinanceService {
	return &FinanceServiceImpl{
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

func (s *FinanceServiceImpl) RecordTransaction(ctx context.Context, req finance.RecordTransactionRequest) (finance.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return finance.TransactionResponse{}, err
	}

	occurredAt := s.now()
	if req.OccurredAt != "" {
		parsed, err := time.Parse("2006-01-02", req.OccurredAt)
		if err == nil {
			occurredAt = parsed
		}
	}

	created, err := s.transactionRepo.Create(ctx, finance.Transaction{
		ID:          uuid.NewString(),
		Type:        finance.TransactionType(req.Type),
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		OccurredAt:  occurredAt,
	})
	if err != nil {
		return finance.TransactionResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *FinanceServiceImpl) ListByCategory(ctx context.Context, category string, limit int) ([]finance.TransactionResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	transactions, err := s.transactionRepo.ListByCategory(ctx, category, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]finance.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		responses = append(responses, mapToResponse(t))
	}

	return responses, nil
}

func mapToResponse(t finance.Transaction) finance.TransactionResponse {
	return finance.TransactionResponse{
		ID:          t.ID,
		Type:        string(t.Type),
		Category:    t.Category,
		Amount:      t.Amount,
		Description: t.Description,
		OccurredAt:  t.OccurredAt.Format("2006-01-02"),
	}
}
