package postgresql

import (
	"context"
	"fmt"

	"github.com/autodazzle/detailing-backend-go/internal/domain/finance"
	"github.com/autodazzle/detailing-backend-go/internal/pkg/database"
)

type transactionRepositoryImpl struct {
	db *database.DB
}

func NewTransactionRepository(db *database.DB) finance.TransactionRepository {
	return &transactionRepositoryImpl{db: db}
}

func (r *transactionRepositoryImpl) Create(ctx context.Context, t finance.Transaction) (finance.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO transactions (id, type, category, amount, description, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, type, category, amount, description, occurred_at, created_at
	`

	var created finance.Transaction
	err := q.QueryRow(ctx, query,
		t.ID, t.Type, t.Category, t.Amount, t.Description, t.OccurredAt,
	).Scan(
		&created.ID, &created.Type, &created.Category, &created.Amount,
		&created.Description, &created.OccurredAt, &created.CreatedAt,
	)
	if err != nil {
		return finance.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	return created, nil
}

func (r *transactionRepositoryImpl) ListByCategory(ctx context.Context, category string, limit int) ([]finance.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, type, category, amount, description, occurred_at, created_at
		FROM transactions
		WHERE category = $1
		ORDER BY occurred_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, category, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []finance.Transaction
	for rows.Next() {
		var t finance.Transaction
		err := rows.Scan(&t.ID, &t.Type, &t.Category, &t.Amount, &t.Description, &t.OccurredAt, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}
