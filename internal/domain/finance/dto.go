package finance

import (
	"github.com/autodazzle/detailing-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	OccurredAt  string          `json:"occurred_at"`
}

type RecordTransactionRequest struct {
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	OccurredAt  string          `json:"occurred_at"`
}

func (r *RecordTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	switch TransactionType(r.Type) {
	case TransactionExpense, TransactionIncome:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: EXPENSE, INCOME",
		})
	}

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	}

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}

	if r.OccurredAt != "" && !validator.IsValidDate(r.OccurredAt) {
		errs = append(errs, validator.ValidationError{
			Field:   "occurred_at",
			Message: "occurred_at must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
