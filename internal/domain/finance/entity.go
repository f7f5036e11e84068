package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionExpense TransactionType = "EXPENSE"
	TransactionIncome  TransactionType = "INCOME"
)

const CategoryLaborExpense = "Labor Expense"

// Transaction is a ledger entry. Payroll posts exactly one aggregate
// expense per finalized month; invoicing posts income elsewhere.
type Transaction struct {
	ID          string
	Type        TransactionType
	Category    string
	Amount      decimal.Decimal
	Description string
	OccurredAt  time.Time
	CreatedAt   time.Time
}
