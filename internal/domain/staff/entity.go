package staff

import (
	"time"

	"github.com/shopspring/decimal"
)

type Staff struct {
	ID             string
	FullName       string
	Role           Role
	PhoneNumber    string
	BaseSalary     decimal.Decimal
	CurrentAdvance decimal.Decimal
	LoanBalance    decimal.Decimal
	JoinedAt       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Role string

const (
	RoleWasher         Role = "Washer"
	RoleDetailer       Role = "Detailer"
	RoleMasterDetailer Role = "Master Detailer"
	RoleOpsManager     Role = "Ops Manager"
	RoleAdmin          Role = "Admin"
)

func ValidRole(r string) bool {
	switch Role(r) {
	case RoleWasher, RoleDetailer, RoleMasterDetailer, RoleOpsManager, RoleAdmin:
		return true
	}
	return false
}
