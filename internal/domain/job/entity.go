package job

import (
	"time"

	"github.com/shopspring/decimal"
)

// Job is a service ticket. Payroll only ever sees invoiced jobs; a job is
// immutable once it reaches that status.
type Job struct {
	ID           string
	Date         string // ISO date, "2006-01-02"
	TimeIn       string // "HH:MM", wall-clock time the vehicle arrived
	VehicleClass VehicleClass
	VehicleRegNo string
	CustomerName string
	ServiceIDs   []string
	StaffIDs     []string
	ReferredBy   *string
	Status       Status
	Total        decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type VehicleClass string

const (
	VehicleBike      VehicleClass = "BIKE"
	VehicleScooty    VehicleClass = "SCOOTY"
	VehicleBullet    VehicleClass = "BULLET"
	VehicleHatchback VehicleClass = "HATCHBACK"
	VehicleSedan     VehicleClass = "SEDAN"
	VehicleSUV       VehicleClass = "SUV"
	VehicleLuxury    VehicleClass = "LUXURY"
)

type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusInvoiced   Status = "INVOICED"
	StatusCancelled  Status = "CANCELLED"
)
