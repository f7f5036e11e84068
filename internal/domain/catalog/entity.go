package catalog

import "time"

// Service is a catalog entry for a detailing service the shop sells.
// The payroll engine matches entries by category (washing pool) and by
// name/SKU keywords (premium bonus detection).
type Service struct {
	ID        string
	Name      string
	SKU       string
	Category  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	CategoryWashing   = "WASHING"
	CategoryDetailing = "DETAILING"
	CategoryCoating   = "COATING"
	CategoryAddon     = "ADDON"
)
