package payroll

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/autodazzle/detailing-backend-go/internal/domain/catalog"
	"github.com/autodazzle/detailing-backend-go/internal/domain/job"
)

var (
	coatingBonusHigh = decimal.NewFromInt(6000)
	coatingBonusBase = decimal.NewFromInt(4000)
	coatingHighFloor = decimal.NewFromInt(30000)

	polishBonusHigh = decimal.NewFromInt(600)
	polishBonusMid  = decimal.NewFromInt(400)
	polishBonusLow  = decimal.NewFromInt(200)
	polishHighFloor = decimal.NewFromInt(6000)
	polishMidFloor  = decimal.NewFromInt(2500)
)

// applyJobIncentives evaluates each job on its own, independent of date
// grouping: referral commission for the referrer and the tiered premium
// service bonus for the crew.
func applyJobIncentives(led *ledger, jobs []job.Job, services []catalog.Service) {
	byID := make(map[string]catalog.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	for _, j := range jobs {
		// The referrer keeps the full commission even when a whole crew
		// worked the job.
		if j.ReferredBy != nil && *j.ReferredBy != "" {
			led.referral.add(*j.ReferredBy, j.Total.Mul(referralRate))
		}

		bonus := premiumBonus(j, byID)
		if bonus.IsZero() {
			continue
		}
		crew := staffSet{}
		crew.add(j.StaffIDs...)
		crew.splitEvenly(led.premium, bonus)
	}
}

// premiumBonus resolves the job's services against the catalog and picks
// the bonus tier. Coating takes precedence over polish; a job is never
// paid both. Unresolved service ids contribute nothing.
func premiumBonus(j job.Job, byID map[string]catalog.Service) decimal.Decimal {
	var hasCoating, hasPolish bool
	for _, id := range j.ServiceIDs {
		svc, ok := byID[id]
		if !ok {
			continue
		}
		name := strings.ToLower(svc.Name)
		sku := strings.ToLower(svc.SKU)
		if strings.Contains(name, "ceramic") || strings.Contains(sku, "ceramic") ||
			strings.Contains(name, "graphene") || strings.Contains(sku, "graphene") {
			hasCoating = true
		}
		if strings.Contains(name, "polish") || strings.Contains(strings.ToUpper(svc.SKU), "POL") {
			hasPolish = true
		}
	}

	switch {
	case hasCoating:
		if j.Total.GreaterThanOrEqual(coatingHighFloor) {
			return coatingBonusHigh
		}
		return coatingBonusBase
	case hasPolish:
		if j.Total.GreaterThanOrEqual(polishHighFloor) {
			return polishBonusHigh
		}
		if j.Total.GreaterThanOrEqual(polishMidFloor) {
			return polishBonusMid
		}
		// Totals between 2000 and 2500 land here as well; the tier
		// table has no bracket for them, so they pay the low bonus.
		return polishBonusLow
	}
	return decimal.Zero
}
