package payroll

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/autodazzle/detailing-backend-go/internal/domain/catalog"
	"github.com/autodazzle/detailing-backend-go/internal/domain/job"
	"github.com/autodazzle/detailing-backend-go/internal/domain/staff"
)

const (
	shiftBonusFullDays = 20
	shiftBonusHalfDays = 15
)

var (
	shiftBonusFull = decimal.NewFromInt(2000)
	shiftBonusHalf = decimal.NewFromInt(1500)

	washerPoolCut   = decimal.NewFromFloat(0.60)
	detailerPoolCut = decimal.NewFromFloat(0.40)
)

// applyShiftBonus pays the evening attendance bonus from the distinct
// evening dates collected by the daily pass. Below the half threshold
// there is no bonus at all.
func applyShiftBonus(led *ledger, eveningDays map[string]map[string]struct{}) {
	for staffID, dates := range eveningDays {
		switch {
		case len(dates) >= shiftBonusFullDays:
			led.shiftBonus.add(staffID, shiftBonusFull)
		case len(dates) >= shiftBonusHalfDays:
			led.shiftBonus.add(staffID, shiftBonusHalf)
		}
	}
}

// applyWashingPool shares the month's washing-category profit between the
// washer and detailer role groups. An empty role group's share is not
// reallocated to the other group; it simply goes undistributed.
func applyWashingPool(led *ledger, jobs []job.Job, services []catalog.Service, roster []staff.Staff) {
	washingIDs := make(map[string]struct{})
	for _, svc := range services {
		if strings.EqualFold(svc.Category, catalog.CategoryWashing) {
			washingIDs[svc.ID] = struct{}{}
		}
	}

	revenue := decimal.Zero
	for _, j := range jobs {
		for _, id := range j.ServiceIDs {
			if _, ok := washingIDs[id]; ok {
				revenue = revenue.Add(j.Total)
				break
			}
		}
	}
	pool := revenue.Mul(profitMargin).Mul(staffShare)
	if pool.IsZero() {
		return
	}

	washers := staffSet{}
	detailers := staffSet{}
	for _, member := range roster {
		switch member.Role {
		case staff.RoleWasher:
			washers.add(member.ID)
		case staff.RoleDetailer:
			detailers.add(member.ID)
		}
	}

	washers.splitEvenly(led.washingPool, pool.Mul(washerPoolCut))
	detailers.splitEvenly(led.washingPool, pool.Mul(detailerPoolCut))
}
