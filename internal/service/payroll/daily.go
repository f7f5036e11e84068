package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/autodazzle/detailing-backend-go/internal/domain/job"
)

// dailyJobLimit is the per-day baseline; only throughput above it earns
// the volume incentive.
const dailyJobLimit = 10

// applyDailyPools walks the month one date at a time and distributes the
// three per-day pools: the over-limit volume incentive for normal hours,
// the evening piece-rate plus profit share, and the Sunday profit share.
// It returns, per staff id, the distinct dates on which that person
// worked an evening job; the monthly shift bonus counts those.
func applyDailyPools(led *ledger, jobs []job.Job) map[string]map[string]struct{} {
	byDate := make(map[string][]job.Job)
	for _, j := range jobs {
		byDate[j.Date] = append(byDate[j.Date], j)
	}

	eveningDays := make(map[string]map[string]struct{})

	for date, dayJobs := range byDate {
		var normalCars, normalBikes int
		normalStaff := staffSet{}

		piecePool := decimal.Zero
		eveningRevenue := decimal.Zero
		eveningStaff := staffSet{}

		dayRevenue := decimal.Zero
		dayStaff := staffSet{}

		for _, j := range dayJobs {
			dayRevenue = dayRevenue.Add(j.Total)
			dayStaff.add(j.StaffIDs...)

			switch {
			case isNormalHours(j.TimeIn):
				if isTwoWheeler(j.VehicleClass) {
					normalBikes++
				} else {
					normalCars++
				}
				normalStaff.add(j.StaffIDs...)

			case isEvening(j.TimeIn):
				if isTwoWheeler(j.VehicleClass) {
					piecePool = piecePool.Add(bikePieceRate)
				} else {
					piecePool = piecePool.Add(carPieceRate)
				}
				eveningRevenue = eveningRevenue.Add(j.Total)
				eveningStaff.add(j.StaffIDs...)
				for _, id := range j.StaffIDs {
					if id == "" {
						continue
					}
					if eveningDays[id] == nil {
						eveningDays[id] = make(map[string]struct{})
					}
					eveningDays[id][date] = struct{}{}
				}
			}
		}

		volumePool := decimal.Zero
		if normalCars > dailyJobLimit {
			volumePool = volumePool.Add(decimal.NewFromInt(int64(normalCars - dailyJobLimit)).Mul(carPieceRate))
		}
		if normalBikes > dailyJobLimit {
			volumePool = volumePool.Add(decimal.NewFromInt(int64(normalBikes - dailyJobLimit)).Mul(bikePieceRate))
		}
		normalStaff.splitEvenly(led.dailyLimit, volumePool)

		// Piece pool and profit pool are split independently; each has
		// its own per-head share over the same evening crew.
		eveningStaff.splitEvenly(led.eveningLimit, piecePool)
		eveningStaff.splitEvenly(led.eveningProfit, eveningRevenue.Mul(profitMargin).Mul(staffShare))

		if isSunday(date) {
			dayStaff.splitEvenly(led.sundayProfit, dayRevenue.Mul(profitMargin).Mul(staffShare))
		}
	}

	return eveningDays
}
