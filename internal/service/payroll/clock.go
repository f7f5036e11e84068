package payroll

import (
	"strconv"
	"strings"
	"time"

	"github.com/autodazzle/detailing-backend-go/internal/domain/job"
)

const (
	normalHoursStart = 9
	eveningStart     = 18
)

// hourOf extracts the hour from an "HH:MM" string. Legacy tickets carry
// blank or malformed times; those fall back to hour 0 instead of erroring.
func hourOf(timeIn string) int {
	h, _, found := strings.Cut(timeIn, ":")
	if !found {
		return 0
	}
	hour, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || hour < 0 || hour > 23 {
		return 0
	}
	return hour
}

func isEvening(timeIn string) bool {
	return hourOf(timeIn) >= eveningStart
}

func isNormalHours(timeIn string) bool {
	h := hourOf(timeIn)
	return h >= normalHoursStart && h < eveningStart
}

func isSunday(dateISO string) bool {
	d, err := time.Parse("2006-01-02", dateISO)
	if err != nil {
		return false
	}
	return d.Weekday() == time.Sunday
}

func isTwoWheeler(class job.VehicleClass) bool {
	switch class {
	case job.VehicleBike, job.VehicleScooty, job.VehicleBullet:
		return true
	}
	return false
}
