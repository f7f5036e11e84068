package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autodazzle/detailing-backend-go/internal/domain/job"
)

func TestHourOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 9, hourOf("09:00"))
	assert.Equal(t, 18, hourOf("18:30"))
	assert.Equal(t, 0, hourOf("00:15"))

	// Legacy tickets: malformed times settle at hour 0.
	assert.Equal(t, 0, hourOf(""))
	assert.Equal(t, 0, hourOf("noon"))
	assert.Equal(t, 0, hourOf("25:00"))
	assert.Equal(t, 0, hourOf("-1:00"))
	assert.Equal(t, 0, hourOf("1830"))
}

func TestIsEvening(t *testing.T) {
	t.Parallel()

	assert.False(t, isEvening("17:59"))
	assert.True(t, isEvening("18:00"))
	assert.True(t, isEvening("20:45"))
	assert.False(t, isEvening(""))
}

func TestIsNormalHours(t *testing.T) {
	t.Parallel()

	assert.False(t, isNormalHours("08:59"))
	assert.True(t, isNormalHours("09:00"))
	assert.True(t, isNormalHours("17:30"))
	assert.False(t, isNormalHours("18:00"))
	assert.False(t, isNormalHours(""))
}

func TestIsSunday(t *testing.T) {
	t.Parallel()

	assert.True(t, isSunday("2024-06-02"))
	assert.False(t, isSunday("2024-06-03"))
	assert.False(t, isSunday("not-a-date"))
}

func TestIsTwoWheeler(t *testing.T) {
	t.Parallel()

	assert.True(t, isTwoWheeler(job.VehicleBike))
	assert.True(t, isTwoWheeler(job.VehicleScooty))
	assert.True(t, isTwoWheeler(job.VehicleBullet))
	assert.False(t, isTwoWheeler(job.VehicleSedan))
	assert.False(t, isTwoWheeler(job.VehicleLuxury))
}
