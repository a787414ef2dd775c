package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SalonHelios/salon-scheduler/internal/models"
)

func layoutFixture(start time.Time, durationMin int, userID uint) models.Appointment {
	return models.Appointment{
		ID:        1,
		Title:     "Medicinska masaža",
		UserID:    userID,
		StartTime: start,
		Status:    string(StatusScheduled),
		Service: models.Service{
			Name:        "Medicinska masaža",
			DurationMin: durationMin,
		},
		Clients: []models.Client{
			{Name: "Ana Petrović", Phone: "+381641234567"},
		},
	}
}

func TestLayoutOffsetAndExtent(t *testing.T) {
	// 09:30 is opening hour + 90 minutes.
	start := time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)
	ap := layoutFixture(start, 45, 1)

	blocks := Layout([]models.Appointment{ap}, []uint{1, 2}, DefaultLayout)
	require.Len(t, blocks, 1)

	assert.InDelta(t, 120.0, blocks[0].Top, 1e-9)   // 90 * 40/30
	assert.InDelta(t, 56.0, blocks[0].Height, 1e-9) // 45 * 40/30 - 4
	assert.Equal(t, "2026-03-14", blocks[0].Date)
	assert.Equal(t, 0, blocks[0].Column)
}

func TestLayoutColumnsFollowEmployeeOrder(t *testing.T) {
	start := time.Date(2026, 3, 14, 8, 0, 0, 0, time.Local)

	first := layoutFixture(start, 30, 7)
	second := layoutFixture(start, 30, 3)
	unknown := layoutFixture(start, 30, 99)

	blocks := Layout([]models.Appointment{first, second, unknown}, []uint{3, 7}, DefaultLayout)
	require.Len(t, blocks, 3)

	assert.Equal(t, 1, blocks[0].Column)
	assert.Equal(t, 0, blocks[1].Column)
	// Unlisted employees get appended after the fixed columns.
	assert.Equal(t, 2, blocks[2].Column)
}

func TestCategoryPrecedence(t *testing.T) {
	assert.Equal(t, "cancelled", Category(StatusCancelled, true, 0))
	assert.Equal(t, "finished", Category(StatusFinished, true, 1))
	assert.Equal(t, "group", Category(StatusScheduled, true, 0))
	assert.Equal(t, "employee-1", Category(StatusScheduled, false, 0))
	assert.Equal(t, "employee-2", Category(StatusScheduled, false, 1))
}

func TestBlockLabel(t *testing.T) {
	ap := layoutFixture(time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local), 45, 1)
	assert.Equal(t, "Ana, Medi. masaža", BlockLabel(&ap))

	ap.Service.IsGroup = true
	ap.Clients = append(ap.Clients,
		models.Client{Name: "Mila Jovanović"},
		models.Client{Name: "Sara Ilić"},
	)
	assert.Equal(t, "Ana +2, Medi. masaža", BlockLabel(&ap))

	ap.Clients = nil
	assert.Equal(t, "Medi. masaža", BlockLabel(&ap))
}

func TestStatusValid(t *testing.T) {
	assert.True(t, Status("scheduled").Valid())
	assert.True(t, Status("finished").Valid())
	assert.True(t, Status("cancelled").Valid())
	assert.False(t, Status("done").Valid())
}
