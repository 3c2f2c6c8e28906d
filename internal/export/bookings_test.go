package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stpnv0/VaccineBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteBookings(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	bookings := []*domain.Booking{
		{
			ID:          "b1",
			BookingDate: time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
			Status:      domain.BookingStatusConfirmed,
			UserInfo:    domain.UserInfo{Name: "Alice", Email: "alice@example.com", Phone: "+100"},
			VaccineInfo: domain.VaccineInfo{Name: "MMR", Location: "Main Hospital"},
			Doses: []domain.Dose{
				{Label: "Dose 1", ScheduledDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), Completed: true},
				{Label: "Dose 2", ScheduledDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)},
			},
			CreatedAt: now,
		},
		{ID: "b2", Status: domain.BookingStatusPending, CreatedAt: now},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBookings(&buf, bookings, now))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, headers, rows[0])
	assert.Equal(t, "b1", rows[1][0])
	assert.Equal(t, "alice@example.com", rows[1][2])
	assert.Equal(t, "2026-10-20", rows[1][6])
	assert.Equal(t, "confirmed", rows[1][7])
	assert.Equal(t, "Dose 1 (2026-10-01, done); Dose 2 (2026-11-01)", rows[1][8])
	assert.Equal(t, "b2", rows[2][0])
}

func TestWriteBookings_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBookings(&buf, nil, time.Now()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestFileName(t *testing.T) {
	got := FileName(time.Date(2026, 10, 18, 9, 5, 1, 0, time.UTC))
	assert.Equal(t, "bookings_export_2026-10-18_09-05-01.xlsx", got)
}
