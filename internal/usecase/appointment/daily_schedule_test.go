package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnarosBeauty/salon-scheduler/internal/infra/repository"
	"github.com/AnarosBeauty/salon-scheduler/internal/timezone"
)

func TestDaySchedule(t *testing.T) {
	gdb := newTestDB(t)
	fx := seedBookingFixtures(t, gdb)
	repo := repository.NewAppointmentGormRepository(gdb)
	disp := newTestDispatcher(gdb)

	createUC := NewCreateAppointment(repo, disp, nil, testTZ)
	updateUC := NewUpdateAppointment(repo, disp, nil, testTZ)

	book := func(staffID, serviceID, date, hour string) string {
		t.Helper()
		ap, err := createUC.Execute(context.Background(), CreateAppointmentInput{
			ClientID:  fx.fatima.ID,
			StaffID:   staffID,
			ServiceID: serviceID,
			Date:      date,
			Time:      hour,
		})
		require.NoError(t, err)
		return ap.ID
	}

	// journée de Dounia, insérés dans le désordre
	afternoon := book(fx.dounia.ID, fx.gelMains.ID, "2025-03-01", "14:00")
	book(fx.dounia.ID, fx.gelMains.ID, "2025-03-01", "09:00")
	cancelled := book(fx.dounia.ID, fx.gelMains.ID, "2025-03-01", "11:00")

	// bruit : autre employée et autre journée
	book(fx.karima.ID, fx.brushing.ID, "2025-03-01", "10:00")
	book(fx.dounia.ID, fx.gelMains.ID, "2025-03-02", "09:00")

	_, err := updateUC.Execute(context.Background(), cancelled, UpdateAppointmentInput{
		Status: strPtr("cancelled"),
	})
	require.NoError(t, err)
	_, err = updateUC.Execute(context.Background(), afternoon, UpdateAppointmentInput{
		Status: strPtr("completed"),
	})
	require.NoError(t, err)

	date, err := timezone.ParseLocalDate(testTZ, "2025-03-01")
	require.NoError(t, err)

	day, err := NewDaySchedule(repo).Execute(context.Background(), fx.dounia.ID, date)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-01", day.Date)
	assert.Equal(t, fx.dounia.ID, day.StaffID)

	// annulé exclu, tri chronologique
	require.Len(t, day.Appointments, 2)
	assert.Equal(t, "09:00", day.Appointments[0].StartTime.In(timezone.Location(testTZ)).Format("15:04"))
	assert.Equal(t, "14:00", day.Appointments[1].StartTime.In(timezone.Location(testTZ)).Format("15:04"))

	assert.Equal(t, 2, day.Total)
	assert.Equal(t, 1, day.Pending)
	assert.Equal(t, 0, day.Confirmed)
	assert.Equal(t, 1, day.Completed)

	// fiche enrichie pour l'accueil
	first := day.Appointments[0]
	assert.Equal(t, "Fatima", first.ClientName)
	assert.Equal(t, "0550123456", first.Phone)
	assert.Equal(t, "Gel mains", first.Service)
	assert.Equal(t, 3500, first.Price)
	assert.Equal(t, 90, first.Duration)
}

func TestDaySchedule_EmptyDay(t *testing.T) {
	gdb := newTestDB(t)
	fx := seedBookingFixtures(t, gdb)
	repo := repository.NewAppointmentGormRepository(gdb)

	date, err := timezone.ParseLocalDate(testTZ, "2025-03-01")
	require.NoError(t, err)

	day, err := NewDaySchedule(repo).Execute(context.Background(), fx.dounia.ID, date)
	require.NoError(t, err)

	assert.NotNil(t, day.Appointments)
	assert.Empty(t, day.Appointments)
	assert.Equal(t, 0, day.Total)
}
