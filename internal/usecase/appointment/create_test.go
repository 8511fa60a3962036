package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnarosBeauty/salon-scheduler/internal/httperr"
	"github.com/AnarosBeauty/salon-scheduler/internal/infra/repository"
	"github.com/AnarosBeauty/salon-scheduler/internal/models"
	"github.com/AnarosBeauty/salon-scheduler/internal/timezone"
)

func TestCreateAppointment_EndDerivedFromDuration(t *testing.T) {
	gdb := newTestDB(t)
	fx := seedBookingFixtures(t, gdb)

	repo := repository.NewAppointmentGormRepository(gdb)
	uc := NewCreateAppointment(repo, newTestDispatcher(gdb), nil, testTZ)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:  fx.fatima.ID,
		StaffID:   fx.dounia.ID,
		ServiceID: fx.gelMains.ID,
		Date:      "2025-03-01",
		Time:      "09:00",
	})
	require.NoError(t, err)

	loc := timezone.Location(testTZ)
	wantStart := time.Date(2025, 3, 1, 9, 0, 0, 0, loc)
	wantEnd := time.Date(2025, 3, 1, 10, 30, 0, 0, loc)

	assert.Equal(t, "pending", ap.Status)
	assert.True(t, ap.StartTime.Equal(wantStart), "start %v", ap.StartTime)
	assert.True(t, ap.EndTime.Equal(wantEnd), "end %v", ap.EndTime)

	stored, err := repo.GetAppointmentByID(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", stored.Status)
	assert.True(t, stored.EndTime.Equal(wantEnd))
	assert.Equal(t, "Fatima", stored.Client.FullName)
	assert.Equal(t, "Gel mains", stored.Service.Name)
}

func TestCreateAppointment_StaffNotSkilled(t *testing.T) {
	gdb := newTestDB(t)
	fx := seedBookingFixtures(t, gdb)

	repo := repository.NewAppointmentGormRepository(gdb)
	uc := NewCreateAppointment(repo, newTestDispatcher(gdb), nil, testTZ)

	// Karima ne couvre pas l'onglerie
	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:  fx.fatima.ID,
		StaffID:   fx.karima.ID,
		ServiceID: fx.gelMains.ID,
		Date:      "2025-03-01",
		Time:      "09:00",
	})
	require.True(t, httperr.IsBusiness(err, "staff_not_skilled"), "got %v", err)

	var count int64
	require.NoError(t, gdb.Model(&models.Appointment{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "no appointment must be persisted")
}

func TestCreateAppointment_UnknownReferences(t *testing.T) {
	gdb := newTestDB(t)
	fx := seedBookingFixtures(t, gdb)

	repo := repository.NewAppointmentGormRepository(gdb)
	uc := NewCreateAppointment(repo, newTestDispatcher(gdb), nil, testTZ)

	cases := []struct {
		name string
		in   CreateAppointmentInput
		code string
	}{
		{
			"client inconnu",
			CreateAppointmentInput{ClientID: "missing", StaffID: fx.dounia.ID, ServiceID: fx.gelMains.ID, Date: "2025-03-01", Time: "09:00"},
			"client_not_found",
		},
		{
			"employée inconnue",
			CreateAppointmentInput{ClientID: fx.fatima.ID, StaffID: "missing", ServiceID: fx.gelMains.ID, Date: "2025-03-01", Time: "09:00"},
			"staff_not_found",
		},
		{
			"prestation inconnue",
			CreateAppointmentInput{ClientID: fx.fatima.ID, StaffID: fx.dounia.ID, ServiceID: "missing", Date: "2025-03-01", Time: "09:00"},
			"service_not_found",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}
}

func TestCreateAppointment_InvalidDateOrTime(t *testing.T) {
	gdb := newTestDB(t)
	fx := seedBookingFixtures(t, gdb)

	repo := repository.NewAppointmentGormRepository(gdb)
	uc := NewCreateAppointment(repo, newTestDispatcher(gdb), nil, testTZ)

	for _, tc := range []struct{ date, hour string }{
		{"2025-13-40", "09:00"},
		{"01/03/2025", "09:00"},
		{"2025-03-01", "9h30"},
		{"", ""},
	} {
		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			ClientID:  fx.fatima.ID,
			StaffID:   fx.dounia.ID,
			ServiceID: fx.gelMains.ID,
			Date:      tc.date,
			Time:      tc.hour,
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"),
			"date=%q time=%q got %v", tc.date, tc.hour, err)
	}
}
