package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbooking/infras/otel/mocks"
	"salonbooking/internal/domains/booking/model"
	"salonbooking/internal/domains/booking/repository"
	catalogModel "salonbooking/internal/domains/catalog/model"
	"salonbooking/shared/clock"
	"salonbooking/shared/store"
)

func newRepository(t *testing.T) (repository.Booking, *store.Store) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c := clock.NewMockClock(time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))
	s := store.New(store.NewRedisPersistence(client, mocks.NewOtel(), time.Hour), time.Hour, c, nil)

	return repository.New(s, mocks.NewOtel()), s
}

func TestBookingRepository_Confirmation(t *testing.T) {
	repo, s := newRepository(t)
	ctx := store.WithSessionID(context.Background(), "browser-1")

	_, ok := repo.GetConfirmation(ctx)
	assert.False(t, ok)

	want := model.Confirmation{
		AppointmentID: "appt-1",
		CustomerName:  "Giulia Rossi",
		Date:          "2025-06-10",
		Time:          "10:00",
		Services:      []catalogModel.Service{{ID: "svc-haircut", Name: "Haircut", DurationMin: 30}},
		Staff:         &model.StaffRef{ID: "staff-alice", Name: "Alice"},
	}
	repo.SaveConfirmation(ctx, want)

	got, ok := repo.GetConfirmation(ctx)
	require.True(t, ok)
	assert.Equal(t, want, got)

	other, ok := repo.GetConfirmation(store.WithSessionID(context.Background(), "browser-2"))
	assert.False(t, ok)
	assert.Empty(t, other.CustomerName)

	repo.ClearFlow(ctx, "appt-1")

	_, ok = repo.GetConfirmation(ctx)
	assert.False(t, ok)

	_, found := s.Session("browser-1").Get(ctx, store.KeyCustomerName)
	assert.False(t, found)
}

func TestBookingRepository_ConfirmationWithoutStaff(t *testing.T) {
	repo, _ := newRepository(t)
	ctx := store.WithSessionID(context.Background(), "browser-1")

	repo.SaveConfirmation(ctx, model.Confirmation{AppointmentID: "appt-1", CustomerName: "Giulia Rossi", Date: "2025-06-10", Time: "10:00"})

	got, ok := repo.GetConfirmation(ctx)
	require.True(t, ok)
	assert.Nil(t, got.Staff)
	assert.Empty(t, got.Services)
}

func TestBookingRepository_UnfinishedFlowHasNoConfirmation(t *testing.T) {
	repo, s := newRepository(t)
	ctx := store.WithSessionID(context.Background(), "browser-1")

	bucket := s.FromContext(ctx)
	bucket.Set(ctx, store.KeySelectedDate, "2025-06-10")
	bucket.Set(ctx, store.KeySelectedTime, "10:00")
	bucket.Set(ctx, store.KeyCustomerName, "Giulia Rossi")

	_, ok := repo.GetConfirmation(ctx)
	assert.False(t, ok)
}

func TestBookingRepository_ClearFlowSparesNewerFlow(t *testing.T) {
	repo, s := newRepository(t)
	ctx := store.WithSessionID(context.Background(), "browser-1")

	repo.SaveConfirmation(ctx, model.Confirmation{AppointmentID: "appt-1", CustomerName: "Giulia Rossi", Date: "2025-06-10", Time: "10:00"})
	repo.SaveConfirmation(ctx, model.Confirmation{AppointmentID: "appt-2", CustomerName: "Giulia Rossi", Date: "2025-06-12", Time: "11:00"})

	repo.ClearFlow(ctx, "appt-1")

	got, ok := repo.GetConfirmation(ctx)
	require.True(t, ok)
	assert.Equal(t, "appt-2", got.AppointmentID)

	bucket := s.FromContext(ctx)
	bucket.Remove(ctx, store.KeyConfirmedBooking)
	bucket.Set(ctx, store.KeySelectedTime, "15:00")

	repo.ClearFlow(ctx, "appt-2")

	hhmm, found := bucket.Get(ctx, store.KeySelectedTime)
	require.True(t, found)
	assert.Equal(t, "15:00", hhmm)
}
