package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"salonbooking/infras/otel"
	"salonbooking/internal/domains/booking/model"
	catalogModel "salonbooking/internal/domains/catalog/model"
	"salonbooking/shared/constant"
	"salonbooking/shared/store"
)

// Booking keeps the confirmation snapshot in the browsing session.
type Booking interface {
	SaveConfirmation(ctx context.Context, c model.Confirmation)
	GetConfirmation(ctx context.Context) (model.Confirmation, bool)
	ClearFlow(ctx context.Context, appointmentID string)
}

type repositoryImpl struct {
	store *store.Store
	otel  otel.Otel
}

func New(s *store.Store, otel otel.Otel) Booking {
	return &repositoryImpl{
		store: s,
		otel:  otel,
	}
}

// SaveConfirmation writes the name, date, time and services the success step reads.
func (r *repositoryImpl) SaveConfirmation(ctx context.Context, c model.Confirmation) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".SaveConfirmation")
	defer scope.End()

	bucket := r.store.FromContext(ctx)

	bucket.Set(ctx, store.KeyConfirmedBooking, c.AppointmentID)
	bucket.Set(ctx, store.KeyCustomerName, c.CustomerName)
	bucket.Set(ctx, store.KeySelectedDate, c.Date)
	bucket.Set(ctx, store.KeySelectedTime, c.Time)
	store.SetJSON(ctx, bucket, store.KeySelectedServices, c.Services)

	if c.Staff != nil {
		store.SetJSON(ctx, bucket, store.KeySelectedBarber, c.Staff)
	}
}

// GetConfirmation reports false unless a submission completed in this session. Selected date
// and time alone are an unfinished flow.
func (r *repositoryImpl) GetConfirmation(ctx context.Context) (model.Confirmation, bool) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".GetConfirmation")
	defer scope.End()

	bucket := r.store.FromContext(ctx)

	appointmentID, _ := bucket.Get(ctx, store.KeyConfirmedBooking)
	if appointmentID == constant.Empty {
		return model.Confirmation{}, false
	}

	date, _ := bucket.Get(ctx, store.KeySelectedDate)
	hhmm, _ := bucket.Get(ctx, store.KeySelectedTime)
	name, _ := bucket.Get(ctx, store.KeyCustomerName)

	return model.Confirmation{
		AppointmentID: appointmentID,
		CustomerName:  name,
		Date:          date,
		Time:          hhmm,
		Services:      store.GetJSON(ctx, bucket, store.KeySelectedServices, []catalogModel.Service{}),
		Staff:         store.GetJSON[*model.StaffRef](ctx, bucket, store.KeySelectedBarber, nil),
	}, true
}

// ClearFlow drops every flow key, but only while the session still holds the confirmation of
// appointmentID. A flow started after that booking is left alone.
func (r *repositoryImpl) ClearFlow(ctx context.Context, appointmentID string) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".ClearFlow")
	defer scope.End()

	bucket := r.store.FromContext(ctx)

	if current, _ := bucket.Get(ctx, store.KeyConfirmedBooking); current != appointmentID {
		scope.SetAttribute("store.cleared", false)

		return
	}

	store.Clear(ctx, bucket, store.FlowKeys...)
	scope.SetAttribute("store.cleared", true)
}
