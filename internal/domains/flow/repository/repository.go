package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"salonbooking/infras/otel"
	bookingModel "salonbooking/internal/domains/booking/model"
	catalogModel "salonbooking/internal/domains/catalog/model"
	"salonbooking/internal/domains/flow/model"
	"salonbooking/shared/constant"
	"salonbooking/shared/store"
)

// Flow reads and writes the selections of the browsing session.
type Flow interface {
	GetSelection(ctx context.Context) model.Selection
	SaveServices(ctx context.Context, services []catalogModel.Service)
	SaveStaff(ctx context.Context, staff bookingModel.StaffRef)
	SaveSlot(ctx context.Context, date, hhmm string)
	ClearSlot(ctx context.Context)
}

type repositoryImpl struct {
	store *store.Store
	otel  otel.Otel
}

func New(s *store.Store, otel otel.Otel) Flow {
	return &repositoryImpl{
		store: s,
		otel:  otel,
	}
}

// GetSelection falls back to the single legacy service id when no id list is stored.
func (r *repositoryImpl) GetSelection(ctx context.Context) model.Selection {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".GetSelection")
	defer scope.End()

	bucket := r.store.FromContext(ctx)

	ids := store.GetJSON(ctx, bucket, store.KeySelectedServiceIDs, []string{})
	if len(ids) == 0 {
		if legacy, ok := bucket.Get(ctx, store.KeySelectedServiceID); ok && legacy != constant.Empty {
			ids = []string{legacy}
		}
	}

	date, _ := bucket.Get(ctx, store.KeySelectedDate)
	hhmm, _ := bucket.Get(ctx, store.KeySelectedTime)

	return model.Selection{
		ServiceIDs: ids,
		Services:   store.GetJSON(ctx, bucket, store.KeySelectedServices, []catalogModel.Service{}),
		Staff:      store.GetJSON[*bookingModel.StaffRef](ctx, bucket, store.KeySelectedBarber, nil),
		Date:       date,
		Time:       hhmm,
	}
}

func (r *repositoryImpl) SaveServices(ctx context.Context, services []catalogModel.Service) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".SaveServices")
	defer scope.End()

	bucket := r.store.FromContext(ctx)
	ids := catalogModel.ServiceIDs(services)

	// a new flow after a completed booking starts from scratch
	if confirmed, _ := bucket.Get(ctx, store.KeyConfirmedBooking); confirmed != constant.Empty {
		store.Clear(ctx, bucket, store.FlowKeys...)
	}

	store.SetJSON(ctx, bucket, store.KeySelectedServiceIDs, ids)
	store.SetJSON(ctx, bucket, store.KeySelectedServices, services)

	if len(ids) > 0 {
		bucket.Set(ctx, store.KeySelectedServiceID, ids[0])
	}
}

func (r *repositoryImpl) SaveStaff(ctx context.Context, staff bookingModel.StaffRef) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".SaveStaff")
	defer scope.End()

	store.SetJSON(ctx, r.store.FromContext(ctx), store.KeySelectedBarber, staff)
}

func (r *repositoryImpl) SaveSlot(ctx context.Context, date, hhmm string) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".SaveSlot")
	defer scope.End()

	bucket := r.store.FromContext(ctx)

	bucket.Set(ctx, store.KeySelectedDate, date)
	bucket.Set(ctx, store.KeySelectedTime, hhmm)
}

func (r *repositoryImpl) ClearSlot(ctx context.Context) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".ClearSlot")
	defer scope.End()

	store.Clear(ctx, r.store.FromContext(ctx), store.KeySelectedDate, store.KeySelectedTime)
}
