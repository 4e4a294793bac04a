package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"iter"
	"time"

	"github.com/rs/zerolog/log"

	"salonbooking/config"
	"salonbooking/infras/metrics"
	"salonbooking/infras/otel"
	"salonbooking/internal/domains/availability/model"
	"salonbooking/internal/domains/availability/repository"
	catalogModel "salonbooking/internal/domains/catalog/model"
	"salonbooking/shared/constant"
	"salonbooking/shared/message"
	"salonbooking/shared/probe"
	"salonbooking/shared/timezone"
)

type Availability interface {
	Query(ctx context.Context, q model.Query) model.Result
	Verify(ctx context.Context, q model.Query, hhmm, site string) bool
	NextAvailableDate(ctx context.Context, q model.Query, maxDays int) (string, bool)
	AlternativeStaff(ctx context.Context, q model.Query, staff []catalogModel.StaffMember) (catalogModel.StaffMember, bool)
}

type serviceImpl struct {
	repo    repository.Availability
	cfg     *config.Config
	otel    otel.Otel
	metrics *metrics.BookingMetrics
	prober  *probe.Prober
}

func New(repo repository.Availability, cfg *config.Config, otel otel.Otel, m *metrics.BookingMetrics) Availability {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		otel:    otel,
		metrics: m,
		prober:  probe.New(cfg.Booking.ProbeRatePerSecond),
	}
}

// Query fetches the slots for q. It never fails: a remote error yields empty lists and a
// localized Error. No call is made while staff or services are missing.
func (s *serviceImpl) Query(ctx context.Context, q model.Query) model.Result {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Query")
	defer scope.End()

	if !q.Ready() {
		return model.EmptyResult()
	}

	scope.SetAttributes(map[string]any{"booking.date": q.Date, "booking.timezone": q.Timezone})

	resp, err := s.repo.GetSlots(ctx, q.ToRequest(constant.Empty))
	if err != nil {
		scope.TraceError(err)

		res := model.EmptyResult()
		res.Error = message.From(ctx, message.SlotsUnavailable)

		return res
	}

	return s.toResult(q, resp)
}

func (s *serviceImpl) toResult(q model.Query, resp model.SlotResponse) model.Result {
	recommended, droppedRecommended := model.Slots(resp.Perfect)
	other, droppedOther := model.Slots(resp.Other)

	if dropped := droppedRecommended + droppedOther; dropped > 0 {
		log.Warn().
			Int("dropped", dropped).
			Str("date", q.Date).
			Str("timezone", q.Timezone).
			Msg("dropped slots with malformed time values")
	}

	return model.Result{Recommended: recommended, Other: other}
}

// Verify re-checks that hhmm is still offered for q. Any failure counts as unavailable.
func (s *serviceImpl) Verify(ctx context.Context, q model.Query, hhmm, site string) (ok bool) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Verify")
	defer scope.End()

	defer func() {
		scope.SetAttribute("booking.slot_available", ok)
		s.metrics.ObserveVerification(site, ok)
	}()

	if !q.Ready() || !timezone.IsValidTime(hhmm) {
		return false
	}

	resp, err := s.repo.GetSlots(ctx, q.ToRequest(hhmm))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("site", site).Msg("slot verification failed, treating slot as unavailable")

		return false
	}

	return s.toResult(q, resp).Contains(hhmm)
}

// NextAvailableDate checks the days after q.Date one at a time and stops at the first day
// offering any slot.
func (s *serviceImpl) NextAvailableDate(ctx context.Context, q model.Query, maxDays int) (string, bool) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NextAvailableDate")
	defer scope.End()

	if !q.Ready() || maxDays <= 0 {
		return constant.Empty, false
	}

	start, err := timezone.ParseDate(q.Date, time.UTC)
	if err != nil {
		scope.TraceError(err)

		return constant.Empty, false
	}

	date, found := probe.First(ctx, s.prober, followingDays(start, maxDays), func(ctx context.Context, date string) bool {
		return s.hasSlots(ctx, q.WithDate(date))
	})

	scope.SetAttribute("booking.next_available", date)

	return date, found
}

// AlternativeStaff returns the first other staff member with any slot on q.Date.
func (s *serviceImpl) AlternativeStaff(ctx context.Context, q model.Query, staff []catalogModel.StaffMember) (catalogModel.StaffMember, bool) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AlternativeStaff")
	defer scope.End()

	if len(q.ServiceIDs) == 0 {
		return catalogModel.StaffMember{}, false
	}

	candidates := make([]catalogModel.StaffMember, 0, len(staff))
	for _, member := range staff {
		if member.ID != q.StaffID && member.Active() {
			candidates = append(candidates, member)
		}
	}

	return probe.First(ctx, s.prober, probe.Slice(candidates), func(ctx context.Context, member catalogModel.StaffMember) bool {
		return s.hasSlots(ctx, q.WithStaff(member.ID))
	})
}

func (s *serviceImpl) hasSlots(ctx context.Context, q model.Query) bool {
	resp, err := s.repo.GetSlots(ctx, q.ToRequest(constant.Empty))
	if err != nil {
		log.Warn().Err(err).Str("staff_id", q.StaffID).Str("date", q.Date).Msg("availability probe failed, skipping")

		return false
	}

	return s.toResult(q, resp).HasSlots()
}

func followingDays(start time.Time, n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 1; i <= n; i++ {
			if !yield(start.AddDate(0, 0, i).Format(constant.DateFormat)) {
				return
			}
		}
	}
}
