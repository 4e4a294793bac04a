package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"salonbooking/config"
	"salonbooking/infras/otel"
	"salonbooking/internal/domains/catalog/model"
	"salonbooking/internal/domains/catalog/repository"
	"salonbooking/shared"
	"salonbooking/shared/cache"
	"salonbooking/shared/constant"
	"salonbooking/shared/failure"
	"salonbooking/shared/message"
	"salonbooking/shared/timezone"
)

const (
	cacheGetServices = "catalog:services"
	cacheGetStaff    = "catalog:staff"
	cacheGetTimezone = "catalog:timezone"
)

type Catalog interface {
	GetServices(ctx context.Context) ([]model.Service, error)
	GetServicesByID(ctx context.Context, ids []string) ([]model.Service, error)
	GetStaff(ctx context.Context) ([]model.StaffMember, error)
	GetStaffMember(ctx context.Context, id string) (model.StaffMember, error)
	GetTimezone(ctx context.Context) string
}

type serviceImpl struct {
	repo  repository.Catalog
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Catalog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Catalog {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetServices(ctx context.Context) (res []model.Service, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetServices")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	businessID := s.cfg.App.BusinessID
	cacheKey := shared.BuildCacheKey(cacheGetServices, businessID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for services")

		return res, nil
	}

	res, err = s.repo.GetServices(ctx, businessID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return nil, failure.BadGateway(message.From(ctx, message.CatalogUnavailable)) // nolint:wrapcheck
	}

	s.saveAsync(ctx, cacheKey, res)

	return res, nil
}

// GetServicesByID resolves ids against the active services, keeping the requested order.
func (s *serviceImpl) GetServicesByID(ctx context.Context, ids []string) (res []model.Service, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetServicesByID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ids = shared.Unique(ids)
	if len(ids) == 0 {
		return nil, failure.BadRequestFromString(message.From(ctx, message.SelectServiceFirst)) // nolint:wrapcheck
	}

	services, err := s.GetServices(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	res = make([]model.Service, 0, len(ids))

	for _, id := range ids {
		svc, ok := byID[id]
		if !ok {
			log.Warn().Str("service_id", id).Msg("requested service is unknown or inactive")

			return nil, failure.NotFound(message.From(ctx, message.ServiceNotFound)) // nolint:wrapcheck
		}

		res = append(res, svc)
	}

	return res, nil
}

func (s *serviceImpl) GetStaff(ctx context.Context) (res []model.StaffMember, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStaff")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	businessID := s.cfg.App.BusinessID
	cacheKey := shared.BuildCacheKey(cacheGetStaff, businessID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for staff")

		return res, nil
	}

	rows, err := s.repo.GetStaff(ctx, businessID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return nil, failure.BadGateway(message.From(ctx, message.CatalogUnavailable)) // nolint:wrapcheck
	}

	res = make([]model.StaffMember, 0, len(rows))

	for _, member := range rows {
		if member.Active() {
			res = append(res, member)
		}
	}

	s.saveAsync(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetStaffMember(ctx context.Context, id string) (res model.StaffMember, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStaffMember")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id == constant.Empty {
		return res, failure.BadRequestFromString(message.From(ctx, message.SelectStaffFirst)) // nolint:wrapcheck
	}

	staff, err := s.GetStaff(ctx)
	if err != nil {
		return res, err
	}

	for _, member := range staff {
		if member.ID == id {
			return member, nil
		}
	}

	return res, failure.NotFound(message.From(ctx, message.StaffNotFound)) // nolint:wrapcheck
}

// GetTimezone returns the business timezone, or the configured application timezone when the
// backend has none or cannot be reached.
func (s *serviceImpl) GetTimezone(ctx context.Context) string {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTimezone")
	defer scope.End()

	businessID := s.cfg.App.BusinessID
	cacheKey := shared.BuildCacheKey(cacheGetTimezone, businessID)

	var tz string
	if err := s.cache.Get(ctx, cacheKey, &tz); err == nil && tz != constant.Empty {
		return tz
	}

	business, err := s.repo.GetBusiness(ctx, businessID)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("fallback", s.cfg.App.Timezone).Msg("failed to get business timezone, using fallback")

		return s.cfg.App.Timezone
	}

	if _, err := timezone.LoadLocation(business.Timezone); err != nil {
		log.Warn().Err(err).Str("fallback", s.cfg.App.Timezone).Msg("business timezone missing or invalid, using fallback")

		return s.cfg.App.Timezone
	}

	s.saveAsync(ctx, cacheKey, business.Timezone)

	return business.Timezone
}

func (s *serviceImpl) saveAsync(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, time.Duration(s.cfg.Cache.TTL)*time.Second); err != nil {
			log.Error().Err(fmt.Errorf("failed to save %s: %w", key, err)).Msg("failed to save catalog to cache")
		}
	}()
}
