package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"

	"salonbooking/infras/baas"
	"salonbooking/infras/otel"
	"salonbooking/internal/domains/catalog/model"
	"salonbooking/shared"
	"salonbooking/shared/constant"
)

type Catalog interface {
	GetServices(ctx context.Context, businessID string) ([]model.Service, error)
	GetStaff(ctx context.Context, businessID string) ([]model.StaffMember, error)
	GetBusiness(ctx context.Context, businessID string) (model.Business, error)
}

type repositoryImpl struct {
	client baas.Client
	otel   otel.Otel
}

func New(client baas.Client, otel otel.Otel) Catalog {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

// Catalog reads are public and go out with the anonymous key so cached rows never depend on who asked.
func (r *repositoryImpl) GetServices(ctx context.Context, businessID string) (res []model.Service, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetServices")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := url.Values{
		"select":              []string{model.ServiceColumns},
		model.FieldBusinessID: []string{shared.Eq(businessID)},
		model.FieldActive:     []string{shared.Eq("true")},
		"order":               []string{model.FieldName + ".asc"},
	}

	if err = r.client.Select(ctx, model.TableServices, constant.Empty, query, &res); err != nil {
		log.Error().Err(err).Str("business_id", businessID).Msg("failed to select services")

		return nil, fmt.Errorf("failed to select services: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) GetStaff(ctx context.Context, businessID string) (res []model.StaffMember, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetStaff")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := url.Values{
		"select":              []string{model.StaffColumns},
		model.FieldBusinessID: []string{shared.Eq(businessID)},
		model.FieldStatus:     []string{shared.Eq(model.StaffStatusActive)},
		"order":               []string{model.FieldName + ".asc"},
	}

	if err = r.client.Select(ctx, model.TableStaff, constant.Empty, query, &res); err != nil {
		log.Error().Err(err).Str("business_id", businessID).Msg("failed to select staff")

		return nil, fmt.Errorf("failed to select staff: %w", err)
	}

	return res, nil
}

// GetBusiness returns a zero Business when no row matches.
func (r *repositoryImpl) GetBusiness(ctx context.Context, businessID string) (res model.Business, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetBusiness")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := url.Values{
		"select":      []string{model.FieldTimezone},
		model.FieldID: []string{shared.Eq(businessID)},
		"limit":       []string{"1"},
	}

	var rows []model.Business
	if err = r.client.Select(ctx, model.TableBusiness, constant.Empty, query, &rows); err != nil {
		log.Error().Err(err).Str("business_id", businessID).Msg("failed to select business")

		return res, fmt.Errorf("failed to select business: %w", err)
	}

	if len(rows) == 0 {
		return res, nil
	}

	return rows[0], nil
}
