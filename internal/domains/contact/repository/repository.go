package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"

	"salonbooking/config"
	"salonbooking/infras/baas"
	"salonbooking/infras/otel"
	"salonbooking/internal/domains/contact/model"
	"salonbooking/shared"
	"salonbooking/shared/constant"
	"salonbooking/shared/identity"
)

type Contact interface {
	GetContact(ctx context.Context, profileID, businessID string) (model.Contact, error)
	GetConsents(ctx context.Context, contactID, businessID string) ([]model.ConsentRow, error)
	CheckContact(ctx context.Context, req model.CheckRequest) (model.CheckResponse, error)
	GetProfile(ctx context.Context, profileID string) (model.Profile, error)
	UpdateProfileBirthdate(ctx context.Context, profileID, birthdate string) error
}

type repositoryImpl struct {
	client       baas.Client
	contactCheck string
	otel         otel.Otel
}

func New(client baas.Client, cfg *config.Config, otel otel.Otel) Contact {
	return &repositoryImpl{
		client:       client,
		contactCheck: cfg.Backend.Functions.ContactCheck,
		otel:         otel,
	}
}

// GetContact returns a zero Contact when the profile has none at this business.
func (r *repositoryImpl) GetContact(ctx context.Context, profileID, businessID string) (res model.Contact, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetContact")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := url.Values{
		"select":              []string{model.ContactColumns},
		model.FieldProfileID:  []string{shared.Eq(profileID)},
		model.FieldBusinessID: []string{shared.Eq(businessID)},
		"limit":               []string{"1"},
	}

	var rows []model.Contact
	if err = r.client.Select(ctx, model.TableContacts, identity.AccessToken(ctx), query, &rows); err != nil {
		log.Error().Err(err).Msg("failed to select contact")

		return res, fmt.Errorf("failed to select contact: %w", err)
	}

	if len(rows) == 0 {
		return res, nil
	}

	return rows[0], nil
}

func (r *repositoryImpl) GetConsents(ctx context.Context, contactID, businessID string) (res []model.ConsentRow, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetConsents")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := url.Values{
		"select":               []string{model.ConsentColumns},
		model.FieldContactID:   []string{shared.Eq(contactID)},
		model.FieldBusinessID:  []string{shared.Eq(businessID)},
		model.FieldChannelType: []string{shared.In([]string{model.ChannelSMS, model.ChannelEmail})},
		model.FieldConsentType: []string{shared.In([]string{model.ConsentTransactional, model.ConsentMarketing})},
	}

	if err = r.client.Select(ctx, model.TableConsents, identity.AccessToken(ctx), query, &res); err != nil {
		log.Error().Err(err).Msg("failed to select consents")

		return nil, fmt.Errorf("failed to select consents: %w", err)
	}

	return res, nil
}

// CheckContact upserts the contact through the contact-check function. A response without a
// contact id is malformed.
func (r *repositoryImpl) CheckContact(ctx context.Context, req model.CheckRequest) (res model.CheckResponse, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CheckContact")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Invoke(ctx, r.contactCheck, identity.AccessToken(ctx), req, &res); err != nil {
		log.Error().Err(err).Msg("failed to invoke contact check")

		return res, fmt.Errorf("failed to check contact: %w", err)
	}

	if res.ContactID == constant.Empty {
		err = fmt.Errorf("%w: missing contact_id", baas.ErrMalformedResponse)
		log.Error().Err(err).Msg("contact check returned no contact id")

		return res, err
	}

	return res, nil
}

func (r *repositoryImpl) GetProfile(ctx context.Context, profileID string) (res model.Profile, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := url.Values{
		"select":      []string{model.FieldID + "," + model.FieldBirthdate},
		model.FieldID: []string{shared.Eq(profileID)},
		"limit":       []string{"1"},
	}

	var rows []model.Profile
	if err = r.client.Select(ctx, model.TableProfiles, identity.AccessToken(ctx), query, &rows); err != nil {
		log.Error().Err(err).Msg("failed to select profile")

		return res, fmt.Errorf("failed to select profile: %w", err)
	}

	if len(rows) == 0 {
		return res, nil
	}

	return rows[0], nil
}

func (r *repositoryImpl) UpdateProfileBirthdate(ctx context.Context, profileID, birthdate string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateProfileBirthdate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := url.Values{model.FieldID: []string{shared.Eq(profileID)}}
	patch := map[string]string{model.FieldBirthdate: birthdate}

	if err = r.client.Update(ctx, model.TableProfiles, identity.AccessToken(ctx), query, patch); err != nil {
		log.Error().Err(err).Msg("failed to update profile birthdate")

		return fmt.Errorf("failed to update profile birthdate: %w", err)
	}

	return nil
}
