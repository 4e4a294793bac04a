package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"salonbooking/config"
	"salonbooking/infras/otel"
	"salonbooking/internal/domains/contact/model"
	"salonbooking/internal/domains/contact/model/dto"
	"salonbooking/internal/domains/contact/repository"
	"salonbooking/shared/constant"
	"salonbooking/shared/failure"
	"salonbooking/shared/identity"
	"salonbooking/shared/message"
)

type Contact interface {
	GetSaved(ctx context.Context) (dto.SavedContactResponse, error)
	Check(ctx context.Context, draft model.Draft) (string, error)
	GetProfile(ctx context.Context) (model.Profile, error)
	PatchBirthdate(ctx context.Context, birthdate string) error
}

type serviceImpl struct {
	repo repository.Contact
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Contact, cfg *config.Config, otel otel.Otel) Contact {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func session(ctx context.Context) (identity.Session, error) {
	s, ok := identity.FromContext(ctx)
	if !ok {
		return nil, failure.Unauthorized(message.From(ctx, message.LoginRequired)) // nolint:wrapcheck
	}

	return s, nil
}

// GetSaved loads the contact form defaults for the signed-in profile. Read failures leave the
// form empty instead of failing the step.
func (s *serviceImpl) GetSaved(ctx context.Context) (res dto.SavedContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSaved")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sess, err := session(ctx)
	if err != nil {
		return res, err
	}

	businessID := s.cfg.App.BusinessID

	contact, err := s.repo.GetContact(ctx, sess.ProfileID(), businessID)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load saved contact, using empty form")

		contact = model.Contact{}
	}

	var consent model.ConsentState

	if contact.ID != constant.Empty {
		rows, consentErr := s.repo.GetConsents(ctx, contact.ID, businessID)
		if consentErr != nil {
			log.Warn().Err(consentErr).Msg("failed to load consents, defaulting to none")
		}

		consent = model.ConsentFromRows(rows)
	}

	profile, profileErr := s.repo.GetProfile(ctx, sess.ProfileID())
	if profileErr != nil {
		log.Warn().Err(profileErr).Msg("failed to load profile")
	}

	res.FromModel(contact, consent, profile, s.cfg.App.DefaultPhonePrefix)

	return res, nil
}

// Check upserts the contact for the signed-in profile and returns its id. Backend errors are
// returned wrapped so callers can inspect them.
func (s *serviceImpl) Check(ctx context.Context, draft model.Draft) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Check")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sess, err := session(ctx)
	if err != nil {
		return constant.Empty, err
	}

	out, err := s.repo.CheckContact(ctx, draft.ToCheckRequest(s.cfg.App.BusinessID, sess.ProfileID(), sess.Email()))
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to check contact: %w", err)
	}

	return out.ContactID, nil
}

func (s *serviceImpl) GetProfile(ctx context.Context) (res model.Profile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sess, err := session(ctx)
	if err != nil {
		return res, err
	}

	res, err = s.repo.GetProfile(ctx, sess.ProfileID())
	if err != nil {
		return res, fmt.Errorf("failed to get profile: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) PatchBirthdate(ctx context.Context, birthdate string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PatchBirthdate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sess, err := session(ctx)
	if err != nil {
		return err
	}

	if err = s.repo.UpdateProfileBirthdate(ctx, sess.ProfileID(), birthdate); err != nil {
		return fmt.Errorf("failed to patch birthdate: %w", err)
	}

	return nil
}
