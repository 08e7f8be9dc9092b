// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"net/url"
	"time"

	"applyo/config"
	deliverycontext "applyo/internal/delivery/context"
	"applyo/internal/domain/constants"
	"applyo/internal/domain/entity"
	domainerrors "applyo/internal/domain/errors"
	"applyo/internal/domain/repository"
	"applyo/internal/domain/service"
	"applyo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// storageTimeout bounds every consent storage call so a slow database
// surfaces as a transient failure instead of a hung request.
const storageTimeout = 5 * time.Second

// consentTokenBytes gives 256 bits of randomness per token.
const consentTokenBytes = 32

// consentService implements the ConsentUsecase interface.
type consentService struct {
	consentRepo     repository.ConsentTokenRepository
	userRepo        repository.UserRepository
	qrcodeService   service.QRCodeService
	notificationSvc service.NotificationService
	eventPublisher  service.EventPublisher
	config          *config.Config
	logger          *slog.Logger
}

// ConsentServiceParams holds dependencies for ConsentService, injected by Fx.
type ConsentServiceParams struct {
	fx.In

	ConsentRepo     repository.ConsentTokenRepository
	UserRepo        repository.UserRepository
	QRCodeService   service.QRCodeService
	NotificationSvc service.NotificationService
	EventPublisher  service.EventPublisher
	Config          *config.Config
	Logger          *slog.Logger
}

// NewConsentService creates a new consent mediation service instance
func NewConsentService(params ConsentServiceParams) usecase.ConsentUsecase {
	return &consentService{
		consentRepo:     params.ConsentRepo,
		userRepo:        params.UserRepo,
		qrcodeService:   params.QRCodeService,
		notificationSvc: params.NotificationSvc,
		eventPublisher:  params.EventPublisher,
		config:          params.Config,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *consentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateConsentRequest opens a new PENDING consent request.
func (srv *consentService) CreateConsentRequest(ctx context.Context, input usecase.CreateConsentInput) (*usecase.CreateConsentOutput, error) {
	if len(input.RequestedFields) == 0 {
		return nil, domainerrors.NewValidationError(map[string]string{
			"requestedFields": "must not be empty",
		})
	}

	expirationHours := input.ExpirationHours
	if expirationHours <= 0 {
		expirationHours = srv.config.Consent.DefaultExpirationHours
	}

	now := time.Now()
	token := &entity.ConsentToken{
		CompanyID:       input.CompanyID,
		JobID:           input.JobID,
		RequestedFields: input.RequestedFields,
		PurposeOfUse:    input.PurposeOfUse,
		RetentionDays:   input.RetentionDays,
		Status:          entity.ConsentStatusPending,
		ExpiresAt:       now.Add(time.Duration(expirationHours) * time.Hour),
	}

	if err := srv.createWithRegeneration(ctx, token); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Consent request created",
		slog.Any("consent_token_id", token.ID),
		slog.Any("company_id", token.CompanyID),
		slog.Int("requested_fields", len(token.RequestedFields)),
	)

	consentURL := srv.consentURL(token.Token)

	// The QR code is a convenience artifact; its failure must not undo the
	// created request.
	qrPNG, err := srv.qrcodeService.GenerateConsentQR(consentURL)
	if err != nil {
		srv.log(ctx).Warn("Failed to render consent QR code", slog.Any("error", err))
		qrPNG = nil
	}

	srv.publishEvent(ctx, constants.ConsentEventRequested, token)
	srv.notifyCandidate(ctx, input.CandidateEmail, token)

	return &usecase.CreateConsentOutput{
		ConsentToken: token,
		ConsentURL:   consentURL,
		QRCodePNG:    qrPNG,
	}, nil
}

// createWithRegeneration persists the token, regenerating the random string
// once if it collides with an existing row.
func (srv *consentService) createWithRegeneration(ctx context.Context, token *entity.ConsentToken) error {
	for attempt := 0; attempt < 2; attempt++ {
		raw, err := generateConsentToken()
		if err != nil {
			return errors.Wrap(err, "failed to generate consent token")
		}
		token.Token = raw

		storeCtx, cancel := context.WithTimeout(ctx, storageTimeout)
		err = srv.consentRepo.Create(storeCtx, token)
		cancel()

		if err == nil {
			return nil
		}
		if errors.Is(err, repository.ErrConsentTokenCollision) {
			srv.log(ctx).Warn("Consent token collision, regenerating")

			continue
		}
		if errors.Is(err, repository.ErrStorageTimeout) {
			return domainerrors.ErrStorageUnavailable
		}

		return errors.Wrap(err, "failed to create consent token")
	}

	return domainerrors.ErrInternalError.WrapMessage("consent token collision persisted across regeneration")
}

// GetConsentByToken fetches the record behind an opaque token string.
func (srv *consentService) GetConsentByToken(ctx context.Context, token string) (*entity.ConsentToken, error) {
	storeCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	record, err := srv.consentRepo.FindByToken(storeCtx, token)
	if err != nil {
		return nil, srv.mapLookupError(err)
	}

	return record, nil
}

// RespondToConsent records the candidate's decision. The status predicate
// lives in the repository's conditional update, so two concurrent responses
// to the same PENDING token cannot both succeed.
func (srv *consentService) RespondToConsent(ctx context.Context, input usecase.RespondConsentInput) (*entity.ConsentToken, error) {
	storeCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	record, err := srv.consentRepo.FindByToken(storeCtx, input.Token)
	if err != nil {
		return nil, srv.mapLookupError(err)
	}

	now := time.Now()

	// Expiry is evaluated lazily, on access. A token past its deadline is
	// moved to EXPIRED before the response fails, so the stored state and
	// the reported error agree.
	if record.IsExpiredAt(now) {
		switch err := srv.consentRepo.MarkExpiredIfPending(storeCtx, record.ID); {
		case err == nil:
		case errors.Is(err, repository.ErrConsentTokenStale):
			// Another request moved the token off PENDING first. Re-read so
			// the reported error matches the stored outcome: a concurrent
			// approval or denial is already-finalized, not expired.
			current, readErr := srv.consentRepo.FindByToken(storeCtx, input.Token)
			if readErr == nil && current.Status != entity.ConsentStatusPending &&
				current.Status != entity.ConsentStatusExpired {
				return nil, domainerrors.ErrConsentAlreadyFinalized
			}
		case errors.Is(err, repository.ErrStorageTimeout):
			return nil, domainerrors.ErrStorageUnavailable
		default:
			return nil, errors.Wrap(err, "failed to expire consent token")
		}

		srv.log(ctx).Info("Consent token expired on access", slog.Any("consent_token_id", record.ID))

		return nil, domainerrors.ErrConsentExpired
	}

	if record.Status != entity.ConsentStatusPending {
		return nil, domainerrors.ErrConsentAlreadyFinalized
	}

	status := entity.ConsentStatusDenied
	if input.Approved {
		status = entity.ConsentStatusApproved
	}

	updated, err := srv.consentRepo.RespondIfPending(storeCtx, record.ID, input.CandidateID, status, now)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrConsentTokenStale):
			// A concurrent response won the race between our read and write.
			return nil, domainerrors.ErrConsentAlreadyFinalized
		case errors.Is(err, repository.ErrConsentTokenNotFound):
			return nil, domainerrors.ErrConsentTokenNotFound
		case errors.Is(err, repository.ErrStorageTimeout):
			return nil, domainerrors.ErrStorageUnavailable
		default:
			return nil, errors.Wrap(err, "failed to record consent response")
		}
	}

	srv.log(ctx).Info("Consent response recorded",
		slog.Any("consent_token_id", updated.ID),
		slog.String("status", string(updated.Status)),
	)

	srv.publishEvent(ctx, constants.ConsentEventResponded, updated)

	return updated, nil
}

// RevokeConsent withdraws a previously given consent. Missing tokens and
// tokens owned by another candidate produce the same error, so a non-owner
// cannot probe for existence.
func (srv *consentService) RevokeConsent(ctx context.Context, candidateID, tokenID uuid.UUID) (*entity.ConsentToken, error) {
	storeCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	record, err := srv.consentRepo.FindByID(storeCtx, tokenID)
	if err != nil {
		return nil, srv.mapLookupError(err)
	}

	if record.CandidateID == nil || *record.CandidateID != candidateID {
		return nil, domainerrors.ErrConsentTokenNotFound
	}

	// Revocation is deliberately not validated against the prior status.
	updated, err := srv.consentRepo.UpdateStatus(storeCtx, tokenID, entity.ConsentStatusRevoked)
	if err != nil {
		return nil, srv.mapLookupError(err)
	}

	srv.log(ctx).Info("Consent revoked", slog.Any("consent_token_id", tokenID))

	srv.publishEvent(ctx, constants.ConsentEventRevoked, updated)

	return updated, nil
}

// ListCandidateConsents returns the tokens a candidate has responded to.
func (srv *consentService) ListCandidateConsents(ctx context.Context, candidateID uuid.UUID, limit, offset int) ([]*entity.ConsentToken, error) {
	storeCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	tokens, err := srv.consentRepo.FindByCandidate(storeCtx, candidateID, limit, offset)
	if err != nil {
		if errors.Is(err, repository.ErrStorageTimeout) {
			return nil, domainerrors.ErrStorageUnavailable
		}

		return nil, errors.Wrap(err, "failed to list candidate consents")
	}

	return tokens, nil
}

// ListCompanyConsents returns the tokens a company has requested.
func (srv *consentService) ListCompanyConsents(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*entity.ConsentToken, error) {
	storeCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	tokens, err := srv.consentRepo.FindByCompany(storeCtx, companyID, limit, offset)
	if err != nil {
		if errors.Is(err, repository.ErrStorageTimeout) {
			return nil, domainerrors.ErrStorageUnavailable
		}

		return nil, errors.Wrap(err, "failed to list company consents")
	}

	return tokens, nil
}

// mapLookupError translates repository lookup failures into the domain vocabulary.
func (srv *consentService) mapLookupError(err error) error {
	switch {
	case errors.Is(err, repository.ErrConsentTokenNotFound):
		return domainerrors.ErrConsentTokenNotFound
	case errors.Is(err, repository.ErrStorageTimeout):
		return domainerrors.ErrStorageUnavailable
	default:
		return errors.Wrap(err, "consent token lookup failed")
	}
}

// consentURL builds the public consent page link carrying the opaque token.
func (srv *consentService) consentURL(token string) string {
	base := srv.config.Consent.PageBaseURL
	if base == "" {
		base = "/consent"
	}

	return base + "?token=" + url.QueryEscape(token)
}

// publishEvent emits a consent lifecycle event. Publishing is best-effort:
// the state transition has already been persisted and must not be undone by
// a broker outage.
func (srv *consentService) publishEvent(ctx context.Context, eventType string, token *entity.ConsentToken) {
	event := &service.ConsentEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		EventType:      eventType,
		ConsentTokenID: token.ID.String(),
		CompanyID:      token.CompanyID.String(),
		Status:         string(token.Status),
		Fields:         token.RequestedFields,
	}
	if token.CandidateID != nil {
		event.CandidateID = token.CandidateID.String()
	}

	if err := srv.eventPublisher.PublishConsentEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish consent event",
			slog.String("event_type", eventType),
			slog.Any("error", err),
		)
	}
}

// notifyCandidate sends a best-effort push to the candidate's device when
// the address matches a registered account with a known device token.
func (srv *consentService) notifyCandidate(ctx context.Context, candidateEmail string, token *entity.ConsentToken) {
	if candidateEmail == "" || srv.notificationSvc == nil {
		return
	}

	candidate, err := srv.userRepo.FindByEmail(ctx, candidateEmail)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Failed to look up consent candidate", slog.Any("error", err))
		}

		return
	}
	if candidate.DeviceToken == "" {
		return
	}

	err = srv.notificationSvc.SendSingleNotification(ctx,
		candidate.DeviceToken,
		"New data access request",
		"A company requested access to your profile data. Review and respond.",
		map[string]string{
			"consent_token_id": token.ID.String(),
			"consent_url":      srv.consentURL(token.Token),
		},
	)
	if err != nil {
		srv.log(ctx).Warn("Failed to push consent notification", slog.Any("error", err))
	}
}

// generateConsentToken returns a fresh URL-safe token string.
func generateConsentToken() (string, error) {
	buf := make([]byte, consentTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
