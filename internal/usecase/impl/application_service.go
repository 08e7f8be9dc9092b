package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "applyo/internal/delivery/context"
	"applyo/internal/domain/entity"
	domainerrors "applyo/internal/domain/errors"
	"applyo/internal/domain/repository"
	"applyo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultApplicationSource labels applications submitted directly on the
// platform, as opposed to partner integrations.
const defaultApplicationSource = "direct"

// applicationService implements the ApplicationUsecase interface.
type applicationService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// ApplicationServiceParams holds dependencies for ApplicationService, injected by Fx.
type ApplicationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewApplicationService creates a new application service instance
func NewApplicationService(params ApplicationServiceParams) usecase.ApplicationUsecase {
	return &applicationService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *applicationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateApplication submits an application referencing an APPROVED consent
// token. The consent check and the application insert share one transaction,
// and the grant embedded in the application is a snapshot: revoking the
// token later does not reach back into it.
func (srv *applicationService) CreateApplication(ctx context.Context, input usecase.CreateApplicationInput) (*entity.Application, error) {
	var application *entity.Application

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		applicationRepo := repoFactory.ApplicationRepo()
		consentRepo := repoFactory.ConsentTokenRepo()

		exists, err := applicationRepo.ExistsByCandidateAndJob(ctx, input.CandidateID, input.JobID)
		if err != nil {
			return errors.Wrap(err, "failed to check existing application")
		}
		if exists {
			return domainerrors.ErrApplicationAlreadyExists
		}

		consent, err := consentRepo.FindByID(ctx, input.ConsentTokenID)
		if err != nil {
			if errors.Is(err, repository.ErrConsentTokenNotFound) {
				return domainerrors.ErrConsentTokenNotFound
			}

			return errors.Wrap(err, "failed to find consent token")
		}

		// A consent owned by another candidate looks exactly like a missing one.
		if consent.CandidateID == nil || *consent.CandidateID != input.CandidateID {
			return domainerrors.ErrConsentTokenNotFound
		}
		if consent.Status != entity.ConsentStatusApproved {
			return domainerrors.ErrConsentNotApproved
		}

		source := input.Source
		if source == "" {
			source = defaultApplicationSource
		}

		application = &entity.Application{
			CandidateID: input.CandidateID,
			JobID:       input.JobID,
			CompanyID:   input.CompanyID,
			Status:      entity.ApplicationStatusSubmitted,
			Source:      source,
			Consent:     buildConsentGrant(consent),
		}

		return errors.Wrap(applicationRepo.Create(ctx, application), "failed to create application")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Application submitted",
		slog.Any("application_id", application.ID),
		slog.Any("candidate_id", application.CandidateID),
		slog.Any("job_id", application.JobID),
	)

	return application, nil
}

// GetApplication retrieves one application.
func (srv *applicationService) GetApplication(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	var application *entity.Application

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ApplicationRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrApplicationNotFound) {
				return domainerrors.ErrApplicationNotFound
			}

			return errors.Wrap(err, "failed to find application")
		}
		application = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return application, nil
}

// UpdateApplicationStatus moves an application through review.
func (srv *applicationService) UpdateApplicationStatus(ctx context.Context, input usecase.UpdateApplicationStatusInput) (*entity.Application, error) {
	if !isReviewStatus(input.Status) {
		return nil, domainerrors.NewValidationError(map[string]string{
			"status": "must be REVIEWING, ACCEPTED or REJECTED",
		})
	}

	var application *entity.Application

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		applicationRepo := repoFactory.ApplicationRepo()

		found, err := applicationRepo.FindByID(ctx, input.ApplicationID)
		if err != nil {
			if errors.Is(err, repository.ErrApplicationNotFound) {
				return domainerrors.ErrApplicationNotFound
			}

			return errors.Wrap(err, "failed to find application")
		}

		// Companies only see their own applications.
		if found.CompanyID != input.CompanyID {
			return domainerrors.ErrApplicationNotFound
		}
		if found.Status == entity.ApplicationStatusWithdrawn {
			return domainerrors.ErrConflict.WrapMessage("application was withdrawn")
		}

		now := time.Now()
		found.Status = input.Status
		found.RejectionReason = ""
		if input.Status == entity.ApplicationStatusRejected {
			found.RejectionReason = input.RejectionReason
		}
		found.ReviewedBy = &input.ReviewedBy
		found.ReviewedAt = &now

		if err := applicationRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update application")
		}
		application = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Application status updated",
		slog.Any("application_id", application.ID),
		slog.String("status", string(application.Status)),
	)

	return application, nil
}

// WithdrawApplication lets the candidate retract their own application.
func (srv *applicationService) WithdrawApplication(ctx context.Context, candidateID, applicationID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		applicationRepo := repoFactory.ApplicationRepo()

		found, err := applicationRepo.FindByID(ctx, applicationID)
		if err != nil {
			if errors.Is(err, repository.ErrApplicationNotFound) {
				return domainerrors.ErrApplicationNotFound
			}

			return errors.Wrap(err, "failed to find application")
		}

		if found.CandidateID != candidateID {
			return domainerrors.ErrApplicationNotFound
		}

		found.Status = entity.ApplicationStatusWithdrawn

		return errors.Wrap(applicationRepo.Update(ctx, found), "failed to withdraw application")
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Application withdrawn",
		slog.Any("application_id", applicationID),
		slog.Any("candidate_id", candidateID),
	)

	return nil
}

// ListCandidateApplications returns a candidate's applications.
func (srv *applicationService) ListCandidateApplications(ctx context.Context, candidateID uuid.UUID, limit, offset int) ([]*entity.Application, error) {
	var applications []*entity.Application

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ApplicationRepo().FindByCandidate(ctx, candidateID, limit, offset)
		if err != nil {
			return errors.Wrap(err, "failed to list candidate applications")
		}
		applications = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return applications, nil
}

// ListCompanyApplications returns the applications across a company's jobs.
func (srv *applicationService) ListCompanyApplications(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*entity.Application, error) {
	var applications []*entity.Application

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ApplicationRepo().FindByCompany(ctx, companyID, limit, offset)
		if err != nil {
			return errors.Wrap(err, "failed to list company applications")
		}
		applications = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return applications, nil
}

// buildConsentGrant freezes the approved consent into the snapshot embedded
// in the application record.
func buildConsentGrant(consent *entity.ConsentToken) *entity.ConsentGrant {
	grantedAt := time.Now()
	if consent.RespondedAt != nil {
		grantedAt = *consent.RespondedAt
	}

	return &entity.ConsentGrant{
		ConsentTokenID:      consent.ID,
		ConsentGivenAt:      grantedAt,
		DataFieldsConsented: consent.RequestedFields,
		PurposeOfUse:        consent.PurposeOfUse,
		DataRetentionUntil:  grantedAt.AddDate(0, 0, consent.RetentionDays),
		CanShare:            true,
	}
}

// isReviewStatus reports whether a company may set the given status.
func isReviewStatus(status entity.ApplicationStatus) bool {
	switch status {
	case entity.ApplicationStatusReviewing,
		entity.ApplicationStatusAccepted,
		entity.ApplicationStatusRejected:
		return true
	default:
		return false
	}
}
