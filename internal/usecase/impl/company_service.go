package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "applyo/internal/delivery/context"
	"applyo/internal/domain/entity"
	domainerrors "applyo/internal/domain/errors"
	"applyo/internal/domain/repository"
	"applyo/internal/domain/service"
	"applyo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultAPIKeyRateLimit is the per-minute request budget granted to a key
// when the company does not pick one.
const defaultAPIKeyRateLimit = 60

// companyService implements the CompanyUsecase interface.
type companyService struct {
	apiKeyRepo   repository.APIKeyRepository
	userRepo     repository.UserRepository
	keyGenerator service.APIKeyGenerator
	logger       *slog.Logger
}

// CompanyServiceParams holds dependencies for CompanyService, injected by Fx.
type CompanyServiceParams struct {
	fx.In

	APIKeyRepo   repository.APIKeyRepository
	UserRepo     repository.UserRepository
	KeyGenerator service.APIKeyGenerator
	Logger       *slog.Logger
}

// NewCompanyService creates a new company service instance
func NewCompanyService(params CompanyServiceParams) usecase.CompanyUsecase {
	return &companyService{
		apiKeyRepo:   params.APIKeyRepo,
		userRepo:     params.UserRepo,
		keyGenerator: params.KeyGenerator,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *companyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCompany retrieves a company account.
func (srv *companyService) GetCompany(ctx context.Context, companyID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company")
	}

	if user.UserType != entity.UserTypeCompany {
		return nil, domainerrors.ErrCompanyNotFound
	}

	return user, nil
}

// CreateAPIKey issues a fresh API key for the company.
func (srv *companyService) CreateAPIKey(ctx context.Context, input usecase.CreateAPIKeyInput) (*usecase.CreateAPIKeyOutput, error) {
	if input.Name == "" {
		return nil, domainerrors.NewValidationError(map[string]string{
			"name": "must not be empty",
		})
	}

	if _, err := srv.GetCompany(ctx, input.CompanyID); err != nil {
		return nil, err
	}

	raw, hash, prefix, err := srv.keyGenerator.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate api key")
	}

	rateLimit := input.RateLimit
	if rateLimit <= 0 {
		rateLimit = defaultAPIKeyRateLimit
	}

	key := &entity.APIKey{
		CompanyID: input.CompanyID,
		KeyHash:   hash,
		Name:      input.Name,
		Prefix:    prefix,
		Scopes:    input.Scopes,
		RateLimit: rateLimit,
		Active:    true,
	}
	if input.ExpiresInDays > 0 {
		expiresAt := time.Now().AddDate(0, 0, input.ExpiresInDays)
		key.ExpiresAt = &expiresAt
	}

	if err := srv.apiKeyRepo.Create(ctx, key); err != nil {
		return nil, errors.Wrap(err, "failed to create api key")
	}

	srv.log(ctx).Info("API key issued",
		slog.Any("company_id", input.CompanyID),
		slog.String("prefix", prefix),
	)

	return &usecase.CreateAPIKeyOutput{
		APIKey: key,
		RawKey: raw,
	}, nil
}

// ListAPIKeys returns the company's keys.
func (srv *companyService) ListAPIKeys(ctx context.Context, companyID uuid.UUID) ([]*entity.APIKey, error) {
	keys, err := srv.apiKeyRepo.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list api keys")
	}

	return keys, nil
}

// RevokeAPIKey deactivates a key without deleting its audit record.
func (srv *companyService) RevokeAPIKey(ctx context.Context, companyID, keyID uuid.UUID) error {
	if err := srv.apiKeyRepo.Deactivate(ctx, companyID, keyID); err != nil {
		if errors.Is(err, repository.ErrAPIKeyNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to revoke api key")
	}

	srv.log(ctx).Info("API key revoked",
		slog.Any("company_id", companyID),
		slog.Any("key_id", keyID),
	)

	return nil
}

// DeleteAPIKey removes a key entirely.
func (srv *companyService) DeleteAPIKey(ctx context.Context, companyID, keyID uuid.UUID) error {
	if err := srv.apiKeyRepo.Delete(ctx, companyID, keyID); err != nil {
		if errors.Is(err, repository.ErrAPIKeyNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete api key")
	}

	srv.log(ctx).Info("API key deleted",
		slog.Any("company_id", companyID),
		slog.Any("key_id", keyID),
	)

	return nil
}

// VerifyAPIKey checks a raw key against the catalogue. The gateway forwards
// X-API-Key without judging it; this is where the key is actually vetted.
func (srv *companyService) VerifyAPIKey(ctx context.Context, rawKey string) (*entity.APIKey, error) {
	if rawKey == "" {
		return nil, domainerrors.ErrAPIKeyInvalid
	}

	key, err := srv.apiKeyRepo.FindByHash(ctx, srv.keyGenerator.Hash(rawKey))
	if err != nil {
		if errors.Is(err, repository.ErrAPIKeyNotFound) {
			return nil, domainerrors.ErrAPIKeyInvalid
		}

		return nil, errors.Wrap(err, "failed to look up api key")
	}

	if !key.IsUsableAt(time.Now()) {
		return nil, domainerrors.ErrAPIKeyInvalid
	}

	// Last-used bookkeeping is best-effort; a failed touch must not reject
	// an otherwise valid key.
	now := time.Now()
	if err := srv.apiKeyRepo.TouchLastUsed(ctx, key.ID, now); err != nil {
		srv.log(ctx).Warn("Failed to record api key use", slog.Any("error", err))
	} else {
		key.LastUsedAt = &now
	}

	return key, nil
}
