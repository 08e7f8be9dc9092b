// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"applyo/internal/domain/entity"
	domainerrors "applyo/internal/domain/errors"
	"applyo/internal/domain/repository"
	"applyo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// consentTokenRepository implements the repository.ConsentTokenRepository interface.
type consentTokenRepository struct {
	db *gorm.DB
}

// NewConsentTokenRepository is the constructor for consentTokenRepository.
func NewConsentTokenRepository(db *gorm.DB) repository.ConsentTokenRepository {
	return &consentTokenRepository{
		db: db,
	}
}

// Create persists a new PENDING consent token.
func (repo *consentTokenRepository) Create(ctx context.Context, token *entity.ConsentToken) error {
	tokenM := fromConsentTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrConsentTokenCollision
		}
		if isTimeoutError(err) {
			return errors.WithMessage(repository.ErrStorageTimeout, err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create consent token")
	}

	// Update the entity with generated values
	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByToken retrieves a consent token by its opaque token string.
func (repo *consentTokenRepository) FindByToken(ctx context.Context, token string) (*entity.ConsentToken, error) {
	var tokenM model.ConsentTokenModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConsentTokenNotFound
		}

		return nil, wrapStorageError(err, "failed to find consent token by token string")
	}

	return toConsentTokenDomain(&tokenM), nil
}

// FindByID retrieves a consent token by its unique ID.
func (repo *consentTokenRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ConsentToken, error) {
	var tokenM model.ConsentTokenModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConsentTokenNotFound
		}

		return nil, wrapStorageError(err, "failed to find consent token by ID")
	}

	return toConsentTokenDomain(&tokenM), nil
}

// RespondIfPending records the candidate's decision with a single conditional
// UPDATE. The status predicate in the WHERE clause is what makes concurrent
// responses safe: the database serializes the writers and exactly one of them
// sees RowsAffected == 1.
func (repo *consentTokenRepository) RespondIfPending(ctx context.Context, id, candidateID uuid.UUID, status entity.ConsentTokenStatus, respondedAt time.Time) (*entity.ConsentToken, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ConsentTokenModel{}).
		Where("id = ? AND status = ?", id, string(entity.ConsentStatusPending)).
		Updates(map[string]interface{}{
			"candidate_id": candidateID,
			"status":       string(status),
			"responded_at": respondedAt,
		})

	if result.Error != nil {
		return nil, wrapStorageError(result.Error, "failed to record consent response")
	}

	if result.RowsAffected == 0 {
		// Either the row is gone or a concurrent writer finalized it first.
		if _, err := repo.FindByID(ctx, id); errors.Is(err, repository.ErrConsentTokenNotFound) {
			return nil, repository.ErrConsentTokenNotFound
		}

		return nil, repository.ErrConsentTokenStale
	}

	return repo.FindByID(ctx, id)
}

// MarkExpiredIfPending moves a PENDING token to EXPIRED. The candidate and
// response timestamp columns stay untouched: expiry is a system transition,
// not a candidate decision.
func (repo *consentTokenRepository) MarkExpiredIfPending(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConsentTokenModel{}).
		Where("id = ? AND status = ?", id, string(entity.ConsentStatusPending)).
		Update("status", string(entity.ConsentStatusExpired))

	if result.Error != nil {
		return wrapStorageError(result.Error, "failed to mark consent token expired")
	}

	if result.RowsAffected == 0 {
		return repository.ErrConsentTokenStale
	}

	return nil
}

// UpdateStatus sets the status unconditionally and returns the stored record.
func (repo *consentTokenRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ConsentTokenStatus) (*entity.ConsentToken, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ConsentTokenModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return nil, wrapStorageError(result.Error, "failed to update consent token status")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrConsentTokenNotFound
	}

	return repo.FindByID(ctx, id)
}

// FindByCandidate retrieves the tokens a candidate has responded to, newest first.
func (repo *consentTokenRepository) FindByCandidate(ctx context.Context, candidateID uuid.UUID, limit, offset int) ([]*entity.ConsentToken, error) {
	var tokenModels []*model.ConsentTokenModel

	query := repo.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&tokenModels).Error; err != nil {
		return nil, wrapStorageError(err, "failed to find consent tokens by candidate")
	}

	tokens := make([]*entity.ConsentToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toConsentTokenDomain(tokenM))
	}

	return tokens, nil
}

// FindByCompany retrieves the tokens a company has requested, newest first.
func (repo *consentTokenRepository) FindByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*entity.ConsentToken, error) {
	var tokenModels []*model.ConsentTokenModel

	query := repo.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&tokenModels).Error; err != nil {
		return nil, wrapStorageError(err, "failed to find consent tokens by company")
	}

	tokens := make([]*entity.ConsentToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toConsentTokenDomain(tokenM))
	}

	return tokens, nil
}

// --- Mapper Functions ---

// toConsentTokenDomain converts a GORM ConsentTokenModel to a domain ConsentToken entity.
func toConsentTokenDomain(data *model.ConsentTokenModel) *entity.ConsentToken {
	if data == nil {
		return nil
	}

	return &entity.ConsentToken{
		ID:              data.ID,
		Token:           data.Token,
		CandidateID:     data.CandidateID,
		CompanyID:       data.CompanyID,
		JobID:           data.JobID,
		RequestedFields: data.RequestedFields,
		PurposeOfUse:    data.PurposeOfUse,
		RetentionDays:   data.RetentionDays,
		Status:          entity.ConsentTokenStatus(data.Status),
		ExpiresAt:       data.ExpiresAt,
		CreatedAt:       data.CreatedAt,
		RespondedAt:     data.RespondedAt,
	}
}

// fromConsentTokenDomain converts a domain ConsentToken entity to a GORM ConsentTokenModel.
func fromConsentTokenDomain(data *entity.ConsentToken) *model.ConsentTokenModel {
	if data == nil {
		return nil
	}

	return &model.ConsentTokenModel{
		ID:              data.ID,
		Token:           data.Token,
		CandidateID:     data.CandidateID,
		CompanyID:       data.CompanyID,
		JobID:           data.JobID,
		RequestedFields: data.RequestedFields,
		PurposeOfUse:    data.PurposeOfUse,
		RetentionDays:   data.RetentionDays,
		Status:          string(data.Status),
		ExpiresAt:       data.ExpiresAt,
		CreatedAt:       data.CreatedAt,
		RespondedAt:     data.RespondedAt,
	}
}
