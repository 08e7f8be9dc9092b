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

// apiKeyRepository implements the repository.APIKeyRepository interface.
type apiKeyRepository struct {
	db *gorm.DB
}

// NewAPIKeyRepository is the constructor for apiKeyRepository.
func NewAPIKeyRepository(db *gorm.DB) repository.APIKeyRepository {
	return &apiKeyRepository{
		db: db,
	}
}

// Create persists a new API key record.
func (repo *apiKeyRepository) Create(ctx context.Context, key *entity.APIKey) error {
	keyM := fromAPIKeyDomain(key)

	if err := repo.db.WithContext(ctx).Create(keyM).Error; err != nil {
		if isTimeoutError(err) {
			return errors.WithMessage(repository.ErrStorageTimeout, err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create api key")
	}

	// Update the entity with generated values
	key.ID = keyM.ID
	key.CreatedAt = keyM.CreatedAt

	return nil
}

// FindByHash retrieves an API key by the SHA-256 hash of its raw value.
func (repo *apiKeyRepository) FindByHash(ctx context.Context, keyHash string) (*entity.APIKey, error) {
	var keyM model.APIKeyModel

	if err := repo.db.WithContext(ctx).
		Where("key_hash = ?", keyHash).
		First(&keyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAPIKeyNotFound
		}

		return nil, wrapStorageError(err, "failed to find api key by hash")
	}

	return toAPIKeyDomain(&keyM), nil
}

// FindByCompany retrieves all API keys owned by a company, newest first.
func (repo *apiKeyRepository) FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.APIKey, error) {
	var keyModels []*model.APIKeyModel

	if err := repo.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&keyModels).Error; err != nil {
		return nil, wrapStorageError(err, "failed to find api keys by company")
	}

	keys := make([]*entity.APIKey, 0, len(keyModels))
	for _, keyM := range keyModels {
		keys = append(keys, toAPIKeyDomain(keyM))
	}

	return keys, nil
}

// Deactivate marks a key inactive. The company filter keeps one tenant from
// touching another tenant's keys.
func (repo *apiKeyRepository) Deactivate(ctx context.Context, companyID, keyID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.APIKeyModel{}).
		Where("id = ? AND company_id = ?", keyID, companyID).
		Update("active", false)

	if result.Error != nil {
		return wrapStorageError(result.Error, "failed to deactivate api key")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAPIKeyNotFound
	}

	return nil
}

// Delete removes a key record entirely.
func (repo *apiKeyRepository) Delete(ctx context.Context, companyID, keyID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", keyID, companyID).
		Delete(&model.APIKeyModel{})

	if result.Error != nil {
		return wrapStorageError(result.Error, "failed to delete api key")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAPIKeyNotFound
	}

	return nil
}

// TouchLastUsed records the moment a key last authenticated a request.
// Best-effort bookkeeping: a missing row is not an error here.
func (repo *apiKeyRepository) TouchLastUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.APIKeyModel{}).
		Where("id = ?", id).
		Update("last_used_at", usedAt).Error; err != nil {
		return wrapStorageError(err, "failed to touch api key last used")
	}

	return nil
}

// --- Mapper Functions ---

// toAPIKeyDomain converts a GORM APIKeyModel to a domain APIKey entity.
func toAPIKeyDomain(data *model.APIKeyModel) *entity.APIKey {
	if data == nil {
		return nil
	}

	return &entity.APIKey{
		ID:         data.ID,
		CompanyID:  data.CompanyID,
		KeyHash:    data.KeyHash,
		Name:       data.Name,
		Prefix:     data.Prefix,
		Scopes:     data.Scopes,
		RateLimit:  data.RateLimit,
		Active:     data.Active,
		ExpiresAt:  data.ExpiresAt,
		LastUsedAt: data.LastUsedAt,
		CreatedAt:  data.CreatedAt,
	}
}

// fromAPIKeyDomain converts a domain APIKey entity to a GORM APIKeyModel.
func fromAPIKeyDomain(data *entity.APIKey) *model.APIKeyModel {
	if data == nil {
		return nil
	}

	return &model.APIKeyModel{
		ID:         data.ID,
		CompanyID:  data.CompanyID,
		KeyHash:    data.KeyHash,
		Name:       data.Name,
		Prefix:     data.Prefix,
		Scopes:     data.Scopes,
		RateLimit:  data.RateLimit,
		Active:     data.Active,
		ExpiresAt:  data.ExpiresAt,
		LastUsedAt: data.LastUsedAt,
		CreatedAt:  data.CreatedAt,
	}
}
