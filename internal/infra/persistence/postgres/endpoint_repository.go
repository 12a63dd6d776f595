package postgres

import (
	"context"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/errors"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type endpointRepository struct {
	db *gorm.DB
}

// NewEndpointRepository creates a new GORM-backed endpoint repository.
func NewEndpointRepository(db *gorm.DB) repository.EndpointRepository {
	return &endpointRepository{db: db}
}

// Upsert inserts the endpoint or, when the token already exists, reassigns it
// to the given user and platform. ChatEnabled is preserved on conflict so a
// re-registration does not reset the user's chat preference. The entity is
// updated in place with the stored row via RETURNING, so the caller sees the
// preserved created_at and chat_enabled without a second query.
func (r *endpointRepository) Upsert(ctx context.Context, endpoint *entity.Endpoint) error {
	record := toEndpointModel(endpoint)

	err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "token"}},
				DoUpdates: clause.AssignmentColumns([]string{"user_id", "platform", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(record).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "endpoint references unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert endpoint")
	}

	*endpoint = *toEndpointEntity(record)

	return nil
}

func (r *endpointRepository) FindByToken(ctx context.Context, token string) (*entity.Endpoint, error) {
	var record model.EndpointModel
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEndpointNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find endpoint by token")
	}

	return toEndpointEntity(&record), nil
}

func (r *endpointRepository) FindAll(ctx context.Context) ([]*entity.Endpoint, error) {
	var records []model.EndpointModel
	err := r.db.WithContext(ctx).
		Find(&records).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list endpoints")
	}

	return toEndpointEntities(records), nil
}

// FindAllExcept returns every endpoint except those belonging to excludeUserID.
// A nil exclude UUID matches no rows, so it degrades to FindAll.
func (r *endpointRepository) FindAllExcept(ctx context.Context, excludeUserID uuid.UUID) ([]*entity.Endpoint, error) {
	var records []model.EndpointModel
	err := r.db.WithContext(ctx).
		Where("user_id <> ?", excludeUserID).
		Find(&records).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list endpoints excluding user")
	}

	return toEndpointEntities(records), nil
}

func (r *endpointRepository) FindByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.Endpoint, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var records []model.EndpointModel
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&records).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list endpoints by users")
	}

	return toEndpointEntities(records), nil
}

func (r *endpointRepository) FindChatEnabledExcept(ctx context.Context, excludeUserID uuid.UUID) ([]*entity.Endpoint, error) {
	var records []model.EndpointModel
	err := r.db.WithContext(ctx).
		Where("chat_enabled = ? AND user_id <> ?", true, excludeUserID).
		Find(&records).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list chat-enabled endpoints")
	}

	return toEndpointEntities(records), nil
}

// SetChatPreference flips the chat flag on every endpoint the user owns.
// Matching zero rows is not an error; the user may simply have no devices.
func (r *endpointRepository) SetChatPreference(ctx context.Context, userID uuid.UUID, enabled bool) error {
	err := r.db.WithContext(ctx).
		Model(&model.EndpointModel{}).
		Where("user_id = ?", userID).
		Update("chat_enabled", enabled).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update chat preference")
	}

	return nil
}

// Remove hard-deletes the endpoint. Removing an absent token succeeds; the
// prune path may race with a user-initiated deregistration.
func (r *endpointRepository) Remove(ctx context.Context, token string) error {
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.EndpointModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove endpoint")
	}

	return nil
}

// RemoveStale deletes endpoints not refreshed since the given time and
// reports how many rows were dropped.
func (r *endpointRepository) RemoveStale(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("updated_at < ?", before).
		Delete(&model.EndpointModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove stale endpoints")
	}

	return result.RowsAffected, nil
}

func toEndpointModel(endpoint *entity.Endpoint) *model.EndpointModel {
	return &model.EndpointModel{
		Token:       endpoint.Token,
		UserID:      endpoint.UserID,
		Platform:    string(endpoint.Platform),
		ChatEnabled: endpoint.ChatEnabled,
		CreatedAt:   endpoint.CreatedAt,
		UpdatedAt:   endpoint.UpdatedAt,
	}
}

func toEndpointEntity(record *model.EndpointModel) *entity.Endpoint {
	return &entity.Endpoint{
		Token:       record.Token,
		UserID:      record.UserID,
		Platform:    entity.Platform(record.Platform),
		ChatEnabled: record.ChatEnabled,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

func toEndpointEntities(records []model.EndpointModel) []*entity.Endpoint {
	endpoints := make([]*entity.Endpoint, 0, len(records))
	for i := range records {
		endpoints = append(endpoints, toEndpointEntity(&records[i]))
	}

	return endpoints
}
