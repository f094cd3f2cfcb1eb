package repository

import (
	"context"
	"database/sql"
	"errors"

	"social-planner/core/cache"
	"social-planner/core/constants"
	"social-planner/core/logger"

	"github.com/google/uuid"
)

// PresetRepositoryInterface stores the raw preset string per user. Values are
// returned as stored; normalisation happens in the service.
type PresetRepositoryInterface interface {
	GetPreset(ctx context.Context, userID uuid.UUID) (value string, found bool, err error)
	SetPreset(ctx context.Context, userID uuid.UUID, value string) error
}

func PresetKey(userID uuid.UUID) string {
	return constants.SuggestedHoursPresetKey + ":" + userID.String()
}

// ===================== Redis =====================

type RedisPresetRepository struct {
	cache cache.Cache
}

func NewRedisPresetRepository(c cache.Cache) *RedisPresetRepository {
	return &RedisPresetRepository{cache: c}
}

func (r *RedisPresetRepository) GetPreset(ctx context.Context, userID uuid.UUID) (string, bool, error) {
	val, err := r.cache.Get(ctx, PresetKey(userID))
	if errors.Is(err, cache.ErrCacheMiss) {
		return "", false, nil
	}
	if err != nil {
		logger.Error("RedisPresetRepository:GetPreset", "user_id", userID.String(), "error", err)
		return "", false, err
	}
	return val, true, nil
}

func (r *RedisPresetRepository) SetPreset(ctx context.Context, userID uuid.UUID, value string) error {
	if err := r.cache.Set(ctx, PresetKey(userID), value, 0); err != nil {
		logger.Error("RedisPresetRepository:SetPreset", "user_id", userID.String(), "error", err)
		return err
	}
	return nil
}

// ===================== Postgres =====================

// SettingsDB is the subset of database.IDatabase the Postgres store needs.
type SettingsDB interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) error
}

type PostgresPresetRepository struct {
	DB SettingsDB
}

func NewPostgresPresetRepository(db SettingsDB) *PostgresPresetRepository {
	return &PostgresPresetRepository{DB: db}
}

const (
	selectSettingQuery = `SELECT value FROM user_settings WHERE user_id = $1 AND key = $2`
	upsertSettingQuery = `
		INSERT INTO user_settings (user_id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
)

func (r *PostgresPresetRepository) GetPreset(ctx context.Context, userID uuid.UUID) (string, bool, error) {
	var value string
	err := r.DB.GetContext(ctx, &value, selectSettingQuery, userID, constants.SuggestedHoursPresetKey)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		logger.Error("PostgresPresetRepository:GetPreset", "user_id", userID.String(), "error", err)
		return "", false, err
	}
	return value, true, nil
}

func (r *PostgresPresetRepository) SetPreset(ctx context.Context, userID uuid.UUID, value string) error {
	err := r.DB.ExecContext(ctx, upsertSettingQuery, userID, constants.SuggestedHoursPresetKey, value)
	if err != nil {
		logger.Error("PostgresPresetRepository:SetPreset", "user_id", userID.String(), "error", err)
		return err
	}
	return nil
}
