package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/kantanpro/kantanpro/internal/models"
	srvErrors "github.com/kantanpro/kantanpro/pkg/errors"
)

// SettingStore is a keyed store of JSON-encoded application settings.
type SettingStore struct {
	db  QueryInterceptor
	now Clock
}

func NewSettingStore(db QueryInterceptor, now Clock) *SettingStore {
	return &SettingStore{db: db, now: now}
}

// Get decodes the value stored under key into dest. found is false when the
// key was never set.
func (s *SettingStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, found, err := s.raw(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("failed to decode setting %q: %w", key, err)
	}
	return true, nil
}

// Value returns the decoded value stored under key.
func (s *SettingStore) Value(ctx context.Context, key string) (any, bool, error) {
	var v any
	found, err := s.Get(ctx, key, &v)
	if err != nil || !found {
		return nil, false, err
	}
	return v, true, nil
}

// Set inserts or replaces the value stored under key.
func (s *SettingStore) Set(ctx context.Context, key string, value any) error {
	key, err := requireText("key", key)
	if err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return srvErrors.NewValidationError("value", "cannot encode setting %q: %v", key, err)
	}

	_, err = s.db.Exec(ctx, queryUpsertSetting, key, string(data), s.now.timestamp())
	return err
}

// All returns every stored setting, decoded.
func (s *SettingStore) All(ctx context.Context) (map[string]any, error) {
	var rows []struct {
		Key   string         `db:"key"`
		Value sql.NullString `db:"value"`
	}
	if err := s.db.Select(ctx, &rows, queryListSettings); err != nil {
		return nil, err
	}

	settings := make(map[string]any, len(rows))
	for _, row := range rows {
		if !row.Value.Valid {
			settings[row.Key] = nil
			continue
		}
		var v any
		if err := json.Unmarshal([]byte(row.Value.String), &v); err != nil {
			return nil, fmt.Errorf("failed to decode setting %q: %w", row.Key, err)
		}
		settings[row.Key] = v
	}
	return settings, nil
}

// SaveAll upserts every entry of settings in one transaction.
func (s *SettingStore) SaveAll(ctx context.Context, settings map[string]any) error {
	return s.db.WithTx(ctx, func(tx QueryInterceptor) error {
		txStore := &SettingStore{db: tx, now: s.now}
		for _, key := range slices.Sorted(maps.Keys(settings)) {
			if err := txStore.Set(ctx, key, settings[key]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SettingStore) Delete(ctx context.Context, key string) (models.ExecResult, error) {
	return s.db.Exec(ctx, queryDeleteSetting, strings.TrimSpace(key))
}

func (s *SettingStore) raw(ctx context.Context, key string) (string, bool, error) {
	var value sql.NullString
	found, err := s.db.Get(ctx, &value, queryGetSetting, strings.TrimSpace(key))
	if err != nil || !found {
		return "", false, err
	}
	if !value.Valid {
		return "null", true, nil
	}
	return value.String, true, nil
}
