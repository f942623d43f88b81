package services

import (
	"context"

	"github.com/kantanpro/kantanpro/internal/models"
	"github.com/kantanpro/kantanpro/internal/store"
)

type settingValue struct {
	value any
	found bool
}

// GetSetting returns the decoded value of key. found is false for a key
// that was never set.
func (b *Bridge) GetSetting(ctx context.Context, key string) (any, bool, error) {
	v, err := call(ctx, b, "getSetting", func(ctx context.Context, st *store.Store) (settingValue, error) {
		value, found, err := st.Settings().Value(ctx, key)
		return settingValue{value: value, found: found}, err
	})
	return v.value, v.found, err
}

func (b *Bridge) SetSetting(ctx context.Context, key string, value any) error {
	_, err := call(ctx, b, "setSetting", func(ctx context.Context, st *store.Store) (struct{}, error) {
		return struct{}{}, st.Settings().Set(ctx, key, value)
	})
	return err
}

func (b *Bridge) GetSettings(ctx context.Context) (map[string]any, error) {
	return call(ctx, b, "getSettings", func(ctx context.Context, st *store.Store) (map[string]any, error) {
		return st.Settings().All(ctx)
	})
}

func (b *Bridge) SaveSettings(ctx context.Context, settings map[string]any) error {
	_, err := call(ctx, b, "saveSettings", func(ctx context.Context, st *store.Store) (struct{}, error) {
		return struct{}{}, st.Settings().SaveAll(ctx, settings)
	})
	return err
}

func (b *Bridge) DeleteSetting(ctx context.Context, key string) (models.ExecResult, error) {
	return call(ctx, b, "deleteSetting", func(ctx context.Context, st *store.Store) (models.ExecResult, error) {
		return st.Settings().Delete(ctx, key)
	})
}
