package service

import (
	"context"
	"log/slog"

	"storefront/internal/model"
	"storefront/internal/store"
)

// ConfigService reads and replaces the store configuration. Saves are
// wholesale: the record from the settings form overwrites whatever was there.
type ConfigService struct {
	store *store.Store
}

// NewConfigService creates a config service over the persisted store.
func NewConfigService(store *store.Store) *ConfigService {
	return &ConfigService{store: store}
}

// Get returns the current configuration, empty if never saved.
func (s *ConfigService) Get(ctx context.Context) model.AdminConfig {
	return s.store.AdminConfig(ctx)
}

// Save replaces the whole configuration record.
func (s *ConfigService) Save(ctx context.Context, config model.AdminConfig) error {
	if err := s.store.SaveAdminConfig(ctx, config); err != nil {
		return err
	}
	slog.Info("admin config saved", "scriptConfigured", config.ScriptURL != "")
	return nil
}
