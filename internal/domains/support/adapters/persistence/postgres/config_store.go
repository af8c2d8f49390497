package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/ports"
)

// Configuration paths in the store's config table.
const (
	pathAPIEnabled     = "zendesk/api/enabled"
	pathAPIToken       = "zendesk/api/token"
	pathProvisionToken = "zendesk/api/provision_token"
)

type configRecord struct {
	ID    int64  `gorm:"primaryKey;column:config_id"`
	Path  string `gorm:"column:path;index"`
	Value string `gorm:"column:value"`
}

func (configRecord) TableName() string { return "core_config_data" }

var _ ports.ConfigStore = (*ConfigStore)(nil)

// ConfigStore reads the connector configuration from the external config
// table. Clearing the provisioning token deletes its row, which is what
// makes provisioning tokens single-use.
type ConfigStore struct {
	db *gorm.DB
}

// NewConfigStore wires a config store over the shared DB handle.
func NewConfigStore(db *gorm.DB) *ConfigStore {
	return &ConfigStore{db: db}
}

func (s *ConfigStore) Snapshot(ctx context.Context) (ports.ConfigSnapshot, error) {
	if s == nil || s.db == nil {
		return ports.ConfigSnapshot{}, errors.New("postgres config store not configured")
	}
	var records []configRecord
	err := s.db.WithContext(ctx).
		Find(&records, "path IN ?", []string{pathAPIEnabled, pathAPIToken, pathProvisionToken}).Error
	if err != nil {
		return ports.ConfigSnapshot{}, err
	}
	var snap ports.ConfigSnapshot
	for _, record := range records {
		switch record.Path {
		case pathAPIEnabled:
			snap.APIEnabled = isTruthy(record.Value)
		case pathAPIToken:
			snap.APIToken = record.Value
		case pathProvisionToken:
			snap.ProvisionToken = record.Value
		}
	}
	return snap, nil
}

func (s *ConfigStore) ClearProvisionToken(ctx context.Context) error {
	if s == nil || s.db == nil {
		return errors.New("postgres config store not configured")
	}
	return s.db.WithContext(ctx).Delete(&configRecord{}, "path = ?", pathProvisionToken).Error
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
