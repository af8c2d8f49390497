package memory

import (
	"context"
	"sync"

	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/ports"
)

var _ ports.ConfigStore = (*ConfigStore)(nil)

// ConfigStore holds the connector configuration in process memory, seeded
// from the environment at startup.
type ConfigStore struct {
	mu             sync.Mutex
	apiEnabled     bool
	apiToken       string
	provisionToken string
}

// NewConfigStore seeds the store with the given values.
func NewConfigStore(apiEnabled bool, apiToken, provisionToken string) *ConfigStore {
	return &ConfigStore{
		apiEnabled:     apiEnabled,
		apiToken:       apiToken,
		provisionToken: provisionToken,
	}
}

func (s *ConfigStore) Snapshot(_ context.Context) (ports.ConfigSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ports.ConfigSnapshot{
		APIEnabled:     s.apiEnabled,
		APIToken:       s.apiToken,
		ProvisionToken: s.provisionToken,
	}, nil
}

func (s *ConfigStore) ClearProvisionToken(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.provisionToken = ""
	return nil
}
