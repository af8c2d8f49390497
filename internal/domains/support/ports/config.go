package ports

import "context"

// ConfigSnapshot is the immutable view of the connector configuration a
// single request authorizes against.
type ConfigSnapshot struct {
	APIEnabled     bool
	APIToken       string
	ProvisionToken string
}

// ConfigStore exposes the connector configuration held by the external
// configuration layer. ClearProvisionToken is the only mutation this system
// ever triggers: provisioning tokens are single-use and the authorizer asks
// the store to invalidate one after it has been accepted.
type ConfigStore interface {
	Snapshot(ctx context.Context) (ConfigSnapshot, error)
	ClearProvisionToken(ctx context.Context) error
}
