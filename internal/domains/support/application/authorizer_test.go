package application

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/ports"
	"github.com/JDavidVR/zendesk-support-api/internal/shared/apierrors"
)

type fakeConfigStore struct {
	snapshot ports.ConfigSnapshot
	cleared  int
}

func (f *fakeConfigStore) Snapshot(context.Context) (ports.ConfigSnapshot, error) {
	return f.snapshot, nil
}

func (f *fakeConfigStore) ClearProvisionToken(context.Context) error {
	f.cleared++
	f.snapshot.ProvisionToken = ""
	return nil
}

func headersWith(token string) http.Header {
	h := http.Header{}
	h.Set("Authorization", token)
	return h
}

func TestAuthorize_APITokenMatch(t *testing.T) {
	config := &fakeConfigStore{snapshot: ports.ConfigSnapshot{APIEnabled: true, APIToken: "abc123"}}
	auth := NewAuthorizer(config)

	err := auth.Authorize(context.Background(), headersWith("Bearer abc123"))
	require.NoError(t, err)
	require.Zero(t, config.cleared)
}

func TestAuthorize_ProvisionTokenOverridesDisabledAPI(t *testing.T) {
	config := &fakeConfigStore{snapshot: ports.ConfigSnapshot{
		APIEnabled:     false,
		APIToken:       "abc123",
		ProvisionToken: "bootstrap99",
	}}
	auth := NewAuthorizer(config)

	err := auth.Authorize(context.Background(), headersWith("Bearer bootstrap99"))
	require.NoError(t, err)
	require.Equal(t, 1, config.cleared, "provisioning tokens are single-use")
}

func TestAuthorize_MissingCredential(t *testing.T) {
	config := &fakeConfigStore{snapshot: ports.ConfigSnapshot{APIEnabled: true, APIToken: "abc123"}}
	auth := NewAuthorizer(config)

	err := auth.Authorize(context.Background(), http.Header{})
	require.ErrorIs(t, err, apierrors.ErrMissingCredential)
}

func TestAuthorize_FailureTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		snapshot ports.ConfigSnapshot
		header   string
		want     *apierrors.Problem
	}{
		{
			name:     "api disabled",
			snapshot: ports.ConfigSnapshot{APIEnabled: false, APIToken: "abc123"},
			header:   "Bearer abc123",
			want:     apierrors.ErrAPIDisabled,
		},
		{
			name:     "no token parsed",
			snapshot: ports.ConfigSnapshot{APIEnabled: true, APIToken: "abc123"},
			header:   "Basic dXNlcjpwYXNz",
			want:     apierrors.ErrNoToken,
		},
		{
			name:     "uppercase token parses as absent",
			snapshot: ports.ConfigSnapshot{APIEnabled: true, APIToken: "abc123"},
			header:   "Bearer ABC123",
			want:     apierrors.ErrNoToken,
		},
		{
			name:     "token mismatch",
			snapshot: ports.ConfigSnapshot{APIEnabled: true, APIToken: "abc123"},
			header:   "Bearer wrong0",
			want:     apierrors.ErrNotAuthorized,
		},
		{
			name:     "stale provision token does not bypass disabled api",
			snapshot: ports.ConfigSnapshot{APIEnabled: false, APIToken: "abc123", ProvisionToken: ""},
			header:   "Bearer abc123",
			want:     apierrors.ErrAPIDisabled,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			config := &fakeConfigStore{snapshot: tc.snapshot}
			auth := NewAuthorizer(config)

			err := auth.Authorize(context.Background(), headersWith(tc.header))
			var problem *apierrors.Problem
			require.True(t, errors.As(err, &problem))
			require.Equal(t, tc.want, problem)
			require.Zero(t, config.cleared)
		})
	}
}

func TestAuthorize_ExtractorFallbackOrder(t *testing.T) {
	config := &fakeConfigStore{snapshot: ports.ConfigSnapshot{APIEnabled: true, APIToken: "abc123"}}
	auth := NewAuthorizer(config)

	h := http.Header{}
	h.Set("Redirect-Http-Authorization", "Bearer abc123")
	require.NoError(t, auth.Authorize(context.Background(), h))

	// An earlier source wins even when it holds a worse credential.
	h.Set("X-Authorization", "Bearer wrong0")
	err := auth.Authorize(context.Background(), h)
	require.ErrorIs(t, err, apierrors.ErrNotAuthorized)
}

func TestAuthorize_StripsEscapedCredential(t *testing.T) {
	config := &fakeConfigStore{snapshot: ports.ConfigSnapshot{APIEnabled: true, APIToken: "abc123"}}
	auth := NewAuthorizer(config)

	err := auth.Authorize(context.Background(), headersWith(`Bearer\ abc123`))
	require.NoError(t, err)
}

func TestStripSlashes(t *testing.T) {
	require.Equal(t, `Bearer "abc"`, stripSlashes(`Bearer \"abc\"`))
	require.Equal(t, `a\b`, stripSlashes(`a\\b`))
	require.Equal(t, "trailing", stripSlashes(`trailing\`))
	require.Equal(t, "plain", stripSlashes("plain"))
}
