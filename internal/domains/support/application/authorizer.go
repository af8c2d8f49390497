package application

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/ports"
	"github.com/JDavidVR/zendesk-support-api/internal/shared/apierrors"
)

// bearerPattern accepts only lowercase alphanumeric tokens, matching the
// format the provisioning flow issues. Anything else parses as "no token".
var bearerPattern = regexp.MustCompile(`Bearer ([a-z0-9]+)`)

// Extractor pulls a raw credential string out of the request headers.
type Extractor func(http.Header) string

// HeaderExtractor reads a single named header.
func HeaderExtractor(name string) Extractor {
	return func(h http.Header) string {
		return h.Get(name)
	}
}

// DefaultExtractors is the ordered credential source chain. The alternates
// cover proxies and server setups that strip or rename the standard header.
func DefaultExtractors() []Extractor {
	return []Extractor{
		HeaderExtractor("Authorization"),
		HeaderExtractor("X-Authorization"),
		HeaderExtractor("Http-Authorization"),
		HeaderExtractor("Redirect-Http-Authorization"),
	}
}

// Authorizer validates the bearer credential on inbound requests against the
// provisioning token or the standing API token.
type Authorizer struct {
	config     ports.ConfigStore
	extractors []Extractor
	logger     *slog.Logger
}

// AuthorizerOption customizes an Authorizer.
type AuthorizerOption func(*Authorizer)

// WithExtractors replaces the credential source chain.
func WithExtractors(extractors ...Extractor) AuthorizerOption {
	return func(a *Authorizer) {
		a.extractors = extractors
	}
}

// WithAuthorizerLogger injects a slog logger for failure diagnostics.
func WithAuthorizerLogger(logger *slog.Logger) AuthorizerOption {
	return func(a *Authorizer) {
		a.logger = logger
	}
}

// NewAuthorizer wires an authorizer against the configuration store.
func NewAuthorizer(config ports.ConfigStore, opts ...AuthorizerOption) *Authorizer {
	a := &Authorizer{
		config:     config,
		extractors: DefaultExtractors(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	a.logger = a.logger.With(slog.String("component", "zendesk"))
	return a
}

// Authorize checks the request credential. It returns nil when the parsed
// token matches a live provisioning token (accepted regardless of the API
// flag, then invalidated), or when the API is enabled and the token equals
// the configured API token. Every failure is logged before returning.
func (a *Authorizer) Authorize(ctx context.Context, headers http.Header) error {
	raw := ""
	for _, extract := range a.extractors {
		if v := extract(headers); v != "" {
			raw = v
			break
		}
	}
	if raw == "" {
		return a.fail(ctx, apierrors.ErrMissingCredential)
	}

	// Some transports hand the header over with backslash-escaping intact.
	raw = stripSlashes(raw)

	token := ""
	if m := bearerPattern.FindStringSubmatch(raw); m != nil {
		token = m[1]
	}

	snap, err := a.config.Snapshot(ctx)
	if err != nil {
		return err
	}

	// A live provisioning token overrides the API flag. It is single-use:
	// the configuration layer invalidates it once we report acceptance.
	if snap.ProvisionToken != "" && token == snap.ProvisionToken {
		if err := a.config.ClearProvisionToken(ctx); err != nil {
			a.logger.WarnContext(ctx, "failed to clear provisioning token", slog.String("error", err.Error()))
		}
		return nil
	}

	if !snap.APIEnabled {
		return a.fail(ctx, apierrors.ErrAPIDisabled)
	}
	if token == "" {
		return a.fail(ctx, apierrors.ErrNoToken)
	}
	if token != snap.APIToken {
		return a.fail(ctx, apierrors.ErrNotAuthorized)
	}
	return nil
}

func (a *Authorizer) fail(ctx context.Context, problem *apierrors.Problem) error {
	a.logger.WarnContext(ctx, "authorization failed",
		slog.String("reason", problem.Reason),
		slog.Int("status", problem.Status),
	)
	return problem
}

// stripSlashes removes backslash-escaping artifacts, turning `\"` into `"`
// and `\\` into `\`. A trailing lone backslash is dropped.
func stripSlashes(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if !escaped && r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
		escaped = false
	}
	return b.String()
}

var _ ports.Authorizer = (*Authorizer)(nil)
