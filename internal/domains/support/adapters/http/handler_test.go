package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/adapters/memory"
	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/application"
	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/domain"
	"github.com/JDavidVR/zendesk-support-api/internal/shared/format"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, repo *memory.Repository, config *memory.ConfigStore) *gin.Engine {
	t.Helper()
	money, err := format.NewMoneyFormatter("en-US", "USD")
	require.NoError(t, err)
	dates, err := format.NewDateFormatter("", "UTC")
	require.NoError(t, err)
	service := application.NewService(repo, repo, repo, repo, money, dates)
	authorizer := application.NewAuthorizer(config)
	return NewRouter(NewCustomerOrderAPI(authorizer, service, nil))
}

func seedJane(repo *memory.Repository) {
	group := int64(1)
	repo.AddCustomer(domain.CustomerRecord{
		ID: 7, Email: "jane@example.com", Firstname: "Jane", Lastname: "Doe",
		CreatedAt: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		GroupID:   &group,
	})
	repo.SetGroup(1, "General")
	repo.SetStore(1, "Main Website")
	repo.AddOrder(domain.OrderRecord{
		ID: 100, IncrementID: "100000100", Status: "complete", StoreID: 1,
		CustomerEmail: "jane@example.com", SubtotalInvoiced: domain.Numeric(10),
	})
	repo.AddOrder(domain.OrderRecord{
		ID: 101, IncrementID: "100000101", Status: "processing", StoreID: 1,
		CustomerEmail: "jane@example.com", SubtotalInvoiced: domain.Numeric(20),
	})
}

func TestCustomerOrder_Success(t *testing.T) {
	repo := memory.NewRepository()
	seedJane(repo)
	router := newTestRouter(t, repo, memory.NewConfigStore(true, "abc123", ""))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customerorder?jane@example.com", nil)
	req.Header.Set("Authorization", "Bearer abc123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var doc domain.CustomerOrders
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "jane@example.com", doc.Email)
	assert.Equal(t, "$30.00", doc.LifetimeSales)
	require.Len(t, doc.Orders, 2)
	assert.Equal(t, "100000101", doc.Orders[0].IncrementID, "newest first")
}

func TestCustomerOrder_AuthorizationFailures(t *testing.T) {
	tests := []struct {
		name        string
		config      *memory.ConfigStore
		header      string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "no credential",
			config:      memory.NewConfigStore(true, "abc123", ""),
			header:      "",
			wantStatus:  http.StatusForbidden,
			wantMessage: "Unable to extract authorization header from request",
		},
		{
			name:        "api disabled",
			config:      memory.NewConfigStore(false, "abc123", ""),
			header:      "Bearer abc123",
			wantStatus:  http.StatusForbidden,
			wantMessage: "API access disabled",
		},
		{
			name:        "no token",
			config:      memory.NewConfigStore(true, "abc123", ""),
			header:      "Token xyz",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "No authorisation token provided",
		},
		{
			name:        "wrong token",
			config:      memory.NewConfigStore(true, "abc123", ""),
			header:      "Bearer wrong0",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Not authorised",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(t, memory.NewRepository(), tc.config)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/customerorder?jane@example.com", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)
			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.wantMessage, body.Message)
		})
	}
}

func TestCustomerOrder_ProvisionTokenBypassesDisabledAPI(t *testing.T) {
	repo := memory.NewRepository()
	seedJane(repo)
	config := memory.NewConfigStore(false, "abc123", "bootstrap99")
	router := newTestRouter(t, repo, config)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customerorder?jane@example.com", nil)
	req.Header.Set("Authorization", "Bearer bootstrap99")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// Second use fails: the token was cleared on first acceptance.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCustomerOrder_BadParameterCount(t *testing.T) {
	router := newTestRouter(t, memory.NewRepository(), memory.NewConfigStore(true, "abc123", ""))

	for _, target := range []string{
		"/api/v1/customerorder",
		"/api/v1/customerorder?jane@example.com&extra=1",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.Header.Set("Authorization", "Bearer abc123")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestCustomerOrder_PostForm(t *testing.T) {
	repo := memory.NewRepository()
	seedJane(repo)
	router := newTestRouter(t, repo, memory.NewConfigStore(true, "abc123", ""))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/customerorder?jane@example.com", nil)
	req.Header.Set("Authorization", "Bearer abc123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCustomerOrder_FallbackHeaderAccepted(t *testing.T) {
	repo := memory.NewRepository()
	seedJane(repo)
	router := newTestRouter(t, repo, memory.NewConfigStore(true, "abc123", ""))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customerorder?jane@example.com", nil)
	req.Header.Set("Http-Authorization", "Bearer abc123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
