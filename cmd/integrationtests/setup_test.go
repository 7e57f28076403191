package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	escrow "escrow-engine/internal/escrowService"
	"escrow-engine/internal/events"
	"escrow-engine/internal/ledger"
	"escrow-engine/internal/metrics"
	"escrow-engine/internal/repository"
	"escrow-engine/internal/server"
	"escrow-engine/services/escrow/helpers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	owner = "platform"
	unit  = int64(1_000_000_000_000_000_000)
)

// SetupTestRouter initializes the router with in-memory repository for integration testing.
func SetupTestRouter(t *testing.T) *gin.Engine {
	return SetupTestRouterWithOptions(t, server.Options{CurrencyDecimals: 18})
}

// SetupTestRouterWithOptions builds the full stack with a private metrics registry
func SetupTestRouterWithOptions(t *testing.T, opts server.Options) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	service, err := escrow.NewEscrowService(
		repository.NewMemoryRepo(),
		ledger.New(),
		owner,
		250,
		escrow.WithEventLog(events.NewLog()),
		escrow.WithMetrics(metrics.New(reg)),
	)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	opts.Metrics = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return server.SetupRouter(service, opts)
}

// ExecuteRequestAndParse executes an HTTP request as caller and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, caller string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		req.Header.Set(helpers.CallerHeader, caller)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") && w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// Data returns the object payload of a successful response
func Data(resp map[string]any) map[string]any {
	data, _ := resp["data"].(map[string]any)
	return data
}
