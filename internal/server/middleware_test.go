package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"escrow-engine/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newMiddlewareRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw...)
	router.GET("/ping", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, c.GetString(utils.RequestIDKey), "pong")
	})
	return router
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()

	router := newMiddlewareRouter(RequestIDMiddleware)
	incoming := uuid.NewString()

	tests := []struct {
		name     string
		header   string
		expectID func(t *testing.T, id string)
	}{
		{
			name:   "generated_when_missing",
			header: "",
			expectID: func(t *testing.T, id string) {
				_, err := uuid.Parse(id)
				require.NoError(t, err)
			},
		},
		{
			name:   "reused_when_valid",
			header: incoming,
			expectID: func(t *testing.T, id string) {
				require.Equal(t, incoming, id)
			},
		},
		{
			name:   "replaced_when_invalid",
			header: "not-a-uuid",
			expectID: func(t *testing.T, id string) {
				require.NotEqual(t, "not-a-uuid", id)
				_, err := uuid.Parse(id)
				require.NoError(t, err)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tc.header != "" {
				req.Header.Set(RequestIDHeader, tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			id := w.Header().Get(RequestIDHeader)
			tc.expectID(t, id)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Equal(t, id, resp["data"])
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Parallel()

	router := newMiddlewareRouter(RequestIDMiddleware, RateLimitMiddleware(NewClientLimiter(0.001, 2)))

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "192.0.2.10:1234"
		last = httptest.NewRecorder()
		router.ServeHTTP(last, req)
		codes = append(codes, last.Code)
	}
	require.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(last.Body.Bytes(), &resp))
	require.Equal(t, "too many requests", resp["message"])
	require.Equal(t, last.Header().Get(RequestIDHeader), resp["request_id"])

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "192.0.2.11:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "other clients keep their own bucket")
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	t.Parallel()

	router := newMiddlewareRouter(RateLimitMiddleware(nil))
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}
