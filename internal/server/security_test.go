package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"

	tests := []struct {
		name           string
		serverKey      string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"Valid API Key", apiKey, apiKey, "/api/v1/market", http.StatusOK},
		{"Invalid API Key", apiKey, "wrong-key", "/api/v1/market", http.StatusUnauthorized},
		{"Missing API Key", apiKey, "", "/api/v1/market", http.StatusUnauthorized},
		{"Unset server key rejects everything", "", "", "/api/v1/market", http.StatusUnauthorized},
		{"Public Path - Healthz", apiKey, "", "/healthz", http.StatusOK},
		{"Public Path - Version", apiKey, "", "/version", http.StatusOK},
		{"Public Path - Metrics", apiKey, "", "/metrics", http.StatusOK},
		{"Public Path - Swagger", apiKey, "", "/swagger/index.html", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewSuspiciousActivityDetector()
			middleware := AuthMiddleware(tt.serverKey, nil, detector)
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_RecordsFailures(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := AuthMiddleware("secret-key", nil, detector)(http.NotFoundHandler())

	for i := 0; i < FailedAuthAlertThreshold; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/market/buy", nil)
		req.RemoteAddr = "203.0.113.9:5555"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, FailedAuthAlertThreshold, detector.FailedAuthCount("203.0.113.9"))
	assert.Zero(t, detector.FailedAuthCount("198.51.100.1"))
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		want       string
	}{
		{"direct connection", "198.51.100.7:4000", "", nil, "198.51.100.7"},
		{"untrusted proxy header ignored", "198.51.100.7:4000", "10.1.1.1", nil, "198.51.100.7"},
		{"trusted proxy uses rightmost hop", "10.0.0.2:4000", "1.1.1.1, 203.0.113.5", []string{"10.0.0.2"}, "203.0.113.5"},
		{"trusted proxy without header", "10.0.0.2:4000", "", []string{"10.0.0.2"}, "10.0.0.2"},
		{"unparseable remote addr", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}
