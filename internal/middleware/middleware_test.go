package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inHttp "github.com/Alturino/storefront/internal/http"
	"github.com/Alturino/storefront/internal/log"
	"github.com/Alturino/storefront/internal/token"
)

func TestAuth(t *testing.T) {
	secret := "secret"
	valid, err := token.NewToken(context.Background(), secret, "operator", time.Now())
	require.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
		expected      int
	}{
		{name: "given no header should return unauthorized", authorization: "", expected: http.StatusUnauthorized},
		{name: "given non bearer header should return unauthorized", authorization: "Basic abc", expected: http.StatusUnauthorized},
		{name: "given invalid token should return unauthorized", authorization: "Bearer abc", expected: http.StatusUnauthorized},
		{name: "given valid token should call next handler", authorization: "Bearer " + valid, expected: http.StatusNoContent},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := Auth(secret)(next)

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/catalog/reload", nil)
			if test.authorization != "" {
				req.Header.Set(inHttp.HeaderAuth, test.authorization)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, test.expected, rec.Code)
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	handler := RecoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := map[string]interface{}{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "failed", body["status"])
}

func TestLogging(t *testing.T) {
	var requestID string
	handler := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = log.RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set(inHttp.HeaderRequestID, "req-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "req-1", rec.Header().Get(inHttp.HeaderRequestID))

	req = httptest.NewRequest(http.MethodGet, "/products", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.NotEmpty(t, requestID)
	assert.NotEqual(t, "req-1", requestID)
}
