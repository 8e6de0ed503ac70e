package internal

import (
	"crypto/tls"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"thepay/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(db *MockDatabase) *Server {
	conf := testConfig()
	payments := NewPayments(conf)
	if db != nil {
		payments.SetDatabase(db)
	}
	server := NewServer(conf)
	server.SetPaymentsService(payments)
	return server
}

func TestServer_CreatePayment(t *testing.T) {
	server := newTestServer(nil)

	body := `{"value": 10, "currency": "CZK", "deposit": true, "eet_dph": [{"key": "eetDphDan1", "value": "1.74"}]}`
	req := httptest.NewRequest(http.MethodPost, "http://shop.example/payment?order=42", strings.NewReader(body))
	rec := httptest.NewRecorder()
	server.httpServer.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response entity.PaymentRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	assert.Equal(t, []string{"merchantId", "accountId", "value", "currency", "returnUrl", "deposit", "eetDphDan1"}, response.Parameters.Keys())
	returnUrl, _ := response.Parameters.Get("returnUrl")
	assert.Equal(t, "http://shop.example/payment?order=42", returnUrl)
	assert.Equal(t, NewEncryptor("secret", response.Parameters).CreateSignature(), response.Signature)
}

func TestServer_CreatePaymentConfiguredReturnUrl(t *testing.T) {
	server := newTestServer(nil)
	server.conf.Merchant.ReturnUrl = "https://shop.example/return"

	req := httptest.NewRequest(http.MethodPost, "/payment", strings.NewReader(`{"value": 1, "currency": "EUR"}`))
	rec := httptest.NewRecorder()
	server.httpServer.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response entity.PaymentRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	returnUrl, _ := response.Parameters.Get("returnUrl")
	assert.Equal(t, "https://shop.example/return", returnUrl)
}

func TestServer_CreatePaymentErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantText string
	}{
		{name: "malformed body", body: `{"value":`, wantCode: http.StatusBadRequest},
		{name: "missing value", body: `{"currency": "CZK"}`, wantCode: http.StatusBadRequest, wantText: "Missing parameter value"},
		{name: "negative value", body: `{"value": -0.01, "currency": "CZK"}`, wantCode: http.StatusBadRequest, wantText: "Invalid parameter value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(nil)
			req := httptest.NewRequest(http.MethodPost, "/payment", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			server.httpServer.Handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantText != "" {
				assert.Contains(t, rec.Body.String(), tt.wantText)
			}
		})
	}
}

func TestServer_ReadPayment(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := new(MockDatabase)
		record := &entity.PaymentRecord{MerchantId: "M1", Signature: "af62e518761f722343f905dae00974ba"}
		db.On("GetPaymentRecord", mock.Anything, record.Signature).Return(record, nil)

		server := newTestServer(db)
		req := httptest.NewRequest(http.MethodGet, "/payment/"+record.Signature, nil)
		rec := httptest.NewRecorder()
		server.httpServer.Handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got entity.PaymentRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, record.Signature, got.Signature)
		db.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		db := new(MockDatabase)
		db.On("GetPaymentRecord", mock.Anything, "missing").Return(nil, ErrPaymentNotFound)

		server := newTestServer(db)
		rec := httptest.NewRecorder()
		server.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payment/missing", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("no database", func(t *testing.T) {
		server := newTestServer(nil)
		rec := httptest.NewRecorder()
		server.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payment/abc", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestServer_Health(t *testing.T) {
	server := newTestServer(nil)
	rec := httptest.NewRecorder()
	server.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestUrl(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://shop.example/checkout?step=2", nil)
	assert.Equal(t, "http://shop.example/checkout?step=2", RequestUrl(req))

	req.TLS = &tls.ConnectionState{}
	assert.Equal(t, "https://shop.example/checkout?step=2", RequestUrl(req))

	req = httptest.NewRequest(http.MethodGet, "http://shop.example/checkout", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://shop.example/checkout", RequestUrl(req))

	assert.Equal(t, "", RequestUrl(&http.Request{}))
}
