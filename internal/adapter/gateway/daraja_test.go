package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/srgjo27/scalable_parking/internal/adapter/gateway"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDaraja struct {
	tokenCalls atomic.Int32
	pushCalls  atomic.Int32
	lastPush   map[string]any
	pushStatus int
	pushBody   string
}

func (f *fakeDaraja) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/v1/generate", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		user, pass, ok := r.BasicAuth()
		if !ok || user != "key" || pass != "secret" || r.URL.Query().Get("grant_type") != "client_credentials" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok-123","expires_in":"3599"}`))
	})
	mux.HandleFunc("/mpesa/stkpush/v1/processrequest", func(w http.ResponseWriter, r *http.Request) {
		f.pushCalls.Add(1)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		f.lastPush = map[string]any{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&f.lastPush))

		status := f.pushStatus
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		w.Write([]byte(f.pushBody))
	})
	return mux
}

func newDaraja(t *testing.T, f *fakeDaraja) *gateway.Daraja {
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)

	return gateway.NewDaraja(gateway.DarajaConfig{
		BaseURL:        srv.URL + "/",
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		Shortcode:      "174379",
		Passkey:        "pass",
		CallbackURL:    "https://example.test/v1/payments/callback",
	}, srv.Client())
}

func TestDaraja_InitiateSuccess(t *testing.T) {
	f := &fakeDaraja{pushBody: `{"MerchantRequestID":"m-1","CheckoutRequestID":"ws_CO_1","ResponseCode":"0"}`}
	d := newDaraja(t, f)

	id, err := d.Initiate(context.Background(), "0712345678", 150, "b-1")
	require.NoError(t, err)
	assert.Equal(t, "ws_CO_1", id)

	assert.Equal(t, "254712345678", f.lastPush["PartyA"])
	assert.Equal(t, "254712345678", f.lastPush["PhoneNumber"])
	assert.Equal(t, "174379", f.lastPush["PartyB"])
	assert.Equal(t, "CustomerPayBillOnline", f.lastPush["TransactionType"])
	assert.Equal(t, float64(150), f.lastPush["Amount"])
	assert.Equal(t, "Bookingb-1", f.lastPush["AccountReference"])

	ts, _ := f.lastPush["Timestamp"].(string)
	assert.Len(t, ts, 14)
	assert.Equal(t, gateway.Password("174379", "pass", ts), f.lastPush["Password"])
}

func TestDaraja_TokenIsCached(t *testing.T) {
	f := &fakeDaraja{pushBody: `{"CheckoutRequestID":"ws_CO_1"}`}
	d := newDaraja(t, f)

	for i := 0; i < 3; i++ {
		_, err := d.Initiate(context.Background(), "+254712345678", 50, "b-1")
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), f.tokenCalls.Load())
	assert.Equal(t, int32(3), f.pushCalls.Load())
}

func TestDaraja_FallsBackToMerchantRequestID(t *testing.T) {
	f := &fakeDaraja{pushBody: `{"MerchantRequestID":"m-9"}`}
	d := newDaraja(t, f)

	id, err := d.Initiate(context.Background(), "712345678", 50, "b-1")
	require.NoError(t, err)
	assert.Equal(t, "m-9", id)
}

func TestDaraja_Non2xxIsGatewayError(t *testing.T) {
	f := &fakeDaraja{pushStatus: http.StatusInternalServerError, pushBody: `{"errorMessage":"boom"}`}
	d := newDaraja(t, f)

	_, err := d.Initiate(context.Background(), "0712345678", 50, "b-1")
	assert.True(t, errors.Is(err, domain.ErrGateway))
}

func TestDaraja_InvalidPhoneMakesNoCalls(t *testing.T) {
	f := &fakeDaraja{}
	d := newDaraja(t, f)

	_, err := d.Initiate(context.Background(), "12345", 50, "b-1")
	assert.True(t, errors.Is(err, domain.ErrInvalidAddress))
	assert.Equal(t, int32(0), f.tokenCalls.Load())
	assert.Equal(t, int32(0), f.pushCalls.Load())
}

func TestDaraja_BadCredentials(t *testing.T) {
	f := &fakeDaraja{}
	srv := httptest.NewServer(f.handler(t))
	defer srv.Close()

	d := gateway.NewDaraja(gateway.DarajaConfig{BaseURL: srv.URL, ConsumerKey: "key", ConsumerSecret: "wrong"}, srv.Client())

	_, err := d.Initiate(context.Background(), "0712345678", 50, "b-1")
	assert.True(t, errors.Is(err, domain.ErrGateway))
	assert.Equal(t, int32(0), f.pushCalls.Load())
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "0712345678", want: "254712345678"},
		{in: "712345678", want: "254712345678"},
		{in: "254712345678", want: "254712345678"},
		{in: "+254712345678", want: "254712345678"},
		{in: "0712 345 678", want: "254712345678"},
		{in: "", wantErr: true},
		{in: "12345", wantErr: true},
		{in: "+1 555 0100", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := gateway.NormalizePhone(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domain.ErrInvalidAddress))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	g, err := gateway.New(gateway.Config{Mode: "simulate"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &gateway.Simulated{}, g)

	_, err = gateway.New(gateway.Config{Mode: "live"}, nil)
	assert.Error(t, err)

	g, err = gateway.New(gateway.Config{Mode: "LIVE", Daraja: gateway.DarajaConfig{
		BaseURL: "https://sandbox.test", ConsumerKey: "k", ConsumerSecret: "s",
		Shortcode: "1", Passkey: "p", CallbackURL: "https://cb.test",
	}}, nil)
	require.NoError(t, err)
	assert.IsType(t, &gateway.Daraja{}, g)

	_, err = gateway.New(gateway.Config{Mode: "paypal"}, nil)
	assert.Error(t, err)
}
