package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/scalable_parking/internal/adapter/handler"
	"github.com/srgjo27/scalable_parking/internal/adapter/repository/memory"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
	"github.com/srgjo27/scalable_parking/internal/core/ports"
	"github.com/srgjo27/scalable_parking/internal/core/ports/mocks"
	"github.com/srgjo27/scalable_parking/internal/core/services"
	"github.com/srgjo27/scalable_parking/internal/platform/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	jwtSecret      = "test-secret"
	callbackSecret = "hook-secret"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type server struct {
	router   *gin.Engine
	repos    ports.Repositories
	gateway  *mocks.PaymentGateway
	verifier *auth.Verifier
}

func newServer(t *testing.T) *server {
	t.Helper()

	store := memory.NewStore()
	repos := store.Repositories()
	gw := mocks.NewPaymentGateway(t)

	bookings := services.NewBookingService(store, repos, gw, services.BookingConfig{})
	recon := services.NewReconciliationService(bookings)
	slots := services.NewSlotService(store, repos, nil, nil)
	pricing := services.NewPricingService(store, repos)

	for _, s := range []domain.Slot{
		{ID: "A1", Name: "A1", Level: "G", Category: domain.CategoryRegular},
		{ID: "B1", Name: "B1", Level: "1", Category: domain.CategoryPremium, Occupied: true},
	} {
		slot := s
		require.NoError(t, repos.Slots.Create(context.Background(), &slot))
	}

	verifier := auth.NewVerifier(jwtSecret)
	router := handler.NewRouter(handler.Handlers{
		Bookings: handler.NewBookingHandler(bookings),
		Payments: handler.NewPaymentHandler(recon, callbackSecret),
		Slots:    handler.NewSlotHandler(slots, pricing),
	}, verifier)

	return &server{router: router, repos: repos, gateway: gw, verifier: verifier}
}

func (s *server) token(t *testing.T, sub, role string) string {
	t.Helper()
	tok, err := s.verifier.Sign(sub, role, "0712345678", time.Hour)
	require.NoError(t, err)
	return tok
}

func (s *server) do(t *testing.T, method, path, token, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		r.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, r)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// reserve books A1 for an hour and returns the booking id and correlation id.
func (s *server) reserve(t *testing.T, user string) (string, string) {
	t.Helper()
	s.gateway.EXPECT().
		Initiate(mock.Anything, "0712345678", int64(50), mock.Anything).
		Return("ws_CO_"+user, nil).
		Once()

	w := s.do(t, http.MethodPost, "/v1/bookings", s.token(t, user, auth.RoleUser), `{"slot_id":"A1","duration_hours":1}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	return body["booking_id"].(string), body["correlation_id"].(string)
}

func TestPublicEndpoints(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/v1/slots", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["slots"], 2)

	w = s.do(t, http.MethodGet, "/v1/slots/stats", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":2,"occupied":1,"available":1}`, w.Body.String())

	w = s.do(t, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequired(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodGet, "/v1/bookings", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/v1/bookings", "garbage", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	other, err := auth.NewVerifier("another-secret").Sign("u1", auth.RoleUser, "", time.Hour)
	require.NoError(t, err)
	w = s.do(t, http.MethodGet, "/v1/bookings", other, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/v1/admin/slots", s.token(t, "u1", auth.RoleUser), `{"slot_id":"C1","name":"C1"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateBooking_FlowToPaid(t *testing.T) {
	s := newServer(t)
	user := s.token(t, "u1", auth.RoleUser)

	id, corr := s.reserve(t, "u1")
	assert.Equal(t, "ws_CO_u1", corr)

	w := s.do(t, http.MethodGet, "/v1/bookings/"+id+"/status", user, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PENDING", decode(t, w)["payment_status"])

	w = s.do(t, http.MethodPost, "/v1/payments/callback", "",
		`{"Body":{"stkCallback":{"CheckoutRequestID":"ws_CO_u1","ResultCode":0,"CallbackMetadata":{"Item":[{"Name":"MpesaReceiptNumber","Value":"QK1"}]}}}}`,
		"X-MPESA-CALLBACK-SECRET", callbackSecret)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	w = s.do(t, http.MethodGet, "/v1/bookings/"+id+"/status", user, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "PAID", body["payment_status"])
	assert.Equal(t, "QK1", body["receipt_id"])

	w = s.do(t, http.MethodGet, "/v1/bookings", user, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["bookings"], 1)
}

func TestCreateBooking_Errors(t *testing.T) {
	s := newServer(t)
	user := s.token(t, "u1", auth.RoleUser)

	w := s.do(t, http.MethodPost, "/v1/bookings", user, `{"slot_id":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/v1/bookings", user, `{"slot_id":"A1","duration_hours":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/v1/bookings", user, `{"slot_id":"Z9","duration_hours":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	s.reserve(t, "u2")
	w = s.do(t, http.MethodPost, "/v1/bookings", user, `{"slot_id":"A1","duration_hours":1}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestStatus_OtherUserForbidden(t *testing.T) {
	s := newServer(t)
	id, _ := s.reserve(t, "u1")

	w := s.do(t, http.MethodGet, "/v1/bookings/"+id+"/status", s.token(t, "u2", auth.RoleUser), "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodGet, "/v1/bookings/"+id+"/status", s.token(t, "ops", auth.RoleStaff), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/v1/bookings/not-a-uuid/status", s.token(t, "u1", auth.RoleUser), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelBooking(t *testing.T) {
	s := newServer(t)
	user := s.token(t, "u1", auth.RoleUser)
	id, _ := s.reserve(t, "u1")

	w := s.do(t, http.MethodPost, "/v1/bookings/"+id+"/cancel", user, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "FAILED", decode(t, w)["payment_status"])
}

func TestCallback_Secret(t *testing.T) {
	s := newServer(t)
	s.reserve(t, "u1")
	payload := `{"CheckoutRequestID":"ws_CO_u1","ResultCode":0}`

	w := s.do(t, http.MethodPost, "/v1/payments/callback", "", payload)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"forbidden"}`, w.Body.String())

	w = s.do(t, http.MethodPost, "/v1/payments/callback", "", payload, "X-Callback-Secret", "wrong")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodPost, "/v1/payments/callback", "", payload, "X-Callback-Secret", callbackSecret)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCallback_Outcomes(t *testing.T) {
	s := newServer(t)
	s.reserve(t, "u1")
	hook := func(payload string) *httptest.ResponseRecorder {
		return s.do(t, http.MethodPost, "/v1/payments/callback", "", payload, "X-MPESA-CALLBACK-SECRET", callbackSecret)
	}

	w := hook(`{"CheckoutRequestID":"ws_CO_unknown","ResultCode":0}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"booking not found"}`, w.Body.String())

	w = hook(`{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = hook(`{"status":"SUCCESS"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = hook(`{"CheckoutRequestID":"ws_CO_u1","ResultCode":1032}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":false}`, w.Body.String())

	w = hook(`{"CheckoutRequestID":"ws_CO_u1","ResultCode":0}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLeaveAndUndo(t *testing.T) {
	s := newServer(t)
	user := s.token(t, "u1", auth.RoleUser)
	staff := s.token(t, "ops", auth.RoleAdmin)

	w := s.do(t, http.MethodPost, "/v1/bookings/leave", user, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	id, _ := s.reserve(t, "u1")
	w = s.do(t, http.MethodPost, "/v1/admin/bookings/"+id+"/simulate-paid", staff, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/v1/bookings/leave", user, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	left := decode(t, w)
	assert.Equal(t, id, left["booking_id"])
	assert.Equal(t, "A1", left["slot_id"])
	token := left["token"].(string)

	w = s.do(t, http.MethodPost, "/v1/bookings/undo", s.token(t, "u2", auth.RoleUser), `{"token":"`+token+`"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodPost, "/v1/bookings/undo", user, `{"token":"`+token+`"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, id, decode(t, w)["booking_id"])

	w = s.do(t, http.MethodPost, "/v1/bookings/undo", user, `{"token":"`+token+`"}`)
	assert.Equal(t, http.StatusGone, w.Code)

	w = s.do(t, http.MethodPost, "/v1/bookings/undo", user, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminSlots(t *testing.T) {
	s := newServer(t)
	admin := s.token(t, "ops", auth.RoleAdmin)

	w := s.do(t, http.MethodPost, "/v1/admin/slots", admin, `{"slot_id":"C1","name":"Bay C1","level":"2","pricing_category":"vip"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "VIP", decode(t, w)["pricing_category"])

	w = s.do(t, http.MethodPost, "/v1/admin/slots", admin, `{"slot_id":"C1","name":"again"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPut, "/v1/admin/slots/C1", admin, `{"name":"Bay C-1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bay C-1", decode(t, w)["name"])

	w = s.do(t, http.MethodPut, "/v1/admin/slots/C1/occupancy", admin, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPut, "/v1/admin/slots/C1/occupancy", admin, `{"occupied":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["occupied"])

	w = s.do(t, http.MethodPost, "/v1/admin/slots/C1/toggle", admin, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["occupied"])

	w = s.do(t, http.MethodDelete, "/v1/admin/slots/C1", admin, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodDelete, "/v1/admin/slots/C1", admin, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminDeleteSlotWithBookings(t *testing.T) {
	s := newServer(t)
	s.reserve(t, "u1")

	w := s.do(t, http.MethodDelete, "/v1/admin/slots/A1", s.token(t, "ops", auth.RoleStaff), "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminRates(t *testing.T) {
	s := newServer(t)
	admin := s.token(t, "ops", auth.RoleAdmin)

	w := s.do(t, http.MethodPut, "/v1/admin/rates/premium", admin, `{"rate":"120"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPut, "/v1/admin/rates/gold", admin, `{"rate":10}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/v1/admin/rates", admin, "")
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Rates []domain.PricingRate `json:"rates"`
	}
	require.NoError(t, json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&out))
	require.Len(t, out.Rates, 3)
	for _, r := range out.Rates {
		if r.Category == domain.CategoryPremium {
			assert.True(t, r.Rate.Equal(decimal.NewFromInt(120)), r.Rate.String())
		}
	}

	w = s.do(t, http.MethodGet, "/v1/admin/bookings", admin, "")
	require.Equal(t, http.StatusOK, w.Code)
}
