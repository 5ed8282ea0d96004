package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
	"github.com/srgjo27/scalable_parking/internal/core/ports"
	"github.com/srgjo27/scalable_parking/internal/platform/monitoring"
)

var _ ports.OutcomeHandler = (*ReconciliationService)(nil)

type ReconciliationService struct {
	bookings *BookingService
}

func NewReconciliationService(bookings *BookingService) *ReconciliationService {
	return &ReconciliationService{bookings: bookings}
}

// HandleCallback normalizes a provider payload and applies it.
func (s *ReconciliationService) HandleCallback(ctx context.Context, payload []byte) (domain.CallbackResult, *domain.Booking, error) {
	res, err := Normalize(payload)
	if err != nil {
		monitoring.TrackCallback("webhook", "unknown", err)
		return res, nil, err
	}

	b, err := s.apply(ctx, "webhook", res)
	return res, b, err
}

func (s *ReconciliationService) Apply(ctx context.Context, res domain.CallbackResult) (*domain.Booking, error) {
	return s.apply(ctx, "internal", res)
}

func (s *ReconciliationService) apply(ctx context.Context, source string, res domain.CallbackResult) (*domain.Booking, error) {
	b, err := s.bookings.FindByReference(ctx, res.BookingID, res.CorrelationID)
	if err != nil {
		monitoring.TrackCallback(source, string(res.Outcome), err)
		return nil, err
	}

	switch res.Outcome {
	case domain.OutcomeSuccess:
		receipt := res.ReceiptID
		if receipt == "" {
			receipt = "MPESA-" + b.ID.String()
		}
		b, _, err = s.bookings.MarkPaid(ctx, b.ID, receipt)
	default:
		b, err = s.bookings.MarkFailed(ctx, b.ID)
	}
	monitoring.TrackCallback(source, string(res.Outcome), err)
	if err != nil {
		return nil, err
	}

	log.Printf("reconciled %s outcome %s for booking %s (status %s)", source, res.Outcome, b.ID, b.Status)
	return b, nil
}

// SimulatePaid is the operator recovery path for callbacks that never arrive.
func (s *ReconciliationService) SimulatePaid(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	receipt := fmt.Sprintf("SIM-%s-%d", bookingID, time.Now().UnixMicro())
	b, _, err := s.bookings.MarkPaid(ctx, bookingID, receipt)
	monitoring.TrackCallback("admin", string(domain.OutcomeSuccess), err)
	if err != nil {
		return nil, err
	}
	log.Printf("booking %s marked PAID by operator override", bookingID)
	return b, nil
}

// Normalize extracts booking reference, outcome and receipt from either a flat
// payload or a Daraja style {"Body":{"stkCallback":{...}}} envelope.
func Normalize(payload []byte) (domain.CallbackResult, error) {
	var res domain.CallbackResult

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var root map[string]any
	if err := dec.Decode(&root); err != nil || root == nil {
		return res, fmt.Errorf("%w: callback body must be a JSON object", domain.ErrValidation)
	}

	res.BookingID = stringField(root, "booking_id")
	res.CorrelationID = stringField(root, "CheckoutRequestID", "MerchantRequestID")
	res.ReceiptID = stringField(root, "receipt", "MpesaReceiptNumber")
	status := anyField(root, "status", "ResultCode")

	if stk := objectField(objectField(root, "Body"), "stkCallback", "stkcallback"); stk != nil {
		if v := anyField(stk, "ResultCode"); v != nil {
			status = v
		}
		if res.CorrelationID == "" {
			res.CorrelationID = stringField(stk, "CheckoutRequestID", "MerchantRequestID")
		}
		meta := objectField(stk, "CallbackMetadata", "Callback")
		items, _ := anyField(meta, "Item", "Items").([]any)
		for _, it := range items {
			item, ok := it.(map[string]any)
			if !ok {
				continue
			}
			name := strings.ToLower(stringField(item, "Name", "name"))
			if name == "mpesareceiptnumber" || name == "mpesareceipt" {
				if v := stringField(item, "Value", "value"); v != "" {
					res.ReceiptID = v
				}
			}
		}
	}

	res.Outcome = domain.OutcomeFailure
	if IsSuccessCode(status) {
		res.Outcome = domain.OutcomeSuccess
	}
	return res, nil
}

// IsSuccessCode accepts numeric zero, the string "0", and "success" or "ok" in any case.
func IsSuccessCode(v any) bool {
	switch s := v.(type) {
	case json.Number:
		f, err := s.Float64()
		return err == nil && f == 0
	case float64:
		return s == 0
	case int:
		return s == 0
	case int64:
		return s == 0
	case string:
		return s == "0" || strings.EqualFold(s, "success") || strings.EqualFold(s, "ok")
	}
	return false
}

func anyField(m map[string]any, keys ...string) any {
	if m == nil {
		return nil
	}
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && s == "" {
			continue
		}
		return v
	}
	return nil
}

func stringField(m map[string]any, keys ...string) string {
	switch v := anyField(m, keys...).(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	}
	return ""
}

func objectField(m map[string]any, keys ...string) map[string]any {
	obj, _ := anyField(m, keys...).(map[string]any)
	return obj
}
