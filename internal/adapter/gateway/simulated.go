package gateway

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
	"github.com/srgjo27/scalable_parking/internal/core/ports"
	"github.com/srgjo27/scalable_parking/internal/platform/monitoring"
)

const DefaultSimulatedDelay = 5 * time.Second

var (
	_ ports.PaymentGateway        = (*Simulated)(nil)
	_ ports.ConfirmationCanceller = (*Simulated)(nil)
)

// Simulated never leaves the process: every initiation is confirmed as paid
// after a delay unless the booking is resolved first.
type Simulated struct {
	delay time.Duration
	sched *Scheduler

	mu      sync.RWMutex
	handler ports.OutcomeHandler
}

func NewSimulated(delay time.Duration) *Simulated {
	if delay <= 0 {
		delay = DefaultSimulatedDelay
	}
	return &Simulated{delay: delay, sched: NewScheduler()}
}

// Bind sets where simulated confirmations are reported.
func (g *Simulated) Bind(h ports.OutcomeHandler) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.handler = h
}

func (g *Simulated) Initiate(_ context.Context, _ string, _ int64, bookingID string) (string, error) {
	started := time.Now()
	correlationID := fmt.Sprintf("STK_%s_%s", bookingID, strings.ReplaceAll(uuid.NewString(), "-", "")[:8])

	ok := g.sched.Schedule(bookingID, g.delay, func(ctx context.Context) {
		g.confirm(ctx, bookingID, correlationID)
	})
	if !ok {
		err := fmt.Errorf("%w: simulated gateway is shut down", domain.ErrGateway)
		monitoring.TrackGatewayCall(ModeSimulate, "initiate", started, err)
		return "", err
	}

	monitoring.TrackGatewayCall(ModeSimulate, "initiate", started, nil)
	log.Printf("simulate mode: scheduled confirmation for booking %s in %s", bookingID, g.delay)
	return correlationID, nil
}

func (g *Simulated) CancelConfirmation(bookingID string) {
	if g.sched.Cancel(bookingID) {
		log.Printf("simulate mode: dropped confirmation for booking %s", bookingID)
	}
}

func (g *Simulated) Close() {
	g.sched.Stop()
}

func (g *Simulated) confirm(ctx context.Context, bookingID, correlationID string) {
	g.mu.RLock()
	h := g.handler
	g.mu.RUnlock()

	if h == nil {
		log.Printf("simulate mode: no outcome handler bound, booking %s left as is", bookingID)
		return
	}

	res := domain.CallbackResult{
		BookingID:     bookingID,
		CorrelationID: correlationID,
		Outcome:       domain.OutcomeSuccess,
		ReceiptID:     fmt.Sprintf("SIM-%s-%d", bookingID, time.Now().Unix()),
	}
	if _, err := h.Apply(ctx, res); err != nil {
		log.Printf("simulate mode: confirmation for booking %s not applied: %v", bookingID, err)
	}
}
