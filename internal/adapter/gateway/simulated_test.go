package gateway_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/srgjo27/scalable_parking/internal/adapter/gateway"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
	"github.com/srgjo27/scalable_parking/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSimulated_ConfirmsAfterDelay(t *testing.T) {
	handler := mocks.NewOutcomeHandler(t)
	g := gateway.NewSimulated(20 * time.Millisecond)
	g.Bind(handler)
	defer g.Close()

	applied := make(chan domain.CallbackResult, 1)
	handler.EXPECT().
		Apply(mock.Anything, mock.AnythingOfType("domain.CallbackResult")).
		Run(func(_ context.Context, res domain.CallbackResult) { applied <- res }).
		Return(&domain.Booking{}, nil).
		Once()

	id, err := g.Initiate(context.Background(), "0712345678", 100, "b-1")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^STK_b-1_[0-9a-f]{8}$`), id)

	select {
	case res := <-applied:
		assert.Equal(t, "b-1", res.BookingID)
		assert.Equal(t, id, res.CorrelationID)
		assert.Equal(t, domain.OutcomeSuccess, res.Outcome)
		assert.Regexp(t, `^SIM-b-1-\d+$`, res.ReceiptID)
	case <-time.After(time.Second):
		t.Fatal("confirmation was not applied")
	}
}

func TestSimulated_CancelledConfirmationNeverFires(t *testing.T) {
	handler := mocks.NewOutcomeHandler(t)
	g := gateway.NewSimulated(30 * time.Millisecond)
	g.Bind(handler)
	defer g.Close()

	_, err := g.Initiate(context.Background(), "0712345678", 100, "b-2")
	require.NoError(t, err)

	g.CancelConfirmation("b-2")
	time.Sleep(80 * time.Millisecond)

	handler.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
}

func TestSimulated_SwallowsHandlerErrors(t *testing.T) {
	handler := mocks.NewOutcomeHandler(t)
	g := gateway.NewSimulated(5 * time.Millisecond)
	g.Bind(handler)

	done := make(chan struct{})
	handler.EXPECT().
		Apply(mock.Anything, mock.Anything).
		Run(func(context.Context, domain.CallbackResult) { close(done) }).
		Return(nil, domain.ErrInvalidTransition).
		Once()

	_, err := g.Initiate(context.Background(), "", 0, "b-3")
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("confirmation was not attempted")
	}
	g.Close()
}

func TestSimulated_ClosedGatewayFails(t *testing.T) {
	g := gateway.NewSimulated(time.Millisecond)
	g.Close()

	_, err := g.Initiate(context.Background(), "0712345678", 100, "b-4")
	assert.True(t, errors.Is(err, domain.ErrGateway))
}
