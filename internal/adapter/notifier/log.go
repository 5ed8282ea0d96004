package notifier

import (
	"context"
	"log"

	"github.com/srgjo27/scalable_parking/internal/core/domain"
	"github.com/srgjo27/scalable_parking/internal/core/ports"
)

var _ ports.Notifier = Log{}

// Log writes events to the process log when no broker is configured.
type Log struct{}

func (Log) Notify(_ context.Context, evt domain.Event) error {
	log.Printf("event %s booking=%s user=%s slot=%s fee=%s", evt.Type, evt.BookingID, evt.UserID, evt.SlotID, evt.Fee)
	return nil
}
