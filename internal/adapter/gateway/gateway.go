package gateway

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/srgjo27/scalable_parking/internal/core/ports"
)

const (
	ModeSimulate = "simulate"
	ModeLive     = "live"
)

type Config struct {
	Mode           string
	SimulatedDelay time.Duration
	Daraja         DarajaConfig
}

// New returns the gateway selected by cfg.Mode. The simulated gateway is
// returned unbound; call Bind before the first Initiate.
func New(cfg Config, hc *http.Client) (ports.PaymentGateway, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Mode)) {
	case "", ModeSimulate:
		return NewSimulated(cfg.SimulatedDelay), nil
	case ModeLive:
		if err := cfg.Daraja.Validate(); err != nil {
			return nil, err
		}
		return NewDaraja(cfg.Daraja, hc), nil
	default:
		return nil, fmt.Errorf("unknown payment mode %q", cfg.Mode)
	}
}
