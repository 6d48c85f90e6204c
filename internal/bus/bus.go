// Package bus provides event bus implementations for Kavach.
package bus

import (
	"fmt"

	"github.com/upi-kavach/kavach/internal/domain"
)

// New creates an event bus based on configuration: an in-process channel
// bus for the default single-node setup, or NATS when triage events must
// reach external consumers.
func New(cfg domain.EventBusConfig) (domain.EventBus, error) {
	switch cfg.Type {
	case "channel":
		return NewChannelBus(cfg.ChannelBufferSize), nil

	case "nats":
		return NewNATSBus(cfg)

	default:
		return nil, fmt.Errorf("unsupported event bus type: %s", cfg.Type)
	}
}
