package bm

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	websocketdto "delivery-track/internal/dashboard-service/core/domain/websocket_dto"
	"delivery-track/internal/dashboard-service/core/ports"
	"delivery-track/internal/mylogger"
)

const locationExchange = "driver.locations"

// bridgedUpdate wraps a relay event with the id of the instance that
// published it, so a consumer can discard its own echo.
type bridgedUpdate struct {
	Origin string                      `json:"origin"`
	Update websocketdto.LocationUpdate `json:"update"`
}

// RelayBridge mirrors driver location events across server instances
// through a fanout exchange. Each instance publishes what its own sessions
// produced and fans everything else into its local relay.
type RelayBridge struct {
	broker   ports.IBroker
	instance string
	mylog    mylogger.Logger
}

func NewRelayBridge(broker ports.IBroker, mylog mylogger.Logger) *RelayBridge {
	return &RelayBridge{
		broker:   broker,
		instance: uuid.NewString(),
		mylog:    mylog,
	}
}

func (rb *RelayBridge) Forward(ctx context.Context, update websocketdto.LocationUpdate) error {
	return rb.broker.PublishJSON(ctx, locationExchange, "", bridgedUpdate{
		Origin: rb.instance,
		Update: update,
	})
}

// Run consumes mirrored events until the context is cancelled. Events this
// instance published are skipped; the rest go to the local sessions only,
// never back through Publish, so nothing loops.
func (rb *RelayBridge) Run(ctx context.Context, relay ports.ILocalRelay) error {
	deliveries, err := rb.broker.Consume(ctx, "", locationExchange, ports.ConsumeOptions{
		AutoAck: true,
	})
	if err != nil {
		return err
	}

	log := rb.mylog.Action("relay_bridge_consume")
	log.Info("mirroring location events", "exchange", locationExchange, "instance", rb.instance)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				log.Warn("broker stream closed")
				return nil
			}

			var msg bridgedUpdate
			if err := json.Unmarshal(delivery.Body, &msg); err != nil {
				log.Warn("cannot decode mirrored event", "err", err.Error())
				continue
			}
			if msg.Origin == rb.instance {
				continue
			}

			relay.BroadcastLocal(msg.Update)
		}
	}
}
