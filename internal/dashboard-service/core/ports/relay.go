package ports

import (
	"context"

	websocketdto "delivery-track/internal/dashboard-service/core/domain/websocket_dto"
)

// IRelay is the narrow publish side of the live relay. Publishing is
// fire-and-forget: no ack, no delivery guarantee, failures are dropped.
type IRelay interface {
	Publish(ctx context.Context, update websocketdto.LocationUpdate)
}

// IRelayBridge mirrors relay events to peer server instances through a
// message broker. Optional; a nil bridge keeps the relay process-local.
type IRelayBridge interface {
	Forward(ctx context.Context, update websocketdto.LocationUpdate) error
}

// ILocalRelay is what a bridge fans remote events back into: the sessions
// connected to this process only, so a mirrored event never echoes back out.
type ILocalRelay interface {
	BroadcastLocal(update websocketdto.LocationUpdate)
}
