package notify

import (
	"context"
	"log/slog"

	"resbook/internal/domain/reservation"
	"resbook/internal/pkg/clock"
)

// LogNotifier writes notification events as structured log lines. It is the
// default backend and the one tests run against.
type LogNotifier struct {
	logger *slog.Logger
	clock  clock.Clock
}

func NewLogNotifier(logger *slog.Logger, clk clock.Clock) *LogNotifier {
	return &LogNotifier{logger: logger, clock: clk}
}

func (n *LogNotifier) NotifyAllocated(ctx context.Context, r *reservation.Reservation) error {
	n.emit(ctx, NewEvent(EventAllocated, r, n.clock.Now()))
	return nil
}

func (n *LogNotifier) NotifyReleased(ctx context.Context, r *reservation.Reservation) error {
	n.emit(ctx, NewEvent(EventReleased, r, n.clock.Now()))
	return nil
}

func (n *LogNotifier) emit(ctx context.Context, ev Event) {
	n.logger.LogAttrs(ctx, slog.LevelInfo, "notification dispatched",
		slog.String("kind", ev.Kind),
		slog.String("reservation_id", ev.ReservationID.String()),
		slog.String("resource_id", ev.ResourceID.String()),
		slog.String("occupant", ev.Occupant),
		slog.String("window", ev.Window),
	)
}
