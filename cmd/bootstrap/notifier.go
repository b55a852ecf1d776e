package bootstrap

import (
	"context"
	"log/slog"

	"resbook/internal/infra/notify"
	"resbook/internal/pkg/clock"
	"resbook/internal/pkg/config"
	"resbook/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
	),
)

// NewNotifier selects the notification backend from config. Kafka gets a
// shutdown hook so buffered messages flush on stop.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger, clk clock.Clock) (commands.Notifier, error) {
	if cfg.Notifier.Backend == "kafka" {
		n, err := notify.NewKafkaNotifier(cfg.Notifier, clk)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return n.Close()
			},
		})
		logger.Info("kafka notifier initialized", "topic", cfg.Notifier.Topic, "brokers", cfg.Notifier.Brokers)
		return n, nil
	}
	return notify.NewLogNotifier(logger, clk), nil
}
