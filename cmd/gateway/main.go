package main

import (
	"context"
	"log/slog"
	"os"

	"applyo/config"
	"applyo/internal/delivery"
	"applyo/internal/delivery/gateway"
	"applyo/internal/infra/auth"
	logs "applyo/internal/infra/log"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// The gateway is deliberately thin: configuration, a logger, and the token
// verifier are all it needs. It never touches the database.
func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			auth.NewJWTService,
		),
		fx.Provide(
			fx.Annotate(
				gateway.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start gateway", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
