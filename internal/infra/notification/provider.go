package notification

import (
	"context"
	"log/slog"

	"applyo/config"
	"applyo/internal/domain/service"

	"go.uber.org/fx"
)

// noopService drops notifications when Firebase is not configured, so local
// development does not need service-account credentials.
type noopService struct {
	logger *slog.Logger
}

func (s *noopService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.Debug("[NoopNotification] Push disabled, dropping notification",
		slog.String("title", title),
	)

	return nil
}

func (s *noopService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	s.logger.Debug("[NoopNotification] Push disabled, dropping batch notification",
		slog.String("title", title),
		slog.Int("token_count", len(tokens)),
	)

	return 0, 0, nil, nil
}

// ServiceParams holds dependencies for NotificationService, injected by Fx
type ServiceParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService creates a NotificationService based on configuration
func NewNotificationService(params ServiceParams) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, using no-op notification service")

		return &noopService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg.CredentialsPath)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotificationService),
)
