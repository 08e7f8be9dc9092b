package main

import (
	"context"
	"log/slog"
	"os"

	"applyo/config"
	"applyo/internal/delivery"
	"applyo/internal/delivery/http"
	"applyo/internal/delivery/http/middleware"
	"applyo/internal/delivery/http/router/handler"
	"applyo/internal/domain/service"
	"applyo/internal/infra/auth"
	logs "applyo/internal/infra/log"
	"applyo/internal/infra/notification"
	"applyo/internal/infra/persistence/postgres"
	"applyo/internal/infra/pubsub"
	"applyo/internal/infra/qrcode"
	"applyo/internal/infra/storage"
	"applyo/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewConsentTokenRepository,
			postgres.NewAPIKeyRepository,
			postgres.NewApplicationRepository,
			postgres.NewDocumentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewAPIKeyGenerator,
			notification.NewNotificationService,
			pubsub.NewEventPublisher,
			newQRCodeService,
			newDocumentStore,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newDocumentStore opens the configured blob bucket. Local development
// defaults to an on-disk bucket under the working directory.
func newDocumentStore(ctx context.Context, cfg *config.Config) (service.DocumentStore, error) {
	bucketURL := "file://./documents"
	if cfg.Storage != nil && cfg.Storage.BucketURL != "" {
		bucketURL = cfg.Storage.BucketURL
	}

	return storage.NewBlobStore(ctx, bucketURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewConsentService,
			impl.NewCompanyService,
			impl.NewApplicationService,
			impl.NewDocumentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewIdentityMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewConsentHandler,
			handler.NewCompanyHandler,
			handler.NewApplicationHandler,
			handler.NewDocumentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
