package gateway

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"

	"applyo/config"
	"applyo/internal/delivery"
	"applyo/internal/domain/lifecycle"
	"applyo/internal/domain/service"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type gatewayServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the gateway server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	TokenSvc service.TokenService
}

// NewServer builds the gateway: rate limiting and authentication in front of
// a reverse proxy fanning out to the configured downstream services.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	if params.Cfg.Gateway == nil {
		return nil, errors.New("gateway configuration is required")
	}
	if len(params.Cfg.Gateway.Routes) == 0 {
		return nil, errors.New("gateway requires at least one route")
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(slogecho.New(params.Logger))
	e.Use(NewRateLimiter(params.Cfg))

	authMiddleware := NewAuthMiddleware(params.TokenSvc, params.Cfg, params.Logger)
	e.Use(authMiddleware.Authenticate)

	// The gateway's own liveness probe, served locally rather than proxied.
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	for _, route := range params.Cfg.Gateway.Routes {
		target, err := url.Parse(route.Target)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid gateway target %q", route.Target)
		}

		group := e.Group(route.Prefix)
		group.Use(echomiddleware.Proxy(echomiddleware.NewRoundRobinBalancer([]*echomiddleware.ProxyTarget{
			{URL: target},
		})))
	}

	srv := &gatewayServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *gatewayServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Gateway.Port))
	s.logger.Info("Starting gateway server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *gatewayServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down gateway server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
