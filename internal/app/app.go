package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/feastline/orderd/internal/config"
	"github.com/feastline/orderd/internal/usecase"
	"github.com/feastline/orderd/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		newDeliveryFacade,
		newHTTPServer,
		newTracker,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type trackerParams struct {
	fx.In

	Orders *usecase.OrderService
	Config *config.Config
	Logger *slog.Logger
}

func newTracker(p trackerParams) *worker.Tracker {
	return worker.NewTracker(
		p.Orders,
		p.Config.TrackPollInterval,
		p.Config.CourierPrepDelay,
		p.Config.CourierDeliveryDelay,
		p.Logger,
	)
}

type facadeParams struct {
	fx.In

	Orders   *usecase.OrderService
	Profiles *usecase.ProfileService
	Tracker  *worker.Tracker
	Config   *config.Config
}

func newDeliveryFacade(p facadeParams) *DeliveryFacade {
	return NewDeliveryFacade(p.Orders, p.Profiles, p.Tracker, p.Config.SimulateCourier)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Tracker    *worker.Tracker
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting orderd", slog.String("addr", p.Server.Addr))
			p.Tracker.Start(context.WithoutCancel(ctx))
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Tracker.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("orderd stopped")
			return nil
		},
	})
}
