package myhttp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"delivery-track/internal/config"
	"delivery-track/internal/dashboard-service/adapters/driven/bm"
	"delivery-track/internal/dashboard-service/adapters/driven/db"
	"delivery-track/internal/dashboard-service/adapters/driven/routing"
	"delivery-track/internal/dashboard-service/adapters/driver/myhttp/handle"
	"delivery-track/internal/dashboard-service/adapters/driver/myhttp/middleware"
	"delivery-track/internal/dashboard-service/adapters/driver/myhttp/ws"
	"delivery-track/internal/dashboard-service/core/services"
	"delivery-track/internal/mylogger"
)

const shutdownWait = 10 * time.Second

type Server struct {
	mux    *http.ServeMux
	cfg    *config.Config
	srv    *http.Server
	mylog  mylogger.Logger
	db     *db.DB
	broker *bm.RabbitMQ
	ctx    context.Context
	appCtx context.Context
	mu     sync.Mutex
}

func NewServer(ctx, appCtx context.Context, mylog mylogger.Logger, cfg *config.Config) *Server {
	return &Server{
		ctx:    ctx,
		appCtx: appCtx,
		cfg:    cfg,
		mylog:  mylog,
		mux:    http.NewServeMux(),
	}
}

// Run connects the driven adapters, wires routes and listens. It returns
// when the server stops.
func (s *Server) Run() error {
	mylog := s.mylog.Action("server_started")

	database, err := db.New(s.ctx, s.cfg.DB, s.mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = database
	mylog.Info("Successful database connection")

	if s.cfg.RabbitMq.Enabled {
		broker, err := bm.New(s.cfg.RabbitMq, s.mylog)
		if err != nil {
			return fmt.Errorf("failed to connect to rabbitmq: %w", err)
		}
		s.broker = broker
		mylog.Info("Successful message broker connection")
	}

	s.Configure()

	s.mu.Lock()
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%v", s.cfg.Srv.DashboardServicePort),
		Handler: s.mux,
	}
	s.mu.Unlock()

	mylog = mylog.WithGroup("details").With("port", s.cfg.Srv.DashboardServicePort)
	mylog.Info("server is running")
	return s.startHTTPServer()
}

// Stop provides a programmatic shutdown. Accepts a context for timeout control.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mylog.Info("Shutting down HTTP server...")

	if s.srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownWait)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.mylog.Error("Failed to shut down HTTP server gracefully", err)
			return fmt.Errorf("http server shutdown: %w", err)
		}
	}

	if s.broker != nil {
		if err := s.broker.Close(); err != nil {
			s.mylog.Error("Failed to close message broker", err)
		}
	}

	if s.db != nil {
		s.db.Close()
		s.mylog.Info("Database closed")
	}

	s.mylog.Info("HTTP server shut down gracefully")
	return nil
}

func (s *Server) startHTTPServer() error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		} else {
			errCh <- nil
		}
	}()

	select {
	case <-s.ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Configure builds the repository, service and handler graph and registers
// every route on the mux.
func (s *Server) Configure() {
	repos := services.Repos{
		Users:      db.NewUserRepo(s.db),
		Places:     db.NewPlaceRepo(s.db),
		Clients:    db.NewClientRepo(s.db),
		Deliveries: db.NewDeliveryRepo(s.db),
		Drivers:    db.NewDriverRepo(s.db),
		Zones:      db.NewZoneRepo(s.db),
		ChangeLog:  db.NewChangeLogRepo(s.db),
	}

	planner := routing.NewClient(s.cfg.Routing, s.mylog)

	// The auth service has to exist before the dispatcher (token checks on
	// websocket connect) and the dispatcher before the rest of the services
	// (driver updates publish into it).
	authService := services.NewAuthService(s.cfg, repos.Users, s.mylog)
	dispatcher := ws.NewDispatcher(authService, s.mylog)

	if s.broker != nil {
		bridge := bm.NewRelayBridge(s.broker, s.mylog)
		dispatcher.SetBridge(bridge)
		go func() {
			if err := bridge.Run(s.appCtx, dispatcher); err != nil && !errors.Is(err, context.Canceled) {
				s.mylog.Error("relay bridge stopped", err)
			}
		}()
	}

	service := services.New(s.cfg, repos, dispatcher, planner, s.mylog)

	authHandler := handle.NewAuthHandler(authService, s.mylog)
	placeHandler := handle.NewPlaceHandler(service.Places, s.mylog)
	clientHandler := handle.NewClientHandler(service.Clients, s.mylog)
	deliveryHandler := handle.NewDeliveryHandler(service.Deliveries, s.mylog)
	driverHandler := handle.NewDriverHandler(service.Drivers, s.mylog)
	zoneHandler := handle.NewZoneHandler(service.Zones, s.mylog)
	changeLogHandler := handle.NewChangeLogHandler(service.ChangeLog, s.mylog)
	routeHandler := handle.NewRouteHandler(service.Routes, s.mylog)

	guard := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.Auth(authService, h)
	}

	s.mux.HandleFunc("POST /auth/register", authHandler.Register)
	s.mux.HandleFunc("POST /auth/login", authHandler.Login)

	s.mux.HandleFunc("GET /places", guard(placeHandler.List))
	s.mux.HandleFunc("POST /places", guard(placeHandler.Create))
	s.mux.HandleFunc("PUT /places/{place_id}", guard(placeHandler.Update))
	s.mux.HandleFunc("DELETE /places/{place_id}", guard(placeHandler.Delete))

	s.mux.HandleFunc("GET /clients", guard(clientHandler.List))
	s.mux.HandleFunc("POST /clients", guard(clientHandler.Create))
	s.mux.HandleFunc("PUT /clients/{client_id}", guard(clientHandler.Update))
	s.mux.HandleFunc("DELETE /clients/{client_id}", guard(clientHandler.Delete))

	s.mux.HandleFunc("GET /deliveries", guard(deliveryHandler.List))
	s.mux.HandleFunc("POST /deliveries", guard(deliveryHandler.Create))
	s.mux.HandleFunc("PUT /deliveries/{delivery_id}", guard(deliveryHandler.Update))
	s.mux.HandleFunc("DELETE /deliveries/{delivery_id}", guard(deliveryHandler.Delete))

	s.mux.HandleFunc("GET /drivers", guard(driverHandler.List))
	s.mux.HandleFunc("POST /drivers", guard(driverHandler.Create))
	s.mux.HandleFunc("PUT /drivers/{driver_id}", guard(driverHandler.Update))
	s.mux.HandleFunc("DELETE /drivers/{driver_id}", guard(driverHandler.Delete))

	s.mux.HandleFunc("GET /zones", guard(zoneHandler.List))
	s.mux.HandleFunc("POST /zones", guard(zoneHandler.Create))
	s.mux.HandleFunc("PUT /zones/{zone_id}", guard(zoneHandler.Update))
	s.mux.HandleFunc("DELETE /zones/{zone_id}", guard(zoneHandler.Delete))

	s.mux.HandleFunc("GET /logs", guard(changeLogHandler.List))
	s.mux.HandleFunc("POST /routes/plan", guard(routeHandler.Plan))

	s.mux.HandleFunc("/ws", dispatcher.WsHandler())
}
