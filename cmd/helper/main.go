// Driver simulator: registers a dashboard account, creates a driver and
// streams jittered location updates through the live relay. Handy for
// watching markers move without a real fleet.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"delivery-track/internal/dashboard-service/core/domain/dto"
	"delivery-track/internal/dashboard-service/core/domain/model"
	websocketdto "delivery-track/internal/dashboard-service/core/domain/websocket_dto"
	"delivery-track/internal/mapclient"
)

func main() {
	baseURL := flag.String("api", "http://localhost:4000", "dashboard API base URL")
	wsURL := flag.String("ws", "ws://localhost:4000/ws", "relay websocket URL")
	email := flag.String("email", "", "account email (registered when -register is set)")
	password := flag.String("password", "", "account password")
	register := flag.Bool("register", false, "register a fresh account first")
	interval := flag.Duration("interval", 2*time.Second, "delay between location updates")
	lat := flag.Float64("lat", 43.238, "starting latitude")
	lng := flag.Float64("lng", 76.889, "starting longitude")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("email and password are required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := &Logger{}
	if err := run(ctx, logger, options{
		baseURL:  *baseURL,
		wsURL:    *wsURL,
		email:    *email,
		password: *password,
		register: *register,
		interval: *interval,
		lat:      *lat,
		lng:      *lng,
	}); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}

type options struct {
	baseURL  string
	wsURL    string
	email    string
	password string
	register bool
	interval time.Duration
	lat      float64
	lng      float64
}

func run(ctx context.Context, logger *Logger, opts options) error {
	api := mapclient.NewRESTClient(opts.baseURL)

	if opts.register {
		if _, err := api.Register(ctx, dto.RegisterRequest{
			Name:     "Simulator",
			Email:    opts.email,
			Password: opts.password,
		}); err != nil {
			return fmt.Errorf("register: %w", err)
		}
		logger.HTTP("registered account %s", opts.email)
	} else {
		if _, err := api.Login(ctx, dto.LoginRequest{
			Email:    opts.email,
			Password: opts.password,
		}); err != nil {
			return fmt.Errorf("login: %w", err)
		}
		logger.HTTP("logged in as %s", opts.email)
	}

	location := model.NewPoint(opts.lng, opts.lat)
	driver, err := api.CreateDriver(ctx, dto.CreateDriverRequest{
		Name:            fmt.Sprintf("Sim Driver %d", rand.Intn(1000)),
		Vehicle:         "van",
		CurrentLocation: &location,
	})
	if err != nil {
		return fmt.Errorf("create driver: %w", err)
	}
	logger.HTTP("created driver %s", driver.ID)

	session := mapclient.NewSession(opts.wsURL, api.Token())
	session.OnDriverLocation(func(update websocketdto.LocationUpdate) {
		logger.WebSocket("driver %s moved to %.5f,%.5f", update.DriverID, update.Lat, update.Lng)
	})

	go func() {
		if err := session.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("relay session stopped: %v", err)
		}
	}()
	defer session.Close()

	lat, lng := opts.lat, opts.lng
	ticker := time.NewTicker(opts.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("simulator stopped")
			return nil
		case <-ticker.C:
			lat += (rand.Float64() - 0.5) / 1000
			lng += (rand.Float64() - 0.5) / 1000

			if err := session.PublishLocation(websocketdto.LocationUpdate{
				DriverID: driver.ID,
				Lat:      lat,
				Lng:      lng,
			}); err != nil {
				logger.Warn("publish failed, session reconnecting: %v", err)
			}
		}
	}
}
