package services

import (
	"delivery-track/internal/config"
	"delivery-track/internal/dashboard-service/core/ports"
	"delivery-track/internal/mylogger"
)

// Service bundles every core service behind one constructor so the HTTP
// adapter wires a single value.
type Service struct {
	Auth       *AuthService
	Places     *PlaceService
	Clients    *ClientService
	Deliveries *DeliveryService
	Drivers    *DriverService
	Zones      *ZoneService
	ChangeLog  *ChangeLogService
	Routes     *RouteService
}

type Repos struct {
	Users      ports.IUserRepo
	Places     ports.IPlaceRepo
	Clients    ports.IClientRepo
	Deliveries ports.IDeliveryRepo
	Drivers    ports.IDriverRepo
	Zones      ports.IZoneRepo
	ChangeLog  ports.IChangeLogRepo
}

func New(cfg *config.Config, repos Repos, relay ports.IRelay, planner ports.IRoutePlanner, mylog mylogger.Logger) *Service {
	changeLog := NewChangeLogService(repos.ChangeLog, mylog)

	return &Service{
		Auth:       NewAuthService(cfg, repos.Users, mylog),
		Places:     NewPlaceService(repos.Places, changeLog, mylog),
		Clients:    NewClientService(repos.Clients, changeLog, mylog),
		Deliveries: NewDeliveryService(repos.Deliveries, repos.Clients, repos.Drivers, changeLog, mylog),
		Drivers:    NewDriverService(repos.Drivers, relay, changeLog, mylog),
		Zones:      NewZoneService(repos.Zones, changeLog, mylog),
		ChangeLog:  changeLog,
		Routes:     NewRouteService(planner, mylog),
	}
}
