package dto

import (
	"github.com/go-playground/validator/v10"

	"delivery-track/internal/dashboard-service/core/domain/model"
)

// Request schemas for every entity family. Create requests carry required
// fields; update requests use pointers so a field absent from the body keeps
// its stored value (merge semantics, not null-out).

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs the schema checks declared on a request struct.
func Validate(req any) error {
	return validate.Struct(req)
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=5,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=5,max=50"`
}

type CreatePlaceRequest struct {
	Name        string      `json:"name" validate:"required,max=200"`
	Description string      `json:"description" validate:"max=2000"`
	Location    model.Point `json:"location" validate:"required"`
}

type UpdatePlaceRequest struct {
	Name        *string      `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string      `json:"description,omitempty" validate:"omitempty,max=2000"`
	Location    *model.Point `json:"location,omitempty"`
}

type CreateClientRequest struct {
	Name     string      `json:"name" validate:"required,max=200"`
	Address  string      `json:"address" validate:"max=500"`
	Phone    string      `json:"phone" validate:"max=50"`
	Location model.Point `json:"location" validate:"required"`
}

type UpdateClientRequest struct {
	Name     *string      `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Address  *string      `json:"address,omitempty" validate:"omitempty,max=500"`
	Phone    *string      `json:"phone,omitempty" validate:"omitempty,max=50"`
	Location *model.Point `json:"location,omitempty"`
}

type CreateDeliveryRequest struct {
	Description string      `json:"description" validate:"required,max=2000"`
	Priority    string      `json:"priority" validate:"omitempty,oneof=normal high"`
	ClientID    string      `json:"client_id" validate:"required,uuid"`
	Location    model.Point `json:"location" validate:"required"`
}

type UpdateDeliveryRequest struct {
	Description *string      `json:"description,omitempty" validate:"omitempty,max=2000"`
	Priority    *string      `json:"priority,omitempty" validate:"omitempty,oneof=normal high"`
	Status      *string      `json:"status,omitempty" validate:"omitempty,oneof=pending assigned in_transit delivered cancelled"`
	ClientID    *string      `json:"client_id,omitempty" validate:"omitempty,uuid"`
	DriverID    *string      `json:"driver_id,omitempty" validate:"omitempty,uuid"`
	Location    *model.Point `json:"location,omitempty"`
}

type CreateDriverRequest struct {
	Name            string       `json:"name" validate:"required,max=200"`
	Vehicle         string       `json:"vehicle" validate:"max=200"`
	Capacity        *int         `json:"capacity,omitempty" validate:"omitempty,min=1,max=10000"`
	CurrentLocation *model.Point `json:"current_location,omitempty"`
}

type UpdateDriverRequest struct {
	Name            *string      `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Vehicle         *string      `json:"vehicle,omitempty" validate:"omitempty,max=200"`
	Capacity        *int         `json:"capacity,omitempty" validate:"omitempty,min=1,max=10000"`
	Status          *string      `json:"status,omitempty" validate:"omitempty,oneof=available busy offline"`
	CurrentLocation *model.Point `json:"current_location,omitempty"`
}

type CreateZoneRequest struct {
	Name        string        `json:"name" validate:"required,max=200"`
	Description string        `json:"description" validate:"max=2000"`
	Geometry    model.Polygon `json:"geometry" validate:"required"`
}

type UpdateZoneRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// LatLng is the display-order pair used by interactive inputs; it is
// converted to [lon, lat] before anything is stored or sent upstream.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type RouteRequest struct {
	Points []LatLng `json:"points" validate:"required,min=2,dive"`
}
