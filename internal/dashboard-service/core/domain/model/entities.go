package model

import "time"

// Delivery statuses. Any member may be set at any time; the server checks
// membership only, transitions are not enforced.
const (
	DeliveryStatusPending   = "pending"
	DeliveryStatusAssigned  = "assigned"
	DeliveryStatusInTransit = "in_transit"
	DeliveryStatusDelivered = "delivered"
	DeliveryStatusCancelled = "cancelled"
)

const (
	DeliveryPriorityNormal = "normal"
	DeliveryPriorityHigh   = "high"
)

const (
	DriverStatusAvailable = "available"
	DriverStatusBusy      = "busy"
	DriverStatusOffline   = "offline"
)

const DefaultDriverCapacity = 10

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Place struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    Point     `json:"location"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Location  Point     `json:"location"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Delivery struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Location    Point     `json:"location"`
	ClientID    string    `json:"client_id"`
	DriverID    *string   `json:"driver_id"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// DeliveryDetails is the list representation: the referenced client and
// driver resolved into the response.
type DeliveryDetails struct {
	Delivery
	Client *Client `json:"client"`
	Driver *Driver `json:"driver"`
}

type Driver struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Vehicle         string    `json:"vehicle"`
	Capacity        int       `json:"capacity"`
	Status          string    `json:"status"`
	CurrentLocation Point     `json:"current_location"`
	UserID          string    `json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// Zone is a named ad-hoc polygon drawn on the map.
type Zone struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Geometry    Polygon   `json:"geometry"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Change log actions.
const (
	ChangeActionCreate = "create"
	ChangeActionUpdate = "update"
	ChangeActionDelete = "delete"
)

type ChangeEntry struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Action     string    `json:"action"`
	UserID     string    `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
}
