package dto

import "delivery-track/internal/dashboard-service/core/domain/model"

type UserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// RoutePlan is what the external routing service resolved for an ordered
// list of waypoints.
type RoutePlan struct {
	Geometry        model.LineString `json:"geometry"`
	DistanceMeters  float64          `json:"distance_meters"`
	DurationSeconds float64          `json:"duration_seconds"`
}
