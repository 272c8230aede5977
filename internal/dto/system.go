package dto

import (
	"time"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
)

// UpdateSettingRequest changes system settings; nil fields are left unchanged.
type UpdateSettingRequest struct {
	IsMaintenanceMode  *bool   `json:"is_maintenance_mode"`
	MaintenanceMessage *string `json:"maintenance_message" binding:"omitempty,max=500"`
	MinAppVersion      *string `json:"min_app_version" binding:"omitempty,max=20"`
}

// SettingResponse defines data returned for the system settings.
type SettingResponse struct {
	IsMaintenanceMode  bool      `json:"is_maintenance_mode"`
	MaintenanceMessage string    `json:"maintenance_message"`
	MinAppVersion      string    `json:"min_app_version"`
	LastUpdatedAt      time.Time `json:"updated_at"`
}

func ToSettingResponse(s *domain.Setting) SettingResponse {
	return SettingResponse{
		IsMaintenanceMode:  s.IsMaintenanceMode,
		MaintenanceMessage: s.MaintenanceMessage,
		MinAppVersion:      s.MinAppVersion,
		LastUpdatedAt:      s.LastUpdatedAt,
	}
}

// --- Workplace DTOs ---

// CreateWorkplaceRequest defines data for creating a new workplace.
type CreateWorkplaceRequest struct {
	Name         string   `json:"name" binding:"required,max=200"`
	Address      string   `json:"address" binding:"max=500"`
	Latitude     *float64 `json:"latitude" binding:"required,latitude"`
	Longitude    *float64 `json:"longitude" binding:"required,longitude"`
	RadiusMeters float64  `json:"radius_meters" binding:"required,gt=0"`
}

// UpdateWorkplaceRequest updates a workplace; nil fields are left unchanged.
type UpdateWorkplaceRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Address      *string  `json:"address" binding:"omitempty,max=500"`
	Latitude     *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude" binding:"omitempty,longitude"`
	RadiusMeters *float64 `json:"radius_meters" binding:"omitempty,gt=0"`
}

// WorkplaceResponse defines data returned for a workplace.
type WorkplaceResponse struct {
	WorkplaceID  string    `json:"_id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters float64   `json:"radius_meters"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedBy    string    `json:"created_by"`
}

// ToWorkplaceResponse converts domain.Workplace to DTO.
func ToWorkplaceResponse(w *domain.Workplace) WorkplaceResponse {
	return WorkplaceResponse{
		WorkplaceID:  w.WorkplaceID,
		Name:         w.Name,
		Address:      w.Address,
		Latitude:     w.Latitude,
		Longitude:    w.Longitude,
		RadiusMeters: w.RadiusMeters,
		CreatedAt:    w.CreatedAt,
		CreatedBy:    w.CreatedBy,
	}
}

func ToWorkplaceResponses(ws []domain.Workplace) []WorkplaceResponse {
	out := make([]WorkplaceResponse, len(ws))
	for i := range ws {
		out[i] = ToWorkplaceResponse(&ws[i])
	}
	return out
}
