package domain

import "time"

// Setting is the singleton system configuration document.
type Setting struct {
	SettingID          string    `json:"settingID"`
	IsMaintenanceMode  bool      `json:"isMaintenanceMode"`
	MaintenanceMessage string    `json:"maintenanceMessage"`
	MinAppVersion      string    `json:"minAppVersion"`
	LastUpdatedAt      time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy      string    `json:"lastUpdatedBy,omitempty"`
}

// DefaultMaintenanceMessage is used when maintenance is on without a custom message.
const DefaultMaintenanceMessage = "The system is under maintenance. Please try again later."
