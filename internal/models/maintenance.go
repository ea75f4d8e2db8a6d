package models

import (
	"time"
)

// MaintenanceRecord represents a single maintenance event for a piece of equipment
type MaintenanceRecord struct {
	ID            string            `json:"id" gorm:"primary_key"`
	Type          MaintenanceType   `json:"type"`
	Description   string            `json:"description"`
	PerformedDate time.Time         `json:"performedDate"`
	PerformedBy   string            `json:"performedBy,omitempty"`
	Cost          *float64          `json:"cost,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	NextDueDate   *time.Time        `json:"nextDueDate,omitempty"`
	Status        MaintenanceStatus `json:"status"`
	DocumentURL   string            `json:"documentUrl,omitempty"`
	EquipmentID   string            `json:"equipmentId" gorm:"index"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// TableName sets the table name for MaintenanceRecord
func (MaintenanceRecord) TableName() string {
	return "maintenance_records"
}

// MaintenanceType represents the kind of maintenance performed
type MaintenanceType string

const (
	// Maintenance types
	MaintenancePreventive  MaintenanceType = "PREVENTIVE"
	MaintenanceCorrective  MaintenanceType = "CORRECTIVE"
	MaintenanceCalibration MaintenanceType = "CALIBRATION"
	MaintenanceInspection  MaintenanceType = "INSPECTION"
	MaintenanceCleaning    MaintenanceType = "CLEANING"
	MaintenanceRepair      MaintenanceType = "REPAIR"
	MaintenanceReplacement MaintenanceType = "REPLACEMENT"
	MaintenanceUpgrade     MaintenanceType = "UPGRADE"
	MaintenanceEmergency   MaintenanceType = "EMERGENCY"
)

// MaintenanceStatus represents the lifecycle status of a maintenance record
type MaintenanceStatus string

const (
	// Maintenance statuses
	MaintenanceScheduled  MaintenanceStatus = "SCHEDULED"
	MaintenanceInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceCompleted  MaintenanceStatus = "COMPLETED"
	MaintenanceOverdue    MaintenanceStatus = "OVERDUE"
	MaintenanceCancelled  MaintenanceStatus = "CANCELLED"
)

// ContactPerson represents a maintenance or support contact
type ContactPerson struct {
	ID        string    `json:"id" gorm:"primary_key"`
	Name      string    `json:"name" gorm:"not null"`
	Role      string    `json:"role,omitempty"`
	Company   string    `json:"company,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName sets the table name for ContactPerson
func (ContactPerson) TableName() string {
	return "contact_persons"
}

// Manufacturer represents an equipment manufacturer with support details
type Manufacturer struct {
	ID           string    `json:"id" gorm:"primary_key"`
	Name         string    `json:"name" gorm:"not null"`
	Website      string    `json:"website,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	SupportEmail string    `json:"supportEmail,omitempty"`
	SupportPhone string    `json:"supportPhone,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName sets the table name for Manufacturer
func (Manufacturer) TableName() string {
	return "manufacturers"
}
