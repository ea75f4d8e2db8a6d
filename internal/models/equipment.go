package models

import (
	"time"
)

// Equipment represents a tracked piece of training equipment
type Equipment struct {
	ID                  string             `json:"id" gorm:"primary_key"`
	Name                string             `json:"name" gorm:"not null"`
	Type                string             `json:"type"`
	Description         string             `json:"description,omitempty"`
	Location            string             `json:"location"`
	Manufacturer        string             `json:"manufacturer,omitempty"`
	SerialNumber        string             `json:"serialNumber,omitempty"`
	ModelNumber         string             `json:"modelNumber,omitempty"`
	AcquisitionDate     *time.Time         `json:"acquisitionDate,omitempty"`
	LastMaintenanceDate *time.Time         `json:"lastMaintenanceDate,omitempty"`
	NextMaintenanceDate *time.Time         `json:"nextMaintenanceDate,omitempty"`
	MaintenanceInterval int                `json:"maintenanceInterval,omitempty"`
	WarrantyExpiration  *time.Time         `json:"warrantyExpiration,omitempty"`
	Status              EquipmentStatus    `json:"status"`
	Condition           EquipmentCondition `json:"condition"`
	Notes               string             `json:"notes,omitempty"`
	ContactPersonID     string             `json:"contactPersonId,omitempty"`
	ManufacturerID      string             `json:"manufacturerId,omitempty"`
	CreatedAt           time.Time          `json:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt"`

	Images             []Image             `json:"images,omitempty" gorm:"foreignkey:EquipmentID"`
	MaintenanceRecords []MaintenanceRecord `json:"maintenanceRecords,omitempty" gorm:"foreignkey:EquipmentID"`
}

// TableName sets the table name for Equipment
func (Equipment) TableName() string {
	return "equipment"
}

// EquipmentStatus represents the operational status of a piece of equipment
type EquipmentStatus string

const (
	// Equipment statuses
	EquipmentStatusActive         EquipmentStatus = "ACTIVE"
	EquipmentStatusInactive       EquipmentStatus = "INACTIVE"
	EquipmentStatusInService      EquipmentStatus = "IN_SERVICE"
	EquipmentStatusOutOfOrder     EquipmentStatus = "OUT_OF_ORDER"
	EquipmentStatusDecommissioned EquipmentStatus = "DECOMMISSIONED"
)

// EquipmentCondition represents the physical condition of a piece of equipment
type EquipmentCondition string

const (
	// Equipment conditions
	ConditionExcellent   EquipmentCondition = "EXCELLENT"
	ConditionGood        EquipmentCondition = "GOOD"
	ConditionFair        EquipmentCondition = "FAIR"
	ConditionPoor        EquipmentCondition = "POOR"
	ConditionNeedsRepair EquipmentCondition = "NEEDS_REPAIR"
)

// EquipmentLocations is the fixed set of lab locations equipment can live in.
var EquipmentLocations = []string{
	"Lab B153 (B Block)",
	"Lab 102 (B Block)",
	"Lab 104 (B Block)",
	"Lab FC04 (D Block)",
	"Lab B258 - Gynecology and Obstetrics Lab (B Block)",
	"B102",
	"B103",
	"GC-1",
}

// EquipmentTypes is the set of recognized equipment types.
var EquipmentTypes = []string{
	"Monitor",
	"Simulator",
	"Diagnostic Tool",
	"Mannequin",
	"Jump Bag",
	"Defibrillator",
	"Ventilator",
	"IV Pump",
	"Stretcher",
	"Oxygen Equipment",
	"Other",
}

// Image represents an attached photograph of a piece of equipment
type Image struct {
	ID          string    `json:"id" gorm:"primary_key"`
	Filename    string    `json:"filename"`
	URL         string    `json:"url"`
	Size        int64     `json:"size,omitempty"`
	MimeType    string    `json:"mimeType,omitempty"`
	Description string    `json:"description,omitempty"`
	IsPrimary   bool      `json:"isPrimary"`
	EquipmentID string    `json:"equipmentId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName sets the table name for Image
func (Image) TableName() string {
	return "equipment_images"
}
