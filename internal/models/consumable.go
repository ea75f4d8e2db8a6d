package models

import (
	"time"
)

// Consumable represents a stocked consumable supply item
type Consumable struct {
	ID           string     `json:"id" gorm:"primary_key"`
	Name         string     `json:"name" gorm:"not null"`
	Description  string     `json:"description,omitempty"`
	Category     string     `json:"category"`
	Unit         string     `json:"unit"`
	CurrentStock float64    `json:"currentStock"`
	MinimumStock float64    `json:"minimumStock"`
	MaximumStock *float64   `json:"maximumStock,omitempty"`
	UnitCost     *float64   `json:"unitCost,omitempty"`
	TotalValue   *float64   `json:"totalValue,omitempty"`
	Supplier     string     `json:"supplier,omitempty"`
	Location     string     `json:"location,omitempty"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty"`
	BatchNumber  string     `json:"batchNumber,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CategoryID   string     `json:"categoryId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// TableName sets the table name for Consumable
func (Consumable) TableName() string {
	return "consumables"
}

// ConsumableCategory groups consumables for filtering and stats
type ConsumableCategory struct {
	ID          string    `json:"id" gorm:"primary_key"`
	Name        string    `json:"name" gorm:"not null;unique"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName sets the table name for ConsumableCategory
func (ConsumableCategory) TableName() string {
	return "consumable_categories"
}

// ConsumableCategories is the default category set seeded on first start.
var ConsumableCategories = []string{
	"Bandages & Dressings",
	"IV Supplies",
	"Medications",
	"Diagnostic Supplies",
	"Airway Management",
	"Cardiac Supplies",
	"Trauma Supplies",
	"Infection Control",
	"Miscellaneous",
}
