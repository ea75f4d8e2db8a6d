package models

import (
	"time"
)

// ProcurementRequest represents a formal request to purchase equipment or supplies
type ProcurementRequest struct {
	ID               string              `json:"id" gorm:"primary_key"`
	Title            string              `json:"title" gorm:"not null"`
	Description      string              `json:"description,omitempty"`
	Category         string              `json:"category"`
	Priority         ProcurementPriority `json:"priority"`
	Status           ProcurementStatus   `json:"status"`
	EstimatedCost    *float64            `json:"estimatedCost,omitempty"`
	ActualCost       *float64            `json:"actualCost,omitempty"`
	Quantity         int                 `json:"quantity"`
	Justification    string              `json:"justification,omitempty"`
	Supplier         string              `json:"supplier,omitempty"`
	OrderNumber      string              `json:"orderNumber,omitempty"`
	ExpectedDelivery *time.Time          `json:"expectedDelivery,omitempty"`
	ActualDelivery   *time.Time          `json:"actualDelivery,omitempty"`
	Notes            string              `json:"notes,omitempty"`
	RequestedByID    string              `json:"requestedById"`
	EquipmentID      string              `json:"equipmentId,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

// TableName sets the table name for ProcurementRequest
func (ProcurementRequest) TableName() string {
	return "procurement_requests"
}

// ProcurementPriority represents how urgent a request is
type ProcurementPriority string

const (
	// Procurement priorities
	PriorityLow    ProcurementPriority = "LOW"
	PriorityMedium ProcurementPriority = "MEDIUM"
	PriorityHigh   ProcurementPriority = "HIGH"
	PriorityUrgent ProcurementPriority = "URGENT"
)

// ProcurementStatus is the linear status label set by external action;
// the service records transitions but implements no workflow of its own.
type ProcurementStatus string

const (
	// Procurement statuses
	ProcurementSubmitted   ProcurementStatus = "SUBMITTED"
	ProcurementUnderReview ProcurementStatus = "UNDER_REVIEW"
	ProcurementApproved    ProcurementStatus = "APPROVED"
	ProcurementRejected    ProcurementStatus = "REJECTED"
	ProcurementOrdered     ProcurementStatus = "ORDERED"
	ProcurementReceived    ProcurementStatus = "RECEIVED"
	ProcurementCompleted   ProcurementStatus = "COMPLETED"
	ProcurementCancelled   ProcurementStatus = "CANCELLED"
)

// ProcurementCategories is the recognized set of request categories.
var ProcurementCategories = []string{
	"Medical Equipment",
	"Training Equipment",
	"Consumables",
	"Technology",
	"Furniture",
	"Maintenance Supplies",
	"Safety Equipment",
	"Other",
}

// WishList is a pre-procurement staging list of desired items
type WishList struct {
	ID          string    `json:"id" gorm:"primary_key"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Items []WishListItem `json:"items,omitempty" gorm:"foreignkey:WishListID"`
}

// TableName sets the table name for WishList
func (WishList) TableName() string {
	return "wish_lists"
}

// WishListItem is a single desired item on a wish list
type WishListItem struct {
	ID                   string              `json:"id" gorm:"primary_key"`
	Name                 string              `json:"name" gorm:"not null"`
	Description          string              `json:"description,omitempty"`
	Category             string              `json:"category"`
	Priority             ProcurementPriority `json:"priority"`
	EstimatedCost        *float64            `json:"estimatedCost,omitempty"`
	Quantity             int                 `json:"quantity"`
	Unit                 string              `json:"unit,omitempty"`
	Notes                string              `json:"notes,omitempty"`
	WishListID           string              `json:"wishListId" gorm:"index"`
	ProcurementRequestID string              `json:"procurementRequestId,omitempty"`
	CreatedAt            time.Time           `json:"createdAt"`
	UpdatedAt            time.Time           `json:"updatedAt"`
}

// TableName sets the table name for WishListItem
func (WishListItem) TableName() string {
	return "wish_list_items"
}
