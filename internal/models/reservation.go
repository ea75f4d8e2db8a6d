package models

import (
	"time"
)

// Reservation represents a booking of a piece of equipment for a time window
type Reservation struct {
	ID              string            `json:"id" gorm:"primary_key"`
	Title           string            `json:"title" gorm:"not null"`
	Description     string            `json:"description,omitempty"`
	StartDate       time.Time         `json:"startDate"`
	EndDate         time.Time         `json:"endDate"`
	ActualStartDate *time.Time        `json:"actualStartDate,omitempty"`
	ActualEndDate   *time.Time        `json:"actualEndDate,omitempty"`
	Status          ReservationStatus `json:"status"`
	Purpose         string            `json:"purpose,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	EquipmentID     string            `json:"equipmentId" gorm:"index"`
	UserID          string            `json:"userId"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`

	CheckInOuts []CheckInOut `json:"checkInOut,omitempty" gorm:"foreignkey:ReservationID"`
}

// TableName sets the table name for Reservation
func (Reservation) TableName() string {
	return "reservations"
}

// ReservationStatus represents the lifecycle status of a reservation
type ReservationStatus string

const (
	// Reservation statuses
	ReservationPending    ReservationStatus = "PENDING"
	ReservationConfirmed  ReservationStatus = "CONFIRMED"
	ReservationInProgress ReservationStatus = "IN_PROGRESS"
	ReservationCompleted  ReservationStatus = "COMPLETED"
	ReservationCancelled  ReservationStatus = "CANCELLED"
	ReservationOverdue    ReservationStatus = "OVERDUE"
)

// CheckInOut logs equipment being taken out for, or returned from, a reservation
type CheckInOut struct {
	ID            string      `json:"id" gorm:"primary_key"`
	Type          CheckType   `json:"type"`
	Timestamp     time.Time   `json:"timestamp"`
	Condition     string      `json:"condition,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	Images        StringSlice `json:"images" gorm:"type:text"`
	ReservationID string      `json:"reservationId" gorm:"index"`
	UserID        string      `json:"userId"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// TableName sets the table name for CheckInOut
func (CheckInOut) TableName() string {
	return "check_in_outs"
}

// CheckType distinguishes check-in from check-out events
type CheckType string

const (
	CheckTypeIn  CheckType = "CHECK_IN"
	CheckTypeOut CheckType = "CHECK_OUT"
)
