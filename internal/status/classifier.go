// Package status derives qualitative display buckets from item fields and a
// reference time. Every function takes the clock as an argument; nothing in
// this package reads wall time or mutates its inputs.
package status

import (
	"fmt"
	"math"
	"time"

	"skillslab/internal/models"
)

// Bucket is a discrete classification derived from a date or threshold.
type Bucket string

const (
	// Maintenance buckets
	BucketUnknown Bucket = "unknown"
	BucketOverdue Bucket = "overdue"
	BucketDueSoon Bucket = "due-soon"
	BucketOK      Bucket = "ok"

	// Stock buckets
	BucketCritical Bucket = "critical"
	BucketLow      Bucket = "low"
	BucketMedium   Bucket = "medium"
	BucketGood     Bucket = "good"

	// Expiry buckets
	BucketExpired      Bucket = "expired"
	BucketExpiringSoon Bucket = "expiring-soon"

	// Reservation buckets
	BucketUpcoming Bucket = "upcoming"

	// BucketNone means no flag applies.
	BucketNone Bucket = "none"
)

// Status pairs a bucket with its human-readable label.
type Status struct {
	Bucket Bucket `json:"bucket"`
	Label  string `json:"label"`
}

// Equipment with maintenance due within this many days is flagged due-soon.
const dueSoonWindowDays = 30

// Reservations starting within this many days are flagged upcoming.
const upcomingWindowDays = 7

// DaysUntil returns the number of days from now until t, rounded up.
// Past dates yield negative values.
func DaysUntil(now, t time.Time) int {
	return int(math.Ceil(t.Sub(now).Hours() / 24))
}

// Maintenance classifies a piece of equipment by its next maintenance date.
func Maintenance(now time.Time, e models.Equipment) Status {
	if e.NextMaintenanceDate == nil {
		return Status{Bucket: BucketUnknown, Label: "No Schedule"}
	}

	daysUntil := DaysUntil(now, *e.NextMaintenanceDate)
	switch {
	case daysUntil < 0:
		return Status{
			Bucket: BucketOverdue,
			Label:  fmt.Sprintf("%d days overdue", -daysUntil),
		}
	case daysUntil <= dueSoonWindowDays:
		return Status{
			Bucket: BucketDueSoon,
			Label:  fmt.Sprintf("Due in %d days", daysUntil),
		}
	default:
		return Status{
			Bucket: BucketOK,
			Label:  "Due " + e.NextMaintenanceDate.Format("Jan 02, 2006"),
		}
	}
}

// StockLevel classifies a consumable by its stock ratio against the minimum.
// A zero or negative minimum cannot produce a ratio: such items are "good"
// unless the shelf is actually empty.
func StockLevel(c models.Consumable) Status {
	if c.MinimumStock <= 0 {
		if c.CurrentStock <= 0 {
			return Status{Bucket: BucketCritical, Label: "Critical"}
		}
		return Status{Bucket: BucketGood, Label: "Good"}
	}

	percentage := c.CurrentStock / c.MinimumStock * 100
	switch {
	case percentage <= 25:
		return Status{Bucket: BucketCritical, Label: "Critical"}
	case percentage <= 50:
		return Status{Bucket: BucketLow, Label: "Low"}
	case percentage <= 75:
		return Status{Bucket: BucketMedium, Label: "Medium"}
	default:
		return Status{Bucket: BucketGood, Label: "Good"}
	}
}

// Expiry classifies a consumable by its expiry date. Items without an expiry
// date are never flagged.
func Expiry(now time.Time, c models.Consumable) Status {
	if c.ExpiryDate == nil {
		return Status{Bucket: BucketNone}
	}

	expiry := *c.ExpiryDate
	if expiry.Before(now) {
		return Status{Bucket: BucketExpired, Label: "Expired"}
	}
	if !expiry.After(now.AddDate(0, 0, dueSoonWindowDays)) {
		return Status{Bucket: BucketExpiringSoon, Label: "Expiring Soon"}
	}
	return Status{Bucket: BucketNone}
}

// Reservation classifies a reservation window against the reference time.
// Completed and cancelled reservations are never overdue regardless of dates.
func Reservation(now time.Time, r models.Reservation) Status {
	terminal := r.Status == models.ReservationCompleted || r.Status == models.ReservationCancelled

	if !terminal && r.EndDate.Before(now) {
		days := int(math.Ceil(now.Sub(r.EndDate).Hours() / 24))
		return Status{
			Bucket: BucketOverdue,
			Label:  fmt.Sprintf("%d days overdue", days),
		}
	}

	if !r.StartDate.Before(now) && !r.StartDate.After(now.AddDate(0, 0, upcomingWindowDays)) {
		return Status{
			Bucket: BucketUpcoming,
			Label:  "Starts " + r.StartDate.Format("Jan 02, 2006"),
		}
	}

	return Status{Bucket: BucketNone}
}
