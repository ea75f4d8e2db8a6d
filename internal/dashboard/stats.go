package dashboard

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"skillslab/internal/models"
	"skillslab/internal/status"
)

// EquipmentStats are the tile numbers for the equipment view.
type EquipmentStats struct {
	Total          int            `json:"total"`
	MaintenanceDue int            `json:"maintenanceDue"`
	Overdue        int            `json:"overdue"`
	ByLocation     map[string]int `json:"byLocation"`
	ByStatus       map[string]int `json:"byStatus"`
}

// AggregateEquipment reduces an equipment snapshot into tile numbers in a
// single pass. Items without a maintenance schedule count toward neither
// maintenanceDue nor overdue.
func AggregateEquipment(now time.Time, items []models.Equipment) EquipmentStats {
	stats := EquipmentStats{
		Total:      len(items),
		ByLocation: map[string]int{},
		ByStatus:   map[string]int{},
	}

	for _, item := range items {
		stats.ByLocation[item.Location]++
		stats.ByStatus[string(item.Status)]++

		switch status.Maintenance(now, item).Bucket {
		case status.BucketOverdue:
			stats.Overdue++
		case status.BucketDueSoon:
			stats.MaintenanceDue++
		}
	}

	return stats
}

// ConsumableStats are the tile numbers for the consumables view.
type ConsumableStats struct {
	Total      int            `json:"total"`
	LowStock   int            `json:"lowStock"`
	Expired    int            `json:"expired"`
	ByCategory map[string]int `json:"byCategory"`
	TotalValue float64        `json:"totalValue"`
}

// AggregateConsumables reduces a consumable snapshot into tile numbers.
// Low stock means current at or below minimum; value sums skip items with
// no recorded value and round to cents.
func AggregateConsumables(now time.Time, items []models.Consumable) ConsumableStats {
	stats := ConsumableStats{
		Total:      len(items),
		ByCategory: map[string]int{},
	}

	total := decimal.Zero
	for _, item := range items {
		stats.ByCategory[item.Category]++

		if item.TotalValue != nil {
			total = total.Add(decimal.NewFromFloat(*item.TotalValue))
		}

		if item.CurrentStock <= item.MinimumStock {
			stats.LowStock++
		}

		if status.Expiry(now, item).Bucket == status.BucketExpired {
			stats.Expired++
		}
	}

	stats.TotalValue = total.Round(2).InexactFloat64()
	return stats
}

// ReservationStats are the tile numbers for the reservations view.
type ReservationStats struct {
	Total    int            `json:"total"`
	Active   int            `json:"active"`
	Overdue  int            `json:"overdue"`
	Upcoming int            `json:"upcoming"`
	ByStatus map[string]int `json:"byStatus"`
}

// AggregateReservations reduces a reservation snapshot into tile numbers.
// Overdue is derived from the end date, so a stale stored status cannot
// hide a late return.
func AggregateReservations(now time.Time, items []models.Reservation) ReservationStats {
	stats := ReservationStats{
		Total:    len(items),
		ByStatus: map[string]int{},
	}

	for _, item := range items {
		stats.ByStatus[string(item.Status)]++

		if item.Status == models.ReservationInProgress {
			stats.Active++
		}

		switch status.Reservation(now, item).Bucket {
		case status.BucketOverdue:
			stats.Overdue++
		case status.BucketUpcoming:
			stats.Upcoming++
		}
	}

	return stats
}

// ProcurementStats are the tile numbers for the procurement view.
type ProcurementStats struct {
	Total      int            `json:"total"`
	Pending    int            `json:"pending"`
	Approved   int            `json:"approved"`
	Completed  int            `json:"completed"`
	ByStatus   map[string]int `json:"byStatus"`
	ByCategory map[string]int `json:"byCategory"`
}

// AggregateProcurement reduces a request snapshot into tile numbers.
func AggregateProcurement(items []models.ProcurementRequest) ProcurementStats {
	stats := ProcurementStats{
		Total:      len(items),
		ByStatus:   map[string]int{},
		ByCategory: map[string]int{},
	}

	for _, item := range items {
		stats.ByStatus[string(item.Status)]++
		stats.ByCategory[item.Category]++

		switch item.Status {
		case models.ProcurementSubmitted, models.ProcurementUnderReview:
			stats.Pending++
		case models.ProcurementApproved:
			stats.Approved++
		case models.ProcurementCompleted:
			stats.Completed++
		}
	}

	return stats
}

// MaintenanceStats are the tile numbers for the maintenance view.
type MaintenanceStats struct {
	Total     int            `json:"total"`
	Overdue   int            `json:"overdue"`
	ByStatus  map[string]int `json:"byStatus"`
	TotalCost float64        `json:"totalCost"`
}

// AggregateMaintenance reduces a maintenance record snapshot into tile
// numbers. A scheduled record whose next due date has passed counts as
// overdue alongside records already marked so.
func AggregateMaintenance(now time.Time, items []models.MaintenanceRecord) MaintenanceStats {
	stats := MaintenanceStats{
		Total:    len(items),
		ByStatus: map[string]int{},
	}

	total := decimal.Zero
	for _, item := range items {
		stats.ByStatus[string(item.Status)]++

		if item.Cost != nil {
			total = total.Add(decimal.NewFromFloat(*item.Cost))
		}

		if item.Status == models.MaintenanceOverdue {
			stats.Overdue++
		} else if item.Status == models.MaintenanceScheduled &&
			item.NextDueDate != nil && item.NextDueDate.Before(now) {
			stats.Overdue++
		}
	}

	stats.TotalCost = total.Round(2).InexactFloat64()
	return stats
}

// DocumentStats are the tile numbers for the document repository view.
type DocumentStats struct {
	Total       int            `json:"total"`
	ByCategory  map[string]int `json:"byCategory"`
	ByType      map[string]int `json:"byType"`
	TotalSizeMB float64        `json:"totalSize"`
}

var bytesPerMB = decimal.NewFromInt(1024 * 1024)

// AggregateDocuments reduces a document snapshot into tile numbers. Types
// are taken from the mime subtype; the size total is reported in MB.
func AggregateDocuments(items []models.Document) DocumentStats {
	stats := DocumentStats{
		Total:      len(items),
		ByCategory: map[string]int{},
		ByType:     map[string]int{},
	}

	size := decimal.Zero
	for _, item := range items {
		stats.ByCategory[string(item.Category)]++
		stats.ByType[mimeSubtype(item.MimeType)]++
		size = size.Add(decimal.NewFromInt(item.FileSize))
	}

	stats.TotalSizeMB = size.Div(bytesPerMB).Round(2).InexactFloat64()
	return stats
}

func mimeSubtype(mimeType string) string {
	parts := strings.SplitN(mimeType, "/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "UNKNOWN"
	}
	return strings.ToUpper(parts[1])
}
