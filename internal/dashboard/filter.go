// Package dashboard holds the pure collection transforms behind the
// dashboard views: predicate filtering and single-pass stats aggregation.
// Both operate on fetched snapshots and never mutate their inputs.
package dashboard

import (
	"strings"
	"time"

	"skillslab/internal/models"
	"skillslab/internal/status"
)

// Derived status filter values resolved through the classifier instead of a
// stored field.
const (
	FilterMaintenanceDue = "maintenance-due"
	FilterOverdue        = "overdue"
)

// EquipmentCategories maps a category id to the equipment types it covers.
var EquipmentCategories = map[string][]string{
	"monitors":   {"Monitor"},
	"simulators": {"Simulator"},
	"mannequins": {"Mannequin"},
	"emergency":  {"Jump Bag", "Defibrillator", "Oxygen Equipment", "Stretcher"},
	"diagnostic": {"Diagnostic Tool"},
	"other":      {"Ventilator", "IV Pump", "Other"},
}

// EquipmentFilter is the predicate set for the equipment view. Empty or
// "all" values are no-ops; populated predicates combine with AND.
type EquipmentFilter struct {
	Search   string
	Location string
	Status   string
	Category string
}

// FilterEquipment returns the items matching the filter, preserving order.
func FilterEquipment(now time.Time, items []models.Equipment, f EquipmentFilter) []models.Equipment {
	filtered := make([]models.Equipment, 0, len(items))
	for _, item := range items {
		if !matchesEquipment(now, item, f) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func matchesEquipment(now time.Time, item models.Equipment, f EquipmentFilter) bool {
	if active(f.Category) {
		types, ok := EquipmentCategories[f.Category]
		if ok && !containsString(types, item.Type) {
			return false
		}
	}

	if active(f.Location) && item.Location != f.Location {
		return false
	}

	if active(f.Status) {
		bucket := status.Maintenance(now, item).Bucket
		switch f.Status {
		case FilterMaintenanceDue:
			if bucket != status.BucketDueSoon && bucket != status.BucketOverdue {
				return false
			}
		case FilterOverdue:
			if bucket != status.BucketOverdue {
				return false
			}
		default:
			if string(item.Status) != f.Status {
				return false
			}
		}
	}

	if f.Search != "" {
		if !matchesSearch(f.Search, item.Name, item.Type, item.Manufacturer, item.Description) {
			return false
		}
	}

	return true
}

// ConsumableFilter is the predicate set for the consumables view.
type ConsumableFilter struct {
	Search   string
	Category string
}

// FilterConsumables returns the items matching the filter, preserving order.
func FilterConsumables(items []models.Consumable, f ConsumableFilter) []models.Consumable {
	filtered := make([]models.Consumable, 0, len(items))
	for _, item := range items {
		if active(f.Category) && item.Category != f.Category {
			continue
		}
		if f.Search != "" && !matchesSearch(f.Search, item.Name, item.Description, item.Supplier) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// ProcurementFilter is the predicate set for the procurement view.
type ProcurementFilter struct {
	Search   string
	Status   string
	Priority string
}

// FilterProcurement returns the requests matching the filter, preserving order.
func FilterProcurement(items []models.ProcurementRequest, f ProcurementFilter) []models.ProcurementRequest {
	filtered := make([]models.ProcurementRequest, 0, len(items))
	for _, item := range items {
		if active(f.Status) && string(item.Status) != f.Status {
			continue
		}
		if active(f.Priority) && string(item.Priority) != f.Priority {
			continue
		}
		if f.Search != "" && !matchesSearch(f.Search, item.Title, item.Description, item.Supplier) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// ReservationFilter is the predicate set for the reservations view.
// Status accepts stored statuses plus the derived "overdue" value.
type ReservationFilter struct {
	Status      string
	EquipmentID string
}

// FilterReservations returns the reservations matching the filter, preserving order.
func FilterReservations(now time.Time, items []models.Reservation, f ReservationFilter) []models.Reservation {
	filtered := make([]models.Reservation, 0, len(items))
	for _, item := range items {
		if f.EquipmentID != "" && item.EquipmentID != f.EquipmentID {
			continue
		}
		if active(f.Status) {
			if f.Status == FilterOverdue {
				if status.Reservation(now, item).Bucket != status.BucketOverdue {
					continue
				}
			} else if string(item.Status) != f.Status {
				continue
			}
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// DocumentFilter is the predicate set for the document repository view.
type DocumentFilter struct {
	Search   string
	Category string
}

// FilterDocuments returns the documents matching the filter, preserving order.
func FilterDocuments(items []models.Document, f DocumentFilter) []models.Document {
	filtered := make([]models.Document, 0, len(items))
	for _, item := range items {
		if active(f.Category) && string(item.Category) != f.Category {
			continue
		}
		if f.Search != "" {
			fields := append([]string{item.Title, item.Description, item.Filename}, item.Tags...)
			if !matchesSearch(f.Search, fields...) {
				continue
			}
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// active reports whether a filter value narrows the result set.
func active(v string) bool {
	return v != "" && v != "all"
}

// matchesSearch reports whether any field contains the term, case-insensitively.
func matchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(term)
	for _, field := range fields {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
