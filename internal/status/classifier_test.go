package status

import (
	"testing"
	"time"

	"skillslab/internal/models"
)

var testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestMaintenance(t *testing.T) {
	tests := []struct {
		name   string
		next   *time.Time
		bucket Bucket
		label  string
	}{
		{
			name:   "no schedule",
			next:   nil,
			bucket: BucketUnknown,
			label:  "No Schedule",
		},
		{
			name:   "five days overdue",
			next:   datePtr(testNow.AddDate(0, 0, -5)),
			bucket: BucketOverdue,
			label:  "5 days overdue",
		},
		{
			name:   "due tomorrow",
			next:   datePtr(testNow.AddDate(0, 0, 1)),
			bucket: BucketDueSoon,
			label:  "Due in 1 days",
		},
		{
			name:   "at the window edge",
			next:   datePtr(testNow.AddDate(0, 0, 30)),
			bucket: BucketDueSoon,
			label:  "Due in 30 days",
		},
		{
			name:   "well in the future",
			next:   datePtr(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
			bucket: BucketOK,
			label:  "Due Jun 01, 2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Maintenance(testNow, models.Equipment{NextMaintenanceDate: tt.next})
			if got.Bucket != tt.bucket {
				t.Errorf("Expected bucket %q, got %q", tt.bucket, got.Bucket)
			}
			if got.Label != tt.label {
				t.Errorf("Expected label %q, got %q", tt.label, got.Label)
			}
		})
	}
}

func TestMaintenancePartialDayRoundsUp(t *testing.T) {
	// 12 hours away still counts as one day out, not zero
	next := testNow.Add(12 * time.Hour)
	got := Maintenance(testNow, models.Equipment{NextMaintenanceDate: &next})
	if got.Bucket != BucketDueSoon {
		t.Fatalf("Expected due-soon, got %q", got.Bucket)
	}
	if got.Label != "Due in 1 days" {
		t.Errorf("Expected 'Due in 1 days', got %q", got.Label)
	}
}

func TestStockLevel(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		minimum float64
		bucket  Bucket
	}{
		{"well stocked", 100, 10, BucketGood},
		{"at 75 percent", 7.5, 10, BucketMedium},
		{"at half", 5, 10, BucketLow},
		{"critical", 2, 10, BucketCritical},
		{"empty", 0, 10, BucketCritical},
		{"no minimum with stock", 3, 0, BucketGood},
		{"no minimum empty shelf", 0, 0, BucketCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StockLevel(models.Consumable{CurrentStock: tt.current, MinimumStock: tt.minimum})
			if got.Bucket != tt.bucket {
				t.Errorf("Expected bucket %q for %v/%v, got %q", tt.bucket, tt.current, tt.minimum, got.Bucket)
			}
		})
	}
}

func TestExpiry(t *testing.T) {
	tests := []struct {
		name   string
		expiry *time.Time
		bucket Bucket
	}{
		{"no expiry date", nil, BucketNone},
		{"expired last week", datePtr(testNow.AddDate(0, 0, -7)), BucketExpired},
		{"expiring in ten days", datePtr(testNow.AddDate(0, 0, 10)), BucketExpiringSoon},
		{"expiring at the window edge", datePtr(testNow.AddDate(0, 0, 30)), BucketExpiringSoon},
		{"fresh", datePtr(testNow.AddDate(0, 6, 0)), BucketNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expiry(testNow, models.Consumable{ExpiryDate: tt.expiry})
			if got.Bucket != tt.bucket {
				t.Errorf("Expected bucket %q, got %q", tt.bucket, got.Bucket)
			}
		})
	}
}

func TestReservation(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		end    time.Time
		status models.ReservationStatus
		bucket Bucket
	}{
		{
			name:   "overdue return",
			start:  testNow.AddDate(0, 0, -10),
			end:    testNow.AddDate(0, 0, -3),
			status: models.ReservationInProgress,
			bucket: BucketOverdue,
		},
		{
			name:   "completed is never overdue",
			start:  testNow.AddDate(0, 0, -10),
			end:    testNow.AddDate(0, 0, -3),
			status: models.ReservationCompleted,
			bucket: BucketNone,
		},
		{
			name:   "cancelled is never overdue",
			start:  testNow.AddDate(0, 0, -10),
			end:    testNow.AddDate(0, 0, -3),
			status: models.ReservationCancelled,
			bucket: BucketNone,
		},
		{
			name:   "starting in three days",
			start:  testNow.AddDate(0, 0, 3),
			end:    testNow.AddDate(0, 0, 5),
			status: models.ReservationConfirmed,
			bucket: BucketUpcoming,
		},
		{
			name:   "starting next month",
			start:  testNow.AddDate(0, 1, 0),
			end:    testNow.AddDate(0, 1, 2),
			status: models.ReservationConfirmed,
			bucket: BucketNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reservation(testNow, models.Reservation{
				StartDate: tt.start,
				EndDate:   tt.end,
				Status:    tt.status,
			})
			if got.Bucket != tt.bucket {
				t.Errorf("Expected bucket %q, got %q", tt.bucket, got.Bucket)
			}
		})
	}
}

func TestReservationOverdueLabelRoundsUp(t *testing.T) {
	// A return six hours late is already one day overdue
	got := Reservation(testNow, models.Reservation{
		StartDate: testNow.AddDate(0, 0, -2),
		EndDate:   testNow.Add(-6 * time.Hour),
		Status:    models.ReservationInProgress,
	})
	if got.Bucket != BucketOverdue {
		t.Fatalf("Expected overdue, got %q", got.Bucket)
	}
	if got.Label != "1 days overdue" {
		t.Errorf("Expected '1 days overdue', got %q", got.Label)
	}
}

func TestDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2025-03-15")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if got := FormatDate(parsed); got != "2025-03-15" {
		t.Errorf("Expected round-trip to preserve the date, got %q", got)
	}

	if _, err := ParseDate("15/03/2025"); err == nil {
		t.Errorf("Expected an error for a non-ISO date")
	}
}
