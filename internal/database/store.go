package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"skillslab/internal/models"
)

// newID mints the string primary key used across all tables.
func newID() string {
	return uuid.New().String()
}

// Equipment

// ListEquipment returns all equipment with attached images, newest first.
func (d *DB) ListEquipment(ctx context.Context) ([]models.Equipment, error) {
	var items []models.Equipment
	err := d.conn.Preload("Images").Order("created_at desc").Find(&items).Error
	return items, err
}

// GetEquipment returns one piece of equipment with images and maintenance history.
func (d *DB) GetEquipment(ctx context.Context, id string) (*models.Equipment, error) {
	var item models.Equipment
	err := d.conn.Preload("Images").Preload("MaintenanceRecords").
		Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateEquipment inserts a new equipment record, minting its id.
func (d *DB) CreateEquipment(ctx context.Context, item *models.Equipment) error {
	if item.ID == "" {
		item.ID = newID()
	}
	return d.conn.Create(item).Error
}

// UpdateEquipment saves the full record.
func (d *DB) UpdateEquipment(ctx context.Context, item *models.Equipment) error {
	return d.conn.Save(item).Error
}

// DeleteEquipment removes a record and its attached images.
func (d *DB) DeleteEquipment(ctx context.Context, id string) error {
	tx := d.conn.Begin()
	if err := tx.Where("equipment_id = ?", id).Delete(&models.Image{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("id = ?", id).Delete(&models.Equipment{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// AddImage attaches an image record to a piece of equipment.
func (d *DB) AddImage(ctx context.Context, image *models.Image) error {
	if image.ID == "" {
		image.ID = newID()
	}
	return d.conn.Create(image).Error
}

// Maintenance

// ListMaintenanceRecords returns all maintenance records, most recent first.
func (d *DB) ListMaintenanceRecords(ctx context.Context) ([]models.MaintenanceRecord, error) {
	var items []models.MaintenanceRecord
	err := d.conn.Order("performed_date desc").Find(&items).Error
	return items, err
}

// ListMaintenanceForEquipment returns the maintenance history of one item.
func (d *DB) ListMaintenanceForEquipment(ctx context.Context, equipmentID string) ([]models.MaintenanceRecord, error) {
	var items []models.MaintenanceRecord
	err := d.conn.Where("equipment_id = ?", equipmentID).
		Order("performed_date desc").Find(&items).Error
	return items, err
}

// CreateMaintenanceRecord inserts a maintenance record and rolls the parent
// equipment's maintenance dates forward.
func (d *DB) CreateMaintenanceRecord(ctx context.Context, record *models.MaintenanceRecord) error {
	if record.ID == "" {
		record.ID = newID()
	}

	tx := d.conn.Begin()
	if err := tx.Create(record).Error; err != nil {
		tx.Rollback()
		return err
	}

	updates := map[string]interface{}{
		"last_maintenance_date": record.PerformedDate,
	}
	if record.NextDueDate != nil {
		updates["next_maintenance_date"] = *record.NextDueDate
	}
	if err := tx.Model(&models.Equipment{}).
		Where("id = ?", record.EquipmentID).Updates(updates).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// UpdateMaintenanceRecord saves the full record.
func (d *DB) UpdateMaintenanceRecord(ctx context.Context, record *models.MaintenanceRecord) error {
	return d.conn.Save(record).Error
}

// Contacts and manufacturers

// ListContacts returns all maintenance contacts.
func (d *DB) ListContacts(ctx context.Context) ([]models.ContactPerson, error) {
	var items []models.ContactPerson
	err := d.conn.Order("name").Find(&items).Error
	return items, err
}

// CreateContact inserts a contact person.
func (d *DB) CreateContact(ctx context.Context, contact *models.ContactPerson) error {
	if contact.ID == "" {
		contact.ID = newID()
	}
	return d.conn.Create(contact).Error
}

// ListManufacturers returns all manufacturers.
func (d *DB) ListManufacturers(ctx context.Context) ([]models.Manufacturer, error) {
	var items []models.Manufacturer
	err := d.conn.Order("name").Find(&items).Error
	return items, err
}

// CreateManufacturer inserts a manufacturer.
func (d *DB) CreateManufacturer(ctx context.Context, m *models.Manufacturer) error {
	if m.ID == "" {
		m.ID = newID()
	}
	return d.conn.Create(m).Error
}

// Consumables

// ListConsumables returns all consumables, newest first.
func (d *DB) ListConsumables(ctx context.Context) ([]models.Consumable, error) {
	var items []models.Consumable
	err := d.conn.Order("created_at desc").Find(&items).Error
	return items, err
}

// GetConsumable returns one consumable.
func (d *DB) GetConsumable(ctx context.Context, id string) (*models.Consumable, error) {
	var item models.Consumable
	if err := d.conn.Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateConsumable inserts a consumable, deriving its total value.
func (d *DB) CreateConsumable(ctx context.Context, item *models.Consumable) error {
	if item.ID == "" {
		item.ID = newID()
	}
	deriveTotalValue(item)
	return d.conn.Create(item).Error
}

// UpdateConsumable saves the full record, rederiving its total value.
func (d *DB) UpdateConsumable(ctx context.Context, item *models.Consumable) error {
	deriveTotalValue(item)
	return d.conn.Save(item).Error
}

// DeleteConsumable removes a consumable.
func (d *DB) DeleteConsumable(ctx context.Context, id string) error {
	return d.conn.Where("id = ?", id).Delete(&models.Consumable{}).Error
}

// ListConsumableCategories returns the category reference data.
func (d *DB) ListConsumableCategories(ctx context.Context) ([]models.ConsumableCategory, error) {
	var items []models.ConsumableCategory
	err := d.conn.Order("name").Find(&items).Error
	return items, err
}

// Reservations

// ListReservations returns all reservations with their check-in/out log.
func (d *DB) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	var items []models.Reservation
	err := d.conn.Preload("CheckInOuts").Order("start_date desc").Find(&items).Error
	return items, err
}

// GetReservation returns one reservation with its check-in/out log.
func (d *DB) GetReservation(ctx context.Context, id string) (*models.Reservation, error) {
	var item models.Reservation
	err := d.conn.Preload("CheckInOuts").Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateReservation inserts a reservation.
func (d *DB) CreateReservation(ctx context.Context, item *models.Reservation) error {
	if item.ID == "" {
		item.ID = newID()
	}
	return d.conn.Create(item).Error
}

// UpdateReservation saves the full record.
func (d *DB) UpdateReservation(ctx context.Context, item *models.Reservation) error {
	return d.conn.Save(item).Error
}

// CreateCheckInOut logs a check event and moves the reservation to the
// matching status in one transaction.
func (d *DB) CreateCheckInOut(ctx context.Context, event *models.CheckInOut) error {
	if event.ID == "" {
		event.ID = newID()
	}

	var next models.ReservationStatus
	var dateColumn string
	switch event.Type {
	case models.CheckTypeOut:
		next = models.ReservationInProgress
		dateColumn = "actual_start_date"
	case models.CheckTypeIn:
		next = models.ReservationCompleted
		dateColumn = "actual_end_date"
	default:
		return fmt.Errorf("unknown check type %q", event.Type)
	}

	tx := d.conn.Begin()
	if err := tx.Create(event).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Model(&models.Reservation{}).
		Where("id = ?", event.ReservationID).
		Updates(map[string]interface{}{
			"status":   next,
			dateColumn: event.Timestamp,
		}).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// Procurement

// ListProcurementRequests returns all requests, newest first.
func (d *DB) ListProcurementRequests(ctx context.Context) ([]models.ProcurementRequest, error) {
	var items []models.ProcurementRequest
	err := d.conn.Order("created_at desc").Find(&items).Error
	return items, err
}

// CreateProcurementRequest inserts a request.
func (d *DB) CreateProcurementRequest(ctx context.Context, item *models.ProcurementRequest) error {
	if item.ID == "" {
		item.ID = newID()
	}
	return d.conn.Create(item).Error
}

// UpdateProcurementRequest saves the full record.
func (d *DB) UpdateProcurementRequest(ctx context.Context, item *models.ProcurementRequest) error {
	return d.conn.Save(item).Error
}

// ListWishLists returns all wish lists with their items.
func (d *DB) ListWishLists(ctx context.Context) ([]models.WishList, error) {
	var items []models.WishList
	err := d.conn.Preload("Items").Order("created_at desc").Find(&items).Error
	return items, err
}

// CreateWishList inserts a wish list.
func (d *DB) CreateWishList(ctx context.Context, list *models.WishList) error {
	if list.ID == "" {
		list.ID = newID()
	}
	return d.conn.Create(list).Error
}

// AddWishListItem inserts an item onto an existing wish list.
func (d *DB) AddWishListItem(ctx context.Context, item *models.WishListItem) error {
	if item.ID == "" {
		item.ID = newID()
	}
	return d.conn.Create(item).Error
}

// Documents

// ListDocuments returns all document metadata, newest first.
func (d *DB) ListDocuments(ctx context.Context) ([]models.Document, error) {
	var items []models.Document
	err := d.conn.Order("created_at desc").Find(&items).Error
	return items, err
}

// CreateDocument inserts document metadata.
func (d *DB) CreateDocument(ctx context.Context, doc *models.Document) error {
	if doc.ID == "" {
		doc.ID = newID()
	}
	return d.conn.Create(doc).Error
}

// DeleteDocument removes document metadata.
func (d *DB) DeleteDocument(ctx context.Context, id string) error {
	return d.conn.Where("id = ?", id).Delete(&models.Document{}).Error
}

// deriveTotalValue keeps the denormalized value column in sync with stock
// and unit cost.
func deriveTotalValue(item *models.Consumable) {
	if item.UnitCost == nil {
		return
	}
	v := decimal.NewFromFloat(*item.UnitCost).
		Mul(decimal.NewFromFloat(item.CurrentStock)).
		Round(2).InexactFloat64()
	item.TotalValue = &v
}
