package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"skillslab/internal/config"
	"skillslab/internal/dashboard"
	"skillslab/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	equipment    []models.Equipment
	maintenance  []models.MaintenanceRecord
	contacts     []models.ContactPerson
	makers       []models.Manufacturer
	consumables  []models.Consumable
	categories   []models.ConsumableCategory
	reservations []models.Reservation
	checkEvents  []models.CheckInOut
	requests     []models.ProcurementRequest
	wishLists    []models.WishList
	wishItems    []models.WishListItem
	documents    []models.Document
	images       []models.Image
	nextID       int
}

func (f *fakeStore) id() string {
	f.nextID++
	return fmt.Sprintf("id-%d", f.nextID)
}

func (f *fakeStore) ListEquipment(ctx context.Context) ([]models.Equipment, error) {
	return f.equipment, nil
}

func (f *fakeStore) GetEquipment(ctx context.Context, id string) (*models.Equipment, error) {
	for i := range f.equipment {
		if f.equipment[i].ID == id {
			return &f.equipment[i], nil
		}
	}
	return nil, errNotFound
}

func (f *fakeStore) CreateEquipment(ctx context.Context, item *models.Equipment) error {
	item.ID = f.id()
	f.equipment = append(f.equipment, *item)
	return nil
}

func (f *fakeStore) UpdateEquipment(ctx context.Context, item *models.Equipment) error {
	for i := range f.equipment {
		if f.equipment[i].ID == item.ID {
			f.equipment[i] = *item
			return nil
		}
	}
	return errNotFound
}

func (f *fakeStore) DeleteEquipment(ctx context.Context, id string) error {
	for i := range f.equipment {
		if f.equipment[i].ID == id {
			f.equipment = append(f.equipment[:i], f.equipment[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (f *fakeStore) AddImage(ctx context.Context, image *models.Image) error {
	image.ID = f.id()
	f.images = append(f.images, *image)
	return nil
}

func (f *fakeStore) ListMaintenanceRecords(ctx context.Context) ([]models.MaintenanceRecord, error) {
	return f.maintenance, nil
}

func (f *fakeStore) ListMaintenanceForEquipment(ctx context.Context, equipmentID string) ([]models.MaintenanceRecord, error) {
	var out []models.MaintenanceRecord
	for _, r := range f.maintenance {
		if r.EquipmentID == equipmentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateMaintenanceRecord(ctx context.Context, record *models.MaintenanceRecord) error {
	record.ID = f.id()
	f.maintenance = append(f.maintenance, *record)
	return nil
}

func (f *fakeStore) UpdateMaintenanceRecord(ctx context.Context, record *models.MaintenanceRecord) error {
	for i := range f.maintenance {
		if f.maintenance[i].ID == record.ID {
			f.maintenance[i] = *record
			return nil
		}
	}
	return errNotFound
}

func (f *fakeStore) ListContacts(ctx context.Context) ([]models.ContactPerson, error) {
	return f.contacts, nil
}

func (f *fakeStore) CreateContact(ctx context.Context, contact *models.ContactPerson) error {
	contact.ID = f.id()
	f.contacts = append(f.contacts, *contact)
	return nil
}

func (f *fakeStore) ListManufacturers(ctx context.Context) ([]models.Manufacturer, error) {
	return f.makers, nil
}

func (f *fakeStore) CreateManufacturer(ctx context.Context, m *models.Manufacturer) error {
	m.ID = f.id()
	f.makers = append(f.makers, *m)
	return nil
}

func (f *fakeStore) ListConsumables(ctx context.Context) ([]models.Consumable, error) {
	return f.consumables, nil
}

func (f *fakeStore) GetConsumable(ctx context.Context, id string) (*models.Consumable, error) {
	for i := range f.consumables {
		if f.consumables[i].ID == id {
			return &f.consumables[i], nil
		}
	}
	return nil, errNotFound
}

func (f *fakeStore) CreateConsumable(ctx context.Context, item *models.Consumable) error {
	item.ID = f.id()
	f.consumables = append(f.consumables, *item)
	return nil
}

func (f *fakeStore) UpdateConsumable(ctx context.Context, item *models.Consumable) error {
	for i := range f.consumables {
		if f.consumables[i].ID == item.ID {
			f.consumables[i] = *item
			return nil
		}
	}
	return errNotFound
}

func (f *fakeStore) DeleteConsumable(ctx context.Context, id string) error {
	for i := range f.consumables {
		if f.consumables[i].ID == id {
			f.consumables = append(f.consumables[:i], f.consumables[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (f *fakeStore) ListConsumableCategories(ctx context.Context) ([]models.ConsumableCategory, error) {
	return f.categories, nil
}

func (f *fakeStore) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	return f.reservations, nil
}

func (f *fakeStore) GetReservation(ctx context.Context, id string) (*models.Reservation, error) {
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			return &f.reservations[i], nil
		}
	}
	return nil, errNotFound
}

func (f *fakeStore) CreateReservation(ctx context.Context, item *models.Reservation) error {
	item.ID = f.id()
	f.reservations = append(f.reservations, *item)
	return nil
}

func (f *fakeStore) UpdateReservation(ctx context.Context, item *models.Reservation) error {
	for i := range f.reservations {
		if f.reservations[i].ID == item.ID {
			f.reservations[i] = *item
			return nil
		}
	}
	return errNotFound
}

func (f *fakeStore) CreateCheckInOut(ctx context.Context, event *models.CheckInOut) error {
	event.ID = f.id()
	f.checkEvents = append(f.checkEvents, *event)
	return nil
}

func (f *fakeStore) ListProcurementRequests(ctx context.Context) ([]models.ProcurementRequest, error) {
	return f.requests, nil
}

func (f *fakeStore) CreateProcurementRequest(ctx context.Context, item *models.ProcurementRequest) error {
	item.ID = f.id()
	f.requests = append(f.requests, *item)
	return nil
}

func (f *fakeStore) UpdateProcurementRequest(ctx context.Context, item *models.ProcurementRequest) error {
	for i := range f.requests {
		if f.requests[i].ID == item.ID {
			f.requests[i] = *item
			return nil
		}
	}
	return errNotFound
}

func (f *fakeStore) ListWishLists(ctx context.Context) ([]models.WishList, error) {
	return f.wishLists, nil
}

func (f *fakeStore) CreateWishList(ctx context.Context, list *models.WishList) error {
	list.ID = f.id()
	f.wishLists = append(f.wishLists, *list)
	return nil
}

func (f *fakeStore) AddWishListItem(ctx context.Context, item *models.WishListItem) error {
	item.ID = f.id()
	f.wishItems = append(f.wishItems, *item)
	return nil
}

func (f *fakeStore) ListDocuments(ctx context.Context) ([]models.Document, error) {
	return f.documents, nil
}

func (f *fakeStore) CreateDocument(ctx context.Context, doc *models.Document) error {
	doc.ID = f.id()
	f.documents = append(f.documents, *doc)
	return nil
}

func (f *fakeStore) DeleteDocument(ctx context.Context, id string) error {
	for i := range f.documents {
		if f.documents[i].ID == id {
			f.documents = append(f.documents[:i], f.documents[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

// fakeFiles captures uploads instead of touching disk.
type fakeFiles struct {
	uploads []string
}

func (f *fakeFiles) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	f.uploads = append(f.uploads, name)
	return "/files/" + name, nil
}

var serverNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestServer(store *fakeStore) *Server {
	gin.SetMode(gin.TestMode)
	s := NewServer(config.Default(), store, &fakeFiles{})
	s.now = func() time.Time { return serverNow }
	return s
}

func doJSON(s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(&fakeStore{})

	w := doJSON(s, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response["status"])
}

func TestCreateAndGetEquipment(t *testing.T) {
	store := &fakeStore{}
	s := newTestServer(store)

	w := doJSON(s, "POST", "/api/v1/equipment", map[string]interface{}{
		"name":     "Patient Monitor",
		"type":     "Monitor",
		"location": "B102",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Equipment
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	// Unset fields get defaults
	assert.Equal(t, models.EquipmentStatusActive, created.Status)
	assert.Equal(t, models.ConditionGood, created.Condition)

	w = doJSON(s, "GET", "/api/v1/equipment/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var fetched models.Equipment
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "Patient Monitor", fetched.Name)
}

func TestGetEquipmentNotFound(t *testing.T) {
	s := newTestServer(&fakeStore{})

	w := doJSON(s, "GET", "/api/v1/equipment/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListEquipmentFiltered(t *testing.T) {
	overdue := serverNow.AddDate(0, 0, -3)
	store := &fakeStore{
		equipment: []models.Equipment{
			{ID: "e1", Name: "Monitor A", Type: "Monitor", Location: "B102", NextMaintenanceDate: &overdue},
			{ID: "e2", Name: "Mannequin B", Type: "Mannequin", Location: "B103"},
		},
	}
	s := newTestServer(store)

	w := doJSON(s, "GET", "/api/v1/equipment?status=overdue", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var items []models.Equipment
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 1)
	assert.Equal(t, "e1", items[0].ID)
}

func TestEquipmentStats(t *testing.T) {
	overdue := serverNow.AddDate(0, 0, -3)
	dueSoon := serverNow.AddDate(0, 0, 10)
	store := &fakeStore{
		equipment: []models.Equipment{
			{ID: "e1", Location: "B102", Status: models.EquipmentStatusActive, NextMaintenanceDate: &overdue},
			{ID: "e2", Location: "B102", Status: models.EquipmentStatusActive, NextMaintenanceDate: &dueSoon},
			{ID: "e3", Location: "B103", Status: models.EquipmentStatusOutOfOrder},
		},
	}
	s := newTestServer(store)

	w := doJSON(s, "GET", "/api/v1/equipment/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var stats dashboard.EquipmentStats
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Overdue)
	assert.Equal(t, 1, stats.MaintenanceDue)
	assert.Equal(t, 2, stats.ByLocation["B102"])
}

func TestUpdateEquipmentPreservesIdentity(t *testing.T) {
	createdAt := serverNow.AddDate(0, -1, 0)
	store := &fakeStore{
		equipment: []models.Equipment{
			{ID: "e1", Name: "Old Name", CreatedAt: createdAt},
		},
	}
	s := newTestServer(store)

	w := doJSON(s, "PUT", "/api/v1/equipment/e1", map[string]interface{}{
		"id":   "evil-id",
		"name": "New Name",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Equipment
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "e1", updated.ID)
	assert.Equal(t, "New Name", updated.Name)
	assert.True(t, updated.CreatedAt.Equal(createdAt))
}

func TestDeleteEquipment(t *testing.T) {
	store := &fakeStore{
		equipment: []models.Equipment{{ID: "e1", Name: "Monitor"}},
	}
	s := newTestServer(store)

	w := doJSON(s, "DELETE", "/api/v1/equipment/e1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.equipment)

	w = doJSON(s, "DELETE", "/api/v1/equipment/e1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateMaintenanceRecordUnknownEquipment(t *testing.T) {
	s := newTestServer(&fakeStore{})

	w := doJSON(s, "POST", "/api/v1/equipment/nope/maintenance", map[string]interface{}{
		"type":        "INSPECTION",
		"description": "Annual check",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateConsumableDerivesAndLists(t *testing.T) {
	store := &fakeStore{}
	s := newTestServer(store)

	w := doJSON(s, "POST", "/api/v1/consumables", map[string]interface{}{
		"name":         "Sterile Gauze",
		"category":     "Bandages & Dressings",
		"currentStock": 40,
		"minimumStock": 20,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(s, "GET", "/api/v1/consumables?search=gauze", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var items []models.Consumable
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 1)
}

func TestCreateReservationRejectsInvertedWindow(t *testing.T) {
	store := &fakeStore{
		equipment: []models.Equipment{{ID: "e1", Name: "Monitor"}},
	}
	s := newTestServer(store)

	w := doJSON(s, "POST", "/api/v1/reservations", map[string]interface{}{
		"title":       "Training",
		"equipmentId": "e1",
		"startDate":   "2025-03-20T09:00:00Z",
		"endDate":     "2025-03-19T09:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReservationUnknownEquipment(t *testing.T) {
	s := newTestServer(&fakeStore{})

	w := doJSON(s, "POST", "/api/v1/reservations", map[string]interface{}{
		"title":       "Training",
		"equipmentId": "nope",
		"startDate":   "2025-03-19T09:00:00Z",
		"endDate":     "2025-03-20T09:00:00Z",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckOutLogsEvent(t *testing.T) {
	store := &fakeStore{
		reservations: []models.Reservation{
			{ID: "r1", Title: "Training", Status: models.ReservationConfirmed},
		},
	}
	s := newTestServer(store)

	w := doJSON(s, "POST", "/api/v1/reservations/r1/checkout", map[string]interface{}{
		"condition": "GOOD",
		"userId":    "u1",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	assert.Len(t, store.checkEvents, 1)
	event := store.checkEvents[0]
	assert.Equal(t, models.CheckTypeOut, event.Type)
	assert.Equal(t, "r1", event.ReservationID)
	assert.True(t, event.Timestamp.Equal(serverNow))
}

func TestProcurementDefaults(t *testing.T) {
	store := &fakeStore{}
	s := newTestServer(store)

	w := doJSON(s, "POST", "/api/v1/procurement/requests", map[string]interface{}{
		"title": "New ventilator",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.ProcurementRequest
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.ProcurementSubmitted, created.Status)
	assert.Equal(t, models.PriorityMedium, created.Priority)
	assert.Equal(t, 1, created.Quantity)
}

func TestDocumentDefaultsAndStats(t *testing.T) {
	store := &fakeStore{}
	s := newTestServer(store)

	w := doJSON(s, "POST", "/api/v1/documents", map[string]interface{}{
		"title":    "Defib Manual",
		"filename": "defib.pdf",
		"mimeType": "application/pdf",
		"fileSize": 2 * 1024 * 1024,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Document
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.DocOther, created.Category)

	w = doJSON(s, "GET", "/api/v1/documents/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var stats dashboard.DocumentStats
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.ByType["PDF"])
	assert.Equal(t, 2.0, stats.TotalSizeMB)
}

func TestAuthRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Auth.Secret = "test-secret"
	s := NewServer(cfg, &fakeStore{}, &fakeFiles{})

	// No token
	w := doJSON(s, "GET", "/api/v1/equipment", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token
	w = httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/equipment", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	s.Router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Minted token
	token, err := GenerateToken("test-secret", "u1", "ADMIN", time.Hour)
	assert.NoError(t, err)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/v1/equipment", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	s.Router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Health stays open
	w = doJSON(s, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
